package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/acne-analysis/internal/classifier"
	"github.com/example/acne-analysis/internal/logging"
	"github.com/example/acne-analysis/internal/repository"
	"github.com/example/acne-analysis/internal/storage"
)

const resultsCacheTTL = 5 * time.Minute

// FolderRegistry defines the registry operations needed by the use case.
type FolderRegistry interface {
	Ensure(ctx context.Context, username, folderPath string) error
	Exists(ctx context.Context, username string) (bool, error)
}

// RecordStore defines the analysis log operations needed by the use case.
type RecordStore interface {
	Append(ctx context.Context, record *repository.AnalysisRecord) error
	ListByUser(ctx context.Context, userID string) ([]repository.AnalysisRecord, error)
	Summarize(ctx context.Context, userID string) (*repository.SeverityAggregation, error)
}

// RegionUpload is one region-tagged image payload from the multipart form.
type RegionUpload struct {
	Filename string
	Data     []byte
}

// RegionResult is the per-region outcome of one upload event. Persisted is
// false when the record could not be written to the log; the upload still
// succeeds in that case.
type RegionResult struct {
	Region     classifier.Region
	Filename   string
	Severity   string
	Confidence string
	Persisted  bool
}

// UploadSummary reports what one upload event did.
type UploadSummary struct {
	EventID    string
	UserID     string
	UploadTime time.Time
	Regions    []RegionResult
}

// InvalidUploadError marks the first region whose payload was missing or had
// a disallowed extension. Regions before it may already be persisted.
type InvalidUploadError struct {
	Region classifier.Region
}

// Error implements the error interface.
func (e *InvalidUploadError) Error() string {
	return fmt.Sprintf("invalid or missing file for %s", e.Region)
}

// AnalysisUseCase orchestrates the upload-classify-persist pipeline and the
// retrieval paths around it.
type AnalysisUseCase struct {
	folders        FolderRegistry
	records        RecordStore
	cache          Cache
	oracle         classifier.Client
	disk           *storage.Disk
	logger         *zap.Logger
	retryAttempts  int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// NewAnalysisUseCase constructs a new use case instance. A nil oracle means
// the classifier was unavailable at startup; uploads then carry sentinel
// results for the life of the process.
func NewAnalysisUseCase(folders FolderRegistry, records RecordStore, cache Cache, oracle classifier.Client, disk *storage.Disk, logger *zap.Logger) *AnalysisUseCase {
	return &AnalysisUseCase{
		folders:        folders,
		records:        records,
		cache:          cache,
		oracle:         oracle,
		disk:           disk,
		logger:         logger.Named("analysis_usecase"),
		retryAttempts:  3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
	}
}

// ProcessUpload runs the pipeline for one upload event: sanitize the user
// identifier, register the user's folder, then per region in the fixed
// left, middle, right order save the image, classify it and append a log
// record. Validation happens at the point of processing, so an invalid later
// region returns an InvalidUploadError after earlier regions were already
// saved and persisted.
func (uc *AnalysisUseCase) ProcessUpload(ctx context.Context, rawUserID string, files map[classifier.Region]RegionUpload) (*UploadSummary, error) {
	eventID := uuid.NewString()
	userID := storage.SanitizeUserID(rawUserID)
	opLogger := logging.WithOperation(uc.logger, "usecase.process_upload", eventID).
		With(zap.String("user_id", userID))

	folderPath, err := uc.disk.EnsureUserDir(userID)
	if err != nil {
		wrapped := logging.NewOperationError("usecase.ensure_user_dir", eventID, err)
		opLogger.Error("failed to create user folder", zap.Error(wrapped))
		return nil, wrapped
	}
	// Registry bookkeeping never fails an upload.
	if err := uc.folders.Ensure(ctx, userID, folderPath); err != nil {
		opLogger.Error("failed to register user folder", zap.Error(err))
	}

	summary := &UploadSummary{
		EventID:    eventID,
		UserID:     userID,
		UploadTime: time.Now().UTC().Truncate(time.Second),
	}

	for _, region := range classifier.Regions() {
		file, ok := files[region]
		if !ok || !storage.AllowedImage(file.Filename) {
			return nil, &InvalidUploadError{Region: region}
		}

		filename := storage.ImageFilename(userID, string(region))
		if _, err := uc.disk.SaveImage(userID, filename, file.Data); err != nil {
			wrapped := logging.NewOperationError("usecase.save_image", eventID, err)
			opLogger.Error("failed to save image", zap.Error(wrapped), zap.String("face_region", string(region)))
			return nil, wrapped
		}

		severity, confidence, confidenceLabel := uc.classify(ctx, userID, region, file.Data)

		record := &repository.AnalysisRecord{
			UserID:     userID,
			Filename:   filename,
			FacePart:   string(region),
			Severity:   severity,
			Confidence: confidence,
			UploadTime: summary.UploadTime,
		}
		persisted := true
		if err := uc.records.Append(ctx, record); err != nil {
			persisted = false
			opLogger.Error("analysis record not persisted", zap.Error(err), zap.String("face_region", string(region)))
		}

		summary.Regions = append(summary.Regions, RegionResult{
			Region:     region,
			Filename:   filename,
			Severity:   severity,
			Confidence: confidenceLabel,
			Persisted:  persisted,
		})
	}

	if err := uc.withCacheRetry(ctx, eventID, "cache.del.results", func() error {
		return uc.cache.Del(ctx, resultsCacheKey(userID))
	}); err != nil {
		opLogger.Warn("failed to invalidate results cache", zap.Error(err))
	}

	opLogger.Info("upload processed", zap.Int("regions", len(summary.Regions)))
	return summary, nil
}

// classify invokes the oracle for one region, downgrading failures to
// sentinel values instead of propagating them.
func (uc *AnalysisUseCase) classify(ctx context.Context, userID string, region classifier.Region, imageBytes []byte) (string, float64, string) {
	if uc.oracle == nil {
		return classifier.SeverityModelNotLoaded, 0, classifier.ConfidenceNA
	}
	result, err := uc.oracle.Classify(ctx, userID, region, imageBytes)
	if err != nil {
		return fmt.Sprintf("Error during classification: %v", err), 0, classifier.ConfidenceNA
	}
	return result.Severity, result.Confidence, fmt.Sprintf("%.2f", result.Confidence)
}

// Results returns a user's full analysis history, newest first, serving from
// the cache when possible. Cache failures never fail the request.
func (uc *AnalysisUseCase) Results(ctx context.Context, userID string) ([]repository.AnalysisRecord, error) {
	cacheKey := resultsCacheKey(userID)
	opLogger := logging.WithOperation(uc.logger, "usecase.results", "").With(zap.String("user_id", userID))

	if cached, err := uc.withCacheGet(ctx, userID, "cache.get.results", cacheKey); err == nil {
		records := make([]repository.AnalysisRecord, 0)
		if err := json.Unmarshal([]byte(cached), &records); err != nil {
			opLogger.Warn("failed to decode cached results", zap.Error(err))
		} else {
			return records, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		opLogger.Warn("failed to read results cache", zap.Error(err))
	}

	records, err := uc.records.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if serialized, err := json.Marshal(records); err != nil {
		opLogger.Warn("failed to serialize results for cache", zap.Error(err))
	} else if err := uc.withCacheRetry(ctx, userID, "cache.set.results", func() error {
		return uc.cache.Set(ctx, cacheKey, string(serialized), resultsCacheTTL)
	}); err != nil {
		opLogger.Warn("failed to cache results", zap.Error(err))
	}

	return records, nil
}

// CheckUserID probes the folder registry for an existing identifier. It does
// not prevent reuse; reuse simply appends more history.
func (uc *AnalysisUseCase) CheckUserID(ctx context.Context, userID string) (bool, error) {
	return uc.folders.Exists(ctx, userID)
}

func resultsCacheKey(userID string) string {
	return fmt.Sprintf("results:%s", userID)
}

func (uc *AnalysisUseCase) withCacheRetry(ctx context.Context, eventID, operation string, fn func() error) error {
	if uc.retryAttempts <= 1 {
		return logging.NewOperationError(operation, eventID, fn())
	}

	backoff := uc.initialBackoff
	opLogger := logging.WithOperation(uc.logger, operation, eventID)
	var err error
	for attempt := 0; attempt < uc.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError(operation, eventID, ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= uc.maxBackoff {
				backoff = next
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				opLogger.Info("cache operation succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}

		if !isTransientError(err) || attempt == uc.retryAttempts-1 {
			return logging.NewOperationError(operation, eventID, err)
		}

		opLogger.Warn("transient cache error", zap.Error(err), zap.Int("attempt", attempt+1))
	}
	return logging.NewOperationError(operation, eventID, err)
}

func (uc *AnalysisUseCase) withCacheGet(ctx context.Context, eventID, operation, cacheKey string) (string, error) {
	var result string
	err := uc.withCacheRetry(ctx, eventID, operation, func() error {
		value, err := uc.cache.Get(ctx, cacheKey)
		if err != nil {
			return err
		}
		result = value
		return nil
	})
	if err != nil {
		return "", err
	}
	return result, nil
}

func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var temporary interface{ Temporary() bool }
	if errors.As(err, &temporary) && temporary.Temporary() {
		return true
	}

	return false
}
