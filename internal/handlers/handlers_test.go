package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/example/acne-analysis/internal/classifier"
	"github.com/example/acne-analysis/internal/repository"
	"github.com/example/acne-analysis/internal/storage"
	"github.com/example/acne-analysis/internal/usecase"
)

type stubRegistry struct {
	exists    bool
	existsErr error
}

func (s *stubRegistry) Ensure(ctx context.Context, username, folderPath string) error {
	return nil
}

func (s *stubRegistry) Exists(ctx context.Context, username string) (bool, error) {
	return s.exists, s.existsErr
}

type stubRecords struct {
	appended []*repository.AnalysisRecord
	listed   []repository.AnalysisRecord
}

func (s *stubRecords) Append(ctx context.Context, record *repository.AnalysisRecord) error {
	s.appended = append(s.appended, record)
	return nil
}

func (s *stubRecords) ListByUser(ctx context.Context, userID string) ([]repository.AnalysisRecord, error) {
	if s.listed == nil {
		return make([]repository.AnalysisRecord, 0), nil
	}
	return s.listed, nil
}

func (s *stubRecords) Summarize(ctx context.Context, userID string) (*repository.SeverityAggregation, error) {
	return &repository.SeverityAggregation{BySeverity: make([]repository.SeverityCount, 0)}, nil
}

type stubCache struct{}

func (stubCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return nil
}

func (stubCache) Get(ctx context.Context, key string) (string, error) {
	return "", redis.Nil
}

func (stubCache) Del(ctx context.Context, key string) error {
	return nil
}

type stubOracle struct {
	result *classifier.Result
	err    error
}

func (s *stubOracle) Classify(ctx context.Context, userID string, region classifier.Region, imageBytes []byte) (*classifier.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type testEnv struct {
	router    *gin.Engine
	registry  *stubRegistry
	records   *stubRecords
	disk      *storage.Disk
	staticDir string
}

func newTestEnv(t *testing.T, oracle classifier.Client) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := &stubRegistry{}
	records := &stubRecords{}
	disk := storage.NewDisk(t.TempDir())
	staticDir := t.TempDir()
	uc := usecase.NewAnalysisUseCase(registry, records, stubCache{}, oracle, disk, zap.NewNop())

	router := gin.New()
	router.MaxMultipartMemory = MaxUploadSize
	RegisterRoutes(router, uc, disk, staticDir)

	return &testEnv{router: router, registry: registry, records: records, disk: disk, staticDir: staticDir}
}

func buildUploadBody(t *testing.T, userID string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if userID != "" {
		if err := writer.WriteField("user_id", userID); err != nil {
			t.Fatalf("failed to write user_id field: %v", err)
		}
	}
	for field, filename := range files {
		part, err := writer.CreateFormFile(field, filename)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := part.Write([]byte(field + "-bytes")); err != nil {
			t.Fatalf("failed to write payload: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func doUpload(t *testing.T, env *testEnv, userID string, files map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := buildUploadBody(t, userID, files)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)
	return resp
}

func TestUploadReturnsSuccess(t *testing.T) {
	oracle := &stubOracle{result: &classifier.Result{Severity: classifier.GradeLabel(1), Confidence: 0.87}}
	env := newTestEnv(t, oracle)

	resp := doUpload(t, env, "alice", map[string]string{
		"left":   "left.jpg",
		"middle": "middle.png",
		"right":  "right.jpeg",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, resp.Code, resp.Body.String())
	}

	var payload struct {
		Success bool   `json:"success"`
		UserID  string `json:"user_id"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !payload.Success || payload.UserID != "alice" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if len(env.records.appended) != 3 {
		t.Fatalf("expected 3 records, got %d", len(env.records.appended))
	}
}

func TestUploadInvalidMiddlePreservesLeftSideEffects(t *testing.T) {
	oracle := &stubOracle{result: &classifier.Result{Severity: classifier.GradeLabel(0), Confidence: 0.5}}
	env := newTestEnv(t, oracle)

	resp := doUpload(t, env, "dave", map[string]string{
		"left":   "left.jpg",
		"middle": "notes.txt",
		"right":  "right.jpg",
	})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.Code)
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Error != "Invalid or missing file for middle" {
		t.Fatalf("unexpected error message: %s", payload.Error)
	}

	// The left region was already saved and classified before middle failed
	// validation.
	if len(env.records.appended) != 1 || env.records.appended[0].FacePart != "left" {
		t.Fatalf("expected only the left record, got %d", len(env.records.appended))
	}
	if _, err := os.Stat(env.disk.ImagePath("dave", "dave_left.jpg")); err != nil {
		t.Fatalf("expected left image on disk: %v", err)
	}
}

func TestUploadWithoutFilesIsBadRequest(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := doUpload(t, env, "alice", nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Invalid or missing file for left") {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestUploadWithoutOracleStillSucceeds(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := doUpload(t, env, "bob", map[string]string{
		"left":   "left.jpg",
		"middle": "middle.jpg",
		"right":  "right.jpg",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}
	for _, record := range env.records.appended {
		if record.Severity != classifier.SeverityModelNotLoaded {
			t.Fatalf("unexpected severity: %s", record.Severity)
		}
	}
}

func TestResultRequiresUserID(t *testing.T) {
	env := newTestEnv(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/result", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Missing user_id") {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestResultEmptyHistoryIsEmptyArray(t *testing.T) {
	env := newTestEnv(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/result?user_id=nobody", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"results":[]`) {
		t.Fatalf("expected empty results array, got %s", resp.Body.String())
	}
}

func TestResultReturnsHistoryNewestFirst(t *testing.T) {
	env := newTestEnv(t, nil)
	now := time.Now().UTC().Truncate(time.Second)
	env.records.listed = []repository.AnalysisRecord{
		{ID: 4, UserID: "alice", FacePart: "left", UploadTime: now},
		{ID: 1, UserID: "alice", FacePart: "left", UploadTime: now.Add(-time.Hour)},
	}

	req := httptest.NewRequest(http.MethodGet, "/result?user_id=alice", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}

	var payload struct {
		Results []repository.AnalysisRecord `json:"results"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Results) != 2 || payload.Results[0].ID != 4 {
		t.Fatalf("unexpected results: %+v", payload.Results)
	}
}

func TestCheckUserID(t *testing.T) {
	env := newTestEnv(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/check-user-id", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/check-user-id?user_id=alice", nil)
	resp = httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), `"exists":false`) {
		t.Fatalf("expected exists false, got %d %s", resp.Code, resp.Body.String())
	}

	env.registry.exists = true
	req = httptest.NewRequest(http.MethodGet, "/check-user-id?user_id=alice", nil)
	resp = httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), `"exists":true`) {
		t.Fatalf("expected exists true, got %d %s", resp.Code, resp.Body.String())
	}
}

func TestCheckUserIDStoreErrorIsServerError(t *testing.T) {
	env := newTestEnv(t, nil)
	env.registry.existsErr = errors.New("connection refused")

	req := httptest.NewRequest(http.MethodGet, "/check-user-id?user_id=alice", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Server error") {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestSubmitReturnsFixedAdvice(t *testing.T) {
	env := newTestEnv(t, nil)

	form := strings.NewReader("severity=Grade II")
	req := httptest.NewRequest(http.MethodPost, "/submit", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}

	var payload map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload["severity"] != "Grade II" {
		t.Fatalf("unexpected severity echo: %s", payload["severity"])
	}
	if payload["skincare_advice"] != skincareAdvice ||
		payload["diet_advice"] != dietAdvice ||
		payload["lifestyle_advice"] != lifestyleAdvice {
		t.Fatalf("unexpected advice payload: %+v", payload)
	}
}

func TestServeUploadedImage(t *testing.T) {
	env := newTestEnv(t, nil)

	if _, err := env.disk.SaveImage("alice", "alice_left.jpg", []byte("image-bytes")); err != nil {
		t.Fatalf("failed to seed image: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/uploads/alice/alice_left.jpg", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}
	if resp.Body.String() != "image-bytes" {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/uploads/alice/missing.jpg", nil)
	resp = httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.Code)
	}
}

func TestStatsRequiresUserID(t *testing.T) {
	env := newTestEnv(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.Code)
	}
}

func TestSPARoutesServeIndex(t *testing.T) {
	env := newTestEnv(t, nil)

	index := filepath.Join(env.staticDir, "index.html")
	if err := os.WriteFile(index, []byte("<html>app</html>"), 0o644); err != nil {
		t.Fatalf("failed to seed index: %v", err)
	}

	for _, route := range []string{"/", "/Chatbot", "/Inform", "/AnalysisResult"} {
		req := httptest.NewRequest(http.MethodGet, route, nil)
		resp := httptest.NewRecorder()
		env.router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("route %s: expected status %d, got %d", route, http.StatusOK, resp.Code)
		}
		if !strings.Contains(resp.Body.String(), "app") {
			t.Fatalf("route %s: unexpected body %s", route, resp.Body.String())
		}
	}
}
