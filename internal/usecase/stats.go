package usecase

import (
	"context"

	"github.com/example/acne-analysis/internal/repository"
)

// StatsSummary represents aggregated insights over a user's analysis history.
type StatsSummary struct {
	UserID            string                     `json:"user_id"`
	TotalRecords      int64                      `json:"total_records"`
	AverageConfidence float64                    `json:"average_confidence"`
	BySeverity        []repository.SeverityCount `json:"by_severity"`
}

// Stats aggregates a user's persisted analysis records.
func (uc *AnalysisUseCase) Stats(ctx context.Context, userID string) (*StatsSummary, error) {
	aggregation, err := uc.records.Summarize(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &StatsSummary{
		UserID:            userID,
		TotalRecords:      aggregation.TotalRecords,
		AverageConfidence: aggregation.AverageConfidence,
		BySeverity:        aggregation.BySeverity,
	}, nil
}
