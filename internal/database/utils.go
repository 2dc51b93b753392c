package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func UpdateAnalysisStatus(ctx context.Context, txn *gorm.DB, analysisId uuid.UUID, status string) error {
	updates := map[string]any{"status": status}
	if status == AnalysisCompleted || status == AnalysisFailed {
		updates["completion_time"] = time.Now().UTC()
	}

	if err := txn.WithContext(ctx).Model(&Analysis{Id: analysisId}).Updates(updates).Error; err != nil {
		slog.Error("error updating analysis status", "analysis_id", analysisId, "status", status, "error", err)
		return err
	}
	return nil
}
