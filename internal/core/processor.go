package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"skinvision-backend/internal/database"
	"skinvision-backend/internal/engine"
	"skinvision-backend/internal/messaging"
	"skinvision-backend/pkg/api"
)

// TaskProcessor consumes background tasks. Currently it precomputes the
// default recommendation set for each completed analysis so that
// GET /recommend/{analysis_id} is a plain read.
type TaskProcessor struct {
	db        *gorm.DB
	publisher messaging.Publisher
	reciever  messaging.Reciever
	engine    *engine.Engine
}

func NewTaskProcessor(db *gorm.DB, publisher messaging.Publisher, reciever messaging.Reciever, engine *engine.Engine) *TaskProcessor {
	return &TaskProcessor{
		db:        db,
		publisher: publisher,
		reciever:  reciever,
		engine:    engine,
	}
}

func (proc *TaskProcessor) Start() {
	slog.Info("starting task processor")

	for task := range proc.reciever.Tasks() {
		proc.ProcessTask(task)
	}
}

func (proc *TaskProcessor) Stop() {
	slog.Info("stopping task processor")

	proc.publisher.Close()
	proc.reciever.Close()
}

func (proc *TaskProcessor) ProcessTask(task messaging.Task) {
	ctx := context.Background()

	var err error
	switch task.Type() {

	case messaging.RecommendationQueue:
		var payload messaging.RecommendationTaskPayload
		if err = json.Unmarshal(task.Payload(), &payload); err != nil {
			slog.Error("error unmarshalling recommendation task", "error", err)
			if err := task.Reject(); err != nil { // Discard malformed message
				slog.Error("error rejecting message from queue", "error", err)
			}
			return
		}
		err = proc.processRecommendationTask(ctx, payload)

	default:
		slog.Error("received unknown task type", "queue", task.Type())
		if err := task.Reject(); err != nil { // reject unknown message type
			slog.Error("error rejecting message from queue", "error", err)
		}
		return
	}

	if err != nil {
		slog.Error("error processing task", "queue", task.Type(), "error", err)
		if err := task.Nack(); err != nil {
			slog.Error("error reporting processing failure on message from queue", "error", err)
		}
	} else {
		slog.Info("successfully processed task", "queue", task.Type())
		if err := task.Ack(); err != nil {
			slog.Error("error acknowledging message from queue", "error", err)
		}
	}
}

func (proc *TaskProcessor) processRecommendationTask(ctx context.Context, payload messaging.RecommendationTaskPayload) error {
	var analysis database.Analysis
	if err := proc.db.WithContext(ctx).First(&analysis, "id = ?", payload.AnalysisId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Warn("analysis for recommendation task no longer exists", "analysis_id", payload.AnalysisId)
			return nil
		}
		return fmt.Errorf("error loading analysis %s: %w", payload.AnalysisId, err)
	}

	if analysis.Status != database.AnalysisCompleted {
		slog.Warn("skipping recommendation precompute for incomplete analysis", "analysis_id", payload.AnalysisId, "status", analysis.Status)
		return nil
	}

	// Idempotent on redelivery.
	var existing int64
	if err := proc.db.WithContext(ctx).
		Model(&database.Recommendation{}).
		Where("analysis_id = ? AND routine_complexity = ? AND budget_preference = ?", payload.AnalysisId, api.ComplexityBeginner, "").
		Count(&existing).Error; err != nil {
		return fmt.Errorf("error checking existing recommendations for %s: %w", payload.AnalysisId, err)
	}
	if existing > 0 {
		return nil
	}

	var conditions []api.DetectedCondition
	if len(analysis.Conditions) > 0 {
		if err := json.Unmarshal(analysis.Conditions, &conditions); err != nil {
			return fmt.Errorf("error parsing conditions for analysis %s: %w", payload.AnalysisId, err)
		}
	}

	response := proc.engine.Generate(engine.Request{
		AnalysisId:        payload.AnalysisId,
		Conditions:        conditions,
		RoutineComplexity: api.ComplexityBeginner,
	})

	responseBytes, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("error serializing recommendations for analysis %s: %w", payload.AnalysisId, err)
	}

	record := database.Recommendation{
		Id:                response.RecommendationId,
		AnalysisId:        payload.AnalysisId,
		BudgetPreference:  "",
		RoutineComplexity: api.ComplexityBeginner,
		Personalized:      false,
		Payload:           responseBytes,
		CreationTime:      time.Now().UTC(),
	}
	if err := proc.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("error storing recommendations for analysis %s: %w", payload.AnalysisId, err)
	}

	slog.Info("precomputed recommendations", "analysis_id", payload.AnalysisId, "recommendation_id", record.Id)
	return nil
}
