package messaging

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	RecommendationQueue = "recommendation_queue"
	RetryDelay          = 5 * time.Second
	MaxConnectRetry     = 5
)

type Task interface {
	Type() string

	Payload() []byte

	Ack() error

	Nack() error

	Reject() error
}

// RecommendationTaskPayload asks a worker to precompute the default
// recommendation set for a completed analysis.
type RecommendationTaskPayload struct {
	AnalysisId uuid.UUID
}

type Publisher interface {
	PublishRecommendationTask(ctx context.Context, payload RecommendationTaskPayload) error

	Close()
}

type Reciever interface {
	Tasks() <-chan Task

	Close()
}
