package domain

import (
	"context"
	"time"
)

// Question event types
const (
	EventQuestionCreated = "question.created"
	EventQuestionDeleted = "question.deleted"
)

// QuestionEvent describes a change to the question bank
type QuestionEvent struct {
	Type       string    `json:"type"`
	QuestionID int       `json:"question_id"`
	Question   *Question `json:"question,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher fans question events out to listeners
type EventPublisher interface {
	Publish(ctx context.Context, event QuestionEvent) error
}
