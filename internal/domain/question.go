package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
)

// QuestionRepository defines the interface for question-related operations
type QuestionRepository interface {
	// List retrieves all questions ordered by ascending id
	List(ctx context.Context) ([]Question, error)

	// Search retrieves questions whose text contains term, case-insensitively
	Search(ctx context.Context, term string) ([]Question, error)

	// ListByCategory retrieves the questions of a single category
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)

	// ListQuizCandidates retrieves questions not in exclude. A zero
	// categoryID means every category.
	ListQuizCandidates(ctx context.Context, exclude []int, categoryID int) ([]Question, error)

	// GetByID retrieves a question by its ID
	GetByID(ctx context.Context, id int) (*Question, error)

	// Create creates a new question and assigns its ID
	Create(ctx context.Context, question *Question) error

	// Delete deletes a question
	Delete(ctx context.Context, id int) error
}

// Question represents a trivia question
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}
