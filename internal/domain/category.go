package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrCategoryNotFound = errors.New("category not found")
)

// DefaultCategories are seeded into an empty store, in id order
var DefaultCategories = []string{
	"Science",
	"Art",
	"Geography",
	"History",
	"Entertainment",
	"Sports",
}

// Category represents a question category
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryRepository defines the interface for category-related operations
type CategoryRepository interface {
	// List retrieves all categories ordered by ascending id
	List(ctx context.Context) ([]Category, error)

	// GetByID retrieves a category by its ID
	GetByID(ctx context.Context, id int) (*Category, error)
}
