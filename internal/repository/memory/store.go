// Package memory provides process-local repositories for development and
// tests. Data is lost when the process exits.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// Store holds categories and questions behind a single lock
type Store struct {
	mu         sync.RWMutex
	categories []domain.Category
	questions  []domain.Question
	nextID     int
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{nextID: 1}
}

// NewSeededStore creates a store holding the default categories
func NewSeededStore() *Store {
	s := NewStore()
	for _, name := range domain.DefaultCategories {
		s.AddCategory(name)
	}
	return s
}

// AddCategory appends a category and returns it
func (s *Store) AddCategory(name string) domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := domain.Category{ID: len(s.categories) + 1, Type: name}
	s.categories = append(s.categories, category)
	return category
}

// Categories returns the category repository view of the store
func (s *Store) Categories() *CategoryRepository {
	return &CategoryRepository{store: s}
}

// Questions returns the question repository view of the store
func (s *Store) Questions() *QuestionRepository {
	return &QuestionRepository{store: s}
}

// CategoryRepository implements domain.CategoryRepository
type CategoryRepository struct {
	store *Store
}

// List retrieves all categories ordered by id
func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return slices.Clone(r.store.categories), nil
}

// GetByID retrieves a category by its ID
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, category := range r.store.categories {
		if category.ID == id {
			found := category
			return &found, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

// QuestionRepository implements domain.QuestionRepository
type QuestionRepository struct {
	store *Store
}

// List retrieves all questions ordered by id
func (r *QuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	return r.filter(func(domain.Question) bool { return true }), nil
}

// Search retrieves questions whose text contains term, ignoring case
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]domain.Question, error) {
	term = strings.ToLower(term)
	return r.filter(func(q domain.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	}), nil
}

// ListByCategory retrieves the questions of one category
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	return r.filter(func(q domain.Question) bool { return q.Category == categoryID }), nil
}

// ListQuizCandidates retrieves the questions a quiz may still ask
func (r *QuestionRepository) ListQuizCandidates(ctx context.Context, exclude []int, categoryID int) ([]domain.Question, error) {
	return r.filter(func(q domain.Question) bool {
		if slices.Contains(exclude, q.ID) {
			return false
		}
		return categoryID == 0 || q.Category == categoryID
	}), nil
}

// GetByID retrieves a question by its ID
func (r *QuestionRepository) GetByID(ctx context.Context, id int) (*domain.Question, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, question := range r.store.questions {
		if question.ID == id {
			found := question
			return &found, nil
		}
	}
	return nil, domain.ErrQuestionNotFound
}

// Create creates a new question
func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	question.ID = r.store.nextID
	r.store.nextID++
	r.store.questions = append(r.store.questions, *question)
	return nil
}

// Delete deletes a question
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := slices.IndexFunc(r.store.questions, func(q domain.Question) bool { return q.ID == id })
	if i < 0 {
		return domain.ErrQuestionNotFound
	}
	r.store.questions = slices.Delete(r.store.questions, i, i+1)
	return nil
}

// ids are assigned in increasing order, so insertion order is id order
func (r *QuestionRepository) filter(keep func(domain.Question) bool) []domain.Question {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	questions := []domain.Question{}
	for _, question := range r.store.questions {
		if keep(question) {
			questions = append(questions, question)
		}
	}
	return questions
}
