package service

import (
	"context"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/validation"
)

// TriviaService implements the question bank and quiz operations
type TriviaService struct {
	categoryRepo domain.CategoryRepository
	questionRepo domain.QuestionRepository
	publisher    domain.EventPublisher

	// pick returns a random index in [0, n)
	pick func(n int) int
	now  func() time.Time
}

// NewTriviaService creates a new trivia service. A nil publisher disables
// question events.
func NewTriviaService(categoryRepo domain.CategoryRepository, questionRepo domain.QuestionRepository, publisher domain.EventPublisher) *TriviaService {
	return &TriviaService{
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
		publisher:    publisher,
		pick:         rand.Intn,
		now:          time.Now,
	}
}

// QuestionListing is one page of questions together with the category map
type QuestionListing struct {
	Questions      []domain.Question
	TotalQuestions int
	Categories     map[int]string
}

// CategoryQuestions is one page of a single category's questions
type CategoryQuestions struct {
	Questions       []domain.Question
	TotalQuestions  int
	CurrentCategory int
}

// CreateQuestionInput holds the fields of a new question
type CreateQuestionInput struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// AnswerCheck is the outcome of comparing a guess with a question's answer
type AnswerCheck struct {
	Correct bool
	Answer  string
}

// CategoryMap returns every category keyed by id with a lowercased type
func (s *TriviaService) CategoryMap(ctx context.Context) (map[int]string, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[int]string, len(categories))
	for _, category := range categories {
		result[category.ID] = strings.ToLower(category.Type)
	}
	return result, nil
}

// ListCategories returns the category map, or ErrNoCategories when the
// store holds none
func (s *TriviaService) ListCategories(ctx context.Context) (map[int]string, error) {
	categories, err := s.CategoryMap(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}
	return categories, nil
}

// ListQuestions returns a page of all questions
func (s *TriviaService) ListQuestions(ctx context.Context, page int) (*QuestionListing, error) {
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.listing(ctx, questions, page)
}

// SearchQuestions returns a page of the questions whose text contains term
func (s *TriviaService) SearchQuestions(ctx context.Context, term string, page int) (*QuestionListing, error) {
	questions, err := s.questionRepo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return s.listing(ctx, questions, page)
}

func (s *TriviaService) listing(ctx context.Context, questions []domain.Question, page int) (*QuestionListing, error) {
	current := Paginate(questions, page)
	if len(current) == 0 {
		return nil, ErrPageNotFound
	}

	categories, err := s.CategoryMap(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionListing{
		Questions:      current,
		TotalQuestions: len(questions),
		Categories:     categories,
	}, nil
}

// QuestionsByCategory returns a page of one category's questions. An empty
// page is not an error here.
func (s *TriviaService) QuestionsByCategory(ctx context.Context, categoryID int, page int) (*CategoryQuestions, error) {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	return &CategoryQuestions{
		Questions:       Paginate(questions, page),
		TotalQuestions:  len(questions),
		CurrentCategory: categoryID,
	}, nil
}

// CreateQuestion stores a new question. The category id is not checked.
func (s *TriviaService) CreateQuestion(ctx context.Context, input CreateQuestionInput) (*domain.Question, error) {
	question := &domain.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}

	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.QuestionEvent{
		Type:       domain.EventQuestionCreated,
		QuestionID: question.ID,
		Question:   question,
	})
	return question, nil
}

// DeleteQuestion removes a question, returning domain.ErrQuestionNotFound
// when it does not exist
func (s *TriviaService) DeleteQuestion(ctx context.Context, id int) error {
	if _, err := s.questionRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.questionRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, domain.QuestionEvent{
		Type:       domain.EventQuestionDeleted,
		QuestionID: id,
	})
	return nil
}

// PlayQuiz picks a random question that is not in previous, limited to
// categoryID unless it is zero. It returns nil when nothing is left.
func (s *TriviaService) PlayQuiz(ctx context.Context, previous []int, categoryID int) (*domain.Question, error) {
	candidates, err := s.questionRepo.ListQuizCandidates(ctx, previous, categoryID)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	question := candidates[s.pick(len(candidates))]
	return &question, nil
}

// CheckAnswer compares a guess with the stored answer of a question
func (s *TriviaService) CheckAnswer(ctx context.Context, questionID int, guess string) (*AnswerCheck, error) {
	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	return &AnswerCheck{
		Correct: strings.TrimSpace(guess) != "" && validation.IsSimilarAnswer(guess, question.Answer),
		Answer:  question.Answer,
	}, nil
}

func (s *TriviaService) publish(ctx context.Context, event domain.QuestionEvent) {
	if s.publisher == nil {
		return
	}
	event.OccurredAt = s.now().UTC()
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("failed to publish %s event for question %d: %v", event.Type, event.QuestionID, err)
	}
}
