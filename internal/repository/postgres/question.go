package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

const questionColumns = `id, question, answer, category, difficulty`

// likeEscaper makes LIKE wildcards in a search term match literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// storedID reports whether id fits the int4 id and category columns. Larger
// values fail to encode, so they are treated as absent rows.
func storedID(id int) bool {
	return id >= math.MinInt32 && id <= math.MaxInt32
}

func storedIDs(ids []int) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if storedID(id) {
			out = append(out, id)
		}
	}
	return out
}

// QuestionRepository implements the domain.QuestionRepository interface
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{
		pool: pool,
	}
}

// List retrieves all questions ordered by id
func (r *QuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	return r.query(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		ORDER BY id
	`)
}

// Search retrieves questions whose text contains term, ignoring case
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]domain.Question, error) {
	return r.query(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		WHERE question ILIKE '%' || $1 || '%'
		ORDER BY id
	`, likeEscaper.Replace(term))
}

// ListByCategory retrieves the questions of one category
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	if !storedID(categoryID) {
		return []domain.Question{}, nil
	}
	return r.query(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		WHERE category = $1
		ORDER BY id
	`, categoryID)
}

// ListQuizCandidates retrieves the questions a quiz may still ask
func (r *QuestionRepository) ListQuizCandidates(ctx context.Context, exclude []int, categoryID int) ([]domain.Question, error) {
	if !storedID(categoryID) {
		return []domain.Question{}, nil
	}
	exclude = storedIDs(exclude)
	return r.query(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		WHERE NOT (id = ANY($1::int[]))
		  AND ($2::int = 0 OR category = $2::int)
		ORDER BY id
	`, exclude, categoryID)
}

// GetByID retrieves a question by its ID
func (r *QuestionRepository) GetByID(ctx context.Context, id int) (*domain.Question, error) {
	if !storedID(id) {
		return nil, domain.ErrQuestionNotFound
	}
	var question domain.Question
	err := r.pool.QueryRow(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		WHERE id = $1
	`, id).Scan(
		&question.ID,
		&question.Question,
		&question.Answer,
		&question.Category,
		&question.Difficulty,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return &question, nil
}

// Create creates a new question
func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	query := `
		INSERT INTO questions (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		question.Question,
		question.Answer,
		question.Category,
		question.Difficulty,
	).Scan(&question.ID)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// Delete deletes a question
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	if !storedID(id) {
		return domain.ErrQuestionNotFound
	}
	result, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

func (r *QuestionRepository) query(ctx context.Context, sql string, args ...any) ([]domain.Question, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	defer rows.Close()

	questions := []domain.Question{}
	for rows.Next() {
		var question domain.Question
		if err := rows.Scan(
			&question.ID,
			&question.Question,
			&question.Answer,
			&question.Category,
			&question.Difficulty,
		); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, question)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}

	return questions, nil
}
