package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

func addQuestion(t *testing.T, repo *QuestionRepository, text string, category int) domain.Question {
	t.Helper()

	q := domain.Question{Question: text, Answer: "answer", Category: category, Difficulty: 1}
	if err := repo.Create(context.Background(), &q); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return q
}

func TestSeededStoreCategories(t *testing.T) {
	store := NewSeededStore()
	ctx := context.Background()

	categories, err := store.Categories().List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(categories) != len(domain.DefaultCategories) {
		t.Fatalf("len(categories) = %d, want %d", len(categories), len(domain.DefaultCategories))
	}
	for i, category := range categories {
		if category.ID != i+1 {
			t.Fatalf("categories[%d].ID = %d, want %d", i, category.ID, i+1)
		}
	}

	if _, err := store.Categories().GetByID(ctx, 99); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("GetByID(99) error = %v, want ErrCategoryNotFound", err)
	}
}

func TestQuestionRepositoryLifecycle(t *testing.T) {
	repo := NewStore().Questions()
	ctx := context.Background()

	first := addQuestion(t, repo, "What is the Heaviest organ?", 1)
	second := addQuestion(t, repo, "Who painted Guernica?", 2)
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("ids = (%d, %d), want (1, 2)", first.ID, second.ID)
	}

	found, err := repo.Search(ctx, "heaviest")
	if err != nil || len(found) != 1 || found[0].ID != first.ID {
		t.Fatalf("Search = (%v, %v), want question %d", found, err, first.ID)
	}

	byCategory, err := repo.ListByCategory(ctx, 2)
	if err != nil || len(byCategory) != 1 || byCategory[0].ID != second.ID {
		t.Fatalf("ListByCategory = (%v, %v), want question %d", byCategory, err, second.ID)
	}

	candidates, err := repo.ListQuizCandidates(ctx, []int{first.ID}, 0)
	if err != nil || len(candidates) != 1 || candidates[0].ID != second.ID {
		t.Fatalf("ListQuizCandidates = (%v, %v), want question %d", candidates, err, second.ID)
	}

	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := repo.Delete(ctx, first.ID); !errors.Is(err, domain.ErrQuestionNotFound) {
		t.Fatalf("second Delete error = %v, want ErrQuestionNotFound", err)
	}
	if _, err := repo.GetByID(ctx, first.ID); !errors.Is(err, domain.ErrQuestionNotFound) {
		t.Fatalf("GetByID after delete error = %v, want ErrQuestionNotFound", err)
	}

	third := addQuestion(t, repo, "Where is Lake Titicaca?", 3)
	if third.ID != 3 {
		t.Fatalf("ids must not be reused: got %d, want 3", third.ID)
	}
}
