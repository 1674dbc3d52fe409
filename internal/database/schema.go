package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

// questions.category deliberately carries no foreign key; unknown
// category ids are stored as given.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id SERIAL PRIMARY KEY,
		type TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS questions (
		id SERIAL PRIMARY KEY,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		category INTEGER NOT NULL,
		difficulty INTEGER NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category);`,
}

// Migrate creates the tables if they do not exist yet
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// SeedCategories inserts the default categories into an empty table
func SeedCategories(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, name := range domain.DefaultCategories {
		if _, err := tx.Exec(ctx, `INSERT INTO categories (type) VALUES ($1)`, name); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
