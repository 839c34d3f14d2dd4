package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes back title search in the library and the admin session list.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for book title full-text search. Titles live inside the
	// draft JSON document; 'simple' avoids language-specific stemming since
	// books are written in whatever language the intake form asks for.
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_novel_sessions_title_gin
		ON novel_sessions USING gin(to_tsvector('simple', COALESCE(draft->>'current_title', '')))`)
	if err != nil {
		return fmt.Errorf("failed to create title GIN index: %w", err)
	}

	// GIN index for chapter body search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_chapters_content_gin
		ON chapters USING gin(to_tsvector('simple', content))`)
	if err != nil {
		return fmt.Errorf("failed to create chapter content GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. These must match the constraints in
// 000001_init.up.sql.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one live (queued or running) generation task per session.
	// Enforced structurally so concurrent enqueue requests cannot race
	// past an application-level existence check.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS generation_tasks_one_live_per_session
		ON generation_tasks (session_id)
		WHERE status IN ('queued', 'running')`)
	if err != nil {
		return fmt.Errorf("failed to create live-task index: %w", err)
	}

	return nil
}
