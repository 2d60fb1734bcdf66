package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"firefly/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) ListAll(ctx context.Context) ([]models.Document, error) {
	var rows []docRow

	query := `SELECT id, doc FROM posts ORDER BY seq`

	err := r.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return documents(rows)
}

// ListByTag matches posts whose tags field equals the tag or, when tags
// is an array, contains it.
func (r *postRepository) ListByTag(ctx context.Context, tag string) ([]models.Document, error) {
	var rows []docRow

	query := `
		SELECT id, doc FROM posts
		WHERE doc->>'tags' = $1 OR doc->'tags' @> to_jsonb($1::text)
		ORDER BY seq
	`

	err := r.db.SelectContext(ctx, &rows, query, tag)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by tag: %w", err)
	}

	return documents(rows)
}

func (r *postRepository) ListByAuthor(ctx context.Context, email string) ([]models.Document, error) {
	var rows []docRow

	query := `SELECT id, doc FROM posts WHERE doc->>'authorEmail' = $1 ORDER BY seq`

	err := r.db.SelectContext(ctx, &rows, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by author: %w", err)
	}

	return documents(rows)
}

// ListPage returns one page in natural order: skip = page*size, limit = size.
func (r *postRepository) ListPage(ctx context.Context, page, size int) ([]models.Document, error) {
	var rows []docRow

	query := `SELECT id, doc FROM posts ORDER BY seq OFFSET $1 LIMIT $2`

	err := r.db.SelectContext(ctx, &rows, query, page*size, size)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts page: %w", err)
	}

	return documents(rows)
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (models.Document, error) {
	var row docRow

	query := `SELECT id, doc FROM posts WHERE id = $1`

	err := r.db.GetContext(ctx, &row, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return row.document()
}

func (r *postRepository) Create(ctx context.Context, doc models.Document) (*models.InsertResult, error) {
	raw, err := marshalDoc(doc)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO posts (id, doc) VALUES ($1, $2)`

	id := uuid.New().String()

	_, err = r.db.ExecContext(ctx, query, id, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return &models.InsertResult{InsertedID: &id}, nil
}

// UpdateVotes replaces the four vote fields wholesale. Upsert is
// enabled: a missing post id creates a new document holding only the
// vote fields.
func (r *postRepository) UpdateVotes(ctx context.Context, postID string, votes models.Document) (*models.UpdateResult, error) {
	patch, err := marshalPatch(votes)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO posts (id, doc) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET doc = posts.doc || EXCLUDED.doc
		RETURNING (xmax = 0) AS inserted
	`

	var inserted bool
	err = r.db.GetContext(ctx, &inserted, query, postID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update post votes: %w", err)
	}

	if inserted {
		return &models.UpdateResult{UpsertedID: &postID}, nil
	}
	return &models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *postRepository) Delete(ctx context.Context, postID string) (*models.DeleteResult, error) {
	query := `DELETE FROM posts WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check deleted rows: %w", err)
	}

	return &models.DeleteResult{DeletedCount: rowsAffected}, nil
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	query := `SELECT COUNT(*) FROM posts`

	err := r.db.GetContext(ctx, &count, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return count, nil
}

// EstimatedCount reads the planner's row estimate instead of scanning
// the table. The figure may lag behind concurrent writes. reltuples is
// -1 until the first VACUUM/ANALYZE, so that case falls back to an
// exact count.
func (r *postRepository) EstimatedCount(ctx context.Context) (int64, error) {
	var count int64

	query := `
		SELECT CASE WHEN reltuples < 0 THEN (SELECT COUNT(*) FROM posts)
		            ELSE reltuples::bigint END
		FROM pg_class WHERE relname = 'posts'
	`

	err := r.db.GetContext(ctx, &count, query)
	if err != nil {
		return 0, fmt.Errorf("failed to estimate posts count: %w", err)
	}

	return count, nil
}
