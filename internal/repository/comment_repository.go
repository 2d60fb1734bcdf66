package repository

import (
	"context"
	"fmt"

	"firefly/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) ListAll(ctx context.Context) ([]models.Document, error) {
	var rows []docRow

	query := `SELECT id, doc FROM comments ORDER BY seq`

	err := r.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return documents(rows)
}

// ListByPost filters on the stored postId field. The id is not checked
// against the posts collection.
func (r *commentRepository) ListByPost(ctx context.Context, postID string) ([]models.Document, error) {
	var rows []docRow

	query := `SELECT id, doc FROM comments WHERE doc->>'postId' = $1 ORDER BY seq`

	err := r.db.SelectContext(ctx, &rows, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments by post: %w", err)
	}

	return documents(rows)
}

func (r *commentRepository) Create(ctx context.Context, doc models.Document) (*models.InsertResult, error) {
	raw, err := marshalDoc(doc)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO comments (id, doc) VALUES ($1, $2)`

	id := uuid.New().String()

	_, err = r.db.ExecContext(ctx, query, id, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return &models.InsertResult{InsertedID: &id}, nil
}

func (r *commentRepository) SetReport(ctx context.Context, commentID string, report interface{}) (*models.UpdateResult, error) {
	patch, err := marshalPatch(models.Document{"report": report})
	if err != nil {
		return nil, err
	}

	query := `UPDATE comments SET doc = doc || $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to set comment report: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check updated rows: %w", err)
	}

	return &models.UpdateResult{MatchedCount: rowsAffected, ModifiedCount: rowsAffected}, nil
}

func (r *commentRepository) Delete(ctx context.Context, commentID string) (*models.DeleteResult, error) {
	query := `DELETE FROM comments WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check deleted rows: %w", err)
	}

	return &models.DeleteResult{DeletedCount: rowsAffected}, nil
}

func (r *commentRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	query := `SELECT COUNT(*) FROM comments`

	err := r.db.GetContext(ctx, &count, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}

	return count, nil
}
