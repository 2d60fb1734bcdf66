package repository

import (
	"context"
	"fmt"

	"firefly/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type tagRepository struct {
	db *sqlx.DB
}

func NewTagRepository(db *sqlx.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) List(ctx context.Context) ([]models.Document, error) {
	var rows []docRow

	query := `SELECT id, doc FROM tags ORDER BY seq`

	err := r.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	return documents(rows)
}

func (r *tagRepository) Create(ctx context.Context, doc models.Document) (*models.InsertResult, error) {
	raw, err := marshalDoc(doc)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO tags (id, doc) VALUES ($1, $2)`

	id := uuid.New().String()

	_, err = r.db.ExecContext(ctx, query, id, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return &models.InsertResult{InsertedID: &id}, nil
}
