package repository

import (
	"context"
	"fmt"

	"firefly/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type announcementRepository struct {
	db *sqlx.DB
}

func NewAnnouncementRepository(db *sqlx.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) List(ctx context.Context) ([]models.Document, error) {
	var rows []docRow

	query := `SELECT id, doc FROM announcements ORDER BY seq`

	err := r.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	return documents(rows)
}

func (r *announcementRepository) Create(ctx context.Context, doc models.Document) (*models.InsertResult, error) {
	raw, err := marshalDoc(doc)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO announcements (id, doc) VALUES ($1, $2)`

	id := uuid.New().String()

	_, err = r.db.ExecContext(ctx, query, id, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}

	return &models.InsertResult{InsertedID: &id}, nil
}
