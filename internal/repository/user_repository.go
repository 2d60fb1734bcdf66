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

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List(ctx context.Context, name string) ([]models.Document, error) {
	var rows []docRow
	var err error

	if name != "" {
		query := `SELECT id, doc FROM users WHERE doc->>'name' = $1 ORDER BY seq`
		err = r.db.SelectContext(ctx, &rows, query, name)
	} else {
		query := `SELECT id, doc FROM users ORDER BY seq`
		err = r.db.SelectContext(ctx, &rows, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return documents(rows)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (models.Document, error) {
	var row docRow

	query := `SELECT id, doc FROM users WHERE doc->>'email' = $1`

	err := r.db.GetContext(ctx, &row, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return row.document()
}

// Create inserts the user unless a document with the same email already
// exists. The existence check and the insert are one atomic statement,
// backed by the unique index on email.
func (r *userRepository) Create(ctx context.Context, doc models.Document) (*models.InsertResult, error) {
	raw, err := marshalDoc(doc)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO users (id, doc) VALUES ($1, $2)
		ON CONFLICT ((doc->>'email')) DO NOTHING
		RETURNING id
	`

	id := uuid.New().String()

	var inserted string
	err = r.db.GetContext(ctx, &inserted, query, id, raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.InsertResult{Message: "User already exists", InsertedID: nil}, nil
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &models.InsertResult{InsertedID: &inserted}, nil
}

func (r *userRepository) SetAdminRole(ctx context.Context, userID string) (*models.UpdateResult, error) {
	patch, err := marshalPatch(models.Document{"role": "admin"})
	if err != nil {
		return nil, err
	}

	query := `UPDATE users SET doc = doc || $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, userID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to set admin role: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check updated rows: %w", err)
	}

	return &models.UpdateResult{MatchedCount: rowsAffected, ModifiedCount: rowsAffected}, nil
}

func (r *userRepository) SetBadge(ctx context.Context, email string) (*models.UpdateResult, error) {
	patch, err := marshalPatch(models.Document{"badge": "gold"})
	if err != nil {
		return nil, err
	}

	query := `UPDATE users SET doc = doc || $2 WHERE doc->>'email' = $1`

	result, err := r.db.ExecContext(ctx, query, email, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to set badge: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check updated rows: %w", err)
	}

	return &models.UpdateResult{MatchedCount: rowsAffected, ModifiedCount: rowsAffected}, nil
}

func (r *userRepository) Delete(ctx context.Context, userID string) (*models.DeleteResult, error) {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check deleted rows: %w", err)
	}

	return &models.DeleteResult{DeletedCount: rowsAffected}, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	query := `SELECT COUNT(*) FROM users`

	err := r.db.GetContext(ctx, &count, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}
