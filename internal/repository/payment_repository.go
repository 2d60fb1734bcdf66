package repository

import (
	"context"
	"fmt"

	"firefly/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type paymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create stores the payment record as submitted. Nothing ties it back
// to a real payment intent.
func (r *paymentRepository) Create(ctx context.Context, doc models.Document) (*models.InsertResult, error) {
	raw, err := marshalDoc(doc)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO payments (id, doc) VALUES ($1, $2)`

	id := uuid.New().String()

	_, err = r.db.ExecContext(ctx, query, id, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return &models.InsertResult{InsertedID: &id}, nil
}

// Revenue sums the price field over all payments, 0 when there are none.
func (r *paymentRepository) Revenue(ctx context.Context) (float64, error) {
	var revenue float64

	query := `SELECT COALESCE(SUM((doc->>'price')::numeric), 0) FROM payments`

	err := r.db.GetContext(ctx, &revenue, query)
	if err != nil {
		return 0, fmt.Errorf("failed to sum payments: %w", err)
	}

	return revenue, nil
}

func (r *paymentRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	query := `SELECT COUNT(*) FROM payments`

	err := r.db.GetContext(ctx, &count, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}

	return count, nil
}
