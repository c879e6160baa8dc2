package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/pharmacy-api/internal/model"
	"github.com/jwalitptl/pharmacy-api/internal/repository"
)

type fulfillmentRepository struct {
	ext sqlx.ExtContext
}

func (r *fulfillmentRepository) Create(ctx context.Context, f *model.Fulfillment) error {
	query := `
		INSERT INTO prescription_fulfillments (prescription_id, pharmacist_id, fulfill_date, price)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.ext.ExecContext(ctx, query,
		f.PrescriptionID,
		f.PharmacistID,
		f.FulfillDate,
		f.Price,
	)
	if err != nil {
		return fmt.Errorf("failed to record fulfillment: %w", err)
	}
	return nil
}

func (r *fulfillmentRepository) TopPharmacist(ctx context.Context) (*model.PharmacistStats, error) {
	query := `
		SELECT pharmacist_id, COUNT(*) AS total_fulfillments, COALESCE(SUM(price), 0) AS total_revenue
		FROM prescription_fulfillments
		GROUP BY pharmacist_id
		ORDER BY total_fulfillments DESC, total_revenue DESC, pharmacist_id ASC
		LIMIT 1
	`
	var stats model.PharmacistStats
	if err := sqlx.GetContext(ctx, r.ext, &stats, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to aggregate fulfillments: %w", err)
	}
	return &stats, nil
}
