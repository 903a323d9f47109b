package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mealbridge/mealbridge/internal/pkg/apperrors"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mealbridge/mealbridge/services/delivery"
)

type deliveryRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewDeliveryRepository creates a new delivery record repository
func NewDeliveryRepository(cfg *models.Config, db *sqlx.DB) delivery.DeliveryRepo {
	return &deliveryRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateAssignment inserts a delivery record unless the order already has a
// non-terminal one. The guard runs inside the INSERT statement so two
// concurrent assignments for the same order cannot both succeed.
func (r *deliveryRepo) CreateAssignment(ctx context.Context, record *models.DeliveryRecord) error {
	query := `
		INSERT INTO delivery_records (id, order_id, delivery_person_id, status, assigned_at, notes)
		SELECT $1, $2, $3, $4, $5, $6
		WHERE NOT EXISTS (
			SELECT 1 FROM delivery_records
			WHERE order_id = $2 AND status != $7
		)
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.OrderID,
		record.DeliveryPersonID,
		record.Status,
		record.AssignedAt,
		record.Notes,
		models.DeliveryStatusDelivered,
	)
	if err != nil {
		return fmt.Errorf("failed to create delivery record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("order %s: %w", record.OrderID, apperrors.ErrAlreadyAssigned)
	}

	return nil
}

// GetByID retrieves a delivery record by ID
func (r *deliveryRepo) GetByID(ctx context.Context, id string) (*models.DeliveryRecord, error) {
	query := `
		SELECT id, order_id, delivery_person_id, status, assigned_at, picked_up_at, delivered_at, notes
		FROM delivery_records
		WHERE id = $1
	`

	var dto models.DeliveryRecordDTO
	if err := r.db.GetContext(ctx, &dto, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("delivery %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get delivery record: %w", err)
	}

	return dto.ToRecord(), nil
}

// UpdateStatus moves a record from the expected current status to the next
// one, stamping picked_up_at or delivered_at as appropriate. The status check
// sits in the WHERE clause, so a concurrent transition loses cleanly instead
// of overwriting.
func (r *deliveryRepo) UpdateStatus(ctx context.Context, id string, current, next models.DeliveryStatus) (*models.DeliveryRecord, error) {
	var column string
	switch next {
	case models.DeliveryStatusPickedUp:
		column = "picked_up_at"
	case models.DeliveryStatusDelivered:
		column = "delivered_at"
	default:
		return nil, fmt.Errorf("status %s: %w", next, apperrors.ErrIllegalTransition)
	}

	query := fmt.Sprintf(`
		UPDATE delivery_records
		SET status = $1, %s = $2
		WHERE id = $3 AND status = $4
		RETURNING id, order_id, delivery_person_id, status, assigned_at, picked_up_at, delivered_at, notes
	`, column)

	var dto models.DeliveryRecordDTO
	err := r.db.GetContext(ctx, &dto, query, next, time.Now().UTC(), id, current)
	if err == nil {
		return dto.ToRecord(), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to update delivery status: %w", err)
	}

	// Disambiguate: missing record vs. record in an unexpected status.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("delivery %s is not in status %s: %w", id, current, apperrors.ErrIllegalTransition)
}

// ListByDriver retrieves all delivery records for a driver, newest first
func (r *deliveryRepo) ListByDriver(ctx context.Context, deliveryPersonID string) ([]*models.DeliveryRecord, error) {
	query := `
		SELECT id, order_id, delivery_person_id, status, assigned_at, picked_up_at, delivered_at, notes
		FROM delivery_records
		WHERE delivery_person_id = $1
		ORDER BY assigned_at DESC
	`

	return r.listRecords(ctx, query, deliveryPersonID)
}

// ListCompletedByDriver retrieves a driver's delivered records, newest first
func (r *deliveryRepo) ListCompletedByDriver(ctx context.Context, deliveryPersonID string) ([]*models.DeliveryRecord, error) {
	query := `
		SELECT id, order_id, delivery_person_id, status, assigned_at, picked_up_at, delivered_at, notes
		FROM delivery_records
		WHERE delivery_person_id = $1 AND status = $2
		ORDER BY delivered_at DESC
	`

	return r.listRecords(ctx, query, deliveryPersonID, models.DeliveryStatusDelivered)
}

func (r *deliveryRepo) listRecords(ctx context.Context, query string, args ...interface{}) ([]*models.DeliveryRecord, error) {
	var dtos []models.DeliveryRecordDTO
	if err := r.db.SelectContext(ctx, &dtos, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list delivery records: %w", err)
	}

	records := make([]*models.DeliveryRecord, 0, len(dtos))
	for i := range dtos {
		records = append(records, dtos[i].ToRecord())
	}
	return records, nil
}
