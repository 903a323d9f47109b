package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus represents the status of a delivery assignment
type DeliveryStatus string

const (
	DeliveryStatusAssigned  DeliveryStatus = "assigned"
	DeliveryStatusPickedUp  DeliveryStatus = "picked_up"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
)

// Terminal reports whether no further transition is permitted from the status
func (s DeliveryStatus) Terminal() bool {
	return s == DeliveryStatusDelivered
}

// Next returns the immediate successor in the fixed status ordering.
// The second return value is false for terminal or unknown statuses.
func (s DeliveryStatus) Next() (DeliveryStatus, bool) {
	switch s {
	case DeliveryStatusAssigned:
		return DeliveryStatusPickedUp, true
	case DeliveryStatusPickedUp:
		return DeliveryStatusDelivered, true
	}
	return "", false
}

// DeliveryRecord represents one driver's assignment to one order
type DeliveryRecord struct {
	ID               uuid.UUID      `json:"id"`
	OrderID          string         `json:"order_id"`
	DeliveryPersonID string         `json:"delivery_person_id"`
	Status           DeliveryStatus `json:"status"`
	AssignedAt       time.Time      `json:"assigned_at"`
	PickedUpAt       *time.Time     `json:"picked_up_at,omitempty"`
	DeliveredAt      *time.Time     `json:"delivered_at,omitempty"`
	Notes            string         `json:"notes,omitempty"`
}

// DeliveryRecordDTO flattens nullable timestamps for database scans
type DeliveryRecordDTO struct {
	ID               uuid.UUID      `db:"id"`
	OrderID          string         `db:"order_id"`
	DeliveryPersonID string         `db:"delivery_person_id"`
	Status           DeliveryStatus `db:"status"`
	AssignedAt       time.Time      `db:"assigned_at"`
	PickedUpAt       sql.NullTime   `db:"picked_up_at"`
	DeliveredAt      sql.NullTime   `db:"delivered_at"`
	Notes            string         `db:"notes"`
}

// ToRecord converts a DTO to a DeliveryRecord
func (dto *DeliveryRecordDTO) ToRecord() *DeliveryRecord {
	rec := &DeliveryRecord{
		ID:               dto.ID,
		OrderID:          dto.OrderID,
		DeliveryPersonID: dto.DeliveryPersonID,
		Status:           dto.Status,
		AssignedAt:       dto.AssignedAt,
		Notes:            dto.Notes,
	}
	if dto.PickedUpAt.Valid {
		t := dto.PickedUpAt.Time
		rec.PickedUpAt = &t
	}
	if dto.DeliveredAt.Valid {
		t := dto.DeliveredAt.Time
		rec.DeliveredAt = &t
	}
	return rec
}

// DeliveryEvent is published on delivery lifecycle changes
type DeliveryEvent struct {
	DeliveryID       string         `json:"delivery_id"`
	OrderID          string         `json:"order_id"`
	DeliveryPersonID string         `json:"delivery_person_id"`
	Status           DeliveryStatus `json:"status"`
	OccurredAt       time.Time      `json:"occurred_at"`
}
