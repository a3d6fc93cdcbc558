package repository

import (
	"context"

	"github.com/nadavsagiv/beachrental2/internal/domain"
)

// RentalFilter narrows a List call. Nil fields match everything.
type RentalFilter struct {
	Type   *domain.RentalType
	Active *bool
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	// List returns rentals in insertion order.
	List(ctx context.Context, filter RentalFilter) ([]domain.Rental, error)
	// DeleteAll removes every rental and returns the number deleted.
	DeleteAll(ctx context.Context) (int32, error)
	// ResetDay snapshots the daily summary and deletes all rentals in a
	// single transaction, so no write lands between snapshot and delete.
	ResetDay(ctx context.Context) (*domain.DailySummary, int32, error)
}
