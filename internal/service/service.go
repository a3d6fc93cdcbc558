package service

import (
	"context"

	"github.com/nadavsagiv/beachrental2/internal/domain"
	"github.com/nadavsagiv/beachrental2/internal/repository"
)

// CreateRentalRequest is the validated input for opening a rental. Zero
// values for NumPeople, NumItems and Duration mean "use the default".
type CreateRentalRequest struct {
	Type          domain.RentalType    `json:"type"`
	CustomerName  string               `json:"customerName"`
	NumPeople     int32                `json:"numPeople"`
	NumItems      int32                `json:"numItems"`
	Duration      int32                `json:"duration"`
	Notes         string               `json:"notes"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
}

// UpdateRentalRequest is a partial edit of an active rental. Nil fields are
// left unchanged.
type UpdateRentalRequest struct {
	CustomerName  *string               `json:"customerName"`
	Notes         *string               `json:"notes"`
	Discount      *int32                `json:"discount"`
	PaymentMethod *domain.PaymentMethod `json:"paymentMethod"`
	ExtraTime     *int32                `json:"extraTime"`
}

type RentalService interface {
	CreateRental(ctx context.Context, req CreateRentalRequest) (*domain.Rental, error)
	UpdateRental(ctx context.Context, id int32, patch UpdateRentalRequest) (*domain.Rental, error)
	EndRental(ctx context.Context, id int32) (*domain.Rental, error)
	GetRental(ctx context.Context, id int32) (*domain.Rental, error)
	ListRentals(ctx context.Context, filter repository.RentalFilter) ([]domain.Rental, error)
}

// ResetResult is what a day reset hands back: the final snapshot and how
// many rentals were cleared.
type ResetResult struct {
	Summary        domain.DailySummary `json:"summary"`
	RentalsDeleted int32               `json:"rentalsDeleted"`
}

type SummaryService interface {
	GetDailySummary(ctx context.Context) (*domain.DailySummary, error)
	ResetDay(ctx context.Context) (*ResetResult, error)
}
