package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/nadavsagiv/beachrental2/internal/domain"
	"github.com/nadavsagiv/beachrental2/internal/pricing"
	"github.com/nadavsagiv/beachrental2/internal/repository"
)

type rentalService struct {
	repo   repository.RentalRepository
	prices pricing.Schedule
	// mu serializes all rental writes. The same mutex is shared with the
	// summary service so a day reset cannot interleave with a write.
	mu  *sync.Mutex
	now func() time.Time
}

func NewRentalService(repo repository.RentalRepository, prices pricing.Schedule, mu *sync.Mutex) RentalService {
	return &rentalService{
		repo:   repo,
		prices: prices,
		mu:     mu,
		now:    time.Now,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, req CreateRentalRequest) (*domain.Rental, error) {
	if !req.Type.Valid() {
		return nil, domain.NewValidationError("type", "must be BED, SUP or SNORKEL")
	}
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return nil, domain.NewValidationError("customerName", "must not be empty")
	}

	numPeople := req.NumPeople
	if numPeople == 0 {
		numPeople = 1
	}
	if numPeople < 1 {
		return nil, domain.NewValidationError("numPeople", "must be positive")
	}
	numItems := req.NumItems
	if numItems == 0 {
		numItems = 1
	}
	if numItems < 1 {
		return nil, domain.NewValidationError("numItems", "must be positive")
	}

	// Only SUP rentals have a selectable slot; beds and snorkel sets run
	// the fixed default no matter what the client sent.
	duration := pricing.DefaultDuration(req.Type)
	if req.Type == domain.RentalTypeSup && req.Duration != 0 {
		duration = req.Duration
	}

	payment := req.PaymentMethod
	if payment == "" {
		payment = domain.PaymentMethodCash
	}
	if !payment.Valid() {
		return nil, domain.NewValidationError("paymentMethod", "must be CASH or CREDIT")
	}

	basePrice, err := s.prices.BasePrice(req.Type, duration, numItems, numPeople)
	if err != nil {
		return nil, err
	}

	rental := &domain.Rental{
		Type:          req.Type,
		StartTime:     s.now(),
		NumPeople:     numPeople,
		NumItems:      numItems,
		Duration:      duration,
		CustomerName:  name,
		Notes:         req.Notes,
		BasePrice:     basePrice,
		PaymentMethod: payment,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Create(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) UpdateRental(ctx context.Context, id int32, patch UpdateRentalRequest) (*domain.Rental, error) {
	if patch.CustomerName != nil && strings.TrimSpace(*patch.CustomerName) == "" {
		return nil, domain.NewValidationError("customerName", "must not be empty")
	}
	if patch.Discount != nil && *patch.Discount < 0 {
		return nil, domain.NewValidationError("discount", "must not be negative")
	}
	if patch.ExtraTime != nil && *patch.ExtraTime < 0 {
		return nil, domain.NewValidationError("extraTime", "must not be negative")
	}
	if patch.PaymentMethod != nil && !patch.PaymentMethod.Valid() {
		return nil, domain.NewValidationError("paymentMethod", "must be CASH or CREDIT")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rental, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !rental.Active() {
		return nil, &domain.InvalidStateError{Op: "update", RentalID: id}
	}

	if patch.CustomerName != nil {
		rental.CustomerName = strings.TrimSpace(*patch.CustomerName)
	}
	if patch.Notes != nil {
		rental.Notes = *patch.Notes
	}
	if patch.Discount != nil {
		rental.Discount = *patch.Discount
	}
	if patch.PaymentMethod != nil {
		rental.PaymentMethod = *patch.PaymentMethod
	}
	if patch.ExtraTime != nil {
		rental.ExtraTime = *patch.ExtraTime
	}

	if err := s.repo.Update(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) EndRental(ctx context.Context, id int32) (*domain.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rental, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !rental.Active() {
		return nil, &domain.InvalidStateError{Op: "end", RentalID: id}
	}

	// End time and final price are fixed together; the discount in effect
	// right now is the one that counts.
	endTime := s.now()
	finalPrice := pricing.FinalPrice(rental.BasePrice, rental.Discount)
	rental.EndTime = &endTime
	rental.FinalPrice = &finalPrice

	if err := s.repo.Update(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, id int32) (*domain.Rental, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *rentalService) ListRentals(ctx context.Context, filter repository.RentalFilter) ([]domain.Rental, error) {
	return s.repo.List(ctx, filter)
}
