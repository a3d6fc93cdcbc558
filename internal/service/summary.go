package service

import (
	"context"
	"sync"

	"github.com/nadavsagiv/beachrental2/internal/domain"
	"github.com/nadavsagiv/beachrental2/internal/logger"
	"github.com/nadavsagiv/beachrental2/internal/repository"
)

type summaryService struct {
	repo repository.RentalRepository
	mu   *sync.Mutex
}

func NewSummaryService(repo repository.RentalRepository, mu *sync.Mutex) SummaryService {
	return &summaryService{repo: repo, mu: mu}
}

func (s *summaryService) GetDailySummary(ctx context.Context) (*domain.DailySummary, error) {
	rentals, err := s.repo.List(ctx, repository.RentalFilter{})
	if err != nil {
		return nil, err
	}
	summary := domain.Summarize(rentals)
	return &summary, nil
}

// ResetDay snapshots the day's totals and clears the store. Holding the
// shared write mutex keeps creates/updates/ends from landing between the
// snapshot and the delete; the repository runs both in one transaction on
// top of that, so a failure leaves the store untouched.
func (s *summaryService) ResetDay(ctx context.Context) (*ResetResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary, deleted, err := s.repo.ResetDay(ctx)
	if err != nil {
		return nil, err
	}

	logger.Info("Day reset",
		"rentals_deleted", deleted,
		"total_revenue", summary.TotalRevenue,
		"total_discounts", summary.TotalDiscounts)

	return &ResetResult{Summary: *summary, RentalsDeleted: deleted}, nil
}
