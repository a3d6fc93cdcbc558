package service

import (
	"context"

	"github.com/nadavsagiv/beachrental2/internal/domain"
	"github.com/nadavsagiv/beachrental2/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*domain.Rental), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *MockRentalRepo) List(ctx context.Context, filter repository.RentalFilter) ([]domain.Rental, error) {
	args := m.Called(ctx, filter)
	if r := args.Get(0); r != nil {
		return r.([]domain.Rental), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRentalRepo) DeleteAll(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockRentalRepo) ResetDay(ctx context.Context) (*domain.DailySummary, int32, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.(*domain.DailySummary), args.Get(1).(int32), args.Error(2)
	}
	return nil, args.Get(1).(int32), args.Error(2)
}
