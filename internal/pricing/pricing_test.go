package pricing

import (
	"testing"

	"github.com/nadavsagiv/beachrental2/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBasePrice_Bed(t *testing.T) {
	s := DefaultSchedule()

	t.Run("Flat rate regardless of people", func(t *testing.T) {
		for _, people := range []int32{1, 2, 6} {
			price, err := s.BasePrice(domain.RentalTypeBed, DefaultBedDuration, 1, people)
			assert.NoError(t, err)
			assert.Equal(t, int32(100), price)
		}
	})
}

func TestBasePrice_Snorkel(t *testing.T) {
	s := DefaultSchedule()

	price, err := s.BasePrice(domain.RentalTypeSnorkel, DefaultSnorkelDuration, 1, 1)
	assert.NoError(t, err)
	assert.Equal(t, int32(50), price)
}

func TestBasePrice_Sup(t *testing.T) {
	s := DefaultSchedule()

	tests := []struct {
		name     string
		duration int32
		numItems int32
		expected int32
	}{
		{"Half hour single board", 30, 1, 60},
		{"Half hour two boards", 30, 2, 120},
		{"Half hour four boards", 30, 4, 240},
		{"Full hour single board", 60, 1, 100},
		{"Full hour three boards", 60, 3, 300},
		{"Full hour four boards", 60, 4, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := s.BasePrice(domain.RentalTypeSup, tt.duration, tt.numItems, 1)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, price)
		})
	}

	t.Run("Unsupported duration", func(t *testing.T) {
		_, err := s.BasePrice(domain.RentalTypeSup, 45, 1, 1)
		assert.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Too many boards", func(t *testing.T) {
		_, err := s.BasePrice(domain.RentalTypeSup, 30, 5, 1)
		assert.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Zero boards", func(t *testing.T) {
		_, err := s.BasePrice(domain.RentalTypeSup, 30, 0, 1)
		assert.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestBasePrice_UnknownType(t *testing.T) {
	s := DefaultSchedule()
	_, err := s.BasePrice(domain.RentalType("KAYAK"), 60, 1, 1)
	assert.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name     string
		base     int32
		discount int32
		expected int32
	}{
		{"No discount", 100, 0, 100},
		{"Partial discount", 100, 20, 80},
		{"Full discount", 100, 100, 0},
		{"Discount exceeds base clamps to zero", 100, 150, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FinalPrice(tt.base, tt.discount))
		})
	}
}

func TestDefaultDuration(t *testing.T) {
	assert.Equal(t, int32(60), DefaultDuration(domain.RentalTypeBed))
	assert.Equal(t, int32(60), DefaultDuration(domain.RentalTypeSup))
	assert.Equal(t, int32(120), DefaultDuration(domain.RentalTypeSnorkel))
}
