package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	t.Run("Mixed active and ended rentals", func(t *testing.T) {
		final := int32(80)
		rentals := []Rental{
			{Type: RentalTypeBed, BasePrice: 100, Discount: 20, FinalPrice: &final},
			{Type: RentalTypeSup, BasePrice: 120},
			{Type: RentalTypeSnorkel, BasePrice: 50, Discount: 5},
		}

		s := Summarize(rentals)
		assert.Equal(t, int32(250), s.TotalRevenue) // 80 final + 120 base + 50 base
		assert.Equal(t, int32(25), s.TotalDiscounts)
		assert.Equal(t, int32(3), s.TotalRentals)
		assert.Equal(t, int32(1), s.BedRentals)
		assert.Equal(t, int32(1), s.SupRentals)
		assert.Equal(t, int32(1), s.SnorkelRentals)
	})

	t.Run("Total equals sum of per-type counts", func(t *testing.T) {
		rentals := []Rental{
			{Type: RentalTypeBed}, {Type: RentalTypeBed},
			{Type: RentalTypeSup},
			{Type: RentalTypeSnorkel}, {Type: RentalTypeSnorkel}, {Type: RentalTypeSnorkel},
		}

		s := Summarize(rentals)
		assert.Equal(t, s.TotalRentals, s.BedRentals+s.SupRentals+s.SnorkelRentals)
	})

	t.Run("Order independent", func(t *testing.T) {
		a := []Rental{{Type: RentalTypeBed, BasePrice: 100}, {Type: RentalTypeSup, BasePrice: 60, Discount: 10}}
		b := []Rental{a[1], a[0]}
		assert.Equal(t, Summarize(a), Summarize(b))
	})

	t.Run("Empty set", func(t *testing.T) {
		assert.Equal(t, DailySummary{}, Summarize(nil))
	})
}
