// Package pricing holds the stand's price schedule and the pure price
// computations: base price at rental creation, final price at rental end.
package pricing

import (
	"fmt"

	"github.com/nadavsagiv/beachrental2/internal/domain"
)

const (
	SupHalfHour = 30
	SupFullHour = 60

	MinSupItems = 1
	MaxSupItems = 4
)

// Default rental durations in minutes. Only SUP rentals let the customer
// pick; beds and snorkel sets always run the default.
const (
	DefaultBedDuration     = 60
	DefaultSupDuration     = 60
	DefaultSnorkelDuration = 120
)

// Schedule is the stand's price list. Amounts are whole shekels.
type Schedule struct {
	BedPrice         int32
	SnorkelPrice     int32
	SupHalfHourPrice int32
	SupFullHourPrice int32
}

// DefaultSchedule returns the prices observed at the stand.
func DefaultSchedule() Schedule {
	return Schedule{
		BedPrice:         100,
		SnorkelPrice:     50,
		SupHalfHourPrice: 60,
		SupFullHourPrice: 100,
	}
}

// DefaultDuration returns the rental slot in minutes for a type.
func DefaultDuration(t domain.RentalType) int32 {
	switch t {
	case domain.RentalTypeSnorkel:
		return DefaultSnorkelDuration
	case domain.RentalTypeSup:
		return DefaultSupDuration
	default:
		return DefaultBedDuration
	}
}

// BasePrice computes the price fixed at rental creation.
//
// Beds are a flat rate per rental, not per person. SUP boards charge a
// per-unit rate that depends on the chosen slot (30 or 60 minutes) times the
// number of boards. Snorkel sets are a flat rate for a fixed two-hour slot.
func (s Schedule) BasePrice(t domain.RentalType, duration, numItems, numPeople int32) (int32, error) {
	switch t {
	case domain.RentalTypeBed:
		return s.BedPrice, nil

	case domain.RentalTypeSnorkel:
		return s.SnorkelPrice, nil

	case domain.RentalTypeSup:
		if numItems < MinSupItems || numItems > MaxSupItems {
			return 0, domain.NewValidationError("numItems",
				fmt.Sprintf("must be between %d and %d", MinSupItems, MaxSupItems))
		}
		var unit int32
		switch duration {
		case SupHalfHour:
			unit = s.SupHalfHourPrice
		case SupFullHour:
			unit = s.SupFullHourPrice
		default:
			return 0, domain.NewValidationError("duration",
				fmt.Sprintf("must be %d or %d minutes", SupHalfHour, SupFullHour))
		}
		return unit * numItems, nil

	default:
		return 0, domain.NewValidationError("type", "must be BED, SUP or SNORKEL")
	}
}

// FinalPrice is the amount actually charged when a rental ends: base price
// minus the discount in effect at that moment, never below zero. A discount
// larger than the base price clamps to zero; that is contract, not a bug.
func FinalPrice(basePrice, discount int32) int32 {
	final := basePrice - discount
	if final < 0 {
		return 0
	}
	return final
}
