package domain

import "time"

type RentalType string

const (
	RentalTypeBed     RentalType = "BED"
	RentalTypeSup     RentalType = "SUP"
	RentalTypeSnorkel RentalType = "SNORKEL"
)

// Valid reports whether t is one of the three rental types the stand offers.
func (t RentalType) Valid() bool {
	switch t {
	case RentalTypeBed, RentalTypeSup, RentalTypeSnorkel:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodCredit PaymentMethod = "CREDIT"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCash || m == PaymentMethodCredit
}

type Rental struct {
	ID        int32      `json:"id"`
	Type      RentalType `json:"type"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	NumPeople int32      `json:"numPeople"`
	NumItems  int32      `json:"numItems"`
	// Duration is the rented time slot in minutes. User-selectable for SUP
	// (30 or 60), fixed per type otherwise.
	Duration     int32  `json:"duration"`
	CustomerName string `json:"customerName"`
	Notes        string `json:"notes,omitempty"`
	Discount     int32  `json:"discount"`
	// ExtraTime is courtesy minutes added to the countdown. It never
	// changes the price.
	ExtraTime     int32         `json:"extraTime"`
	BasePrice     int32         `json:"basePrice"`
	FinalPrice    *int32        `json:"finalPrice,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CreatedOn     time.Time     `json:"-"`
	UpdatedOn     time.Time     `json:"-"`
}

// Active reports whether the rental is still running. A rental is active
// exactly while it has no end time; FinalPrice is set at the same moment
// EndTime is.
func (r *Rental) Active() bool {
	return r.EndTime == nil
}
