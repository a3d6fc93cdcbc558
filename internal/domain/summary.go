package domain

// DailySummary is a derived aggregate over the full rental set. It is never
// persisted; it is recomputed from the live records on every request.
type DailySummary struct {
	TotalRevenue   int32 `json:"totalRevenue"`
	TotalDiscounts int32 `json:"totalDiscounts"`
	TotalRentals   int32 `json:"totalRentals"`
	BedRentals     int32 `json:"bedRentals"`
	SupRentals     int32 `json:"supRentals"`
	SnorkelRentals int32 `json:"snorkelRentals"`
}

// Summarize reduces rentals (active and ended) into the day's totals.
// Revenue counts FinalPrice when the rental has ended and BasePrice while it
// is still running. The reduction is order-independent.
func Summarize(rentals []Rental) DailySummary {
	var s DailySummary
	for _, r := range rentals {
		amount := r.BasePrice
		if r.FinalPrice != nil {
			amount = *r.FinalPrice
		}
		s.TotalRevenue += amount
		s.TotalDiscounts += r.Discount
		s.TotalRentals++
		switch r.Type {
		case RentalTypeBed:
			s.BedRentals++
		case RentalTypeSup:
			s.SupRentals++
		case RentalTypeSnorkel:
			s.SnorkelRentals++
		}
	}
	return s
}
