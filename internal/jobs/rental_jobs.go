package jobs

import (
	"context"
	"time"

	"github.com/nadavsagiv/beachrental2/internal/countdown"
	"github.com/nadavsagiv/beachrental2/internal/logger"
	"github.com/nadavsagiv/beachrental2/internal/repository"
)

// ResetDay clears the rental store overnight after capturing the final
// daily summary. The manual reset endpoint stays available during the day;
// this job is the safety net for evenings nobody pressed the button.
func (jr *JobRunner) ResetDay() {
	jr.runWithRecovery("ResetDay", func() {
		ctx := context.Background()

		res, err := jr.summarySvc.ResetDay(ctx)
		if err != nil {
			logger.Error("Nightly day reset failed", "error", err)
			return
		}
		if res.RentalsDeleted == 0 {
			logger.Info("Nightly day reset: store already empty")
			return
		}
		logger.Info("Nightly day reset done",
			"rentals_deleted", res.RentalsDeleted,
			"total_revenue", res.Summary.TotalRevenue,
			"total_rentals", res.Summary.TotalRentals)
	})
}

// SweepExpiredRentals logs active rentals whose countdown has hit zero. The
// stand staff end rentals by hand; this only surfaces the ones they missed.
func (jr *JobRunner) SweepExpiredRentals() {
	jr.runWithRecovery("SweepExpiredRentals", func() {
		ctx := context.Background()
		now := time.Now()

		active := true
		rentals, err := jr.rentalSvc.ListRentals(ctx, repository.RentalFilter{Active: &active})
		if err != nil {
			logger.Error("Failed to list active rentals", "error", err)
			return
		}

		expired := 0
		for _, rt := range rentals {
			snap := countdown.At(rt.StartTime, rt.Duration, rt.ExtraTime, now)
			if snap.Expired {
				expired++
				logger.Warn("Rental past its slot",
					"rental_id", rt.ID,
					"type", rt.Type,
					"customer", rt.CustomerName,
					"started", rt.StartTime.Format(time.RFC3339))
			}
		}
		if expired > 0 {
			logger.Info("Expired rental sweep", "active", len(rentals), "expired", expired)
		}
	})
}
