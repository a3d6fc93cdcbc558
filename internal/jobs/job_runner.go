package jobs

import (
	"github.com/nadavsagiv/beachrental2/internal/config"
	"github.com/nadavsagiv/beachrental2/internal/logger"
	"github.com/nadavsagiv/beachrental2/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	rentalSvc  service.RentalService
	summarySvc service.SummaryService
	config     *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(rentalSvc service.RentalService, summarySvc service.SummaryService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		rentalSvc:  rentalSvc,
		summarySvc: summarySvc,
		config:     cfg,
	}
}

// Config returns the loaded configuration for schedule lookups
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
