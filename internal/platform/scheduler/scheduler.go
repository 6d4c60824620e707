// Package scheduler runs the in-process daily dunning batch.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/heliowash/backoffice/internal/core/ports/services"
	"github.com/heliowash/backoffice/internal/middleware"
)

// DunningScheduler fires the dunning batch once a day for every active
// company. It runs in-process; restarting the service mid-day is harmless
// because the batch itself is idempotent.
type DunningScheduler struct {
	dunning   portssvc.DunningSvcFacade
	companies portssvc.CompanySvcFacade
	runHour   int
	logger    *slog.Logger
}

// NewDunningScheduler creates a scheduler firing daily at runHour local time.
func NewDunningScheduler(dunning portssvc.DunningSvcFacade, companies portssvc.CompanySvcFacade, runHour int, logger *slog.Logger) *DunningScheduler {
	return &DunningScheduler{
		dunning:   dunning,
		companies: companies,
		runHour:   runHour,
		logger:    logger.With(slog.String("component", "dunning_scheduler")),
	}
}

// Start launches the scheduling loop. It returns immediately; the loop stops
// when ctx is cancelled.
func (s *DunningScheduler) Start(ctx context.Context) {
	go s.loop(ctx)
}

func (s *DunningScheduler) loop(ctx context.Context) {
	for {
		next := s.nextRun(time.Now())
		s.logger.Info("Next dunning batch scheduled", slog.Time("at", next))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("Dunning scheduler stopped")
			return
		case <-timer.C:
			s.runAll(ctx)
		}
	}
}

// nextRun returns the next occurrence of the configured hour after now.
func (s *DunningScheduler) nextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.runHour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// runAll executes the batch for every active company. One company failing
// does not block the others.
func (s *DunningScheduler) runAll(ctx context.Context) {
	runCtx := middleware.WithLogger(ctx, s.logger)

	companies, err := s.companies.ListCompanies(runCtx)
	if err != nil {
		s.logger.Error("Failed to list companies for dunning batch", slog.String("error", err.Error()))
		return
	}

	for _, company := range companies {
		report, err := s.dunning.RunDailyDunning(runCtx, company.CompanyID, time.Now())
		if err != nil {
			s.logger.Error("Dunning batch failed",
				slog.String("company_id", company.CompanyID),
				slog.String("error", err.Error()))
			continue
		}
		s.logger.Info("Dunning batch done",
			slog.String("company_id", company.CompanyID),
			slog.Int("generated", report.Generated),
			slog.Int("sent", report.Sent),
			slog.Int("failed", report.Failed),
			slog.Int("awaiting_validation", report.AwaitingValidation))
	}
}
