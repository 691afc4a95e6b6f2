package scheduler

import (
	"context"
	"sync"
	"time"

	"thorn/config"
	"thorn/infras/otel"
	bookingService "thorn/internal/domains/booking/service"
	"thorn/shared/constant"

	"github.com/rs/zerolog/log"
)

// Scheduler runs the periodic booking jobs: auto-complete, reminders and
// follow-ups. Each job ticks on its own configured interval.
type Scheduler struct {
	cfg     *config.Config
	booking bookingService.Booking
	otel    otel.Otel

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(cfg *config.Config, booking bookingService.Booking, otel otel.Otel) *Scheduler {
	return &Scheduler{
		cfg:     cfg,
		booking: booking,
		otel:    otel,
	}
}

func (s *Scheduler) Start() {
	if !s.cfg.Scheduler.Enable {
		log.Info().Msg("scheduler disabled")

		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.spawn(ctx, "auto_complete", s.cfg.Scheduler.CompleteIntervalMinutes, s.booking.AutoCompletePast)
	s.spawn(ctx, "reminders", s.cfg.Scheduler.ReminderIntervalMinutes, s.booking.SendDueReminders)
	s.spawn(ctx, "followups", s.cfg.Scheduler.FollowupIntervalMinutes, s.booking.SendDueFollowups)

	log.Info().Msg("scheduler started")
}

func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}

	s.cancel()
	s.wg.Wait()

	log.Info().Msg("scheduler stopped")
}

func (s *Scheduler) spawn(ctx context.Context, name string, intervalMinutes int, job func(context.Context) (int, error)) {
	if intervalMinutes <= 0 {
		log.Warn().Str("job", name).Msg("job interval not set, skipping")

		return
	}

	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(time.Duration(intervalMinutes) * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.runJob(ctx, name, job)
			}
		}
	}()
}

func (s *Scheduler) runJob(ctx context.Context, name string, job func(context.Context) (int, error)) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+"."+name)
	defer scope.End()

	count, err := job(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("job", name).Msg("scheduled job failed")

		return
	}

	if count > 0 {
		log.Info().Str("job", name).Int("count", count).Msg("scheduled job processed bookings")
	}
}
