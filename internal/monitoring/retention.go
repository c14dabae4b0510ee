// Package monitoring hosts background maintenance loops.
package monitoring

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const sweepSchedule = "@daily"

// ClaimedItemPurger deletes claimed items created before the cutoff.
type ClaimedItemPurger interface {
	DeleteClaimedBefore(cutoff time.Time) (int64, error)
}

// RetentionSweeper periodically deletes claimed items older than the
// configured retention window.
type RetentionSweeper struct {
	lostSvc       ClaimedItemPurger
	foundSvc      ClaimedItemPurger
	retentionDays int
	schedule      cron.Schedule
	done          chan bool
}

// NewRetentionSweeper creates a new sweeper. retentionDays of 0 disables it.
func NewRetentionSweeper(lostSvc, foundSvc ClaimedItemPurger, retentionDays int) *RetentionSweeper {
	schedule, err := cron.ParseStandard(sweepSchedule)
	if err != nil {
		// sweepSchedule is a constant; this cannot fail at runtime.
		panic(err)
	}
	return &RetentionSweeper{
		lostSvc:       lostSvc,
		foundSvc:      foundSvc,
		retentionDays: retentionDays,
		schedule:      schedule,
		done:          make(chan bool),
	}
}

// Run starts the sweeper loop. It runs one sweep immediately, then follows
// the cron schedule until Stop is called.
func (s *RetentionSweeper) Run() {
	if s.retentionDays <= 0 {
		log.Info().Msg("Retention sweep disabled")
		return
	}
	log.Info().Int("retention_days", s.retentionDays).Msg("Starting retention sweeper")

	s.sweep()

	for {
		timer := time.NewTimer(time.Until(s.schedule.Next(time.Now())))
		select {
		case <-s.done:
			timer.Stop()
			log.Info().Msg("Stopping retention sweeper")
			return
		case <-timer.C:
			s.sweep()
		}
	}
}

// Stop halts the sweeper.
func (s *RetentionSweeper) Stop() {
	if s.retentionDays <= 0 {
		return
	}
	s.done <- true
}

func (s *RetentionSweeper) sweep() {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)

	lost, err := s.lostSvc.DeleteClaimedBefore(cutoff)
	if err != nil {
		log.Error().Err(err).Msg("Retention sweep of lost items failed")
	}
	found, err := s.foundSvc.DeleteClaimedBefore(cutoff)
	if err != nil {
		log.Error().Err(err).Msg("Retention sweep of found items failed")
	}
	if lost > 0 || found > 0 {
		log.Info().Int64("lost", lost).Int64("found", found).Msg("Swept claimed items past retention")
	}
}
