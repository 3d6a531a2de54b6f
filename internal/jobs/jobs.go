package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// CartPurgeSchedule runs the stale cart purge every day at 03:15.
const CartPurgeSchedule = "15 3 * * *"

const purgeTimeout = 5 * time.Minute

// CartPurger removes cart rows untouched for longer than olderThan.
type CartPurger interface {
	PurgeStale(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Scheduler runs background maintenance jobs.
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler registers the cart purge job. A zero retention disables it.
func NewScheduler(purger CartPurger, retention time.Duration) (*Scheduler, error) {
	c := cron.New()
	if retention > 0 {
		if _, err := c.AddFunc(CartPurgeSchedule, func() {
			RunCartPurge(context.Background(), purger, retention)
		}); err != nil {
			return nil, err
		}
	}
	return &Scheduler{cron: c}, nil
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for a running job to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// Jobs reports how many jobs are registered.
func (s *Scheduler) Jobs() int {
	return len(s.cron.Entries())
}

// RunCartPurge deletes abandoned cart rows once and logs the outcome.
func RunCartPurge(ctx context.Context, purger CartPurger, retention time.Duration) {
	ctx, cancel := context.WithTimeout(ctx, purgeTimeout)
	defer cancel()

	log.Println("Running stale cart purge...")
	deleted, err := purger.PurgeStale(ctx, retention)
	if err != nil {
		log.Printf("stale cart purge: %v", err)
		return
	}
	log.Printf("stale cart purge removed %d rows", deleted)
}
