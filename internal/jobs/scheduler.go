package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/spacia-app/property-backend/internal/properties/service"
)

// Scheduler re-warms the active-listing cache overnight so the first
// morning reads don't all fan out to Postgres.
type Scheduler struct {
	c   *cron.Cron
	svc *service.Service
}

func NewScheduler(svc *service.Service) *Scheduler {
	return &Scheduler{
		c:   cron.New(cron.WithSeconds()),
		svc: svc,
	}
}

// Start registers the nightly job (12:00 AM) and launches the cron loop.
func (s *Scheduler) Start() {
	_, err := s.c.AddFunc("0 0 0 * * *", s.warmListings)
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (cache warm nightly at 12:00AM)")
	s.c.Start()
}

func (s *Scheduler) Stop() {
	s.c.Stop()
}

func (s *Scheduler) warmListings() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.svc.WarmActive(ctx)
	if err != nil {
		log.Printf("Nightly cache warm failed: %v", err)
		return
	}
	log.Printf("Nightly cache warm completed: %d active listings at %s", n, time.Now().Format(time.RFC1123))
}
