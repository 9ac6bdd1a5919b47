package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// pendingLister is the part of AdminService the digest needs
type pendingLister interface {
	ListPendingVeterinarians(ctx context.Context) ([]*PendingVeterinarian, error)
}

// CronService runs scheduled background jobs
type CronService struct {
	cron     *cron.Cron
	admin    pendingLister
	schedule string
}

// NewCronService creates the scheduler. An empty schedule disables the digest job.
func NewCronService(admin pendingLister, schedule string) *CronService {
	return &CronService{
		cron:     cron.New(),
		admin:    admin,
		schedule: strings.TrimSpace(schedule),
	}
}

// Start registers the jobs and starts the scheduler
func (s *CronService) Start() error {
	if s.schedule == "" {
		log.Println("⚠️ Pending approval digest disabled")
		return nil
	}

	_, err := s.cron.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := s.RunPendingDigest(ctx); err != nil {
			log.Printf("❌ Pending approval digest failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("⏰ Cron started: pending approval digest [%s]", s.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running job to finish
func (s *CronService) Stop() {
	<-s.cron.Stop().Done()
	log.Println("⏰ Cron stopped")
}

// RunPendingDigest logs the veterinarians awaiting approval and returns how many there are
func (s *CronService) RunPendingDigest(ctx context.Context) (int, error) {
	pending, err := s.admin.ListPendingVeterinarians(ctx)
	if err != nil {
		return 0, err
	}

	if len(pending) == 0 {
		log.Println("📋 No veterinarians awaiting approval")
		return 0, nil
	}

	emails := make([]string, 0, len(pending))
	for _, p := range pending {
		emails = append(emails, p.Email)
	}
	log.Printf("📋 %d veterinarian(s) awaiting approval: %s", len(pending), strings.Join(emails, ", "))
	return len(pending), nil
}
