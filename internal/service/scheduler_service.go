package service

import (
	"context"
	"fmt"
	"time"

	"industrial-site-be/internal/pkg/logger"

	"github.com/go-co-op/gocron/v2"
)

type ISchedulerService interface {
	Start() error
	Stop() error
}

// schedulerService runs periodic maintenance jobs.
type schedulerService struct {
	scheduler     gocron.Scheduler
	careerService ICareerService
	interval      time.Duration
	logger        logger.ILogger
}

func NewSchedulerService(careerService ICareerService, interval time.Duration, log logger.ILogger) (ISchedulerService, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	return &schedulerService{
		scheduler:     s,
		careerService: careerService,
		interval:      interval,
		logger:        log,
	}, nil
}

func (s *schedulerService) Start() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.expireJobPostings),
		gocron.WithName("job-posting-expiry"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule job posting expiry: %w", err)
	}

	s.scheduler.Start()
	s.logger.Info("SCHEDULER", "Scheduler started", map[string]interface{}{
		"job_expiry_interval": s.interval.String(),
	})
	return nil
}

func (s *schedulerService) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *schedulerService) expireJobPostings() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := s.careerService.ExpirePostings(ctx, time.Now().UTC()); err != nil {
		s.logger.Error("SCHEDULER", "Job posting expiry failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
