package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// RefresherService keeps the current season's stat and schedule data warm on
// a fixed interval.
type RefresherService struct {
	store           *RecordStore
	logger          *logrus.Logger
	cron            *cron.Cron
	mu              sync.Mutex
	isRunning       bool
	season          int
	refreshInterval time.Duration
	skipInitial     bool
}

func NewRefresherService(store *RecordStore, logger *logrus.Logger, season int, refreshInterval time.Duration, skipInitial bool) *RefresherService {
	return &RefresherService{
		store:           store,
		logger:          logger,
		cron:            cron.New(),
		season:          season,
		refreshInterval: refreshInterval,
		skipInitial:     skipInitial,
	}
}

// Start begins the scheduled data refresh.
func (s *RefresherService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("refresher is already running")
	}

	schedule := fmt.Sprintf("@every %s", s.refreshInterval.String())
	_, err := s.cron.AddFunc(schedule, s.refresh)
	if err != nil {
		return fmt.Errorf("failed to schedule refresher: %w", err)
	}

	// Nightly sweep so stale derived reports never outlive a data correction
	_, err = s.cron.AddFunc("0 3 * * *", s.sweepCache)
	if err != nil {
		return fmt.Errorf("failed to schedule cache sweep: %w", err)
	}

	s.cron.Start()
	s.isRunning = true

	if !s.skipInitial {
		go s.refresh()
	}

	s.logger.Info("Data refresher service started")
	return nil
}

// Stop halts the scheduled refresh and waits for in-flight jobs.
func (s *RefresherService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.logger.Info("Data refresher service stopped")
}

func (s *RefresherService) refresh() {
	s.logger.WithField("season", s.season).Info("Starting scheduled data refresh")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := s.store.RefreshSeason(ctx, s.season); err != nil {
		s.logger.Errorf("Failed to refresh season stats: %v", err)
	}

	if _, err := s.store.Schedule(ctx, s.season); err != nil {
		s.logger.Errorf("Failed to refresh schedule: %v", err)
	}
}

func (s *RefresherService) sweepCache() {
	if err := s.store.cache.Flush(); err != nil {
		s.logger.Errorf("Failed to sweep cache: %v", err)
		return
	}
	s.logger.Info("Cache swept")
}
