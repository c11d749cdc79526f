package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm/clause"

	"github.com/gridironhq/matchup-analyzer/internal/models"
	"github.com/gridironhq/matchup-analyzer/internal/stats"
	"github.com/gridironhq/matchup-analyzer/pkg/database"
)

const (
	statsCacheTTL    = 30 * time.Minute
	scheduleCacheTTL = 6 * time.Hour
)

// StatsProvider is the upstream source of season stat and schedule files.
type StatsProvider interface {
	FetchPlayerStats(ctx context.Context, season int) ([]stats.PlayerGameRecord, error)
	FetchSchedule(ctx context.Context, season int) ([]stats.ScheduledGame, error)
}

// RecordStore serves season data through a cache -> provider -> database
// chain. Fresh provider data is persisted so the database can answer when
// the upstream is down.
type RecordStore struct {
	db       *database.DB
	cache    *CacheService
	provider StatsProvider
	logger   *logrus.Logger
}

func NewRecordStore(db *database.DB, cache *CacheService, provider StatsProvider, logger *logrus.Logger) *RecordStore {
	return &RecordStore{
		db:       db,
		cache:    cache,
		provider: provider,
		logger:   logger,
	}
}

// SeasonRecords returns all game records for a season, filtered to the given
// game type ("" means all).
func (s *RecordStore) SeasonRecords(ctx context.Context, season int, gameType string) ([]stats.PlayerGameRecord, error) {
	cacheKey := SeasonStatsCacheKey(season, gameType)

	var cached []stats.PlayerGameRecord
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	records, err := s.RefreshSeason(ctx, season)
	if err != nil {
		s.logger.WithError(err).Warn("Provider fetch failed, falling back to database")
		records, err = s.loadRecordsFromDB(season)
		if err != nil {
			return nil, err
		}
	}

	filtered := records
	if gameType != "" {
		filtered = make([]stats.PlayerGameRecord, 0, len(records))
		for _, r := range records {
			if r.GameType == gameType {
				filtered = append(filtered, r)
			}
		}
	}

	if err := s.cache.SetWithRetry(ctx, cacheKey, filtered, statsCacheTTL, 3); err != nil {
		s.logger.WithError(err).Warn("Failed to cache season records")
	}

	return filtered, nil
}

// Schedule returns the full season schedule.
func (s *RecordStore) Schedule(ctx context.Context, season int) ([]stats.ScheduledGame, error) {
	cacheKey := ScheduleCacheKey(season)

	var cached []stats.ScheduledGame
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	games, err := s.provider.FetchSchedule(ctx, season)
	if err != nil {
		s.logger.WithError(err).Warn("Schedule fetch failed, falling back to database")
		games, err = s.loadScheduleFromDB(season)
		if err != nil {
			return nil, err
		}
	} else {
		s.persistSchedule(season, games)
	}

	if err := s.cache.SetWithRetry(ctx, cacheKey, games, scheduleCacheTTL, 3); err != nil {
		s.logger.WithError(err).Warn("Failed to cache schedule")
	}

	return games, nil
}

// RefreshSeason pulls fresh stat data from the provider and persists it.
func (s *RecordStore) RefreshSeason(ctx context.Context, season int) ([]stats.PlayerGameRecord, error) {
	records, err := s.provider.FetchPlayerStats(ctx, season)
	if err != nil {
		return nil, err
	}

	s.persistRecords(season, records)

	// New data invalidates derived caches for the season.
	if err := s.cache.Delete(ctx, SeasonStatsCacheKey(season, ""), SeasonStatsCacheKey(season, stats.GameTypeRegular), SeasonStatsCacheKey(season, stats.GameTypePost)); err != nil {
		s.logger.WithError(err).Warn("Failed to invalidate season cache")
	}

	return records, nil
}

func (s *RecordStore) persistRecords(season int, records []stats.PlayerGameRecord) {
	if len(records) == 0 {
		return
	}

	rows := make([]models.PlayerGame, 0, len(records))
	for _, r := range records {
		rows = append(rows, models.NewPlayerGame(season, r))
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "season"}, {Name: "week"}, {Name: "game_type"},
			{Name: "player_name"}, {Name: "team"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"opponent_team", "position", "stats", "updated_at"}),
	}).CreateInBatches(rows, 500).Error
	if err != nil {
		s.logger.WithError(err).Error("Failed to persist player game records")
		return
	}

	s.logger.WithFields(logrus.Fields{
		"season": season,
		"rows":   len(rows),
	}).Info("Persisted player game records")
}

func (s *RecordStore) persistSchedule(season int, games []stats.ScheduledGame) {
	if len(games) == 0 {
		return
	}

	rows := make([]models.ScheduledGame, 0, len(games))
	for _, g := range games {
		rows = append(rows, models.NewScheduledGame(season, g))
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "season"}, {Name: "week"}, {Name: "game_type"},
			{Name: "home_team"}, {Name: "away_team"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"game_date", "updated_at"}),
	}).CreateInBatches(rows, 500).Error
	if err != nil {
		s.logger.WithError(err).Error("Failed to persist schedule")
		return
	}
}

func (s *RecordStore) loadRecordsFromDB(season int) ([]stats.PlayerGameRecord, error) {
	var rows []models.PlayerGame
	if err := s.db.Where("season = ?", season).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load records from database: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no records available for season %d", season)
	}

	records := make([]stats.PlayerGameRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].ToRecord())
	}
	return records, nil
}

func (s *RecordStore) loadScheduleFromDB(season int) ([]stats.ScheduledGame, error) {
	var rows []models.ScheduledGame
	if err := s.db.Where("season = ?", season).Order("week asc, home_team asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load schedule from database: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no schedule available for season %d", season)
	}

	games := make([]stats.ScheduledGame, 0, len(rows))
	for i := range rows {
		games = append(games, rows[i].ToStats())
	}
	return games, nil
}
