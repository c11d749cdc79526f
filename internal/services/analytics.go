package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gridironhq/matchup-analyzer/internal/betting"
	"github.com/gridironhq/matchup-analyzer/internal/stats"
)

const derivedCacheTTL = 15 * time.Minute

// SortOrder selects which end of a defensive ranking to return.
type SortOrder string

const (
	OrderWorst SortOrder = "worst"
	OrderBest  SortOrder = "best"
)

// AnalyticsService runs the aggregation engine over stored season data and
// caches the derived results.
type AnalyticsService struct {
	store           *RecordStore
	cache           *CacheService
	logger          *logrus.Logger
	weakDefenseSize int
	leaderboardSize int
	minGames        int
}

func NewAnalyticsService(store *RecordStore, cache *CacheService, logger *logrus.Logger, weakDefenseSize, leaderboardSize, minGames int) *AnalyticsService {
	if weakDefenseSize <= 0 {
		weakDefenseSize = stats.DefaultWeakDefenseSize
	}
	if leaderboardSize <= 0 {
		leaderboardSize = stats.DefaultLeaderLimit
	}
	if minGames <= 0 {
		minGames = stats.DefaultMinGames
	}
	return &AnalyticsService{
		store:           store,
		cache:           cache,
		logger:          logger,
		weakDefenseSize: weakDefenseSize,
		leaderboardSize: leaderboardSize,
		minGames:        minGames,
	}
}

// DefenseReport is a ranked defensive table for one position group.
type DefenseReport struct {
	Group   string             `json:"group"`
	Primary string             `json:"primary_column"`
	Order   SortOrder          `json:"order"`
	Columns []string           `json:"columns"`
	Rows    []stats.DefenseRow `json:"rows"`
}

// DefenseRankings aggregates defensive performance against a position group,
// sorted by the group's primary touchdown column.
func (s *AnalyticsService) DefenseRankings(ctx context.Context, season int, groupName string, weeks *stats.WeekRange, order SortOrder) (*DefenseReport, error) {
	group, ok := stats.GroupByName(groupName)
	if !ok {
		return nil, fmt.Errorf("unknown position group %q", groupName)
	}

	cacheKey := DefenseRankingCacheKey(season, group.Name, windowKey(weeks), string(order))
	var cached DefenseReport
	if weeks == nil {
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	records, err := s.store.SeasonRecords(ctx, season, stats.GameTypeRegular)
	if err != nil {
		return nil, err
	}

	filtered := stats.FilterGroup(records, group, weeks)
	ranking := stats.AggregateDefense(filtered, stats.DefaultMeasures(group))
	primary := stats.PrimaryDefenseColumn(group, ranking)

	rows := ranking.SortWorst(primary)
	if order == OrderBest {
		rows = ranking.SortBest(primary)
	}

	report := &DefenseReport{
		Group:   group.Name,
		Primary: primary,
		Order:   order,
		Columns: ranking.Columns,
		Rows:    rows,
	}

	if weeks == nil {
		if err := s.cache.SetWithRetry(ctx, cacheKey, report, derivedCacheTTL, 3); err != nil {
			s.logger.WithError(err).Warn("Failed to cache defense report")
		}
	}

	return report, nil
}

// Leaders returns the top stat producers for a position group, optionally
// restricted to a week window.
func (s *AnalyticsService) Leaders(ctx context.Context, season int, groupName string, sortKey stats.LeaderSortKey, weeks *stats.WeekRange) ([]stats.LeaderRow, error) {
	group, ok := stats.GroupByName(groupName)
	if !ok {
		return nil, fmt.Errorf("unknown position group %q", groupName)
	}

	cacheKey := LeadersCacheKey(season, group.Name, string(sortKey))
	var cached []stats.LeaderRow
	if weeks == nil {
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	records, err := s.store.SeasonRecords(ctx, season, stats.GameTypeRegular)
	if err != nil {
		return nil, err
	}

	rows := stats.AggregateLeaders(stats.FilterGroup(records, group, weeks), group)
	top := stats.SortLeaders(rows, sortKey, s.leaderboardSize)

	if weeks == nil {
		if err := s.cache.SetWithRetry(ctx, cacheKey, top, derivedCacheTTL, 3); err != nil {
			s.logger.WithError(err).Warn("Failed to cache leaders")
		}
	}

	return top, nil
}

// Consistency rates players by week-to-week variance on one stat column.
// An empty column falls back to the group's usual one.
func (s *AnalyticsService) Consistency(ctx context.Context, season int, groupName, column string) ([]stats.ConsistencyProfile, error) {
	group, ok := stats.GroupByName(groupName)
	if !ok {
		return nil, fmt.Errorf("unknown position group %q", groupName)
	}

	records, err := s.store.SeasonRecords(ctx, season, stats.GameTypeRegular)
	if err != nil {
		return nil, err
	}

	filtered := stats.FilterGroup(records, group, nil)
	if column == "" {
		column = stats.PrimaryConsistencyColumn(group, filtered)
	}

	cacheKey := ConsistencyCacheKey(season, group.Name, column)
	var cached []stats.ConsistencyProfile
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	profiles := stats.AnalyzeConsistency(filtered, group.Codes, column, s.minGames)

	if err := s.cache.SetWithRetry(ctx, cacheKey, profiles, derivedCacheTTL, 3); err != nil {
		s.logger.WithError(err).Warn("Failed to cache consistency profiles")
	}

	return profiles, nil
}

// WeekMatchups flags offenses that face a bottom-tier defense in the given
// week, across all position groups.
func (s *AnalyticsService) WeekMatchups(ctx context.Context, season, week int) ([]stats.MatchupFlag, error) {
	cacheKey := MatchupsCacheKey(season, week)
	var cached []stats.MatchupFlag
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	records, err := s.store.SeasonRecords(ctx, season, stats.GameTypeRegular)
	if err != nil {
		return nil, err
	}

	schedule, err := s.store.Schedule(ctx, season)
	if err != nil {
		return nil, err
	}

	games := stats.GamesForWeek(schedule, week, stats.GameTypeRegular)
	if len(games) == 0 {
		return nil, fmt.Errorf("no scheduled games for week %d", week)
	}

	weakSets := make(map[string]stats.WeakDefenseSet, len(stats.DefaultPositionGroups))
	for _, group := range stats.DefaultPositionGroups {
		filtered := stats.FilterGroup(records, group, nil)
		ranking := stats.AggregateDefense(filtered, stats.DefaultMeasures(group))
		if ranking.Empty() {
			continue
		}
		primary := stats.PrimaryDefenseColumn(group, ranking)
		weakSets[group.Name] = ranking.WeakDefenseSet(primary, s.weakDefenseSize)
	}

	flags := stats.MatchFavorable(games, weakSets)

	if err := s.cache.SetWithRetry(ctx, cacheKey, flags, derivedCacheTTL, 3); err != nil {
		s.logger.WithError(err).Warn("Failed to cache matchup flags")
	}

	return flags, nil
}

// PlayerProp evaluates an over/under line against a player's season history.
func (s *AnalyticsService) PlayerProp(ctx context.Context, season int, playerName, column string, line float64) (*betting.PropAnalysis, error) {
	records, err := s.store.SeasonRecords(ctx, season, stats.GameTypeRegular)
	if err != nil {
		return nil, err
	}

	values := betting.StatHistory(records, playerName, column)
	analysis, ok := betting.AnalyzeProp(values, line)
	if !ok {
		return nil, fmt.Errorf("no %s history for player %q", column, playerName)
	}
	analysis.PlayerName = playerName
	analysis.Column = column

	return &analysis, nil
}

func windowKey(weeks *stats.WeekRange) string {
	if weeks == nil {
		return "season"
	}
	return fmt.Sprintf("w%d-%d", weeks.Min, weeks.Max)
}
