package providers

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/gridironhq/matchup-analyzer/internal/stats"
)

// NFLverseClient pulls season stat and schedule files from the nflverse
// data releases. The files are wide CSVs whose stat columns vary by season,
// so every numeric column is carried through dynamically.
type NFLverseClient struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	breaker     *gobreaker.CircuitBreaker
	logger      *logrus.Logger
}

func NewNFLverseClient(baseURL string, requestsPerSecond int, timeout time.Duration, breakerThreshold int, logger *logrus.Logger) *NFLverseClient {
	settings := gobreaker.Settings{
		Name:        "nflverse",
		MaxRequests: uint32(breakerThreshold),
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"component": "circuit_breaker",
				"service":   name,
				"from":      from.String(),
				"to":        to.String(),
			}).Info("Circuit breaker state changed")
		},
	}

	return &NFLverseClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		rateLimiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		breaker:     gobreaker.NewCircuitBreaker(settings),
		logger:      logger,
	}
}

// Columns that identify a stat row rather than carry a stat value.
var identityColumns = map[string]bool{
	"player_id":           true,
	"player_name":         true,
	"player_display_name": true,
	"position":            true,
	"position_group":      true,
	"headshot_url":        true,
	"recent_team":         true,
	"team":                true,
	"season":              true,
	"week":                true,
	"season_type":         true,
	"opponent_team":       true,
}

// FetchPlayerStats downloads the weekly player stat file for a season and
// converts each row into a game record. Non-numeric stat columns are skipped.
func (c *NFLverseClient) FetchPlayerStats(ctx context.Context, season int) ([]stats.PlayerGameRecord, error) {
	url := fmt.Sprintf("%s/player_stats/player_stats_%d.csv", c.baseURL, season)

	rows, header, err := c.fetchCSV(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch player stats: %w", err)
	}

	col := indexColumns(header)
	nameIdx := firstIndex(col, "player_display_name", "player_name")
	teamIdx := firstIndex(col, "recent_team", "team")
	posIdx := firstIndex(col, "position")
	weekIdx := firstIndex(col, "week")
	for _, required := range []int{nameIdx, teamIdx, posIdx, weekIdx} {
		if required < 0 {
			return nil, fmt.Errorf("player stats file missing required columns: %v", header)
		}
	}

	records := make([]stats.PlayerGameRecord, 0, len(rows))
	for _, row := range rows {
		week, err := strconv.Atoi(row[weekIdx])
		if err != nil {
			continue
		}

		rec := stats.PlayerGameRecord{
			PlayerName:   row[nameIdx],
			Team:         row[teamIdx],
			OpponentTeam: valueAt(row, col, "opponent_team"),
			Position:     row[posIdx],
			Week:         week,
			GameType:     valueAt(row, col, "season_type"),
			Stats:        make(map[string]float64),
		}
		if rec.GameType == "" {
			rec.GameType = stats.GameTypeRegular
		}

		for i, name := range header {
			if identityColumns[name] || i >= len(row) || row[i] == "" {
				continue
			}
			v, err := strconv.ParseFloat(row[i], 64)
			if err != nil {
				continue
			}
			rec.Stats[name] = v
		}

		records = append(records, rec)
	}

	c.logger.WithFields(logrus.Fields{
		"season":  season,
		"records": len(records),
	}).Info("Fetched player stats from nflverse")

	return records, nil
}

// FetchSchedule downloads the game schedule file for a season.
func (c *NFLverseClient) FetchSchedule(ctx context.Context, season int) ([]stats.ScheduledGame, error) {
	url := fmt.Sprintf("%s/schedules/games_%d.csv", c.baseURL, season)

	rows, header, err := c.fetchCSV(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}

	col := indexColumns(header)
	for _, name := range []string{"week", "game_type", "home_team", "away_team"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("schedule file missing required column %q", name)
		}
	}

	games := make([]stats.ScheduledGame, 0, len(rows))
	for _, row := range rows {
		week, err := strconv.Atoi(row[col["week"]])
		if err != nil {
			continue
		}

		game := stats.ScheduledGame{
			Week:     week,
			GameType: row[col["game_type"]],
			HomeTeam: row[col["home_team"]],
			AwayTeam: row[col["away_team"]],
		}
		if idx, ok := col["gameday"]; ok && idx < len(row) {
			if t, err := time.Parse("2006-01-02", row[idx]); err == nil {
				game.GameDate = t
			}
		}

		games = append(games, game)
	}

	c.logger.WithFields(logrus.Fields{
		"season": season,
		"games":  len(games),
	}).Info("Fetched schedule from nflverse")

	return games, nil
}

func (c *NFLverseClient) fetchCSV(ctx context.Context, url string) ([][]string, []string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
		}

		reader := csv.NewReader(resp.Body)
		reader.ReuseRecord = false
		reader.FieldsPerRecord = -1

		all, err := reader.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("failed to parse csv: %w", err)
		}
		return all, nil
	})
	if err != nil {
		return nil, nil, err
	}

	all := result.([][]string)
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("empty csv from %s", url)
	}

	return all[1:], all[0], nil
}

func indexColumns(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	return col
}

func firstIndex(col map[string]int, names ...string) int {
	for _, name := range names {
		if idx, ok := col[name]; ok {
			return idx
		}
	}
	return -1
}

func valueAt(row []string, col map[string]int, name string) string {
	if idx, ok := col[name]; ok && idx < len(row) {
		return row[idx]
	}
	return ""
}
