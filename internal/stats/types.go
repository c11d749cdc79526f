package stats

import (
	"strings"
	"time"
)

// Game type codes as they appear in the schedule and stat feeds
const (
	GameTypeRegular = "REG"
	GameTypePost    = "POST"
)

// Measure column vocabulary. Feeds are not guaranteed to carry every column;
// aggregations must work against whatever subset is present.
const (
	StatPassingYards   = "passing_yards"
	StatPassingTDs     = "passing_tds"
	StatRushingYards   = "rushing_yards"
	StatRushingTDs     = "rushing_tds"
	StatReceivingYards = "receiving_yards"
	StatReceivingTDs   = "receiving_tds"
	StatReceptions     = "receptions"
	StatInterceptions  = "interceptions"
	StatFantasyPoints  = "fantasy_points_ppr"
)

// PlayerGameRecord is one player's stat line for one game. Identity fields are
// always present; the Stats map holds whichever measure columns the feed
// provided for that game.
type PlayerGameRecord struct {
	PlayerName   string             `json:"player_name"`
	Team         string             `json:"team"`
	OpponentTeam string             `json:"opponent_team"`
	Position     string             `json:"position"`
	Week         int                `json:"week"`
	GameType     string             `json:"game_type"`
	Stats        map[string]float64 `json:"stats"`
}

// Stat returns the value for a measure column and whether it was present.
func (r PlayerGameRecord) Stat(column string) (float64, bool) {
	v, ok := r.Stats[column]
	return v, ok
}

// ScheduledGame is one row of the season schedule.
type ScheduledGame struct {
	Week     int       `json:"week"`
	GameType string    `json:"game_type"`
	HomeTeam string    `json:"home_team"`
	AwayTeam string    `json:"away_team"`
	GameDate time.Time `json:"game_date"`
}

// PositionGroup maps a logical offensive role to the raw position codes that
// belong to it. The RB group, for example, includes fullbacks.
type PositionGroup struct {
	Name  string   `json:"name"`
	Codes []string `json:"codes"`
}

// PassingCentric reports whether the group's primary score type is the
// passing touchdown. Total-touchdown derivation differs for such groups.
func (g PositionGroup) PassingCentric() bool {
	for _, code := range g.Codes {
		if code == "QB" {
			return true
		}
	}
	return false
}

// DefaultPositionGroups is the standard offensive grouping, in display order.
var DefaultPositionGroups = []PositionGroup{
	{Name: "QB", Codes: []string{"QB"}},
	{Name: "RB", Codes: []string{"RB", "FB"}},
	{Name: "WR", Codes: []string{"WR"}},
	{Name: "TE", Codes: []string{"TE"}},
}

// GroupByName looks up one of the default position groups, ignoring case.
func GroupByName(name string) (PositionGroup, bool) {
	for _, g := range DefaultPositionGroups {
		if strings.EqualFold(g.Name, name) {
			return g, true
		}
	}
	return PositionGroup{}, false
}
