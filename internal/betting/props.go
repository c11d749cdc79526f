package betting

import (
	"math"

	"github.com/gridironhq/matchup-analyzer/internal/stats"
)

// Prop lean thresholds: over in at least 55% of games leans OVER, at most
// 45% leans UNDER, anything between is a pass.
const (
	LeanOver  = "OVER"
	LeanUnder = "UNDER"
	LeanPass  = "PASS"

	overLeanThreshold  = 0.55
	underLeanThreshold = 0.45
	recentFormGames    = 5
)

// PropAnalysis summarizes how a player's per-game history stacks up against
// a prop line.
type PropAnalysis struct {
	PlayerName       string  `json:"player_name,omitempty"`
	Column           string  `json:"column,omitempty"`
	OverProbability  float64 `json:"over_probability"`
	UnderProbability float64 `json:"under_probability"`
	SeasonAverage    float64 `json:"season_average"`
	RecentAverage    float64 `json:"recent_average"`
	ConsistencyScore float64 `json:"consistency_score"`
	GamesAnalyzed    int     `json:"games_analyzed"`
	TimesOver        int     `json:"times_over"`
	TimesUnder       int     `json:"times_under"`
	Recommendation   string  `json:"recommendation"`
}

// AnalyzeProp evaluates a prop line against a player's per-game values for
// the stat being bet on, in chronological order. Returns false when there is
// no history to analyze.
func AnalyzeProp(values []float64, line float64) (PropAnalysis, bool) {
	if len(values) == 0 {
		return PropAnalysis{}, false
	}

	over := 0
	sum := 0.0
	for _, v := range values {
		if v > line {
			over++
		}
		sum += v
	}
	total := len(values)
	overProb := float64(over) / float64(total)
	avg := sum / float64(total)

	recent := values
	if len(recent) > recentFormGames {
		recent = recent[len(recent)-recentFormGames:]
	}
	recentSum := 0.0
	for _, v := range recent {
		recentSum += v
	}

	a := PropAnalysis{
		OverProbability:  overProb * 100,
		UnderProbability: (1 - overProb) * 100,
		SeasonAverage:    avg,
		RecentAverage:    recentSum / float64(len(recent)),
		GamesAnalyzed:    total,
		TimesOver:        over,
		TimesUnder:       total - over,
		Recommendation:   LeanPass,
	}

	if avg > 0 {
		score := 100 - (sampleStdDev(values)/avg)*100
		if score < 0 {
			score = 0
		}
		a.ConsistencyScore = score
	}

	if overProb > overLeanThreshold {
		a.Recommendation = LeanOver
	} else if overProb < underLeanThreshold {
		a.Recommendation = LeanUnder
	}
	return a, true
}

// StatHistory extracts a player's chronological per-game values for one stat
// column, skipping games where the column is absent.
func StatHistory(records []stats.PlayerGameRecord, playerName, column string) []float64 {
	type entry struct {
		week  int
		value float64
	}
	var entries []entry
	for _, r := range records {
		if r.PlayerName != playerName {
			continue
		}
		if v, ok := r.Stat(column); ok {
			entries = append(entries, entry{week: r.Week, value: v})
		}
	}
	// insertion order already follows the feed; order by week for safety
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].week < entries[j-1].week; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
	values := make([]float64, len(entries))
	for i, e := range entries {
		values[i] = e.value
	}
	return values
}

// MatchupAdvantage blends the opponent's defense rank against the position
// (1 = worst defense, teamCount = best) with a 0-100 recent-form trend into
// a 0-100 advantage score, weighted 60/40 toward the matchup.
func MatchupAdvantage(defenseRank, teamCount int, trend float64) float64 {
	if teamCount <= 0 {
		teamCount = 32
	}
	defenseFactor := float64(teamCount-defenseRank) / float64(teamCount) * 100
	return defenseFactor*0.6 + trend*0.4
}

func sampleStdDev(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	m := 0.0
	for _, v := range vals {
		m += v
	}
	m /= float64(len(vals))
	sum := 0.0
	for _, v := range vals {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(vals)-1))
}
