package betting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gridironhq/matchup-analyzer/internal/stats"
)

func TestAnalyzePropRecommendations(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		line     float64
		expected string
	}{
		{
			name:     "clears the line most weeks",
			values:   []float64{80, 90, 85, 95, 70, 88, 91, 60, 82, 79},
			line:     65.5,
			expected: LeanOver,
		},
		{
			name:     "rarely clears the line",
			values:   []float64{40, 35, 90, 30, 45, 20, 50, 38, 42, 33},
			line:     65.5,
			expected: LeanUnder,
		},
		{
			name:     "coin flip is a pass",
			values:   []float64{60, 70, 60, 70},
			line:     65.5,
			expected: LeanPass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, ok := AnalyzeProp(tt.values, tt.line)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, analysis.Recommendation)
			assert.InDelta(t, 100.0, analysis.OverProbability+analysis.UnderProbability, 0.001)
			assert.Equal(t, len(tt.values), analysis.GamesAnalyzed)
			assert.Equal(t, analysis.GamesAnalyzed, analysis.TimesOver+analysis.TimesUnder)
		})
	}
}

func TestAnalyzePropAverages(t *testing.T) {
	// seven games: recent form only looks at the last five
	values := []float64{10, 10, 50, 50, 50, 50, 50}

	analysis, ok := AnalyzeProp(values, 45.5)
	assert.True(t, ok)
	assert.InDelta(t, 38.57, analysis.SeasonAverage, 0.01)
	assert.InDelta(t, 50.0, analysis.RecentAverage, 0.001)
}

func TestAnalyzePropConsistencyScore(t *testing.T) {
	steady, ok := AnalyzeProp([]float64{50, 50, 50, 50}, 45.5)
	assert.True(t, ok)
	assert.Equal(t, 100.0, steady.ConsistencyScore)

	volatile, ok := AnalyzeProp([]float64{0, 100, 0, 100}, 45.5)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, volatile.ConsistencyScore, 0.0)
	assert.Less(t, volatile.ConsistencyScore, steady.ConsistencyScore)
}

func TestAnalyzePropNoHistory(t *testing.T) {
	_, ok := AnalyzeProp(nil, 45.5)
	assert.False(t, ok)
}

func TestStatHistory(t *testing.T) {
	records := []stats.PlayerGameRecord{
		{PlayerName: "Receiver A", Position: "WR", Week: 3, Stats: map[string]float64{"receiving_yards": 70}},
		{PlayerName: "Receiver A", Position: "WR", Week: 1, Stats: map[string]float64{"receiving_yards": 50}},
		{PlayerName: "Receiver B", Position: "WR", Week: 1, Stats: map[string]float64{"receiving_yards": 120}},
		{PlayerName: "Receiver A", Position: "WR", Week: 2, Stats: map[string]float64{"receptions": 4}},
	}

	values := StatHistory(records, "Receiver A", "receiving_yards")

	// chronological, other players and games without the column excluded
	assert.Equal(t, []float64{50, 70}, values)

	assert.Empty(t, StatHistory(records, "Receiver C", "receiving_yards"))
}

func TestMatchupAdvantage(t *testing.T) {
	// worst defense in a 32-team league with strong form
	strong := MatchupAdvantage(1, 32, 90)
	// top defense with weak form
	weak := MatchupAdvantage(32, 32, 20)

	assert.Greater(t, strong, weak)
	assert.InDelta(t, 94.125, strong, 0.001)
	assert.InDelta(t, 8.0, weak, 0.001)

	// zero team count falls back to the standard league size
	assert.Equal(t, MatchupAdvantage(1, 32, 90), MatchupAdvantage(1, 0, 90))
}
