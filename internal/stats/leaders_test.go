package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateLeadersTouchdownDerivation(t *testing.T) {
	qbGroup, _ := GroupByName("QB")
	rbGroup, _ := GroupByName("RB")

	qbRecords := []PlayerGameRecord{
		rec("QB One", "KC", "BAL", "QB", 1, StatPassingTDs, 2.0, StatRushingTDs, 1.0, StatReceivingTDs, 1.0),
	}
	rbRecords := []PlayerGameRecord{
		rec("Back One", "SF", "SEA", "RB", 1, StatPassingTDs, 1.0, StatRushingTDs, 2.0, StatReceivingTDs, 1.0),
	}

	qbRows := AggregateLeaders(qbRecords, qbGroup)
	assert.Equal(t, 3.0, qbRows[0].TotalTouchdowns, "QB totals passing+rushing, never receiving")

	rbRows := AggregateLeaders(rbRecords, rbGroup)
	assert.Equal(t, 3.0, rbRows[0].TotalTouchdowns, "RB totals rushing+receiving, never passing")
}

func TestAggregateLeadersMissingColumnAsZero(t *testing.T) {
	group, _ := GroupByName("WR")
	records := []PlayerGameRecord{
		rec("Receiver A", "KC", "DEN", "WR", 1, StatReceivingYards, 80.0, StatReceivingTDs, 1.0),
		rec("Receiver A", "KC", "LAC", "WR", 2, StatReceivingYards, 60.0),
	}

	rows := AggregateLeaders(records, group)

	assert.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Games)
	assert.Equal(t, 140.0, rows[0].Totals[StatReceivingYards])
	assert.Equal(t, 1.0, rows[0].Totals[StatReceivingTDs], "week 2's missing TD column counts as 0")
}

func TestAggregateLeadersMostRecentTeam(t *testing.T) {
	group, _ := GroupByName("WR")

	tests := []struct {
		name     string
		records  []PlayerGameRecord
		expected string
	}{
		{
			name: "highest week wins regardless of input order",
			records: []PlayerGameRecord{
				rec("Receiver A", "NYJ", "MIA", "WR", 9, StatReceivingYards, 50.0),
				rec("Receiver A", "DAL", "PHI", "WR", 3, StatReceivingYards, 70.0),
			},
			expected: "NYJ",
		},
		{
			name: "same week resolved by later input row",
			records: []PlayerGameRecord{
				rec("Receiver A", "DAL", "PHI", "WR", 5, StatReceivingYards, 70.0),
				rec("Receiver A", "NYJ", "MIA", "WR", 5, StatReceivingYards, 50.0),
			},
			expected: "NYJ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := AggregateLeaders(tt.records, group)
			assert.Equal(t, tt.expected, rows[0].Team)
		})
	}
}

func TestAggregateLeadersEmptyTeamStillEmitted(t *testing.T) {
	group, _ := GroupByName("WR")
	records := []PlayerGameRecord{
		rec("Receiver A", "", "DEN", "WR", 1, StatReceivingYards, 80.0),
	}

	rows := AggregateLeaders(records, group)

	assert.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Team)
	assert.Equal(t, 80.0, rows[0].TotalYards)
}

func TestSortLeaders(t *testing.T) {
	rows := []LeaderRow{
		{PlayerName: "B Player", TotalTouchdowns: 5, TotalYards: 800, FantasyPoints: 120},
		{PlayerName: "A Player", TotalTouchdowns: 5, TotalYards: 900, FantasyPoints: 150},
		{PlayerName: "C Player", TotalTouchdowns: 9, TotalYards: 500, FantasyPoints: 100},
	}

	t.Run("touchdowns with name tie-break", func(t *testing.T) {
		sorted := SortLeaders(rows, SortByTouchdowns, 0)
		assert.Equal(t, "C Player", sorted[0].PlayerName)
		assert.Equal(t, "A Player", sorted[1].PlayerName)
		assert.Equal(t, "B Player", sorted[2].PlayerName)
	})

	t.Run("yards", func(t *testing.T) {
		sorted := SortLeaders(rows, SortByYards, 0)
		assert.Equal(t, "A Player", sorted[0].PlayerName)
	})

	t.Run("limit truncates", func(t *testing.T) {
		sorted := SortLeaders(rows, SortByFantasyPoints, 2)
		assert.Len(t, sorted, 2)
		assert.Equal(t, "A Player", sorted[0].PlayerName)
	})

	t.Run("input untouched", func(t *testing.T) {
		_ = SortLeaders(rows, SortByTouchdowns, 1)
		assert.Equal(t, "B Player", rows[0].PlayerName)
		assert.Len(t, rows, 3)
	})
}
