package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateDefenseSumsAndMeans(t *testing.T) {
	records := []PlayerGameRecord{
		rec("Receiver A", "KC", "DEN", "WR", 1, StatReceivingTDs, 2.0, StatReceivingYards, 110.0),
		rec("Receiver B", "LV", "DEN", "WR", 2, StatReceivingTDs, 1.0, StatReceivingYards, 90.0),
		rec("Receiver C", "KC", "LAC", "WR", 1, StatReceivingTDs, 0.0, StatReceivingYards, 40.0),
	}
	measures := []Measure{
		{Column: StatReceivingTDs, Agg: AggSum},
		{Column: StatReceivingYards, Agg: AggMean},
	}

	ranking := AggregateDefense(records, measures)

	assert.Equal(t, []string{"receiving_tds_sum", "receiving_yards_mean"}, ranking.Columns)
	assert.Len(t, ranking.Rows, 2)

	// rows come back team-alphabetical
	assert.Equal(t, "DEN", ranking.Rows[0].Team)
	assert.Equal(t, "LAC", ranking.Rows[1].Team)

	assert.Equal(t, 3.0, ranking.Rows[0].Values["receiving_tds_sum"])
	assert.Equal(t, 100.0, ranking.Rows[0].Values["receiving_yards_mean"])
	assert.Equal(t, 0.0, ranking.Rows[1].Values["receiving_tds_sum"])
}

func TestAggregateDefenseSumInvariant(t *testing.T) {
	records := []PlayerGameRecord{
		rec("A", "KC", "DEN", "WR", 1, StatReceivingYards, 50.0),
		rec("B", "KC", "DEN", "WR", 1, StatReceivingYards, 70.0),
		rec("C", "LV", "LAC", "WR", 1, StatReceivingYards, 30.0),
	}

	ranking := AggregateDefense(records, []Measure{{Column: StatReceivingYards, Agg: AggSum}})

	total := 0.0
	for _, row := range ranking.Rows {
		total += row.Values["receiving_yards_sum"]
	}
	assert.Equal(t, 150.0, total, "per-team sums must add up to the input total")
}

func TestAggregateDefenseMissingColumns(t *testing.T) {
	records := []PlayerGameRecord{
		rec("A", "KC", "DEN", "WR", 1, StatReceivingYards, 50.0),
		rec("B", "LV", "DEN", "WR", 2, StatReceivingYards, 80.0, StatReceivingTDs, 1.0),
	}

	t.Run("column absent everywhere is omitted", func(t *testing.T) {
		ranking := AggregateDefense(records, []Measure{
			{Column: StatReceivingYards, Agg: AggSum},
			{Column: StatReceptions, Agg: AggSum},
		})
		assert.True(t, ranking.HasColumn("receiving_yards_sum"))
		assert.False(t, ranking.HasColumn("receptions_sum"))
	})

	t.Run("no requested column exists", func(t *testing.T) {
		ranking := AggregateDefense(records, []Measure{{Column: StatReceptions, Agg: AggSum}})
		assert.True(t, ranking.Empty())
	})

	t.Run("partially missing value excluded from mean denominator", func(t *testing.T) {
		ranking := AggregateDefense(records, []Measure{{Column: StatReceivingTDs, Agg: AggMean}})
		assert.Len(t, ranking.Rows, 1)
		assert.Equal(t, 1.0, ranking.Rows[0].Values["receiving_tds_mean"])
	})

	t.Run("partially missing value counts as zero in sum", func(t *testing.T) {
		ranking := AggregateDefense(records, []Measure{{Column: StatReceivingTDs, Agg: AggSum}})
		assert.Equal(t, 1.0, ranking.Rows[0].Values["receiving_tds_sum"])
	})
}

func TestSortWorstOrdering(t *testing.T) {
	records := []PlayerGameRecord{
		rec("A", "X1", "TeamA", "WR", 1, StatReceivingTDs, 5.0),
		rec("B", "X2", "TeamB", "WR", 1, StatReceivingTDs, 9.0),
		rec("C", "X3", "TeamC", "WR", 1, StatReceivingTDs, 2.0),
	}

	ranking := AggregateDefense(records, []Measure{{Column: StatReceivingTDs, Agg: AggSum}})
	rows := ranking.SortWorst("receiving_tds_sum")

	teams := []string{rows[0].Team, rows[1].Team, rows[2].Team}
	assert.Equal(t, []string{"TeamB", "TeamA", "TeamC"}, teams)

	best := ranking.SortBest("receiving_tds_sum")
	assert.Equal(t, "TeamC", best[0].Team)

	// sorting must not disturb the canonical row order
	assert.Equal(t, "TeamA", ranking.Rows[0].Team)
}

func TestSortWorstTieBreak(t *testing.T) {
	records := []PlayerGameRecord{
		rec("A", "X1", "NYJ", "WR", 1, StatReceivingTDs, 3.0),
		rec("B", "X2", "ATL", "WR", 1, StatReceivingTDs, 3.0),
	}

	ranking := AggregateDefense(records, []Measure{{Column: StatReceivingTDs, Agg: AggSum}})
	rows := ranking.SortWorst("receiving_tds_sum")

	assert.Equal(t, "ATL", rows[0].Team)
	assert.Equal(t, "NYJ", rows[1].Team)
}

func TestWeakDefenseSet(t *testing.T) {
	records := []PlayerGameRecord{
		rec("A", "X1", "TeamA", "WR", 1, StatReceivingTDs, 5.0),
		rec("B", "X2", "TeamB", "WR", 1, StatReceivingTDs, 9.0),
		rec("C", "X3", "TeamC", "WR", 1, StatReceivingTDs, 2.0),
	}
	ranking := AggregateDefense(records, []Measure{{Column: StatReceivingTDs, Agg: AggSum}})

	set := ranking.WeakDefenseSet("receiving_tds_sum", 2)
	assert.Equal(t, []string{"TeamB", "TeamA"}, set.Teams)

	assert.Equal(t, 1, set.Rank("TeamB"))
	assert.Equal(t, 2, set.Rank("TeamA"))
	assert.Equal(t, 0, set.Rank("TeamC"), "absent team ranks 0")

	// n larger than the table is clamped
	big := ranking.WeakDefenseSet("receiving_tds_sum", 10)
	assert.Len(t, big.Teams, 3)
}
