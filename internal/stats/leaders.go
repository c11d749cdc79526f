package stats

import (
	"sort"
)

// LeaderSortKey selects the ordering for a leader table.
type LeaderSortKey string

const (
	SortByTouchdowns    LeaderSortKey = "touchdowns"
	SortByYards         LeaderSortKey = "yards"
	SortByFantasyPoints LeaderSortKey = "fantasy_points"
)

// DefaultLeaderLimit is the standard leader table truncation.
const DefaultLeaderLimit = 15

// LeaderRow is one player's summed production within a position group.
type LeaderRow struct {
	PlayerName      string             `json:"player_name"`
	Team            string             `json:"team"`
	Games           int                `json:"games"`
	Totals          map[string]float64 `json:"totals"`
	TotalTouchdowns float64            `json:"total_touchdowns"`
	TotalYards      float64            `json:"total_yards"`
	FantasyPoints   float64            `json:"fantasy_points"`
}

type leaderAccumulator struct {
	row      *LeaderRow
	lastWeek int
	order    int
}

// AggregateLeaders groups records by player and sums every measure column
// present anywhere in the input, treating a missing value as 0 so one absent
// column never drops a player's contribution. Total touchdowns follow the
// group's primary score type: passing+rushing for a passing-centric group,
// rushing+receiving otherwise; total yards are derived the same way. The team
// shown is the one from the player's chronologically last record (highest
// week, later input row winning ties); a player with no team value anywhere
// is still emitted with an empty team.
func AggregateLeaders(records []PlayerGameRecord, group PositionGroup) []LeaderRow {
	columns := measureColumns(records)

	acc := make(map[string]*leaderAccumulator)
	for i, r := range records {
		a, ok := acc[r.PlayerName]
		if !ok {
			a = &leaderAccumulator{
				row: &LeaderRow{
					PlayerName: r.PlayerName,
					Totals:     make(map[string]float64, len(columns)),
				},
				lastWeek: -1,
				order:    -1,
			}
			acc[r.PlayerName] = a
		}
		a.row.Games++
		for _, col := range columns {
			v, _ := r.Stat(col) // missing counts as 0
			a.row.Totals[col] += v
		}
		if r.Week > a.lastWeek || (r.Week == a.lastWeek && i > a.order) {
			a.lastWeek = r.Week
			a.order = i
			if r.Team != "" {
				a.row.Team = r.Team
			}
		}
	}

	rows := make([]LeaderRow, 0, len(acc))
	for _, a := range acc {
		row := *a.row
		if group.PassingCentric() {
			row.TotalTouchdowns = row.Totals[StatPassingTDs] + row.Totals[StatRushingTDs]
			row.TotalYards = row.Totals[StatPassingYards] + row.Totals[StatRushingYards]
		} else {
			row.TotalTouchdowns = row.Totals[StatRushingTDs] + row.Totals[StatReceivingTDs]
			row.TotalYards = row.Totals[StatRushingYards] + row.Totals[StatReceivingYards]
		}
		row.FantasyPoints = row.Totals[StatFantasyPoints]
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].PlayerName < rows[j].PlayerName })
	return rows
}

// SortLeaders orders a leader table by the given key, descending, ties broken
// by player name for a deterministic table, and truncates to limit rows.
func SortLeaders(rows []LeaderRow, key LeaderSortKey, limit int) []LeaderRow {
	sorted := make([]LeaderRow, len(rows))
	copy(sorted, rows)

	value := func(r LeaderRow) float64 {
		switch key {
		case SortByYards:
			return r.TotalYards
		case SortByFantasyPoints:
			return r.FantasyPoints
		default:
			return r.TotalTouchdowns
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		vi, vj := value(sorted[i]), value(sorted[j])
		if vi != vj {
			return vi > vj
		}
		return sorted[i].PlayerName < sorted[j].PlayerName
	})

	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}

// measureColumns collects every stat column present in at least one record,
// sorted for deterministic iteration.
func measureColumns(records []PlayerGameRecord) []string {
	seen := make(map[string]bool)
	for _, r := range records {
		for col := range r.Stats {
			seen[col] = true
		}
	}
	columns := make([]string, 0, len(seen))
	for col := range seen {
		columns = append(columns, col)
	}
	sort.Strings(columns)
	return columns
}
