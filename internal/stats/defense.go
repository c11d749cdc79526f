package stats

import (
	"fmt"
	"sort"
)

// AggFunc selects how a measure column is reduced per opponent team.
type AggFunc string

const (
	AggSum  AggFunc = "sum"
	AggMean AggFunc = "mean"
)

// Measure is one requested aggregation over a stat column.
type Measure struct {
	Column string  `json:"column"`
	Agg    AggFunc `json:"agg"`
}

// Name returns the derived output column name, e.g. "receiving_tds_sum".
func (m Measure) Name() string {
	return fmt.Sprintf("%s_%s", m.Column, m.Agg)
}

// DefenseRow holds the aggregated production one defense allowed.
type DefenseRow struct {
	Team   string             `json:"team"`
	Values map[string]float64 `json:"values"`
}

// DefenseRanking is the per-opponent aggregation result. Columns lists the
// derived column names that were actually computable from the input; callers
// must check for a column's presence rather than assume it. Rows are emitted
// in team-alphabetical order; worst/best ordering is a separate sort step.
type DefenseRanking struct {
	Columns []string     `json:"columns"`
	Rows    []DefenseRow `json:"rows"`
}

// Empty reports whether the aggregation produced no rows.
func (r DefenseRanking) Empty() bool {
	return len(r.Rows) == 0
}

// HasColumn reports whether a derived column was computable from the input.
func (r DefenseRanking) HasColumn(name string) bool {
	for _, c := range r.Columns {
		if c == name {
			return true
		}
	}
	return false
}

type defenseAccumulator struct {
	sums   map[string]float64
	counts map[string]int
}

// AggregateDefense groups records by opponent team and reduces each requested
// measure over the group. A row missing a column contributes 0 to a sum and
// is left out of a mean's denominator. A column absent from the entire input
// is omitted from the output rather than zero-filled. If none of the
// requested columns exist anywhere, the result is an empty ranking.
func AggregateDefense(records []PlayerGameRecord, measures []Measure) DefenseRanking {
	present := make(map[string]bool)
	for _, r := range records {
		for _, m := range measures {
			if _, ok := r.Stat(m.Column); ok {
				present[m.Column] = true
			}
		}
	}

	var columns []string
	var usable []Measure
	for _, m := range measures {
		if present[m.Column] {
			columns = append(columns, m.Name())
			usable = append(usable, m)
		}
	}
	if len(usable) == 0 {
		return DefenseRanking{}
	}

	acc := make(map[string]*defenseAccumulator)
	for _, r := range records {
		a, ok := acc[r.OpponentTeam]
		if !ok {
			a = &defenseAccumulator{
				sums:   make(map[string]float64),
				counts: make(map[string]int),
			}
			acc[r.OpponentTeam] = a
		}
		for _, m := range usable {
			if v, ok := r.Stat(m.Column); ok {
				a.sums[m.Column] += v
				a.counts[m.Column]++
			}
		}
	}

	rows := make([]DefenseRow, 0, len(acc))
	for team, a := range acc {
		values := make(map[string]float64, len(usable))
		for _, m := range usable {
			switch m.Agg {
			case AggMean:
				if a.counts[m.Column] > 0 {
					values[m.Name()] = a.sums[m.Column] / float64(a.counts[m.Column])
				} else {
					values[m.Name()] = 0
				}
			default:
				values[m.Name()] = a.sums[m.Column]
			}
		}
		rows = append(rows, DefenseRow{Team: team, Values: values})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Team < rows[j].Team })

	return DefenseRanking{Columns: columns, Rows: rows}
}

// SortWorst returns the rows ordered worst defense first: descending on the
// primary column, ties broken by team code. The receiver is not modified.
func (r DefenseRanking) SortWorst(primary string) []DefenseRow {
	return r.sorted(primary, true)
}

// SortBest returns the rows ordered best defense first: ascending on the
// primary column, ties broken by team code.
func (r DefenseRanking) SortBest(primary string) []DefenseRow {
	return r.sorted(primary, false)
}

func (r DefenseRanking) sorted(primary string, desc bool) []DefenseRow {
	rows := make([]DefenseRow, len(r.Rows))
	copy(rows, r.Rows)
	sort.SliceStable(rows, func(i, j int) bool {
		vi, vj := rows[i].Values[primary], rows[j].Values[primary]
		if vi != vj {
			if desc {
				return vi > vj
			}
			return vi < vj
		}
		return rows[i].Team < rows[j].Team
	})
	return rows
}

// WeakDefenseSet lists the teams allowing the most production at a position
// group, most favorable matchup first. Rank is the 1-based list position.
type WeakDefenseSet struct {
	Teams []string `json:"teams"`
}

// Rank returns the team's 1-based rank in the set, or 0 when absent.
func (s WeakDefenseSet) Rank(team string) int {
	for i, t := range s.Teams {
		if t == team {
			return i + 1
		}
	}
	return 0
}

// WeakDefenseSet extracts the top-n worst defenses by the primary column.
func (r DefenseRanking) WeakDefenseSet(primary string, n int) WeakDefenseSet {
	rows := r.SortWorst(primary)
	if n > len(rows) {
		n = len(rows)
	}
	teams := make([]string, 0, n)
	for _, row := range rows[:n] {
		teams = append(teams, row.Team)
	}
	return WeakDefenseSet{Teams: teams}
}
