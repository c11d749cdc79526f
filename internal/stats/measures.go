package stats

// DefaultMeasures returns the standard measure set requested for a position
// group's defense ranking. The set mirrors what matters for the group: a
// passing-centric group is judged on passing production allowed, receiving
// groups on receiving production.
func DefaultMeasures(group PositionGroup) []Measure {
	switch group.Name {
	case "QB":
		return []Measure{
			{Column: StatPassingYards, Agg: AggSum},
			{Column: StatPassingYards, Agg: AggMean},
			{Column: StatPassingTDs, Agg: AggSum},
			{Column: StatPassingTDs, Agg: AggMean},
			{Column: StatInterceptions, Agg: AggSum},
			{Column: StatFantasyPoints, Agg: AggSum},
			{Column: StatFantasyPoints, Agg: AggMean},
		}
	case "RB":
		return []Measure{
			{Column: StatRushingYards, Agg: AggSum},
			{Column: StatRushingYards, Agg: AggMean},
			{Column: StatRushingTDs, Agg: AggSum},
			{Column: StatRushingTDs, Agg: AggMean},
			{Column: StatReceptions, Agg: AggSum},
			{Column: StatReceivingYards, Agg: AggSum},
			{Column: StatReceivingTDs, Agg: AggSum},
			{Column: StatFantasyPoints, Agg: AggSum},
			{Column: StatFantasyPoints, Agg: AggMean},
		}
	default: // WR, TE and any custom receiving group
		return []Measure{
			{Column: StatReceptions, Agg: AggSum},
			{Column: StatReceptions, Agg: AggMean},
			{Column: StatReceivingYards, Agg: AggSum},
			{Column: StatReceivingYards, Agg: AggMean},
			{Column: StatReceivingTDs, Agg: AggSum},
			{Column: StatReceivingTDs, Agg: AggMean},
			{Column: StatFantasyPoints, Agg: AggSum},
			{Column: StatFantasyPoints, Agg: AggMean},
		}
	}
}

// PrimaryDefenseColumn is the touchdown-flavored column a group's worst/best
// ordering and weak-defense set key on. Falls back to the ranking's first
// available column when the preferred one was not computable.
func PrimaryDefenseColumn(group PositionGroup, ranking DefenseRanking) string {
	var preferred string
	switch group.Name {
	case "QB":
		preferred = Measure{Column: StatPassingTDs, Agg: AggSum}.Name()
	case "RB":
		preferred = Measure{Column: StatRushingTDs, Agg: AggSum}.Name()
	default:
		preferred = Measure{Column: StatReceivingTDs, Agg: AggSum}.Name()
	}
	if ranking.HasColumn(preferred) {
		return preferred
	}
	if len(ranking.Columns) > 0 {
		return ranking.Columns[0]
	}
	return preferred
}

// PrimaryConsistencyColumn is the statistic a group's consistency profiles
// are computed over: passing yards for quarterbacks, fantasy points
// otherwise, with fallbacks when the input lacks the preferred column.
func PrimaryConsistencyColumn(group PositionGroup, records []PlayerGameRecord) string {
	has := func(col string) bool {
		for _, r := range records {
			if _, ok := r.Stat(col); ok {
				return true
			}
		}
		return false
	}

	if group.PassingCentric() {
		if has(StatPassingYards) {
			return StatPassingYards
		}
		return StatFantasyPoints
	}
	if has(StatFantasyPoints) {
		return StatFantasyPoints
	}
	return StatReceivingYards
}
