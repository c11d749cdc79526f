package stats

// WeekRange bounds a filter window, inclusive on both ends.
type WeekRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether the given week falls inside the range.
func (w WeekRange) Contains(week int) bool {
	return week >= w.Min && week <= w.Max
}

// Filter selects the records whose position matches one of the given raw
// codes and, when a week range is supplied, whose week falls inside it.
// An empty result is a valid outcome, not an error.
func Filter(records []PlayerGameRecord, codes []string, weeks *WeekRange) []PlayerGameRecord {
	codeSet := make(map[string]bool, len(codes))
	for _, c := range codes {
		codeSet[c] = true
	}

	filtered := make([]PlayerGameRecord, 0, len(records))
	for _, r := range records {
		if !codeSet[r.Position] {
			continue
		}
		if weeks != nil && !weeks.Contains(r.Week) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// FilterGroup is Filter keyed by a position group instead of raw codes.
func FilterGroup(records []PlayerGameRecord, group PositionGroup, weeks *WeekRange) []PlayerGameRecord {
	return Filter(records, group.Codes, weeks)
}
