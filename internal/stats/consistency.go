package stats

import (
	"math"
	"sort"
)

// DefaultMinGames is the minimum sample size for a consistency profile.
const DefaultMinGames = 3

// ConsistencyProfile summarizes how steady a player's per-game output is for
// one statistic. Rating is relative to the cohort it was computed with:
// re-running over a different player set changes every rating, because the
// normalization uses the cohort's maximum coefficient of variation.
type ConsistencyProfile struct {
	PlayerName string  `json:"player_name"`
	Average    float64 `json:"average"`
	StdDev     float64 `json:"std_dev"`
	Games      int     `json:"games"`
	Floor      float64 `json:"floor"`
	Ceiling    float64 `json:"ceiling"`
	CV         float64 `json:"coefficient_of_variation"`
	Rating     float64 `json:"consistency_rating"`
}

// AnalyzeConsistency computes a consistency profile per player for one stat
// column over the records matching the given position codes. Players with
// fewer than minGames games are excluded, as are games where the column is
// absent. Ratings are scaled 0-100 against the highest CV in the qualifying
// cohort.
//
// CV is computed against the absolute mean so a negative-average stretch
// (negative rushing yards, sack-heavy passing weeks) still yields a
// non-negative CV and a rating inside [0, 100].
//
// Zero-average rule: a player averaging exactly 0 with zero variance has
// CV 0 (perfectly consistent at zero); a zero average with any variance is
// treated as the cohort's least consistent player and rated 0.
func AnalyzeConsistency(records []PlayerGameRecord, codes []string, column string, minGames int) []ConsistencyProfile {
	if minGames <= 0 {
		minGames = DefaultMinGames
	}

	codeSet := make(map[string]bool, len(codes))
	for _, c := range codes {
		codeSet[c] = true
	}

	values := make(map[string][]float64)
	for _, r := range records {
		if !codeSet[r.Position] {
			continue
		}
		if v, ok := r.Stat(column); ok {
			values[r.PlayerName] = append(values[r.PlayerName], v)
		}
	}

	var profiles []ConsistencyProfile
	undefined := make(map[string]bool) // zero average with variance
	maxCV := 0.0

	for name, vals := range values {
		if len(vals) < minGames {
			continue
		}
		p := ConsistencyProfile{
			PlayerName: name,
			Games:      len(vals),
			Average:    mean(vals),
			StdDev:     sampleStdDev(vals),
			Floor:      minOf(vals),
			Ceiling:    maxOf(vals),
		}
		if p.Average == 0 {
			if p.StdDev == 0 {
				p.CV = 0
			} else {
				undefined[name] = true
			}
		} else {
			p.CV = p.StdDev / math.Abs(p.Average)
			if p.CV > maxCV {
				maxCV = p.CV
			}
		}
		profiles = append(profiles, p)
	}

	for i := range profiles {
		p := &profiles[i]
		switch {
		case undefined[p.PlayerName]:
			p.CV = maxCV
			p.Rating = 0
		case maxCV == 0:
			p.Rating = 100
		default:
			p.Rating = 100 * (1 - p.CV/maxCV)
		}
	}

	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].Rating != profiles[j].Rating {
			return profiles[i].Rating > profiles[j].Rating
		}
		return profiles[i].PlayerName < profiles[j].PlayerName
	})
	return profiles
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// sampleStdDev uses the n-1 denominator, matching how spreadsheet and
// dataframe tooling report weekly stat variance.
func sampleStdDev(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	m := mean(vals)
	sum := 0.0
	for _, v := range vals {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(vals)-1))
}

func minOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
