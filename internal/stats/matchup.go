package stats

import (
	"sort"
)

// DefaultWeakDefenseSize is how many worst defenses qualify as favorable.
const DefaultWeakDefenseSize = 10

// MatchupFlag marks one favorable offensive matchup: the flagged team's
// offense at the given position group faces an opponent whose defense sits
// inside that group's weak-defense set.
type MatchupFlag struct {
	Week          int    `json:"week"`
	HomeTeam      string `json:"home_team"`
	AwayTeam      string `json:"away_team"`
	OffenseTeam   string `json:"offense_team"`
	PositionGroup string `json:"position_group"`
	OpponentTeam  string `json:"opponent_team"`
	OpponentRank  int    `json:"opponent_rank"`
}

// MatchFavorable cross-references scheduled games against per-group
// weak-defense sets. For each game and group, the away offense is flagged
// when the home defense is in the weak set and vice versa. Games with no
// qualifying side at a position produce no flag; that is the normal case.
// Output order is deterministic: games in input order, groups alphabetical,
// away offense before home offense.
func MatchFavorable(games []ScheduledGame, weakSets map[string]WeakDefenseSet) []MatchupFlag {
	groups := make([]string, 0, len(weakSets))
	for name := range weakSets {
		groups = append(groups, name)
	}
	sort.Strings(groups)

	var flags []MatchupFlag
	for _, game := range games {
		for _, group := range groups {
			set := weakSets[group]
			if rank := set.Rank(game.HomeTeam); rank > 0 {
				flags = append(flags, MatchupFlag{
					Week:          game.Week,
					HomeTeam:      game.HomeTeam,
					AwayTeam:      game.AwayTeam,
					OffenseTeam:   game.AwayTeam,
					PositionGroup: group,
					OpponentTeam:  game.HomeTeam,
					OpponentRank:  rank,
				})
			}
			if rank := set.Rank(game.AwayTeam); rank > 0 {
				flags = append(flags, MatchupFlag{
					Week:          game.Week,
					HomeTeam:      game.HomeTeam,
					AwayTeam:      game.AwayTeam,
					OffenseTeam:   game.HomeTeam,
					PositionGroup: group,
					OpponentTeam:  game.AwayTeam,
					OpponentRank:  rank,
				})
			}
		}
	}
	return flags
}

// GamesForWeek selects the schedule rows for one week and game type.
func GamesForWeek(games []ScheduledGame, week int, gameType string) []ScheduledGame {
	selected := make([]ScheduledGame, 0, len(games))
	for _, g := range games {
		if g.Week == week && g.GameType == gameType {
			selected = append(selected, g)
		}
	}
	return selected
}
