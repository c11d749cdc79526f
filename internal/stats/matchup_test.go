package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchFavorable(t *testing.T) {
	games := []ScheduledGame{
		{Week: 10, GameType: GameTypeRegular, HomeTeam: "DEN", AwayTeam: "KC"},
		{Week: 10, GameType: GameTypeRegular, HomeTeam: "SF", AwayTeam: "SEA"},
	}
	weakSets := map[string]WeakDefenseSet{
		"WR": {Teams: []string{"DEN", "ATL"}},
	}

	flags := MatchFavorable(games, weakSets)

	assert.Len(t, flags, 1)
	flag := flags[0]
	assert.Equal(t, "KC", flag.OffenseTeam, "away offense benefits from weak home defense")
	assert.Equal(t, "DEN", flag.OpponentTeam)
	assert.Equal(t, "WR", flag.PositionGroup)
	assert.Equal(t, 1, flag.OpponentRank)
	assert.Equal(t, 10, flag.Week)
}

func TestMatchFavorableBothSidesAndGroups(t *testing.T) {
	games := []ScheduledGame{
		{Week: 3, GameType: GameTypeRegular, HomeTeam: "DEN", AwayTeam: "CAR"},
	}
	weakSets := map[string]WeakDefenseSet{
		"WR": {Teams: []string{"DEN", "CAR"}},
		"RB": {Teams: []string{"CAR"}},
	}

	flags := MatchFavorable(games, weakSets)

	// groups iterate alphabetically, home-defense flag before away-defense flag
	assert.Len(t, flags, 3)
	assert.Equal(t, "RB", flags[0].PositionGroup)
	assert.Equal(t, "DEN", flags[0].OffenseTeam)

	assert.Equal(t, "WR", flags[1].PositionGroup)
	assert.Equal(t, "CAR", flags[1].OffenseTeam)
	assert.Equal(t, 1, flags[1].OpponentRank)

	assert.Equal(t, "WR", flags[2].PositionGroup)
	assert.Equal(t, "DEN", flags[2].OffenseTeam)
	assert.Equal(t, 2, flags[2].OpponentRank)
}

func TestMatchFavorableNoQualifyingSides(t *testing.T) {
	games := []ScheduledGame{
		{Week: 1, GameType: GameTypeRegular, HomeTeam: "BUF", AwayTeam: "MIA"},
	}
	weakSets := map[string]WeakDefenseSet{
		"TE": {Teams: []string{"DEN"}},
	}

	flags := MatchFavorable(games, weakSets)
	assert.Empty(t, flags)
}

func TestGamesForWeek(t *testing.T) {
	games := []ScheduledGame{
		{Week: 1, GameType: GameTypeRegular, HomeTeam: "KC", AwayTeam: "BAL"},
		{Week: 2, GameType: GameTypeRegular, HomeTeam: "SF", AwayTeam: "SEA"},
		{Week: 1, GameType: GameTypePost, HomeTeam: "DET", AwayTeam: "GB"},
	}

	week1 := GamesForWeek(games, 1, GameTypeRegular)
	assert.Len(t, week1, 1)
	assert.Equal(t, "KC", week1[0].HomeTeam)

	post := GamesForWeek(games, 1, GameTypePost)
	assert.Len(t, post, 1)
	assert.Equal(t, "DET", post[0].HomeTeam)

	assert.Empty(t, GamesForWeek(games, 9, GameTypeRegular))
}
