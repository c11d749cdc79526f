package models

import (
	"time"

	"github.com/gridironhq/matchup-analyzer/internal/stats"
)

// ScheduledGame is one persisted schedule row.
type ScheduledGame struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Season    int       `gorm:"not null;index:idx_sched_season_week;uniqueIndex:idx_sched_game" json:"season"`
	Week      int       `gorm:"not null;index:idx_sched_season_week;uniqueIndex:idx_sched_game" json:"week"`
	GameType  string    `gorm:"size:10;not null;default:REG;uniqueIndex:idx_sched_game" json:"game_type"`
	HomeTeam  string    `gorm:"size:10;not null;uniqueIndex:idx_sched_game" json:"home_team"`
	AwayTeam  string    `gorm:"size:10;not null;uniqueIndex:idx_sched_game" json:"away_team"`
	GameDate  time.Time `json:"game_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (ScheduledGame) TableName() string {
	return "scheduled_games"
}

// ToStats converts the persisted row to the engine's schedule type.
func (g *ScheduledGame) ToStats() stats.ScheduledGame {
	return stats.ScheduledGame{
		Week:     g.Week,
		GameType: g.GameType,
		HomeTeam: g.HomeTeam,
		AwayTeam: g.AwayTeam,
		GameDate: g.GameDate,
	}
}

// NewScheduledGame builds a persistable row from the engine's schedule type.
func NewScheduledGame(season int, g stats.ScheduledGame) ScheduledGame {
	return ScheduledGame{
		Season:   season,
		Week:     g.Week,
		GameType: g.GameType,
		HomeTeam: g.HomeTeam,
		AwayTeam: g.AwayTeam,
		GameDate: g.GameDate,
	}
}
