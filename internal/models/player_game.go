package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/gridironhq/matchup-analyzer/internal/stats"
)

// PlayerGame is the persisted form of one player's stat line for one game.
// The measure columns vary by feed version, so they are stored as a JSON map
// rather than fixed columns.
type PlayerGame struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	Season       int               `gorm:"not null;index:idx_season_week;uniqueIndex:idx_player_game" json:"season"`
	Week         int               `gorm:"not null;index:idx_season_week;uniqueIndex:idx_player_game" json:"week"`
	GameType     string            `gorm:"size:10;not null;default:REG;uniqueIndex:idx_player_game" json:"game_type"`
	PlayerName   string            `gorm:"size:100;not null;index;uniqueIndex:idx_player_game" json:"player_name"`
	Team         string            `gorm:"size:10;not null;uniqueIndex:idx_player_game" json:"team"`
	OpponentTeam string            `gorm:"size:10;not null;index" json:"opponent_team"`
	Position     string            `gorm:"size:10;not null;index" json:"position"`
	Stats        datatypes.JSONMap `json:"stats"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (PlayerGame) TableName() string {
	return "player_games"
}

// ToRecord converts the persisted row into the in-memory record the
// aggregation engine works on. Non-numeric JSON values are dropped.
func (p *PlayerGame) ToRecord() stats.PlayerGameRecord {
	measures := make(map[string]float64, len(p.Stats))
	for k, v := range p.Stats {
		if f, ok := v.(float64); ok {
			measures[k] = f
		}
	}
	return stats.PlayerGameRecord{
		PlayerName:   p.PlayerName,
		Team:         p.Team,
		OpponentTeam: p.OpponentTeam,
		Position:     p.Position,
		Week:         p.Week,
		GameType:     p.GameType,
		Stats:        measures,
	}
}

// NewPlayerGame builds a persistable row from an in-memory record.
func NewPlayerGame(season int, r stats.PlayerGameRecord) PlayerGame {
	m := make(datatypes.JSONMap, len(r.Stats))
	for k, v := range r.Stats {
		m[k] = v
	}
	return PlayerGame{
		Season:       season,
		Week:         r.Week,
		GameType:     r.GameType,
		PlayerName:   r.PlayerName,
		Team:         r.Team,
		OpponentTeam: r.OpponentTeam,
		Position:     r.Position,
		Stats:        m,
	}
}
