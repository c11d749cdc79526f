package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/gridironhq/matchup-analyzer/internal/models"
	"github.com/gridironhq/matchup-analyzer/pkg/config"
	"github.com/gridironhq/matchup-analyzer/pkg/database"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate [up|down|seed]")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	command := os.Args[1]

	switch command {
	case "up":
		if err := runMigrations(db); err != nil {
			logrus.Fatalf("Failed to run migrations: %v", err)
		}
		logrus.Info("Migrations completed successfully")

	case "down":
		if err := dropTables(db); err != nil {
			logrus.Fatalf("Failed to drop tables: %v", err)
		}
		logrus.Info("Tables dropped successfully")

	case "seed":
		if err := seedData(db); err != nil {
			logrus.Fatalf("Failed to seed data: %v", err)
		}
		logrus.Info("Data seeded successfully")

	default:
		log.Fatalf("Unknown command: %s", command)
	}
}

func runMigrations(db *database.DB) error {
	if err := db.AutoMigrate(
		&models.PlayerGame{},
		&models.ScheduledGame{},
	); err != nil {
		return fmt.Errorf("failed to migrate models: %w", err)
	}
	return nil
}

func dropTables(db *database.DB) error {
	return db.Migrator().DropTable(
		&models.PlayerGame{},
		&models.ScheduledGame{},
	)
}

// seedData loads a small sample slate so the API has something to serve
// before the first provider fetch completes.
func seedData(db *database.DB) error {
	if err := runMigrations(db); err != nil {
		return err
	}

	season := 2024
	kickoff := time.Date(2024, 9, 8, 17, 0, 0, 0, time.UTC)

	games := []models.ScheduledGame{
		{Season: season, Week: 1, GameType: "REG", HomeTeam: "KC", AwayTeam: "BAL", GameDate: kickoff},
		{Season: season, Week: 1, GameType: "REG", HomeTeam: "BUF", AwayTeam: "MIA", GameDate: kickoff},
	}
	if err := db.Create(&games).Error; err != nil {
		return fmt.Errorf("failed to seed schedule: %w", err)
	}

	stats := []models.PlayerGame{
		{
			Season: season, Week: 1, GameType: "REG",
			PlayerName: "Patrick Mahomes", Team: "KC", OpponentTeam: "BAL", Position: "QB",
			Stats: datatypes.JSONMap{
				"passing_yards": 291.0, "passing_tds": 1.0, "rushing_yards": 3.0,
				"rushing_tds": 0.0, "interceptions": 0.0, "fantasy_points_ppr": 16.9,
			},
		},
		{
			Season: season, Week: 1, GameType: "REG",
			PlayerName: "Lamar Jackson", Team: "BAL", OpponentTeam: "KC", Position: "QB",
			Stats: datatypes.JSONMap{
				"passing_yards": 273.0, "passing_tds": 1.0, "rushing_yards": 122.0,
				"rushing_tds": 0.0, "interceptions": 0.0, "fantasy_points_ppr": 25.1,
			},
		},
		{
			Season: season, Week: 1, GameType: "REG",
			PlayerName: "Isiah Pacheco", Team: "KC", OpponentTeam: "BAL", Position: "RB",
			Stats: datatypes.JSONMap{
				"rushing_yards": 45.0, "rushing_tds": 0.0, "receptions": 2.0,
				"receiving_yards": 33.0, "receiving_tds": 0.0, "fantasy_points_ppr": 9.8,
			},
		},
	}
	if err := db.Create(&stats).Error; err != nil {
		return fmt.Errorf("failed to seed player games: %w", err)
	}

	return nil
}
