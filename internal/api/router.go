package api

import (
	"github.com/gin-gonic/gin"

	"github.com/gridironhq/matchup-analyzer/internal/api/handlers"
	"github.com/gridironhq/matchup-analyzer/internal/services"
	"github.com/gridironhq/matchup-analyzer/pkg/config"
)

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, store *services.RecordStore, analytics *services.AnalyticsService, cfg *config.Config) {
	analysisHandler := handlers.NewAnalysisHandler(analytics, cfg.CurrentSeason)
	bettingHandler := handlers.NewBettingHandler(analytics, cfg.CurrentSeason, cfg.KellyFraction)
	scheduleHandler := handlers.NewScheduleHandler(store, cfg.CurrentSeason)

	// Analysis endpoints
	group.GET("/defense/:group", analysisHandler.GetDefenseRankings)
	group.GET("/leaders/:group", analysisHandler.GetLeaders)
	group.GET("/consistency/:group", analysisHandler.GetConsistency)
	group.GET("/matchups/week/:week", analysisHandler.GetWeekMatchups)

	// Schedule endpoints
	group.GET("/schedule", scheduleHandler.GetSchedule)

	// Betting endpoints
	group.GET("/betting/implied-probability", bettingHandler.GetImpliedProbability)
	group.POST("/betting/expected-value", bettingHandler.PostExpectedValue)
	group.POST("/betting/kelly", bettingHandler.PostKellyStake)
	group.POST("/betting/parlay", bettingHandler.PostParlay)
	group.GET("/betting/matchup-advantage", bettingHandler.GetMatchupAdvantage)
	group.GET("/betting/props/:player", bettingHandler.GetPlayerProp)
}
