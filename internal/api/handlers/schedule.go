package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gridironhq/matchup-analyzer/internal/services"
	"github.com/gridironhq/matchup-analyzer/internal/stats"
	"github.com/gridironhq/matchup-analyzer/pkg/utils"
)

// ScheduleHandler serves the raw season schedule.
type ScheduleHandler struct {
	store         *services.RecordStore
	defaultSeason int
}

func NewScheduleHandler(store *services.RecordStore, defaultSeason int) *ScheduleHandler {
	return &ScheduleHandler{
		store:         store,
		defaultSeason: defaultSeason,
	}
}

// GetSchedule handles GET /schedule
// Query params: season, week
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	season := h.defaultSeason
	if raw := c.Query("season"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			season = v
		}
	}

	games, err := h.store.Schedule(c.Request.Context(), season)
	if err != nil {
		utils.SendUnavailable(c, "Schedule unavailable")
		return
	}

	if raw := c.Query("week"); raw != "" {
		week, err := strconv.Atoi(raw)
		if err != nil || week < 1 {
			utils.SendValidationError(c, "Invalid week", "week must be a positive integer")
			return
		}
		games = stats.GamesForWeek(games, week, stats.GameTypeRegular)
	}

	utils.SendSuccessWithMeta(c, games, &utils.Meta{Season: season, Total: len(games)})
}
