package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gridironhq/matchup-analyzer/internal/services"
	"github.com/gridironhq/matchup-analyzer/internal/stats"
	"github.com/gridironhq/matchup-analyzer/pkg/utils"
)

// AnalysisHandler exposes the defense, leader, consistency and matchup
// reports.
type AnalysisHandler struct {
	analytics     *services.AnalyticsService
	defaultSeason int
}

func NewAnalysisHandler(analytics *services.AnalyticsService, defaultSeason int) *AnalysisHandler {
	return &AnalysisHandler{
		analytics:     analytics,
		defaultSeason: defaultSeason,
	}
}

// GetDefenseRankings handles GET /defense/:group
// Query params: season, order (worst|best), week_min, week_max
func (h *AnalysisHandler) GetDefenseRankings(c *gin.Context) {
	season := h.seasonParam(c)
	group := c.Param("group")

	order := services.OrderWorst
	switch c.DefaultQuery("order", "worst") {
	case "worst":
	case "best":
		order = services.OrderBest
	default:
		utils.SendValidationError(c, "Invalid order", "order must be 'worst' or 'best'")
		return
	}

	weeks, err := weekRangeParam(c)
	if err != nil {
		utils.SendValidationError(c, "Invalid week range", err.Error())
		return
	}

	report, err := h.analytics.DefenseRankings(c.Request.Context(), season, group, weeks, order)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	utils.SendSuccessWithMeta(c, report, &utils.Meta{
		Season: season,
		Window: windowLabel(weeks),
		Total:  len(report.Rows),
	})
}

// GetLeaders handles GET /leaders/:group
// Query params: season, sort (touchdowns|yards|fantasy_points), week_min, week_max
func (h *AnalysisHandler) GetLeaders(c *gin.Context) {
	season := h.seasonParam(c)
	group := c.Param("group")

	sortKey := stats.LeaderSortKey(c.DefaultQuery("sort", string(stats.SortByTouchdowns)))
	switch sortKey {
	case stats.SortByTouchdowns, stats.SortByYards, stats.SortByFantasyPoints:
	default:
		utils.SendValidationError(c, "Invalid sort key", "sort must be touchdowns, yards or fantasy_points")
		return
	}

	weeks, err := weekRangeParam(c)
	if err != nil {
		utils.SendValidationError(c, "Invalid week range", err.Error())
		return
	}

	rows, err := h.analytics.Leaders(c.Request.Context(), season, group, sortKey, weeks)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	utils.SendSuccessWithMeta(c, rows, &utils.Meta{
		Season: season,
		Window: windowLabel(weeks),
		Total:  len(rows),
	})
}

// GetConsistency handles GET /consistency/:group
// Query params: season, column
func (h *AnalysisHandler) GetConsistency(c *gin.Context) {
	season := h.seasonParam(c)
	group := c.Param("group")
	column := c.Query("column")

	profiles, err := h.analytics.Consistency(c.Request.Context(), season, group, column)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	utils.SendSuccessWithMeta(c, profiles, &utils.Meta{Season: season, Total: len(profiles)})
}

// GetWeekMatchups handles GET /matchups/week/:week
// Query params: season
func (h *AnalysisHandler) GetWeekMatchups(c *gin.Context) {
	season := h.seasonParam(c)

	week, err := strconv.Atoi(c.Param("week"))
	if err != nil || week < 1 {
		utils.SendValidationError(c, "Invalid week", "week must be a positive integer")
		return
	}

	flags, err := h.analytics.WeekMatchups(c.Request.Context(), season, week)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	utils.SendSuccessWithMeta(c, flags, &utils.Meta{Season: season, Week: week, Total: len(flags)})
}

func (h *AnalysisHandler) seasonParam(c *gin.Context) int {
	if raw := c.Query("season"); raw != "" {
		if season, err := strconv.Atoi(raw); err == nil && season > 0 {
			return season
		}
	}
	return h.defaultSeason
}

func weekRangeParam(c *gin.Context) (*stats.WeekRange, error) {
	minRaw := c.Query("week_min")
	maxRaw := c.Query("week_max")
	if minRaw == "" && maxRaw == "" {
		return nil, nil
	}

	weeks := &stats.WeekRange{Min: 1, Max: 22}
	if minRaw != "" {
		v, err := strconv.Atoi(minRaw)
		if err != nil || v < 1 {
			return nil, strconv.ErrSyntax
		}
		weeks.Min = v
	}
	if maxRaw != "" {
		v, err := strconv.Atoi(maxRaw)
		if err != nil || v < 1 {
			return nil, strconv.ErrSyntax
		}
		weeks.Max = v
	}
	if weeks.Min > weeks.Max {
		return nil, strconv.ErrRange
	}
	return weeks, nil
}

func windowLabel(weeks *stats.WeekRange) string {
	if weeks == nil {
		return "season"
	}
	return "weeks " + strconv.Itoa(weeks.Min) + "-" + strconv.Itoa(weeks.Max)
}
