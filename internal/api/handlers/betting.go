package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gridironhq/matchup-analyzer/internal/betting"
	"github.com/gridironhq/matchup-analyzer/internal/services"
	"github.com/gridironhq/matchup-analyzer/pkg/utils"
)

// BettingHandler exposes the odds math and prop analysis endpoints.
type BettingHandler struct {
	analytics     *services.AnalyticsService
	defaultSeason int
	kellyFraction float64
}

func NewBettingHandler(analytics *services.AnalyticsService, defaultSeason int, kellyFraction float64) *BettingHandler {
	if kellyFraction <= 0 || kellyFraction > 1 {
		kellyFraction = betting.DefaultKellyFraction
	}
	return &BettingHandler{
		analytics:     analytics,
		defaultSeason: defaultSeason,
		kellyFraction: kellyFraction,
	}
}

// GetImpliedProbability handles GET /betting/implied-probability
// Query params: odds (american)
func (h *BettingHandler) GetImpliedProbability(c *gin.Context) {
	odds, ok := oddsParam(c, "odds")
	if !ok {
		return
	}

	prob, err := betting.ImpliedProbability(odds)
	if err != nil {
		utils.SendValidationError(c, "Invalid odds", err.Error())
		return
	}
	decimal, _ := betting.DecimalOdds(odds)

	utils.SendSuccess(c, gin.H{
		"odds":                odds,
		"implied_probability": prob,
		"decimal_odds":        decimal,
	})
}

// win_probability carries no binding tag: gin's required fails on a zero
// value, and 0 is a legitimate probability. Range checks live in the betting
// package.
type expectedValueRequest struct {
	WinProbability float64 `json:"win_probability"`
	Odds           int     `json:"odds" binding:"required"`
	Stake          float64 `json:"stake"`
}

// PostExpectedValue handles POST /betting/expected-value
func (h *BettingHandler) PostExpectedValue(c *gin.Context) {
	var req expectedValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}
	if req.Stake == 0 {
		req.Stake = 100
	}

	ev, err := betting.ExpectedValue(req.WinProbability, req.Odds, req.Stake)
	if err != nil {
		utils.SendValidationError(c, "Invalid expected value inputs", err.Error())
		return
	}

	utils.SendSuccess(c, gin.H{
		"expected_value": ev,
		"stake":          req.Stake,
		"odds":           req.Odds,
	})
}

type kellyRequest struct {
	WinProbability float64 `json:"win_probability"`
	Odds           int     `json:"odds" binding:"required"`
	Bankroll       float64 `json:"bankroll" binding:"required"`
	Fraction       float64 `json:"fraction"`
}

// PostKellyStake handles POST /betting/kelly
func (h *BettingHandler) PostKellyStake(c *gin.Context) {
	var req kellyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}
	fraction := req.Fraction
	if fraction == 0 {
		fraction = h.kellyFraction
	}

	stake, err := betting.KellyStake(req.WinProbability, req.Odds, req.Bankroll, fraction)
	if err != nil {
		utils.SendValidationError(c, "Invalid Kelly inputs", err.Error())
		return
	}

	utils.SendSuccess(c, gin.H{
		"recommended_stake": stake,
		"fraction":          fraction,
		"bankroll":          req.Bankroll,
	})
}

type parlayRequest struct {
	Legs []int `json:"legs" binding:"required"`
}

// PostParlay handles POST /betting/parlay
func (h *BettingHandler) PostParlay(c *gin.Context) {
	var req parlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	result, err := betting.Parlay(req.Legs)
	if err != nil {
		if errors.Is(err, betting.ErrTooFewLegs) {
			utils.SendValidationError(c, "Parlay requires at least two legs", err.Error())
			return
		}
		utils.SendValidationError(c, "Invalid parlay legs", err.Error())
		return
	}

	utils.SendSuccess(c, result)
}

// GetMatchupAdvantage handles GET /betting/matchup-advantage
// Query params: defense_rank (required, 1 = worst), team_count, trend (0-100)
func (h *BettingHandler) GetMatchupAdvantage(c *gin.Context) {
	rank, err := strconv.Atoi(c.Query("defense_rank"))
	if err != nil || rank < 1 {
		utils.SendValidationError(c, "Invalid defense rank", "defense_rank must be a positive integer")
		return
	}

	teamCount := 0
	if raw := c.Query("team_count"); raw != "" {
		teamCount, err = strconv.Atoi(raw)
		if err != nil || teamCount < rank {
			utils.SendValidationError(c, "Invalid team count", "team_count must be an integer >= defense_rank")
			return
		}
	}

	trend := 50.0
	if raw := c.Query("trend"); raw != "" {
		trend, err = strconv.ParseFloat(raw, 64)
		if err != nil || trend < 0 || trend > 100 {
			utils.SendValidationError(c, "Invalid trend", "trend must be between 0 and 100")
			return
		}
	}

	utils.SendSuccess(c, gin.H{
		"advantage_score": betting.MatchupAdvantage(rank, teamCount, trend),
		"defense_rank":    rank,
		"trend":           trend,
	})
}

// GetPlayerProp handles GET /betting/props/:player
// Query params: season, column (required), line (required)
func (h *BettingHandler) GetPlayerProp(c *gin.Context) {
	player := c.Param("player")
	column := c.Query("column")
	if column == "" {
		utils.SendValidationError(c, "Missing column", "column query parameter is required")
		return
	}

	line, err := strconv.ParseFloat(c.Query("line"), 64)
	if err != nil {
		utils.SendValidationError(c, "Invalid line", "line must be a number")
		return
	}

	season := h.defaultSeason
	if raw := c.Query("season"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			season = v
		}
	}

	analysis, err := h.analytics.PlayerProp(c.Request.Context(), season, player, column, line)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	utils.SendSuccessWithMeta(c, analysis, &utils.Meta{Season: season})
}

func oddsParam(c *gin.Context, name string) (int, bool) {
	odds, err := strconv.Atoi(c.Query(name))
	if err != nil || odds == 0 {
		utils.SendValidationError(c, "Invalid odds", name+" must be a non-zero american odds value")
		return 0, false
	}
	return odds, true
}
