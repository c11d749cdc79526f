package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gridironhq/matchup-analyzer/pkg/utils"
)

// respondAnalysisError maps service errors onto the API error envelope.
func respondAnalysisError(c *gin.Context, err error) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "unknown position group"):
		utils.SendValidationError(c, "Unknown position group", msg)
	case strings.Contains(msg, "no scheduled games"),
		strings.Contains(msg, "no records available"),
		strings.Contains(msg, "no schedule available"),
		strings.Contains(msg, "no ") && strings.Contains(msg, "history"):
		utils.SendNotFound(c, msg)
	default:
		utils.SendInternalError(c, "Analysis failed")
	}
}
