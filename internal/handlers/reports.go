package handlers

import (
	"errors"
	"net/http"
	"strings"

	"controlling_window/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	formatJSON = "json"
	formatText = "txt"
)

// @Summary      Daily report
// @Description  Statistics for one calendar day in the configured UTC offset. Defaults to today.
// @Tags         reports
// @Produce      json
// @Produce      plain
// @Param        date    query     string  false  "Day as YYYY-MM-DD"  example(2025-06-10)
// @Param        format  query     string  false  "Response format"  Enums(json,txt)
// @Success      200     {object}  models.DailyReport
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /api/v1/reports/daily [get]
// @Security     BearerAuth
func (h *Handler) dailyReport(c *gin.Context) {
	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", formatJSON)))
	if format != formatJSON && format != formatText {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be json or txt"})
		return
	}

	rep, err := h.services.Report.Daily(c.Request.Context(), c.Query("date"))
	switch {
	case errors.Is(err, service.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, service.ErrNoReadings):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to build report", "report_daily_failed", err,
			"date", c.Query("date"))
		return
	}

	if format == formatText {
		c.String(http.StatusOK, service.RenderText(rep))
		return
	}
	c.JSON(http.StatusOK, rep)
}
