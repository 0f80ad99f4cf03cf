package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"controlling_window/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errStoreReading    = "failed to store reading"
	errLoadReading     = "failed to load reading"
	errLoadReadings    = "failed to load readings"
	errInvalidCode     = "condition code must be an integer"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// readingRequest carries already-parsed sensor and weather values.
// Pointers distinguish a missing field from a legitimate 0.
type readingRequest struct {
	DesiredTempC  *float64  `json:"desired_temp_c" binding:"required"`
	InsideTempC   *float64  `json:"inside_temp_c" binding:"required"`
	OutsideTempC  *float64  `json:"outside_temp_c" binding:"required"`
	ConditionCode *int      `json:"condition_code" binding:"required"`
	RecordedAt    time.Time `json:"recorded_at"`
}

func (r readingRequest) params() service.ReadingParams {
	return service.ReadingParams{
		DesiredTempC:  *r.DesiredTempC,
		InsideTempC:   *r.InsideTempC,
		OutsideTempC:  *r.OutsideTempC,
		ConditionCode: *r.ConditionCode,
		RecordedAt:    r.RecordedAt,
	}
}

// ReadingRequest is an exported model for Swagger docs of the reading payload.
type ReadingRequest struct {
	// Target room temperature, °C
	DesiredTempC float64 `json:"desired_temp_c" example:"21"`
	// Room sensor temperature, °C
	InsideTempC float64 `json:"inside_temp_c" example:"23.4"`
	// Outside temperature from the weather API, °C
	OutsideTempC float64 `json:"outside_temp_c" example:"12.1"`
	// Weather API condition code
	ConditionCode int `json:"condition_code" example:"1003"`
	// Optional sample time (RFC3339); defaults to now
	RecordedAt string `json:"recorded_at,omitempty" example:"2025-06-10T08:00:00Z"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Evaluate readings without storing them
// @Tags         decision
// @Accept       json
// @Produce      json
// @Param        body  body      ReadingRequest  true  "Readings"
// @Success      200   {object}  service.Evaluation
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/decide [post]
// @Security     BearerAuth
func (h *Handler) decide(c *gin.Context) {
	var req readingRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	c.JSON(http.StatusOK, h.services.Decision.Evaluate(req.params()))
}

// @Summary      Store a reading and its decision
// @Tags         readings
// @Accept       json
// @Produce      json
// @Param        body  body      ReadingRequest  true  "Readings"
// @Success      200   {object}  models.Reading
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/readings [post]
// @Security     BearerAuth
func (h *Handler) ingestReading(c *gin.Context) {
	var req readingRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	rd, err := h.services.Decision.Ingest(c.Request.Context(), req.params())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errStoreReading, "reading_ingest_failed", err,
			"condition_code", *req.ConditionCode)
		return
	}
	if h.log != nil {
		h.log.Infow("reading_stored", "id", rd.ID, "open", rd.IsOpen, "branch", rd.Branch)
	}
	c.JSON(http.StatusOK, rd)
}

// @Summary      Latest reading
// @Tags         readings
// @Produce      json
// @Success      200  {object}  models.Reading
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/readings/latest [get]
// @Security     BearerAuth
func (h *Handler) latestReading(c *gin.Context) {
	rd, err := h.services.Monitoring.Latest(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadReading, "reading_latest_failed", err)
		return
	}
	c.JSON(http.StatusOK, rd)
}

// @Summary      List readings
// @Tags         readings
// @Produce      json
// @Param        from  query     string  false  "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"
// @Param        to    query     string  false  "End of range; date-only is end of day"
// @Success      200   {object}  map[string]interface{}  "count, readings"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/readings [get]
// @Security     BearerAuth
func (h *Handler) listReadings(c *gin.Context) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}
	readings, err := h.services.Monitoring.History(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadReadings, "readings_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(readings),
		"readings": readings,
	})
}

// @Summary      Favorable condition codes
// @Tags         conditions
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "codes"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/conditions [get]
// @Security     BearerAuth
func (h *Handler) favorableConditions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"codes": h.services.Decision.FavorableCodes()})
}

// @Summary      Classify a condition code
// @Tags         conditions
// @Produce      json
// @Param        code  path      int  true  "Weather condition code"
// @Success      200   {object}  service.ConditionInfo
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/conditions/{code} [get]
// @Security     BearerAuth
func (h *Handler) classifyCondition(c *gin.Context) {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidCode})
		return
	}
	c.JSON(http.StatusOK, h.services.Decision.Classify(code))
}
