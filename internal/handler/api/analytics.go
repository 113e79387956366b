package api

import (
	"net/http"
	"strconv"

	"parkhaus/internal/handler/httperr"
	"parkhaus/internal/pkg/errs"
	"parkhaus/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errInvalidParam = errs.New("invalid parameter")

type AnalyticsHandler struct {
	analytics queries.AnalyticsQueries
}

func NewAnalyticsHandler(analytics queries.AnalyticsQueries) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// @Summary Revenue over the last N hours
// @Tags analytics
// @Produce json
// @Param hours path int true "Window in hours"
// @Router /api/parking/analytics/revenue/{hours} [get]
func (h *AnalyticsHandler) RevenueLastHours(c *gin.Context) {
	hours, ok := positiveIntParam(c, "hours")
	if !ok {
		return
	}
	revenue, err := h.analytics.RevenueLastHours(c.Request.Context(), hours)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hours": hours, "revenue": revenue})
}

// @Summary Count vehicles by color substring
// @Tags analytics
// @Produce json
// @Param color path string true "Color substring, case-insensitive"
// @Param active_only query bool false "Restrict to currently parked vehicles"
// @Router /api/parking/analytics/vehicles/color/{color} [get]
func (h *AnalyticsHandler) CountByColor(c *gin.Context) {
	color := c.Param("color")
	activeOnly, ok := activeOnlyQuery(c)
	if !ok {
		return
	}
	count, err := h.analytics.CountByColor(c.Request.Context(), color, activeOnly)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"color": color, "count": count, "active_only": activeOnly})
}

// @Summary Currently parked vehicle count
// @Tags analytics
// @Produce json
// @Router /api/parking/analytics/current-count [get]
func (h *AnalyticsHandler) CurrentVehicleCount(c *gin.Context) {
	count, err := h.analytics.CurrentVehicleCount(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"current_vehicles": count})
}

// @Summary Mean entries per calendar day
// @Tags analytics
// @Produce json
// @Param days path int true "Trailing window in days"
// @Router /api/parking/analytics/daily-average/{days} [get]
func (h *AnalyticsHandler) DailyAverageVehicles(c *gin.Context) {
	days, ok := positiveIntParam(c, "days")
	if !ok {
		return
	}
	avg, err := h.analytics.DailyAverageVehicles(c.Request.Context(), days)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days, "average_daily_vehicles": avg})
}

// @Summary Average spending per paying vehicle
// @Tags analytics
// @Produce json
// @Param days path int true "Trailing window in days"
// @Router /api/parking/analytics/average-spending/{days} [get]
func (h *AnalyticsHandler) AverageDailySpending(c *gin.Context) {
	days, ok := positiveIntParam(c, "days")
	if !ok {
		return
	}
	avg, err := h.analytics.AverageDailySpending(c.Request.Context(), days)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days, "average_daily_spending": avg})
}

// @Summary Average stay duration by vehicle color
// @Tags analytics
// @Produce json
// @Param color path string true "Color substring, case-insensitive"
// @Router /api/parking/analytics/duration/color/{color} [get]
func (h *AnalyticsHandler) AverageDurationByColor(c *gin.Context) {
	color := c.Param("color")
	duration, err := h.analytics.AverageDurationByColor(c.Request.Context(), color)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"color": color, "average_duration_hours": duration})
}

// @Summary Paid revenue per exit date
// @Tags analytics
// @Produce json
// @Param days path int true "Trailing window in days"
// @Router /api/parking/analytics/revenue-by-day/{days} [get]
func (h *AnalyticsHandler) RevenueByDay(c *gin.Context) {
	days, ok := positiveIntParam(c, "days")
	if !ok {
		return
	}
	rows, err := h.analytics.RevenueByDay(c.Request.Context(), days)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Distinct vehicle count per brand
// @Tags analytics
// @Produce json
// @Param active_only query bool false "Restrict to currently parked vehicles"
// @Router /api/parking/analytics/brands [get]
func (h *AnalyticsHandler) BrandDistribution(c *gin.Context) {
	activeOnly, ok := activeOnlyQuery(c)
	if !ok {
		return
	}
	rows, err := h.analytics.BrandDistribution(c.Request.Context(), activeOnly)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Session count per floor
// @Tags analytics
// @Produce json
// @Param active_only query bool false "Restrict to active sessions"
// @Router /api/parking/analytics/floors [get]
func (h *AnalyticsHandler) FloorDistribution(c *gin.Context) {
	activeOnly, ok := activeOnlyQuery(c)
	if !ok {
		return
	}
	rows, err := h.analytics.FloorDistribution(c.Request.Context(), activeOnly)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Session counts per hour of day
// @Tags analytics
// @Produce json
// @Router /api/parking/analytics/hourly-occupancy [get]
func (h *AnalyticsHandler) HourlyOccupancy(c *gin.Context) {
	rows, err := h.analytics.HourlyOccupancy(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Today's combined analytics snapshot
// @Tags analytics
// @Produce json
// @Router /api/parking/analytics/overview [get]
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	overview, err := h.analytics.Overview(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, overview)
}

func positiveIntParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidParam, "Parameter "+name+" must be a positive integer", nil)
		return 0, false
	}
	return v, true
}

func activeOnlyQuery(c *gin.Context) (bool, bool) {
	activeOnly, err := strconv.ParseBool(c.DefaultQuery("active_only", "true"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidParam, "Query active_only must be a boolean", nil)
		return false, false
	}
	return activeOnly, true
}
