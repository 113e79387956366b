package api

import (
	"errors"
	"net/http"

	"parkhaus/internal/domain/spot"
	"parkhaus/internal/handler/dto/request"
	"parkhaus/internal/handler/dto/response"
	"parkhaus/internal/handler/httperr"
	"parkhaus/internal/usecase/commands"
	"parkhaus/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ParkingHandler struct {
	commands commands.ParkingCommands
	queries  queries.ParkingQueries
}

func NewParkingHandler(commands commands.ParkingCommands, queries queries.ParkingQueries) *ParkingHandler {
	return &ParkingHandler{
		commands: commands,
		queries:  queries,
	}
}

// @Summary Register vehicle entry
// @Description Assign a free spot and open a parking session for the vehicle
// @Tags parking
// @Accept json
// @Produce json
// @Param request body request.VehicleEntryRequest true "Entry request"
// @Success 201 {object} response.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/parking/entry [post]
func (h *ParkingHandler) Entry(c *gin.Context) {
	var req request.VehicleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	spotType, err := spot.ParseType(req.SpotType)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid spot type", nil)
		return
	}

	view, err := h.commands.RegisterEntry(c.Request.Context(), req.LicensePlate, req.Color, req.Brand, spotType)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAlreadyParked):
			httperr.AbortWithError(c, http.StatusConflict, err, "Vehicle is already in the parking", nil)
		case errors.Is(err, commands.ErrNoAvailableSpot):
			httperr.AbortWithError(c, http.StatusConflict, err, "No available spot of requested type", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, response.FromSessionView(view))
}

// @Summary Register vehicle exit
// @Description Settle the active session and free the spot
// @Tags parking
// @Accept json
// @Produce json
// @Param request body request.VehicleExitRequest true "Exit request"
// @Success 200 {object} response.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/parking/exit [post]
func (h *ParkingHandler) Exit(c *gin.Context) {
	var req request.VehicleExitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.RegisterExit(c.Request.Context(), req.LicensePlate)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoActiveSession):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No active session for vehicle", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, response.FromSessionView(view))
}

// @Summary Parking status
// @Description Occupancy totals and per-floor breakdown
// @Tags parking
// @Produce json
// @Success 200 {object} queries.StatusView
// @Router /api/parking/status [get]
func (h *ParkingHandler) Status(c *gin.Context) {
	status, err := h.queries.Status(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, status)
}

// @Summary Active sessions
// @Description All currently parked vehicles, most recent entry first
// @Tags parking
// @Produce json
// @Success 200 {array} response.SessionResponse
// @Router /api/parking/sessions/active [get]
func (h *ParkingHandler) ActiveSessions(c *gin.Context) {
	views, err := h.queries.ActiveSessions(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionViews(views))
}

// @Summary Vehicle lookup
// @Description Find a vehicle record by license plate
// @Tags parking
// @Produce json
// @Param plate path string true "License plate"
// @Success 200 {object} queries.VehicleView
// @Failure 404 {object} httperr.Response
// @Router /api/parking/vehicles/{plate} [get]
func (h *ParkingHandler) VehicleByPlate(c *gin.Context) {
	view, err := h.queries.VehicleByPlate(c.Request.Context(), c.Param("plate"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrVehicleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, view)
}
