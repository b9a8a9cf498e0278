package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/truck_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/truck_invoice_app/internal/dto"
	"github.com/SscSPs/truck_invoice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type truckHandler struct {
	truckService portssvc.TruckSvcFacade
}

func newTruckHandler(ts portssvc.TruckSvcFacade) *truckHandler {
	return &truckHandler{truckService: ts}
}

// RegisterTruckRoutes registers routes related to trucks
func RegisterTruckRoutes(rg *gin.RouterGroup, truckService portssvc.TruckSvcFacade) {
	h := newTruckHandler(truckService)

	trucks := rg.Group("/trucks")
	{
		trucks.GET("", h.listTrucks)
		trucks.GET("/:truckId", h.getTruck)
		trucks.POST("", h.createTruck)
	}
}

// listTrucks godoc
// @Summary List trucks
// @Description Lists every registered truck ordered by id
// @Tags trucks
// @Produce json
// @Success 200 {array} dto.TruckResponse
// @Failure 500 {object} map[string]string "Store failure"
// @Router /trucks [get]
func (h *truckHandler) listTrucks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	trucks, err := h.truckService.ListTrucks(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list trucks")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTruckResponse(trucks))
}

// getTruck godoc
// @Summary Get a truck
// @Tags trucks
// @Produce json
// @Param truckId path int true "Truck ID"
// @Success 200 {object} dto.TruckResponse
// @Failure 400 {object} map[string]string "Invalid truck ID"
// @Failure 404 {object} map[string]string "Truck not found"
// @Router /trucks/{truckId} [get]
func (h *truckHandler) getTruck(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	truckID, ok := parseIDParam(c, logger, "truckId")
	if !ok {
		return
	}

	truck, err := h.truckService.GetTruckByID(c.Request.Context(), truckID)
	if err != nil {
		respondError(c, logger, err, "Failed to get truck")
		return
	}

	c.JSON(http.StatusOK, dto.ToTruckResponse(truck))
}

// createTruck godoc
// @Summary Register a truck
// @Tags trucks
// @Accept json
// @Produce json
// @Param truck body dto.CreateTruckRequest true "Truck"
// @Success 201 {object} dto.TruckResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Truck number already registered"
// @Router /trucks [post]
func (h *truckHandler) createTruck(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTruck", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	logger.Info("Received request to create truck", slog.String("truck_number", req.TruckNumber))
	truck, err := h.truckService.CreateTruck(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create truck")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTruckResponse(truck))
}
