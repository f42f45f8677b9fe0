package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dzhusipov/fleet-core/internal/apierror"
	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/service"
)

type MileageHandler struct{ svc *service.MileageService }

func NewMileageHandler(svc *service.MileageService) *MileageHandler {
	return &MileageHandler{svc: svc}
}

// Record ingests an odometer reading. A reading below the latest accepted one
// is rejected with 409.
func (h *MileageHandler) Record(c *gin.Context) {
	var req dto.CreateMileageLogRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Record(c.Request.Context(), req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Bulk ingests a batch of readings. Per-entry validation failures come back
// in the rejected list instead of failing the request.
func (h *MileageHandler) Bulk(c *gin.Context) {
	var req dto.BulkMileageRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RecordBulk(c.Request.Context(), req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MileageHandler) List(c *gin.Context) {
	var filter dto.MileageFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListForVehicle serves the vehicle detail tab, scope fixed to the path id.
func (h *MileageHandler) ListForVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var filter dto.MileageFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	filter.VehicleID = id.String()
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
