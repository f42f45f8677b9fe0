package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dzhusipov/fleet-core/internal/apierror"
	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/service"
)

type ContractsHandler struct{ svc *service.ContractService }

func NewContractsHandler(svc *service.ContractService) *ContractsHandler {
	return &ContractsHandler{svc: svc}
}

func (h *ContractsHandler) Create(c *gin.Context) {
	var req dto.CreateContractRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if req.EndDate.Before(req.StartDate.Time) {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(map[string]string{"end_date": "must not precede start_date"}))
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ContractsHandler) List(c *gin.Context) {
	var filter dto.ContractFilter
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
func (h *ContractsHandler) ListForVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var filter dto.ContractFilter
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

func (h *ContractsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ContractsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ContractsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
