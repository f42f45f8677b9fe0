package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dzhusipov/fleet-core/internal/service"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	csvContentType  = "text/csv; charset=utf-8"
)

type ReportsHandler struct{ svc *service.ReportService }

func NewReportsHandler(svc *service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

func (h *ReportsHandler) TCO(c *gin.Context) {
	from, to, vehicleID, ok := parseReportQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.TCO(c.Request.Context(), from, to, vehicleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) Utilization(c *gin.Context) {
	resp, err := h.svc.Utilization(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) Fuel(c *gin.Context) {
	from, to, vehicleID, ok := parseReportQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.Fuel(c.Request.Context(), from, to, vehicleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) Expenses(c *gin.Context) {
	from, to, vehicleID, ok := parseReportQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.ExpenseAnalysis(c.Request.Context(), from, to, vehicleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) MaintenanceHistory(c *gin.Context) {
	from, to, vehicleID, ok := parseReportQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.MaintenanceHistory(c.Request.Context(), from, to, vehicleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) ExportTCO(c *gin.Context) {
	from, to, vehicleID, ok := parseReportQuery(c)
	if !ok {
		return
	}
	data, err := h.svc.ExportTCOXLSX(c.Request.Context(), from, to, vehicleID)
	if err != nil {
		respondError(c, err)
		return
	}
	serveDownload(c, "tco", "xlsx", xlsxContentType, data)
}

func (h *ReportsHandler) ExportFuel(c *gin.Context) {
	from, to, vehicleID, ok := parseReportQuery(c)
	if !ok {
		return
	}
	data, err := h.svc.ExportFuelXLSX(c.Request.Context(), from, to, vehicleID)
	if err != nil {
		respondError(c, err)
		return
	}
	serveDownload(c, "fuel", "xlsx", xlsxContentType, data)
}

func (h *ReportsHandler) ExportExpensesXLSX(c *gin.Context) {
	from, to, vehicleID, ok := parseReportQuery(c)
	if !ok {
		return
	}
	data, err := h.svc.ExportExpensesXLSX(c.Request.Context(), from, to, vehicleID)
	if err != nil {
		respondError(c, err)
		return
	}
	serveDownload(c, "expenses", "xlsx", xlsxContentType, data)
}

func (h *ReportsHandler) ExportExpensesCSV(c *gin.Context) {
	from, to, vehicleID, ok := parseReportQuery(c)
	if !ok {
		return
	}
	data, err := h.svc.ExportExpensesCSV(c.Request.Context(), from, to, vehicleID)
	if err != nil {
		respondError(c, err)
		return
	}
	serveDownload(c, "expenses", "csv", csvContentType, data)
}

func (h *ReportsHandler) ExportMaintenance(c *gin.Context) {
	from, to, vehicleID, ok := parseReportQuery(c)
	if !ok {
		return
	}
	data, err := h.svc.ExportMaintenanceXLSX(c.Request.Context(), from, to, vehicleID)
	if err != nil {
		respondError(c, err)
		return
	}
	serveDownload(c, "maintenance", "xlsx", xlsxContentType, data)
}

func serveDownload(c *gin.Context, name, ext, contentType string, data []byte) {
	fileName := fmt.Sprintf("%s_%s.%s", name, time.Now().Format("20060102"), ext)
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, contentType, data)
}
