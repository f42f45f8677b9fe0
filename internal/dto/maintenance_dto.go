package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dzhusipov/fleet-core/internal/model"
)

type CreateMaintenanceRequest struct {
	VehicleID   uuid.UUID `json:"vehicle_id" binding:"required"`
	Type        string    `json:"type" binding:"required"`
	Title       string    `json:"title" binding:"required,max=300"`
	Description *string   `json:"description"`

	ScheduledDate      *Date `json:"scheduled_date"`
	MileageAtService   *int  `json:"mileage_at_service" binding:"omitempty,gte=0"`
	NextServiceMileage *int  `json:"next_service_mileage" binding:"omitempty,gte=0"`
	NextServiceDate    *Date `json:"next_service_date"`

	Cost            *decimal.Decimal `json:"cost"`
	ServiceProvider *string          `json:"service_provider"`
}

type UpdateMaintenanceRequest struct {
	Type        Optional[string] `json:"type"`
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	Status      Optional[string] `json:"status"`

	ScheduledDate      Optional[Date] `json:"scheduled_date"`
	MileageAtService   Optional[int]  `json:"mileage_at_service"`
	NextServiceMileage Optional[int]  `json:"next_service_mileage"`
	NextServiceDate    Optional[Date] `json:"next_service_date"`

	Cost            Optional[decimal.Decimal] `json:"cost"`
	ServiceProvider Optional[string]          `json:"service_provider"`
	PerformedBy     Optional[string]          `json:"performed_by"`
}

// CompleteMaintenanceRequest closes a record: sets COMPLETED, the completion
// date and the final cost in one call.
type CompleteMaintenanceRequest struct {
	CompletedDate    Date             `json:"completed_date" binding:"required"`
	Cost             *decimal.Decimal `json:"cost"`
	PerformedBy      *string          `json:"performed_by"`
	MileageAtService *int             `json:"mileage_at_service" binding:"omitempty,gte=0"`
}

type MaintenanceFilter struct {
	PageQuery
	VehicleID string `form:"vehicle_id"`
	Status    string `form:"status"`
	Type      string `form:"type"`
	DateFrom  string `form:"date_from"`
	DateTo    string `form:"date_to"`
}

type MaintenanceResponse struct {
	ID           uuid.UUID `json:"id"`
	VehicleID    uuid.UUID `json:"vehicle_id"`
	VehiclePlate *string   `json:"vehicle_plate,omitempty"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	Status       string    `json:"status"`

	ScheduledDate      *Date `json:"scheduled_date"`
	CompletedDate      *Date `json:"completed_date"`
	MileageAtService   *int  `json:"mileage_at_service"`
	NextServiceMileage *int  `json:"next_service_mileage"`
	NextServiceDate    *Date `json:"next_service_date"`

	Cost            *decimal.Decimal `json:"cost"`
	ServiceProvider *string          `json:"service_provider"`
	PerformedBy     *string          `json:"performed_by"`
	CreatedAt       string           `json:"created_at"`
}

func ToMaintenanceResponse(m *model.MaintenanceRecord) MaintenanceResponse {
	r := MaintenanceResponse{
		ID:                 m.ID,
		VehicleID:          m.VehicleID,
		Type:               string(m.Type),
		Title:              m.Title,
		Description:        m.Description,
		Status:             string(m.Status),
		ScheduledDate:      DatePtr(m.ScheduledDate),
		CompletedDate:      DatePtr(m.CompletedDate),
		MileageAtService:   m.MileageAtService,
		NextServiceMileage: m.NextServiceMileage,
		NextServiceDate:    DatePtr(m.NextServiceDate),
		Cost:               m.Cost,
		ServiceProvider:    m.ServiceProvider,
		PerformedBy:        m.PerformedBy,
		CreatedAt:          m.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
	if m.Vehicle != nil {
		r.VehiclePlate = &m.Vehicle.LicensePlate
	}
	return r
}

// KanbanBoard groups open maintenance records by status for the board view.
type KanbanBoard struct {
	Scheduled  []MaintenanceResponse `json:"scheduled"`
	InProgress []MaintenanceResponse `json:"in_progress"`
	Completed  []MaintenanceResponse `json:"completed"`
}
