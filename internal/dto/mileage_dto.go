package dto

import (
	"github.com/google/uuid"

	"github.com/dzhusipov/fleet-core/internal/model"
)

type CreateMileageLogRequest struct {
	VehicleID uuid.UUID  `json:"vehicle_id" binding:"required"`
	DriverID  *uuid.UUID `json:"driver_id"`
	Mileage   int        `json:"mileage" binding:"required,gte=0"`
	Date      Date       `json:"date" binding:"required"`
	Notes     *string    `json:"notes"`
}

type BulkMileageRequest struct {
	Entries []CreateMileageLogRequest `json:"entries" binding:"required,min=1,max=500,dive"`
}

// BulkMileageError points at a rejected entry by its index in the request.
type BulkMileageError struct {
	Index     int       `json:"index"`
	VehicleID uuid.UUID `json:"vehicle_id"`
	Error     string    `json:"error"`
}

type BulkMileageResult struct {
	Accepted []MileageLogResponse `json:"accepted"`
	Rejected []BulkMileageError   `json:"rejected"`
}

type MileageFilter struct {
	PageQuery
	VehicleID string `form:"vehicle_id"`
	DateFrom  string `form:"date_from"`
	DateTo    string `form:"date_to"`
}

type MileageLogResponse struct {
	ID        uuid.UUID  `json:"id"`
	VehicleID uuid.UUID  `json:"vehicle_id"`
	DriverID  *uuid.UUID `json:"driver_id"`
	Mileage   int        `json:"mileage"`
	Date      Date       `json:"date"`
	Notes     *string    `json:"notes"`
	// Delta against the previous reading, when one exists.
	Distance  *int   `json:"distance,omitempty"`
	Flagged   bool   `json:"flagged"`
	CreatedAt string `json:"created_at"`
}

func ToMileageLogResponse(m *model.MileageLog) MileageLogResponse {
	return MileageLogResponse{
		ID:        m.ID,
		VehicleID: m.VehicleID,
		DriverID:  m.DriverID,
		Mileage:   m.Mileage,
		Date:      Date{Time: m.Date},
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
