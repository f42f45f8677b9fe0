package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dzhusipov/fleet-core/internal/model"
)

type CreateVehicleRequest struct {
	LicensePlate     string           `json:"license_plate" binding:"required,max=20"`
	VIN              string           `json:"vin" binding:"required,len=17"`
	Brand            string           `json:"brand" binding:"required,max=100"`
	Model            string           `json:"model" binding:"required,max=100"`
	Year             int              `json:"year" binding:"required,gte=1950,lte=2100"`
	Color            *string          `json:"color"`
	BodyType         string           `json:"body_type" binding:"required"`
	FuelType         string           `json:"fuel_type" binding:"required"`
	EngineVolume     *float64         `json:"engine_volume" binding:"omitempty,gt=0"`
	Transmission     string           `json:"transmission" binding:"required"`
	Seats            *int             `json:"seats" binding:"omitempty,gt=0"`
	PurchaseDate     *Date            `json:"purchase_date"`
	PurchasePrice    *decimal.Decimal `json:"purchase_price"`
	CurrentMileage   int              `json:"current_mileage" binding:"gte=0"`
	Status           string           `json:"status"`
	AssignedDriverID *uuid.UUID       `json:"assigned_driver_id"`
	Department       *string          `json:"department"`
	Notes            *string          `json:"notes"`
}

type UpdateVehicleRequest struct {
	LicensePlate     Optional[string]          `json:"license_plate"`
	Brand            Optional[string]          `json:"brand"`
	Model            Optional[string]          `json:"model"`
	Year             Optional[int]             `json:"year"`
	Color            Optional[string]          `json:"color"`
	BodyType         Optional[string]          `json:"body_type"`
	FuelType         Optional[string]          `json:"fuel_type"`
	EngineVolume     Optional[float64]         `json:"engine_volume"`
	Transmission     Optional[string]          `json:"transmission"`
	Seats            Optional[int]             `json:"seats"`
	PurchaseDate     Optional[Date]            `json:"purchase_date"`
	PurchasePrice    Optional[decimal.Decimal] `json:"purchase_price"`
	Status           Optional[string]          `json:"status"`
	AssignedDriverID Optional[uuid.UUID]       `json:"assigned_driver_id"`
	Department       Optional[string]          `json:"department"`
	Notes            Optional[string]          `json:"notes"`
}

type VehicleFilter struct {
	PageQuery
	Status     string `form:"status"`
	Brand      string `form:"brand"`
	Department string `form:"department"`
	Search     string `form:"search"`
}

type VehicleResponse struct {
	ID                 uuid.UUID        `json:"id"`
	LicensePlate       string           `json:"license_plate"`
	VIN                string           `json:"vin"`
	Brand              string           `json:"brand"`
	Model              string           `json:"model"`
	Year               int              `json:"year"`
	Color              *string          `json:"color"`
	BodyType           string           `json:"body_type"`
	FuelType           string           `json:"fuel_type"`
	EngineVolume       *float64         `json:"engine_volume"`
	Transmission       string           `json:"transmission"`
	Seats              *int             `json:"seats"`
	PurchaseDate       *Date            `json:"purchase_date"`
	PurchasePrice      *decimal.Decimal `json:"purchase_price"`
	CurrentMileage     int              `json:"current_mileage"`
	Status             string           `json:"status"`
	AssignedDriverID   *uuid.UUID       `json:"assigned_driver_id"`
	AssignedDriverName *string          `json:"assigned_driver_name,omitempty"`
	Department         *string          `json:"department"`
	Notes              *string          `json:"notes"`
	CreatedAt          string           `json:"created_at"`
	UpdatedAt          string           `json:"updated_at"`
}

func ToVehicleResponse(v *model.Vehicle) VehicleResponse {
	r := VehicleResponse{
		ID:               v.ID,
		LicensePlate:     v.LicensePlate,
		VIN:              v.VIN,
		Brand:            v.Brand,
		Model:            v.Model,
		Year:             v.Year,
		Color:            v.Color,
		BodyType:         string(v.BodyType),
		FuelType:         string(v.FuelType),
		EngineVolume:     v.EngineVolume,
		Transmission:     string(v.Transmission),
		Seats:            v.Seats,
		PurchaseDate:     DatePtr(v.PurchaseDate),
		PurchasePrice:    v.PurchasePrice,
		CurrentMileage:   v.CurrentMileage,
		Status:           string(v.Status),
		AssignedDriverID: v.AssignedDriverID,
		Department:       v.Department,
		Notes:            v.Notes,
		CreatedAt:        v.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		UpdatedAt:        v.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
	if v.AssignedDriver != nil {
		r.AssignedDriverName = &v.AssignedDriver.FullName
	}
	return r
}
