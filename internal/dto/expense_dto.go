package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dzhusipov/fleet-core/internal/model"
)

type CreateExpenseRequest struct {
	VehicleID   uuid.UUID       `json:"vehicle_id" binding:"required"`
	DriverID    *uuid.UUID      `json:"driver_id"`
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required,dgt=0"`
	Currency    string          `json:"currency"`
	Date        Date            `json:"date" binding:"required"`
	Description *string         `json:"description"`
	Vendor      *string         `json:"vendor"`

	FuelLiters        *float64         `json:"fuel_liters" binding:"omitempty,gt=0"`
	FuelPricePerLiter *decimal.Decimal `json:"fuel_price_per_liter"`
	FuelType          *string          `json:"fuel_type"`
	MileageAtRefuel   *int             `json:"mileage_at_refuel" binding:"omitempty,gte=0"`
}

type UpdateExpenseRequest struct {
	DriverID    Optional[uuid.UUID]       `json:"driver_id"`
	Category    Optional[string]          `json:"category"`
	Amount      Optional[decimal.Decimal] `json:"amount"`
	Currency    Optional[string]          `json:"currency"`
	Date        Optional[Date]            `json:"date"`
	Description Optional[string]          `json:"description"`
	Vendor      Optional[string]          `json:"vendor"`

	FuelLiters        Optional[float64]         `json:"fuel_liters"`
	FuelPricePerLiter Optional[decimal.Decimal] `json:"fuel_price_per_liter"`
	FuelType          Optional[string]          `json:"fuel_type"`
	MileageAtRefuel   Optional[int]             `json:"mileage_at_refuel"`
}

type ExpenseFilter struct {
	PageQuery
	VehicleID string `form:"vehicle_id"`
	DriverID  string `form:"driver_id"`
	Category  string `form:"category"`
	DateFrom  string `form:"date_from"`
	DateTo    string `form:"date_to"`
}

type ExpenseResponse struct {
	ID           uuid.UUID       `json:"id"`
	VehicleID    uuid.UUID       `json:"vehicle_id"`
	VehiclePlate *string         `json:"vehicle_plate,omitempty"`
	DriverID     *uuid.UUID      `json:"driver_id"`
	Category     string          `json:"category"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Date         Date            `json:"date"`
	Description  *string         `json:"description"`
	Vendor       *string         `json:"vendor"`

	FuelLiters        *float64         `json:"fuel_liters,omitempty"`
	FuelPricePerLiter *decimal.Decimal `json:"fuel_price_per_liter,omitempty"`
	FuelType          *string          `json:"fuel_type,omitempty"`
	MileageAtRefuel   *int             `json:"mileage_at_refuel,omitempty"`

	CreatedAt string `json:"created_at"`
}

func ToExpenseResponse(e *model.Expense) ExpenseResponse {
	r := ExpenseResponse{
		ID:                e.ID,
		VehicleID:         e.VehicleID,
		DriverID:          e.DriverID,
		Category:          string(e.Category),
		Amount:            e.Amount,
		Currency:          string(e.Currency),
		Date:              Date{Time: e.Date},
		Description:       e.Description,
		Vendor:            e.Vendor,
		FuelLiters:        e.FuelLiters,
		FuelPricePerLiter: e.FuelPricePerLiter,
		FuelType:          e.FuelType,
		MileageAtRefuel:   e.MileageAtRefuel,
		CreatedAt:         e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
	if e.Vehicle != nil {
		r.VehiclePlate = &e.Vehicle.LicensePlate
	}
	return r
}
