package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dzhusipov/fleet-core/internal/model"
)

type CreateContractRequest struct {
	VehicleID        uuid.UUID        `json:"vehicle_id" binding:"required"`
	Type             string           `json:"type" binding:"required"`
	Contractor       string           `json:"contractor" binding:"required,max=300"`
	ContractNumber   *string          `json:"contract_number"`
	StartDate        Date             `json:"start_date" binding:"required"`
	EndDate          Date             `json:"end_date" binding:"required"`
	Amount           *decimal.Decimal `json:"amount"`
	PaymentFrequency string           `json:"payment_frequency"`
	AutoRenew        bool             `json:"auto_renew"`
	Notes            *string          `json:"notes"`
}

type UpdateContractRequest struct {
	Type             Optional[string]          `json:"type"`
	Contractor       Optional[string]          `json:"contractor"`
	ContractNumber   Optional[string]          `json:"contract_number"`
	StartDate        Optional[Date]            `json:"start_date"`
	EndDate          Optional[Date]            `json:"end_date"`
	Amount           Optional[decimal.Decimal] `json:"amount"`
	PaymentFrequency Optional[string]          `json:"payment_frequency"`
	Status           Optional[string]          `json:"status"`
	AutoRenew        Optional[bool]            `json:"auto_renew"`
	Notes            Optional[string]          `json:"notes"`
}

type ContractFilter struct {
	PageQuery
	VehicleID    string `form:"vehicle_id"`
	Type         string `form:"type"`
	Status       string `form:"status"`
	ExpiringDays int    `form:"expiring_days"`
}

type ContractResponse struct {
	ID               uuid.UUID        `json:"id"`
	VehicleID        uuid.UUID        `json:"vehicle_id"`
	VehiclePlate     *string          `json:"vehicle_plate,omitempty"`
	Type             string           `json:"type"`
	Contractor       string           `json:"contractor"`
	ContractNumber   *string          `json:"contract_number"`
	StartDate        Date             `json:"start_date"`
	EndDate          Date             `json:"end_date"`
	Amount           *decimal.Decimal `json:"amount"`
	PaymentFrequency string           `json:"payment_frequency"`
	Status           string           `json:"status"`
	AutoRenew        bool             `json:"auto_renew"`
	Notes            *string          `json:"notes"`
	CreatedAt        string           `json:"created_at"`
}

func ToContractResponse(c *model.Contract) ContractResponse {
	r := ContractResponse{
		ID:               c.ID,
		VehicleID:        c.VehicleID,
		Type:             string(c.Type),
		Contractor:       c.Contractor,
		ContractNumber:   c.ContractNumber,
		StartDate:        Date{Time: c.StartDate},
		EndDate:          Date{Time: c.EndDate},
		Amount:           c.Amount,
		PaymentFrequency: string(c.PaymentFrequency),
		Status:           string(c.Status),
		AutoRenew:        c.AutoRenew,
		Notes:            c.Notes,
		CreatedAt:        c.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
	if c.Vehicle != nil {
		r.VehiclePlate = &c.Vehicle.LicensePlate
	}
	return r
}
