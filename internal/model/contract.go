package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ContractType string

const (
	ContractLeasing        ContractType = "leasing"
	ContractRental         ContractType = "rental"
	ContractInsuranceCasco ContractType = "insurance_casco"
	ContractInsuranceOsago ContractType = "insurance_osago"
	ContractWarranty       ContractType = "warranty"
	ContractService        ContractType = "service_contract"
)

func (t ContractType) Valid() bool {
	switch t {
	case ContractLeasing, ContractRental, ContractInsuranceCasco,
		ContractInsuranceOsago, ContractWarranty, ContractService:
		return true
	}
	return false
}

type ContractStatus string

const (
	ContractActive         ContractStatus = "active"
	ContractExpired        ContractStatus = "expired"
	ContractCancelled      ContractStatus = "cancelled"
	ContractPendingRenewal ContractStatus = "pending_renewal"
)

func (s ContractStatus) Valid() bool {
	switch s {
	case ContractActive, ContractExpired, ContractCancelled, ContractPendingRenewal:
		return true
	}
	return false
}

type PaymentFrequency string

const (
	PaymentOneTime   PaymentFrequency = "one_time"
	PaymentMonthly   PaymentFrequency = "monthly"
	PaymentQuarterly PaymentFrequency = "quarterly"
	PaymentAnnual    PaymentFrequency = "annual"
)

func (f PaymentFrequency) Valid() bool {
	switch f {
	case PaymentOneTime, PaymentMonthly, PaymentQuarterly, PaymentAnnual:
		return true
	}
	return false
}

// Contract covers leasing, rental, insurance, warranty and service agreements.
// EndDate drives the automatic expiry sweep.
type Contract struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VehicleID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	Type             ContractType     `gorm:"type:varchar(20);not null"`
	Contractor       string           `gorm:"type:varchar(300);not null"`
	ContractNumber   *string          `gorm:"type:varchar(100)"`
	StartDate        time.Time        `gorm:"type:date;not null"`
	EndDate          time.Time        `gorm:"type:date;not null;index"`
	Amount           *decimal.Decimal `gorm:"type:decimal(12,2)"`
	PaymentFrequency PaymentFrequency `gorm:"type:varchar(20);not null;default:'one_time'"`
	Status           ContractStatus   `gorm:"type:varchar(20);not null;default:'active';index"`
	AutoRenew        bool             `gorm:"not null;default:false"`
	Notes            *string          `gorm:"type:text"`
	CreatedBy        *uuid.UUID       `gorm:"type:uuid"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}
