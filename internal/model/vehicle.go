package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BodyType is a closed enumeration of vehicle body styles.
type BodyType string

const (
	BodySedan   BodyType = "sedan"
	BodySUV     BodyType = "suv"
	BodyTruck   BodyType = "truck"
	BodyVan     BodyType = "van"
	BodyBus     BodyType = "bus"
	BodyMinivan BodyType = "minivan"
	BodyPickup  BodyType = "pickup"
)

func (b BodyType) Valid() bool {
	switch b {
	case BodySedan, BodySUV, BodyTruck, BodyVan, BodyBus, BodyMinivan, BodyPickup:
		return true
	}
	return false
}

type FuelType string

const (
	FuelGasoline FuelType = "gasoline"
	FuelDiesel   FuelType = "diesel"
	FuelGas      FuelType = "gas"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
)

func (f FuelType) Valid() bool {
	switch f {
	case FuelGasoline, FuelDiesel, FuelGas, FuelElectric, FuelHybrid:
		return true
	}
	return false
}

type TransmissionType string

const (
	TransmissionManual    TransmissionType = "manual"
	TransmissionAutomatic TransmissionType = "automatic"
	TransmissionCVT       TransmissionType = "cvt"
	TransmissionRobot     TransmissionType = "robot"
)

func (t TransmissionType) Valid() bool {
	switch t {
	case TransmissionManual, TransmissionAutomatic, TransmissionCVT, TransmissionRobot:
		return true
	}
	return false
}

// VehicleStatus drives the utilization report; every status must be handled
// explicitly at grouping sites.
type VehicleStatus string

const (
	VehicleActive         VehicleStatus = "active"
	VehicleInMaintenance  VehicleStatus = "in_maintenance"
	VehicleDecommissioned VehicleStatus = "decommissioned"
	VehicleReserved       VehicleStatus = "reserved"
)

func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleActive, VehicleInMaintenance, VehicleDecommissioned, VehicleReserved:
		return true
	}
	return false
}

// AllVehicleStatuses enumerates every status for exhaustive grouping.
func AllVehicleStatuses() []VehicleStatus {
	return []VehicleStatus{VehicleActive, VehicleInMaintenance, VehicleDecommissioned, VehicleReserved}
}

// Vehicle is the root entity of the fleet. CurrentMileage is updated only by
// mileage log ingestion and never decreases.
type Vehicle struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LicensePlate     string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	VIN              string    `gorm:"type:varchar(17);uniqueIndex;not null"`
	Brand            string    `gorm:"type:varchar(100);not null"`
	Model            string    `gorm:"type:varchar(100);not null"`
	Year             int       `gorm:"not null"`
	Color            *string   `gorm:"type:varchar(50)"`
	BodyType         BodyType  `gorm:"type:varchar(20);not null"`
	FuelType         FuelType  `gorm:"type:varchar(20);not null"`
	EngineVolume     *float64
	Transmission     TransmissionType `gorm:"type:varchar(20);not null"`
	Seats            *int
	PurchaseDate     *time.Time       `gorm:"type:date"`
	PurchasePrice    *decimal.Decimal `gorm:"type:decimal(12,2)"`
	CurrentMileage   int              `gorm:"not null;default:0"`
	Status           VehicleStatus    `gorm:"type:varchar(20);not null;default:'active';index"`
	AssignedDriverID *uuid.UUID       `gorm:"type:uuid;index"`
	Department       *string          `gorm:"type:varchar(200)"`
	Notes            *string          `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	AssignedDriver *Driver `gorm:"foreignKey:AssignedDriverID;constraint:OnDelete:SET NULL"`
}
