package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MaintenanceType string

const (
	MaintenanceScheduledService MaintenanceType = "scheduled_service"
	MaintenanceRepair           MaintenanceType = "repair"
	MaintenanceInspection       MaintenanceType = "inspection"
	MaintenanceTireChange       MaintenanceType = "tire_change"
	MaintenanceBodyRepair       MaintenanceType = "body_repair"
	MaintenanceRecall           MaintenanceType = "recall"
)

func (t MaintenanceType) Valid() bool {
	switch t {
	case MaintenanceScheduledService, MaintenanceRepair, MaintenanceInspection,
		MaintenanceTireChange, MaintenanceBodyRepair, MaintenanceRecall:
		return true
	}
	return false
}

// MaintenanceStatus transitions SCHEDULED → IN_PROGRESS → COMPLETED, or to
// CANCELLED. COMPLETED and CANCELLED are terminal.
type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceScheduled, MaintenanceInProgress, MaintenanceCompleted, MaintenanceCancelled:
		return true
	}
	return false
}

// MaintenanceRecord tracks a single service event. CompletedDate and Cost are
// populated only when the record reaches COMPLETED.
type MaintenanceRecord struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VehicleID   uuid.UUID         `gorm:"type:uuid;not null;index"`
	Type        MaintenanceType   `gorm:"type:varchar(20);not null"`
	Title       string            `gorm:"type:varchar(300);not null"`
	Description *string           `gorm:"type:text"`
	Status      MaintenanceStatus `gorm:"type:varchar(20);not null;default:'scheduled'"`

	ScheduledDate      *time.Time `gorm:"type:date;index"`
	CompletedDate      *time.Time `gorm:"type:date"`
	MileageAtService   *int
	NextServiceMileage *int
	NextServiceDate    *time.Time `gorm:"type:date"`

	Cost            *decimal.Decimal `gorm:"type:decimal(12,2)"`
	ServiceProvider *string          `gorm:"type:varchar(300)"`
	PerformedBy     *string          `gorm:"type:varchar(300)"`
	CreatedBy       *uuid.UUID       `gorm:"type:uuid"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}
