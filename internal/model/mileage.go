package model

import (
	"time"

	"github.com/google/uuid"
)

// MileageLog is an append-only odometer reading. Readings for a vehicle are
// monotonically non-decreasing; ingestion enforces this under a row lock.
type MileageLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VehicleID uuid.UUID  `gorm:"type:uuid;not null;index:idx_mileage_vehicle_date"`
	DriverID  *uuid.UUID `gorm:"type:uuid"`
	Mileage   int        `gorm:"not null"`
	Date      time.Time  `gorm:"type:date;not null;index:idx_mileage_vehicle_date"`
	Notes     *string    `gorm:"type:text"`
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	Driver  *Driver  `gorm:"foreignKey:DriverID;constraint:OnDelete:SET NULL"`
}
