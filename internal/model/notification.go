package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotifyMaintenanceDue     NotificationType = "maintenance_due"
	NotifyMaintenanceOverdue NotificationType = "maintenance_overdue"
	NotifyContractExpiring   NotificationType = "contract_expiring"
	NotifyLicenseExpiring    NotificationType = "license_expiring"
	NotifyMedicalExpiring    NotificationType = "medical_expiring"
	NotifyMileageAlert       NotificationType = "mileage_alert"
	NotifySystem             NotificationType = "system"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotifyMaintenanceDue, NotifyMaintenanceOverdue, NotifyContractExpiring,
		NotifyLicenseExpiring, NotifyMedicalExpiring, NotifyMileageAlert, NotifySystem:
		return true
	}
	return false
}

// Notification is an in-app message for a user. Delivery over email or
// telegram happens asynchronously in the worker pool.
type Notification struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	Type       NotificationType `gorm:"type:varchar(30);not null"`
	Title      string           `gorm:"type:varchar(300);not null"`
	Message    string           `gorm:"type:text;not null"`
	EntityType *string          `gorm:"type:varchar(20)"`
	EntityID   *uuid.UUID       `gorm:"type:uuid"`
	Read       bool             `gorm:"not null;default:false;index"`
	CreatedAt  time.Time

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// NotificationPreference holds the per-user delivery channel switches.
// A missing row means both channels are enabled.
type NotificationPreference struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmailEnabled    bool      `gorm:"not null;default:true"`
	TelegramEnabled bool      `gorm:"not null;default:true"`
	UpdatedAt       time.Time

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
