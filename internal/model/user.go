package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleFleetManager Role = "fleet_manager"
	RoleDriver       Role = "driver"
	RoleViewer       Role = "viewer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleFleetManager, RoleDriver, RoleViewer:
		return true
	}
	return false
}

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	FullName       string    `gorm:"type:varchar(255);not null"`
	Role           Role      `gorm:"type:varchar(20);not null;default:'viewer'"`
	Language       string    `gorm:"type:varchar(5);not null;default:'en'"`
	TelegramChatID *int64
	Active         bool `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
