package model

import (
	"time"

	"github.com/google/uuid"
)

type DriverStatus string

const (
	DriverActive     DriverStatus = "active"
	DriverOnLeave    DriverStatus = "on_leave"
	DriverTerminated DriverStatus = "terminated"
)

func (s DriverStatus) Valid() bool {
	switch s {
	case DriverActive, DriverOnLeave, DriverTerminated:
		return true
	}
	return false
}

// Driver is an employee who can be assigned to vehicles and expenses.
type Driver struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID          *uuid.UUID `gorm:"type:uuid"`
	FullName        string     `gorm:"type:varchar(255);not null"`
	EmployeeID      *string    `gorm:"type:varchar(50);uniqueIndex"`
	Phone           *string    `gorm:"type:varchar(30)"`
	Email           *string    `gorm:"type:varchar(255)"`
	LicenseNumber   *string    `gorm:"type:varchar(50)"`
	LicenseCategory *string    `gorm:"type:varchar(20)"`
	LicenseExpiry   *time.Time `gorm:"type:date"`
	MedicalExpiry   *time.Time `gorm:"type:date"`
	HireDate        *time.Time `gorm:"type:date"`
	Department      *string    `gorm:"type:varchar(200)"`
	Status          DriverStatus `gorm:"type:varchar(20);not null;default:'active'"`
	Notes           *string      `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}
