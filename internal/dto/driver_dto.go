package dto

import (
	"github.com/google/uuid"

	"github.com/dzhusipov/fleet-core/internal/model"
)

type CreateDriverRequest struct {
	FullName        string  `json:"full_name" binding:"required,max=255"`
	EmployeeID      *string `json:"employee_id"`
	Phone           *string `json:"phone"`
	Email           *string `json:"email" binding:"omitempty,email"`
	LicenseNumber   *string `json:"license_number"`
	LicenseCategory *string `json:"license_category"`
	LicenseExpiry   *Date   `json:"license_expiry"`
	MedicalExpiry   *Date   `json:"medical_expiry"`
	HireDate        *Date   `json:"hire_date"`
	Department      *string `json:"department"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes"`
	UserID          *uuid.UUID `json:"user_id"`
}

type UpdateDriverRequest struct {
	FullName        Optional[string] `json:"full_name"`
	EmployeeID      Optional[string] `json:"employee_id"`
	Phone           Optional[string] `json:"phone"`
	Email           Optional[string] `json:"email"`
	LicenseNumber   Optional[string] `json:"license_number"`
	LicenseCategory Optional[string] `json:"license_category"`
	LicenseExpiry   Optional[Date]   `json:"license_expiry"`
	MedicalExpiry   Optional[Date]   `json:"medical_expiry"`
	HireDate        Optional[Date]   `json:"hire_date"`
	Department      Optional[string] `json:"department"`
	Status          Optional[string] `json:"status"`
	Notes           Optional[string] `json:"notes"`
	UserID          Optional[uuid.UUID] `json:"user_id"`
}

type DriverFilter struct {
	PageQuery
	Status     string `form:"status"`
	Department string `form:"department"`
	Search     string `form:"search"`
}

type DriverResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          *uuid.UUID `json:"user_id"`
	FullName        string    `json:"full_name"`
	EmployeeID      *string   `json:"employee_id"`
	Phone           *string   `json:"phone"`
	Email           *string   `json:"email"`
	LicenseNumber   *string   `json:"license_number"`
	LicenseCategory *string   `json:"license_category"`
	LicenseExpiry   *Date     `json:"license_expiry"`
	MedicalExpiry   *Date     `json:"medical_expiry"`
	HireDate        *Date     `json:"hire_date"`
	Department      *string   `json:"department"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes"`
	CreatedAt       string    `json:"created_at"`
}

func ToDriverResponse(d *model.Driver) DriverResponse {
	return DriverResponse{
		ID:              d.ID,
		UserID:          d.UserID,
		FullName:        d.FullName,
		EmployeeID:      d.EmployeeID,
		Phone:           d.Phone,
		Email:           d.Email,
		LicenseNumber:   d.LicenseNumber,
		LicenseCategory: d.LicenseCategory,
		LicenseExpiry:   DatePtr(d.LicenseExpiry),
		MedicalExpiry:   DatePtr(d.MedicalExpiry),
		HireDate:        DatePtr(d.HireDate),
		Department:      d.Department,
		Status:          string(d.Status),
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
