package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/model"
	"github.com/dzhusipov/fleet-core/internal/repository"
)

type DriverService struct {
	drivers repository.DriverRepository
}

func NewDriverService(drivers repository.DriverRepository) *DriverService {
	return &DriverService{drivers: drivers}
}

func (s *DriverService) Create(ctx context.Context, req dto.CreateDriverRequest) (dto.DriverResponse, error) {
	var empty dto.DriverResponse

	status := model.DriverActive
	if req.Status != "" {
		status = model.DriverStatus(req.Status)
		if !status.Valid() {
			return empty, &InvalidEnumError{Field: "status", Value: req.Status}
		}
	}

	d := model.Driver{
		UserID:          req.UserID,
		FullName:        req.FullName,
		EmployeeID:      req.EmployeeID,
		Phone:           req.Phone,
		Email:           req.Email,
		LicenseNumber:   req.LicenseNumber,
		LicenseCategory: req.LicenseCategory,
		LicenseExpiry:   dto.TimePtr(req.LicenseExpiry),
		MedicalExpiry:   dto.TimePtr(req.MedicalExpiry),
		HireDate:        dto.TimePtr(req.HireDate),
		Department:      req.Department,
		Status:          status,
		Notes:           req.Notes,
	}
	if err := s.drivers.Create(ctx, &d); err != nil {
		return empty, err
	}
	return dto.ToDriverResponse(&d), nil
}

func (s *DriverService) Get(ctx context.Context, id uuid.UUID) (dto.DriverResponse, error) {
	d, err := s.drivers.GetByID(ctx, id)
	if err != nil {
		return dto.DriverResponse{}, err
	}
	return dto.ToDriverResponse(d), nil
}

func (s *DriverService) List(ctx context.Context, f dto.DriverFilter) (dto.Page[dto.DriverResponse], error) {
	f.Normalize()
	drivers, total, err := s.drivers.List(ctx, f)
	if err != nil {
		return dto.Page[dto.DriverResponse]{}, err
	}
	items := make([]dto.DriverResponse, len(drivers))
	for i := range drivers {
		items[i] = dto.ToDriverResponse(&drivers[i])
	}
	return dto.Page[dto.DriverResponse]{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize}, nil
}

func (s *DriverService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateDriverRequest) (dto.DriverResponse, error) {
	var empty dto.DriverResponse

	d, err := s.drivers.GetByID(ctx, id)
	if err != nil {
		return empty, err
	}

	if req.FullName.Present && !req.FullName.Null {
		d.FullName = req.FullName.Value
	}
	if req.EmployeeID.Present {
		d.EmployeeID = req.EmployeeID.Ptr()
	}
	if req.Phone.Present {
		d.Phone = req.Phone.Ptr()
	}
	if req.Email.Present {
		d.Email = req.Email.Ptr()
	}
	if req.LicenseNumber.Present {
		d.LicenseNumber = req.LicenseNumber.Ptr()
	}
	if req.LicenseCategory.Present {
		d.LicenseCategory = req.LicenseCategory.Ptr()
	}
	if req.LicenseExpiry.Present {
		d.LicenseExpiry = dto.TimePtr(req.LicenseExpiry.Ptr())
	}
	if req.MedicalExpiry.Present {
		d.MedicalExpiry = dto.TimePtr(req.MedicalExpiry.Ptr())
	}
	if req.HireDate.Present {
		d.HireDate = dto.TimePtr(req.HireDate.Ptr())
	}
	if req.Department.Present {
		d.Department = req.Department.Ptr()
	}
	if req.Status.Present && !req.Status.Null {
		st := model.DriverStatus(req.Status.Value)
		if !st.Valid() {
			return empty, &InvalidEnumError{Field: "status", Value: req.Status.Value}
		}
		d.Status = st
	}
	if req.Notes.Present {
		d.Notes = req.Notes.Ptr()
	}
	if req.UserID.Present {
		d.UserID = req.UserID.Ptr()
	}

	if err := s.drivers.Update(ctx, d); err != nil {
		return empty, err
	}
	return dto.ToDriverResponse(d), nil
}

func (s *DriverService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.drivers.Delete(ctx, id)
}
