package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/model"
	"github.com/dzhusipov/fleet-core/internal/repository"
)

type VehicleService struct {
	vehicles repository.VehicleRepository
	drivers  repository.DriverRepository
}

func NewVehicleService(vehicles repository.VehicleRepository, drivers repository.DriverRepository) *VehicleService {
	return &VehicleService{vehicles: vehicles, drivers: drivers}
}

func (s *VehicleService) Create(ctx context.Context, req dto.CreateVehicleRequest) (dto.VehicleResponse, error) {
	var empty dto.VehicleResponse

	if !model.BodyType(req.BodyType).Valid() {
		return empty, &InvalidEnumError{Field: "body_type", Value: req.BodyType}
	}
	if !model.FuelType(req.FuelType).Valid() {
		return empty, &InvalidEnumError{Field: "fuel_type", Value: req.FuelType}
	}
	if !model.TransmissionType(req.Transmission).Valid() {
		return empty, &InvalidEnumError{Field: "transmission", Value: req.Transmission}
	}
	status := model.VehicleActive
	if req.Status != "" {
		status = model.VehicleStatus(req.Status)
		if !status.Valid() {
			return empty, &InvalidEnumError{Field: "status", Value: req.Status}
		}
	}

	if _, err := s.vehicles.GetByPlate(ctx, req.LicensePlate); err == nil {
		return empty, ErrDuplicatePlate
	} else if !errors.Is(err, repository.ErrNotFound) {
		return empty, err
	}
	if _, err := s.vehicles.GetByVIN(ctx, req.VIN); err == nil {
		return empty, ErrDuplicateVIN
	} else if !errors.Is(err, repository.ErrNotFound) {
		return empty, err
	}

	if req.AssignedDriverID != nil {
		if _, err := s.drivers.GetByID(ctx, *req.AssignedDriverID); err != nil {
			return empty, err
		}
	}

	v := model.Vehicle{
		LicensePlate:     req.LicensePlate,
		VIN:              req.VIN,
		Brand:            req.Brand,
		Model:            req.Model,
		Year:             req.Year,
		Color:            req.Color,
		BodyType:         model.BodyType(req.BodyType),
		FuelType:         model.FuelType(req.FuelType),
		EngineVolume:     req.EngineVolume,
		Transmission:     model.TransmissionType(req.Transmission),
		Seats:            req.Seats,
		PurchaseDate:     dto.TimePtr(req.PurchaseDate),
		PurchasePrice:    req.PurchasePrice,
		CurrentMileage:   req.CurrentMileage,
		Status:           status,
		AssignedDriverID: req.AssignedDriverID,
		Department:       req.Department,
		Notes:            req.Notes,
	}
	if err := s.vehicles.Create(ctx, &v); err != nil {
		return empty, err
	}
	return dto.ToVehicleResponse(&v), nil
}

func (s *VehicleService) Get(ctx context.Context, id uuid.UUID) (dto.VehicleResponse, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return dto.VehicleResponse{}, err
	}
	return dto.ToVehicleResponse(v), nil
}

func (s *VehicleService) List(ctx context.Context, f dto.VehicleFilter) (dto.Page[dto.VehicleResponse], error) {
	f.Normalize()
	vehicles, total, err := s.vehicles.List(ctx, f)
	if err != nil {
		return dto.Page[dto.VehicleResponse]{}, err
	}
	items := make([]dto.VehicleResponse, len(vehicles))
	for i := range vehicles {
		items[i] = dto.ToVehicleResponse(&vehicles[i])
	}
	return dto.Page[dto.VehicleResponse]{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize}, nil
}

// Update applies a partial update. Absent fields stay untouched, explicit
// nulls clear nullable columns.
func (s *VehicleService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateVehicleRequest) (dto.VehicleResponse, error) {
	var empty dto.VehicleResponse

	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return empty, err
	}

	if req.LicensePlate.Present && !req.LicensePlate.Null && req.LicensePlate.Value != v.LicensePlate {
		if _, err := s.vehicles.GetByPlate(ctx, req.LicensePlate.Value); err == nil {
			return empty, ErrDuplicatePlate
		} else if !errors.Is(err, repository.ErrNotFound) {
			return empty, err
		}
		v.LicensePlate = req.LicensePlate.Value
	}
	if req.Brand.Present && !req.Brand.Null {
		v.Brand = req.Brand.Value
	}
	if req.Model.Present && !req.Model.Null {
		v.Model = req.Model.Value
	}
	if req.Year.Present && !req.Year.Null {
		v.Year = req.Year.Value
	}
	if req.Color.Present {
		v.Color = req.Color.Ptr()
	}
	if req.BodyType.Present && !req.BodyType.Null {
		bt := model.BodyType(req.BodyType.Value)
		if !bt.Valid() {
			return empty, &InvalidEnumError{Field: "body_type", Value: req.BodyType.Value}
		}
		v.BodyType = bt
	}
	if req.FuelType.Present && !req.FuelType.Null {
		ft := model.FuelType(req.FuelType.Value)
		if !ft.Valid() {
			return empty, &InvalidEnumError{Field: "fuel_type", Value: req.FuelType.Value}
		}
		v.FuelType = ft
	}
	if req.EngineVolume.Present {
		v.EngineVolume = req.EngineVolume.Ptr()
	}
	if req.Transmission.Present && !req.Transmission.Null {
		tr := model.TransmissionType(req.Transmission.Value)
		if !tr.Valid() {
			return empty, &InvalidEnumError{Field: "transmission", Value: req.Transmission.Value}
		}
		v.Transmission = tr
	}
	if req.Seats.Present {
		v.Seats = req.Seats.Ptr()
	}
	if req.PurchaseDate.Present {
		if req.PurchaseDate.Null {
			v.PurchaseDate = nil
		} else {
			t := req.PurchaseDate.Value.Time
			v.PurchaseDate = &t
		}
	}
	if req.PurchasePrice.Present {
		v.PurchasePrice = req.PurchasePrice.Ptr()
	}
	if req.Status.Present && !req.Status.Null {
		st := model.VehicleStatus(req.Status.Value)
		if !st.Valid() {
			return empty, &InvalidEnumError{Field: "status", Value: req.Status.Value}
		}
		v.Status = st
	}
	if req.AssignedDriverID.Present {
		if req.AssignedDriverID.Null {
			v.AssignedDriverID = nil
		} else {
			if _, err := s.drivers.GetByID(ctx, req.AssignedDriverID.Value); err != nil {
				return empty, err
			}
			v.AssignedDriverID = req.AssignedDriverID.Ptr()
		}
	}
	if req.Department.Present {
		v.Department = req.Department.Ptr()
	}
	if req.Notes.Present {
		v.Notes = req.Notes.Ptr()
	}

	if err := s.vehicles.Update(ctx, v); err != nil {
		return empty, err
	}
	return dto.ToVehicleResponse(v), nil
}

func (s *VehicleService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.vehicles.Delete(ctx, id)
}
