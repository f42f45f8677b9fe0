package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/model"
	"github.com/dzhusipov/fleet-core/internal/repository"
)

type ExpenseService struct {
	expenses repository.ExpenseRepository
	vehicles repository.VehicleRepository
}

func NewExpenseService(expenses repository.ExpenseRepository, vehicles repository.VehicleRepository) *ExpenseService {
	return &ExpenseService{expenses: expenses, vehicles: vehicles}
}

func (s *ExpenseService) Create(ctx context.Context, req dto.CreateExpenseRequest, createdBy *uuid.UUID) (dto.ExpenseResponse, error) {
	var empty dto.ExpenseResponse

	category := model.ExpenseCategory(req.Category)
	if !category.Valid() {
		return empty, &InvalidEnumError{Field: "category", Value: req.Category}
	}
	currency := model.CurrencyKZT
	if req.Currency != "" {
		currency = model.Currency(req.Currency)
		if !currency.Valid() {
			return empty, &InvalidEnumError{Field: "currency", Value: req.Currency}
		}
	}

	if _, err := s.vehicles.GetByID(ctx, req.VehicleID); err != nil {
		return empty, err
	}

	e := model.Expense{
		VehicleID:         req.VehicleID,
		DriverID:          req.DriverID,
		Category:          category,
		Amount:            req.Amount,
		Currency:          currency,
		Date:              req.Date.Time,
		Description:       req.Description,
		Vendor:            req.Vendor,
		FuelLiters:        req.FuelLiters,
		FuelPricePerLiter: req.FuelPricePerLiter,
		FuelType:          req.FuelType,
		MileageAtRefuel:   req.MileageAtRefuel,
		CreatedBy:         createdBy,
	}
	if err := s.expenses.Create(ctx, &e); err != nil {
		return empty, err
	}
	return dto.ToExpenseResponse(&e), nil
}

func (s *ExpenseService) Get(ctx context.Context, id uuid.UUID) (dto.ExpenseResponse, error) {
	e, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return dto.ExpenseResponse{}, err
	}
	return dto.ToExpenseResponse(e), nil
}

func (s *ExpenseService) List(ctx context.Context, f dto.ExpenseFilter) (dto.Page[dto.ExpenseResponse], error) {
	f.Normalize()
	expenses, total, err := s.expenses.List(ctx, f)
	if err != nil {
		return dto.Page[dto.ExpenseResponse]{}, err
	}
	items := make([]dto.ExpenseResponse, len(expenses))
	for i := range expenses {
		items[i] = dto.ToExpenseResponse(&expenses[i])
	}
	return dto.Page[dto.ExpenseResponse]{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize}, nil
}

func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateExpenseRequest) (dto.ExpenseResponse, error) {
	var empty dto.ExpenseResponse

	e, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return empty, err
	}

	if req.Category.Present && !req.Category.Null {
		c := model.ExpenseCategory(req.Category.Value)
		if !c.Valid() {
			return empty, &InvalidEnumError{Field: "category", Value: req.Category.Value}
		}
		e.Category = c
	}
	if req.Currency.Present && !req.Currency.Null {
		c := model.Currency(req.Currency.Value)
		if !c.Valid() {
			return empty, &InvalidEnumError{Field: "currency", Value: req.Currency.Value}
		}
		e.Currency = c
	}
	if req.DriverID.Present {
		e.DriverID = req.DriverID.Ptr()
	}
	if req.Amount.Present && !req.Amount.Null {
		e.Amount = req.Amount.Value
	}
	if req.Date.Present && !req.Date.Null {
		e.Date = req.Date.Value.Time
	}
	if req.Description.Present {
		e.Description = req.Description.Ptr()
	}
	if req.Vendor.Present {
		e.Vendor = req.Vendor.Ptr()
	}
	if req.FuelLiters.Present {
		e.FuelLiters = req.FuelLiters.Ptr()
	}
	if req.FuelPricePerLiter.Present {
		e.FuelPricePerLiter = req.FuelPricePerLiter.Ptr()
	}
	if req.FuelType.Present {
		e.FuelType = req.FuelType.Ptr()
	}
	if req.MileageAtRefuel.Present {
		e.MileageAtRefuel = req.MileageAtRefuel.Ptr()
	}

	if err := s.expenses.Update(ctx, e); err != nil {
		return empty, err
	}
	return dto.ToExpenseResponse(e), nil
}

func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.expenses.Delete(ctx, id)
}
