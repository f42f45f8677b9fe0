package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/model"
	"github.com/dzhusipov/fleet-core/internal/repository"
)

type ContractService struct {
	contracts repository.ContractRepository
	vehicles  repository.VehicleRepository
	log       zerolog.Logger
}

func NewContractService(contracts repository.ContractRepository, vehicles repository.VehicleRepository, log zerolog.Logger) *ContractService {
	return &ContractService{contracts: contracts, vehicles: vehicles, log: log}
}

func (s *ContractService) Create(ctx context.Context, req dto.CreateContractRequest, createdBy *uuid.UUID) (dto.ContractResponse, error) {
	var empty dto.ContractResponse

	typ := model.ContractType(req.Type)
	if !typ.Valid() {
		return empty, &InvalidEnumError{Field: "type", Value: req.Type}
	}
	freq := model.PaymentOneTime
	if req.PaymentFrequency != "" {
		freq = model.PaymentFrequency(req.PaymentFrequency)
		if !freq.Valid() {
			return empty, &InvalidEnumError{Field: "payment_frequency", Value: req.PaymentFrequency}
		}
	}
	if _, err := s.vehicles.GetByID(ctx, req.VehicleID); err != nil {
		return empty, err
	}

	c := model.Contract{
		VehicleID:        req.VehicleID,
		Type:             typ,
		Contractor:       req.Contractor,
		ContractNumber:   req.ContractNumber,
		StartDate:        req.StartDate.Time,
		EndDate:          req.EndDate.Time,
		Amount:           req.Amount,
		PaymentFrequency: freq,
		Status:           model.ContractActive,
		AutoRenew:        req.AutoRenew,
		Notes:            req.Notes,
		CreatedBy:        createdBy,
	}
	if err := s.contracts.Create(ctx, &c); err != nil {
		return empty, err
	}
	return dto.ToContractResponse(&c), nil
}

func (s *ContractService) Get(ctx context.Context, id uuid.UUID) (dto.ContractResponse, error) {
	c, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return dto.ContractResponse{}, err
	}
	return dto.ToContractResponse(c), nil
}

func (s *ContractService) List(ctx context.Context, f dto.ContractFilter) (dto.Page[dto.ContractResponse], error) {
	f.Normalize()
	contracts, total, err := s.contracts.List(ctx, f)
	if err != nil {
		return dto.Page[dto.ContractResponse]{}, err
	}
	items := make([]dto.ContractResponse, len(contracts))
	for i := range contracts {
		items[i] = dto.ToContractResponse(&contracts[i])
	}
	return dto.Page[dto.ContractResponse]{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize}, nil
}

func (s *ContractService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateContractRequest) (dto.ContractResponse, error) {
	var empty dto.ContractResponse

	c, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return empty, err
	}

	if req.Type.Present && !req.Type.Null {
		t := model.ContractType(req.Type.Value)
		if !t.Valid() {
			return empty, &InvalidEnumError{Field: "type", Value: req.Type.Value}
		}
		c.Type = t
	}
	if req.Contractor.Present && !req.Contractor.Null {
		c.Contractor = req.Contractor.Value
	}
	if req.ContractNumber.Present {
		c.ContractNumber = req.ContractNumber.Ptr()
	}
	if req.StartDate.Present && !req.StartDate.Null {
		c.StartDate = req.StartDate.Value.Time
	}
	if req.EndDate.Present && !req.EndDate.Null {
		c.EndDate = req.EndDate.Value.Time
	}
	if req.Amount.Present {
		c.Amount = req.Amount.Ptr()
	}
	if req.PaymentFrequency.Present && !req.PaymentFrequency.Null {
		f := model.PaymentFrequency(req.PaymentFrequency.Value)
		if !f.Valid() {
			return empty, &InvalidEnumError{Field: "payment_frequency", Value: req.PaymentFrequency.Value}
		}
		c.PaymentFrequency = f
	}
	if req.Status.Present && !req.Status.Null {
		st := model.ContractStatus(req.Status.Value)
		if !st.Valid() {
			return empty, &InvalidEnumError{Field: "status", Value: req.Status.Value}
		}
		c.Status = st
	}
	if req.AutoRenew.Present && !req.AutoRenew.Null {
		c.AutoRenew = req.AutoRenew.Value
	}
	if req.Notes.Present {
		c.Notes = req.Notes.Ptr()
	}

	if err := s.contracts.Update(ctx, c); err != nil {
		return empty, err
	}
	return dto.ToContractResponse(c), nil
}

func (s *ContractService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.contracts.Delete(ctx, id)
}

// ExpireOverdue flips every ACTIVE contract whose end date has passed to
// EXPIRED. Running it twice in a row is a no-op the second time. Returns the
// number of contracts expired.
func (s *ContractService) ExpireOverdue(ctx context.Context, today time.Time) (int, error) {
	// end_date is a date column, so the cutoff must be midnight: a contract
	// ending today stays active for the whole day.
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	expired, err := s.contracts.ExpireOverdue(ctx, today)
	if err != nil {
		return 0, err
	}
	for _, c := range expired {
		s.log.Info().
			Str("contract_id", c.ID.String()).
			Str("end_date", c.EndDate.Format("2006-01-02")).
			Msg("contract expired")
	}
	return len(expired), nil
}
