package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/model"
	"github.com/dzhusipov/fleet-core/internal/repository"
)

type MaintenanceService struct {
	records  repository.MaintenanceRepository
	vehicles repository.VehicleRepository
}

func NewMaintenanceService(records repository.MaintenanceRepository, vehicles repository.VehicleRepository) *MaintenanceService {
	return &MaintenanceService{records: records, vehicles: vehicles}
}

func (s *MaintenanceService) Create(ctx context.Context, req dto.CreateMaintenanceRequest, createdBy *uuid.UUID) (dto.MaintenanceResponse, error) {
	var empty dto.MaintenanceResponse

	typ := model.MaintenanceType(req.Type)
	if !typ.Valid() {
		return empty, &InvalidEnumError{Field: "type", Value: req.Type}
	}
	if _, err := s.vehicles.GetByID(ctx, req.VehicleID); err != nil {
		return empty, err
	}

	m := model.MaintenanceRecord{
		VehicleID:          req.VehicleID,
		Type:               typ,
		Title:              req.Title,
		Description:        req.Description,
		Status:             model.MaintenanceScheduled,
		ScheduledDate:      dto.TimePtr(req.ScheduledDate),
		MileageAtService:   req.MileageAtService,
		NextServiceMileage: req.NextServiceMileage,
		NextServiceDate:    dto.TimePtr(req.NextServiceDate),
		Cost:               req.Cost,
		ServiceProvider:    req.ServiceProvider,
		CreatedBy:          createdBy,
	}
	if err := s.records.Create(ctx, &m); err != nil {
		return empty, err
	}
	return dto.ToMaintenanceResponse(&m), nil
}

func (s *MaintenanceService) Get(ctx context.Context, id uuid.UUID) (dto.MaintenanceResponse, error) {
	m, err := s.records.GetByID(ctx, id)
	if err != nil {
		return dto.MaintenanceResponse{}, err
	}
	return dto.ToMaintenanceResponse(m), nil
}

func (s *MaintenanceService) List(ctx context.Context, f dto.MaintenanceFilter) (dto.Page[dto.MaintenanceResponse], error) {
	f.Normalize()
	records, total, err := s.records.List(ctx, f)
	if err != nil {
		return dto.Page[dto.MaintenanceResponse]{}, err
	}
	items := make([]dto.MaintenanceResponse, len(records))
	for i := range records {
		items[i] = dto.ToMaintenanceResponse(&records[i])
	}
	return dto.Page[dto.MaintenanceResponse]{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize}, nil
}

func validTransition(from, to model.MaintenanceStatus) bool {
	switch from {
	case model.MaintenanceScheduled:
		return to == model.MaintenanceInProgress || to == model.MaintenanceCompleted || to == model.MaintenanceCancelled
	case model.MaintenanceInProgress:
		return to == model.MaintenanceCompleted || to == model.MaintenanceCancelled
	}
	return false
}

func (s *MaintenanceService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateMaintenanceRequest) (dto.MaintenanceResponse, error) {
	var empty dto.MaintenanceResponse

	m, err := s.records.GetByID(ctx, id)
	if err != nil {
		return empty, err
	}

	if req.Status.Present && !req.Status.Null {
		st := model.MaintenanceStatus(req.Status.Value)
		if !st.Valid() {
			return empty, &InvalidEnumError{Field: "status", Value: req.Status.Value}
		}
		if st != m.Status {
			if !validTransition(m.Status, st) {
				return empty, ErrTerminalStatus
			}
			m.Status = st
		}
	}
	if req.Type.Present && !req.Type.Null {
		t := model.MaintenanceType(req.Type.Value)
		if !t.Valid() {
			return empty, &InvalidEnumError{Field: "type", Value: req.Type.Value}
		}
		m.Type = t
	}
	if req.Title.Present && !req.Title.Null {
		m.Title = req.Title.Value
	}
	if req.Description.Present {
		m.Description = req.Description.Ptr()
	}
	if req.ScheduledDate.Present {
		m.ScheduledDate = dto.TimePtr(req.ScheduledDate.Ptr())
	}
	if req.MileageAtService.Present {
		m.MileageAtService = req.MileageAtService.Ptr()
	}
	if req.NextServiceMileage.Present {
		m.NextServiceMileage = req.NextServiceMileage.Ptr()
	}
	if req.NextServiceDate.Present {
		m.NextServiceDate = dto.TimePtr(req.NextServiceDate.Ptr())
	}
	if req.Cost.Present {
		m.Cost = req.Cost.Ptr()
	}
	if req.ServiceProvider.Present {
		m.ServiceProvider = req.ServiceProvider.Ptr()
	}
	if req.PerformedBy.Present {
		m.PerformedBy = req.PerformedBy.Ptr()
	}

	if err := s.records.Update(ctx, m); err != nil {
		return empty, err
	}
	return dto.ToMaintenanceResponse(m), nil
}

// Complete closes a record in one call: status, completion date, final cost
// and performer.
func (s *MaintenanceService) Complete(ctx context.Context, id uuid.UUID, req dto.CompleteMaintenanceRequest) (dto.MaintenanceResponse, error) {
	var empty dto.MaintenanceResponse

	m, err := s.records.GetByID(ctx, id)
	if err != nil {
		return empty, err
	}
	if !validTransition(m.Status, model.MaintenanceCompleted) {
		return empty, ErrTerminalStatus
	}

	m.Status = model.MaintenanceCompleted
	t := req.CompletedDate.Time
	m.CompletedDate = &t
	if req.Cost != nil {
		m.Cost = req.Cost
	}
	if req.PerformedBy != nil {
		m.PerformedBy = req.PerformedBy
	}
	if req.MileageAtService != nil {
		m.MileageAtService = req.MileageAtService
	}

	if err := s.records.Update(ctx, m); err != nil {
		return empty, err
	}
	return dto.ToMaintenanceResponse(m), nil
}

func (s *MaintenanceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.records.Delete(ctx, id)
}

// Kanban groups open records into board columns.
func (s *MaintenanceService) Kanban(ctx context.Context) (dto.KanbanBoard, error) {
	records, err := s.records.Open(ctx)
	if err != nil {
		return dto.KanbanBoard{}, err
	}
	board := dto.KanbanBoard{
		Scheduled:  []dto.MaintenanceResponse{},
		InProgress: []dto.MaintenanceResponse{},
		Completed:  []dto.MaintenanceResponse{},
	}
	for i := range records {
		resp := dto.ToMaintenanceResponse(&records[i])
		switch records[i].Status {
		case model.MaintenanceScheduled:
			board.Scheduled = append(board.Scheduled, resp)
		case model.MaintenanceInProgress:
			board.InProgress = append(board.InProgress, resp)
		case model.MaintenanceCompleted:
			board.Completed = append(board.Completed, resp)
		}
	}
	return board, nil
}
