package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/model"
	"github.com/dzhusipov/fleet-core/internal/repository"
)

// jumpThreshold is the distance above which a single reading is flagged as
// suspicious. Flagged readings are still accepted.
const jumpThreshold = 1000

type MileageService struct {
	mileage       repository.MileageRepository
	vehicles      repository.VehicleRepository
	notifications *NotificationService
	log           zerolog.Logger
}

func NewMileageService(
	mileage repository.MileageRepository,
	vehicles repository.VehicleRepository,
	notifications *NotificationService,
	log zerolog.Logger,
) *MileageService {
	return &MileageService{
		mileage:       mileage,
		vehicles:      vehicles,
		notifications: notifications,
		log:           log,
	}
}

// Record ingests an odometer reading. The vehicle row is locked for the
// duration of the transaction, so concurrent submissions for the same vehicle
// serialize and the monotonic invariant holds: a reading below the latest
// accepted one is rejected and nothing is persisted. Readings that jump more
// than jumpThreshold above the baseline are accepted but flagged.
func (s *MileageService) Record(ctx context.Context, req dto.CreateMileageLogRequest, createdBy *uuid.UUID) (dto.MileageLogResponse, error) {
	var (
		resp    dto.MileageLogResponse
		plate   string
		flagged bool
		delta   int
	)

	err := repository.RunTx(ctx, s.mileage.DB(), func(tx *gorm.DB) error {
		v, err := s.vehicles.GetForUpdate(ctx, tx, req.VehicleID)
		if err != nil {
			return err
		}
		plate = v.LicensePlate

		baseline := v.CurrentMileage
		latest, err := s.mileage.Latest(ctx, tx, req.VehicleID)
		switch {
		case err == nil:
			if latest.Mileage > baseline {
				baseline = latest.Mileage
			}
		case errors.Is(err, repository.ErrNotFound):
			// first reading, baseline stays at the vehicle odometer
		default:
			return err
		}

		if req.Mileage < baseline {
			return &MileageDecreaseError{Latest: baseline, Proposed: req.Mileage}
		}

		delta = req.Mileage - baseline
		flagged = delta > jumpThreshold

		entry := model.MileageLog{
			VehicleID: req.VehicleID,
			DriverID:  req.DriverID,
			Mileage:   req.Mileage,
			Date:      req.Date.Time,
			Notes:     req.Notes,
			CreatedBy: createdBy,
		}
		if err := s.mileage.Insert(ctx, tx, &entry); err != nil {
			return err
		}
		if req.Mileage > v.CurrentMileage {
			if err := s.vehicles.UpdateMileage(ctx, tx, req.VehicleID, req.Mileage); err != nil {
				return err
			}
		}

		resp = dto.ToMileageLogResponse(&entry)
		return nil
	})
	if err != nil {
		return dto.MileageLogResponse{}, err
	}

	resp.Distance = &delta
	resp.Flagged = flagged

	if flagged {
		s.log.Warn().
			Str("vehicle_id", req.VehicleID.String()).
			Str("license_plate", plate).
			Int("delta", delta).
			Msg("suspicious mileage jump")
		if s.notifications != nil {
			nerr := s.notifications.NotifyRoles(ctx,
				[]model.Role{model.RoleAdmin, model.RoleFleetManager},
				model.NotifyMileageAlert,
				"notification.title.mileage",
				"notification.mileage_jump",
				"vehicle", req.VehicleID,
				plate, delta,
			)
			if nerr != nil {
				s.log.Error().Err(nerr).Msg("failed to raise mileage alert")
			}
		}
	}

	return resp, nil
}

// RecordBulk ingests a batch of readings, one transaction each. A validation
// failure rejects only the offending entry; an infrastructure error aborts
// the rest of the batch.
func (s *MileageService) RecordBulk(ctx context.Context, req dto.BulkMileageRequest, createdBy *uuid.UUID) (dto.BulkMileageResult, error) {
	result := dto.BulkMileageResult{
		Accepted: make([]dto.MileageLogResponse, 0, len(req.Entries)),
		Rejected: make([]dto.BulkMileageError, 0),
	}
	for i, entry := range req.Entries {
		resp, err := s.Record(ctx, entry, createdBy)
		if err != nil {
			var decrease *MileageDecreaseError
			if errors.As(err, &decrease) || errors.Is(err, repository.ErrNotFound) {
				result.Rejected = append(result.Rejected, dto.BulkMileageError{
					Index:     i,
					VehicleID: entry.VehicleID,
					Error:     err.Error(),
				})
				continue
			}
			return dto.BulkMileageResult{}, err
		}
		result.Accepted = append(result.Accepted, resp)
	}
	return result, nil
}

func (s *MileageService) List(ctx context.Context, f dto.MileageFilter) (dto.Page[dto.MileageLogResponse], error) {
	f.Normalize()
	logs, total, err := s.mileage.List(ctx, f)
	if err != nil {
		return dto.Page[dto.MileageLogResponse]{}, err
	}
	items := make([]dto.MileageLogResponse, len(logs))
	for i := range logs {
		items[i] = dto.ToMileageLogResponse(&logs[i])
	}
	return dto.Page[dto.MileageLogResponse]{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize}, nil
}
