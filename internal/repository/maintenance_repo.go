package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/model"
)

type MaintenanceRepository interface {
	Create(ctx context.Context, m *model.MaintenanceRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.MaintenanceRecord, error)
	List(ctx context.Context, f dto.MaintenanceFilter) ([]model.MaintenanceRecord, int64, error)
	Update(ctx context.Context, m *model.MaintenanceRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Open returns every non-terminal record, newest first, for the board view.
	Open(ctx context.Context) ([]model.MaintenanceRecord, error)
	CountOpen(ctx context.Context) (int64, error)
	// ScheduledBetween returns SCHEDULED records whose date falls in the
	// window, used by the due-soon reminder sweep.
	ScheduledBetween(ctx context.Context, from, to time.Time) ([]model.MaintenanceRecord, error)
	// InWindow feeds the history and TCO reports. Zero times leave that bound
	// open; nil vehicleID means the whole fleet.
	InWindow(ctx context.Context, from, to time.Time, vehicleID *uuid.UUID) ([]model.MaintenanceRecord, error)
}

type maintenanceRepo struct {
	db *gorm.DB
}

func NewMaintenanceRepo(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepo{db: db}
}

func (r *maintenanceRepo) Create(ctx context.Context, m *model.MaintenanceRecord) error {
	return translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *maintenanceRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.MaintenanceRecord, error) {
	var m model.MaintenanceRecord
	err := r.db.WithContext(ctx).Preload("Vehicle").First(&m, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (r *maintenanceRepo) List(ctx context.Context, f dto.MaintenanceFilter) ([]model.MaintenanceRecord, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.MaintenanceRecord{})
	if f.VehicleID != "" {
		q = q.Where("vehicle_id = ?", f.VehicleID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.DateFrom != "" {
		q = q.Where("scheduled_date >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		q = q.Where("scheduled_date <= ?", f.DateTo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []model.MaintenanceRecord
	err := q.Preload("Vehicle").
		Scopes(paginate(f.PageQuery)).
		Order("scheduled_date DESC NULLS LAST, created_at DESC").
		Find(&records).Error
	return records, total, err
}

func (r *maintenanceRepo) Update(ctx context.Context, m *model.MaintenanceRecord) error {
	return translate(r.db.WithContext(ctx).Save(m).Error)
}

func (r *maintenanceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.MaintenanceRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *maintenanceRepo) Open(ctx context.Context) ([]model.MaintenanceRecord, error) {
	var records []model.MaintenanceRecord
	err := r.db.WithContext(ctx).Preload("Vehicle").
		Where("status IN ?", []model.MaintenanceStatus{
			model.MaintenanceScheduled, model.MaintenanceInProgress, model.MaintenanceCompleted,
		}).
		Order("scheduled_date DESC NULLS LAST").
		Find(&records).Error
	return records, err
}

func (r *maintenanceRepo) CountOpen(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.MaintenanceRecord{}).
		Where("status IN ?", []model.MaintenanceStatus{
			model.MaintenanceScheduled, model.MaintenanceInProgress,
		}).
		Count(&n).Error
	return n, err
}

func (r *maintenanceRepo) ScheduledBetween(ctx context.Context, from, to time.Time) ([]model.MaintenanceRecord, error) {
	var records []model.MaintenanceRecord
	err := r.db.WithContext(ctx).Preload("Vehicle").
		Where("status = ? AND scheduled_date BETWEEN ? AND ?", model.MaintenanceScheduled, from, to).
		Find(&records).Error
	return records, err
}

func (r *maintenanceRepo) InWindow(ctx context.Context, from, to time.Time, vehicleID *uuid.UUID) ([]model.MaintenanceRecord, error) {
	q := r.db.WithContext(ctx).Model(&model.MaintenanceRecord{})
	if !from.IsZero() {
		q = q.Where("scheduled_date >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("scheduled_date <= ?", to)
	}
	if vehicleID != nil {
		q = q.Where("vehicle_id = ?", *vehicleID)
	}
	var records []model.MaintenanceRecord
	err := q.Preload("Vehicle").
		Order("scheduled_date DESC NULLS LAST").
		Find(&records).Error
	return records, err
}
