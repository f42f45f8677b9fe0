package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/model"
)

type MileageRepository interface {
	// Insert writes a reading inside the caller's transaction. tx may be nil
	// in unit tests.
	Insert(ctx context.Context, tx *gorm.DB, m *model.MileageLog) error
	// Latest returns the highest reading for the vehicle, or ErrNotFound when
	// none exist yet. Runs inside the caller's transaction so it observes the
	// vehicle row lock.
	Latest(ctx context.Context, tx *gorm.DB, vehicleID uuid.UUID) (*model.MileageLog, error)
	List(ctx context.Context, f dto.MileageFilter) ([]model.MileageLog, int64, error)
	DB() *gorm.DB
}

type mileageRepo struct {
	db *gorm.DB
}

func NewMileageRepo(db *gorm.DB) MileageRepository {
	return &mileageRepo{db: db}
}

func (r *mileageRepo) Insert(ctx context.Context, tx *gorm.DB, m *model.MileageLog) error {
	return translate(tx.WithContext(ctx).Create(m).Error)
}

func (r *mileageRepo) Latest(ctx context.Context, tx *gorm.DB, vehicleID uuid.UUID) (*model.MileageLog, error) {
	var m model.MileageLog
	err := tx.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("mileage DESC").
		First(&m).Error
	if err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (r *mileageRepo) List(ctx context.Context, f dto.MileageFilter) ([]model.MileageLog, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.MileageLog{})
	if f.VehicleID != "" {
		q = q.Where("vehicle_id = ?", f.VehicleID)
	}
	if f.DateFrom != "" {
		q = q.Where("date >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		q = q.Where("date <= ?", f.DateTo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []model.MileageLog
	err := q.Scopes(paginate(f.PageQuery)).
		Order("date DESC, mileage DESC").
		Find(&logs).Error
	return logs, total, err
}

func (r *mileageRepo) DB() *gorm.DB {
	return r.db
}
