package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/model"
)

type DriverRepository interface {
	Create(ctx context.Context, d *model.Driver) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Driver, error)
	List(ctx context.Context, f dto.DriverFilter) ([]model.Driver, int64, error)
	Update(ctx context.Context, d *model.Driver) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	// LicenseExpiringBy returns active drivers whose license expires on or
	// before the given date.
	LicenseExpiringBy(ctx context.Context, by time.Time) ([]model.Driver, error)
	MedicalExpiringBy(ctx context.Context, by time.Time) ([]model.Driver, error)
}

type driverRepo struct {
	db *gorm.DB
}

func NewDriverRepo(db *gorm.DB) DriverRepository {
	return &driverRepo{db: db}
}

func (r *driverRepo) Create(ctx context.Context, d *model.Driver) error {
	return translate(r.db.WithContext(ctx).Create(d).Error)
}

func (r *driverRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Driver, error) {
	var d model.Driver
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r *driverRepo) List(ctx context.Context, f dto.DriverFilter) ([]model.Driver, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Driver{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Department != "" {
		q = q.Where("department = ?", f.Department)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("full_name ILIKE ? OR employee_id ILIKE ? OR phone ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var drivers []model.Driver
	err := q.Scopes(paginate(f.PageQuery)).Order("full_name ASC").Find(&drivers).Error
	return drivers, total, err
}

func (r *driverRepo) Update(ctx context.Context, d *model.Driver) error {
	return translate(r.db.WithContext(ctx).Save(d).Error)
}

func (r *driverRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Driver{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *driverRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Driver{}).
		Where("status = ?", model.DriverActive).
		Count(&n).Error
	return n, err
}

func (r *driverRepo) LicenseExpiringBy(ctx context.Context, by time.Time) ([]model.Driver, error) {
	var drivers []model.Driver
	err := r.db.WithContext(ctx).
		Where("status = ? AND license_expiry IS NOT NULL AND license_expiry <= ?", model.DriverActive, by).
		Find(&drivers).Error
	return drivers, err
}

func (r *driverRepo) MedicalExpiringBy(ctx context.Context, by time.Time) ([]model.Driver, error) {
	var drivers []model.Driver
	err := r.db.WithContext(ctx).
		Where("status = ? AND medical_expiry IS NOT NULL AND medical_expiry <= ?", model.DriverActive, by).
		Find(&drivers).Error
	return drivers, err
}
