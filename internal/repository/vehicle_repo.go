package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/model"
)

type VehicleRepository interface {
	Create(ctx context.Context, v *model.Vehicle) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (*model.Vehicle, error)
	GetByVIN(ctx context.Context, vin string) (*model.Vehicle, error)
	// GetForUpdate locks the vehicle row until the surrounding transaction
	// ends. tx may be nil in unit tests.
	GetForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Vehicle, error)
	List(ctx context.Context, f dto.VehicleFilter) ([]model.Vehicle, int64, error)
	// All returns the whole fleet, or one vehicle when vehicleID is set.
	// Reports aggregate over this without pagination.
	All(ctx context.Context, vehicleID *uuid.UUID) ([]model.Vehicle, error)
	Update(ctx context.Context, v *model.Vehicle) error
	UpdateMileage(ctx context.Context, tx *gorm.DB, id uuid.UUID, mileage int) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context) (map[model.VehicleStatus]int, error)
	DB() *gorm.DB
}

type vehicleRepo struct {
	db *gorm.DB
}

func NewVehicleRepo(db *gorm.DB) VehicleRepository {
	return &vehicleRepo{db: db}
}

func (r *vehicleRepo) Create(ctx context.Context, v *model.Vehicle) error {
	return translate(r.db.WithContext(ctx).Create(v).Error)
}

func (r *vehicleRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	var v model.Vehicle
	err := r.db.WithContext(ctx).Preload("AssignedDriver").First(&v, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *vehicleRepo) GetByPlate(ctx context.Context, plate string) (*model.Vehicle, error) {
	var v model.Vehicle
	err := r.db.WithContext(ctx).First(&v, "license_plate = ?", plate).Error
	if err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *vehicleRepo) GetByVIN(ctx context.Context, vin string) (*model.Vehicle, error) {
	var v model.Vehicle
	err := r.db.WithContext(ctx).First(&v, "vin = ?", vin).Error
	if err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *vehicleRepo) GetForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Vehicle, error) {
	var v model.Vehicle
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&v, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *vehicleRepo) List(ctx context.Context, f dto.VehicleFilter) ([]model.Vehicle, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Vehicle{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Brand != "" {
		q = q.Where("brand = ?", f.Brand)
	}
	if f.Department != "" {
		q = q.Where("department = ?", f.Department)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("license_plate ILIKE ? OR vin ILIKE ? OR brand ILIKE ? OR model ILIKE ?",
			like, like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var vehicles []model.Vehicle
	err := q.Preload("AssignedDriver").
		Scopes(paginate(f.PageQuery)).
		Order("created_at DESC").
		Find(&vehicles).Error
	return vehicles, total, err
}

func (r *vehicleRepo) All(ctx context.Context, vehicleID *uuid.UUID) ([]model.Vehicle, error) {
	q := r.db.WithContext(ctx).Model(&model.Vehicle{})
	if vehicleID != nil {
		q = q.Where("id = ?", *vehicleID)
	}
	var vehicles []model.Vehicle
	err := q.Order("license_plate ASC").Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepo) Update(ctx context.Context, v *model.Vehicle) error {
	return translate(r.db.WithContext(ctx).Save(v).Error)
}

func (r *vehicleRepo) UpdateMileage(ctx context.Context, tx *gorm.DB, id uuid.UUID, mileage int) error {
	return translate(tx.WithContext(ctx).Model(&model.Vehicle{}).
		Where("id = ?", id).
		Update("current_mileage", mileage).Error)
}

func (r *vehicleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Vehicle{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *vehicleRepo) CountByStatus(ctx context.Context) (map[model.VehicleStatus]int, error) {
	var rows []struct {
		Status model.VehicleStatus
		N      int
	}
	err := r.db.WithContext(ctx).Model(&model.Vehicle{}).
		Select("status, count(*) as n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[model.VehicleStatus]int, len(rows))
	for _, row := range rows {
		out[row.Status] = row.N
	}
	return out, nil
}

func (r *vehicleRepo) DB() *gorm.DB {
	return r.db
}
