package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/model"
)

type ExpenseRepository interface {
	Create(ctx context.Context, e *model.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Expense, error)
	List(ctx context.Context, f dto.ExpenseFilter) ([]model.Expense, int64, error)
	Update(ctx context.Context, e *model.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	// InWindow returns every expense inside the date window, both bounds
	// inclusive, scoped to one vehicle when vehicleID is set. Zero times leave
	// that bound open.
	InWindow(ctx context.Context, from, to time.Time, vehicleID *uuid.UUID) ([]model.Expense, error)
}

type expenseRepo struct {
	db *gorm.DB
}

func NewExpenseRepo(db *gorm.DB) ExpenseRepository {
	return &expenseRepo{db: db}
}

func (r *expenseRepo) Create(ctx context.Context, e *model.Expense) error {
	return translate(r.db.WithContext(ctx).Create(e).Error)
}

func (r *expenseRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Expense, error) {
	var e model.Expense
	err := r.db.WithContext(ctx).Preload("Vehicle").First(&e, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *expenseRepo) List(ctx context.Context, f dto.ExpenseFilter) ([]model.Expense, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Expense{})
	if f.VehicleID != "" {
		q = q.Where("vehicle_id = ?", f.VehicleID)
	}
	if f.DriverID != "" {
		q = q.Where("driver_id = ?", f.DriverID)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
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

	var expenses []model.Expense
	err := q.Preload("Vehicle").
		Scopes(paginate(f.PageQuery)).
		Order("date DESC, created_at DESC").
		Find(&expenses).Error
	return expenses, total, err
}

func (r *expenseRepo) Update(ctx context.Context, e *model.Expense) error {
	return translate(r.db.WithContext(ctx).Save(e).Error)
}

func (r *expenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Expense{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *expenseRepo) InWindow(ctx context.Context, from, to time.Time, vehicleID *uuid.UUID) ([]model.Expense, error) {
	q := r.db.WithContext(ctx).Model(&model.Expense{})
	if !from.IsZero() {
		q = q.Where("date >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("date <= ?", to)
	}
	if vehicleID != nil {
		q = q.Where("vehicle_id = ?", *vehicleID)
	}
	var expenses []model.Expense
	err := q.Order("date ASC").Find(&expenses).Error
	return expenses, err
}
