package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/model"
)

type ContractRepository interface {
	Create(ctx context.Context, c *model.Contract) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Contract, error)
	List(ctx context.Context, f dto.ContractFilter) ([]model.Contract, int64, error)
	Update(ctx context.Context, c *model.Contract) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ExpireOverdue flips every ACTIVE contract whose end date is strictly
	// before the given day to EXPIRED and returns the affected rows.
	ExpireOverdue(ctx context.Context, today time.Time) ([]model.Contract, error)
	// ExpiringBetween returns ACTIVE contracts ending inside the window, for
	// the expiry reminder sweep.
	ExpiringBetween(ctx context.Context, from, to time.Time) ([]model.Contract, error)
	CountExpiringBy(ctx context.Context, by time.Time) (int64, error)
}

type contractRepo struct {
	db *gorm.DB
}

func NewContractRepo(db *gorm.DB) ContractRepository {
	return &contractRepo{db: db}
}

func (r *contractRepo) Create(ctx context.Context, c *model.Contract) error {
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *contractRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	var c model.Contract
	err := r.db.WithContext(ctx).Preload("Vehicle").First(&c, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *contractRepo) List(ctx context.Context, f dto.ContractFilter) ([]model.Contract, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Contract{})
	if f.VehicleID != "" {
		q = q.Where("vehicle_id = ?", f.VehicleID)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ExpiringDays > 0 {
		by := time.Now().AddDate(0, 0, f.ExpiringDays)
		q = q.Where("status = ? AND end_date <= ?", model.ContractActive, by)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contracts []model.Contract
	err := q.Preload("Vehicle").
		Scopes(paginate(f.PageQuery)).
		Order("end_date ASC").
		Find(&contracts).Error
	return contracts, total, err
}

func (r *contractRepo) Update(ctx context.Context, c *model.Contract) error {
	return translate(r.db.WithContext(ctx).Save(c).Error)
}

func (r *contractRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Contract{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *contractRepo) ExpireOverdue(ctx context.Context, today time.Time) ([]model.Contract, error) {
	var expired []model.Contract
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Vehicle").
			Where("status = ? AND end_date < ?", model.ContractActive, today).
			Find(&expired).Error; err != nil {
			return err
		}
		if len(expired) == 0 {
			return nil
		}
		ids := make([]uuid.UUID, len(expired))
		for i, c := range expired {
			ids[i] = c.ID
		}
		return tx.Model(&model.Contract{}).
			Where("id IN ?", ids).
			Update("status", model.ContractExpired).Error
	})
	if err != nil {
		return nil, err
	}
	for i := range expired {
		expired[i].Status = model.ContractExpired
	}
	return expired, nil
}

func (r *contractRepo) ExpiringBetween(ctx context.Context, from, to time.Time) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.db.WithContext(ctx).Preload("Vehicle").
		Where("status = ? AND end_date BETWEEN ? AND ?", model.ContractActive, from, to).
		Find(&contracts).Error
	return contracts, err
}

func (r *contractRepo) CountExpiringBy(ctx context.Context, by time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Contract{}).
		Where("status = ? AND end_date <= ?", model.ContractActive, by).
		Count(&n).Error
	return n, err
}
