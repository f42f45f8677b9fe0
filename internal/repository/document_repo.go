package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/model"
)

type DocumentRepository interface {
	Create(ctx context.Context, d *model.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Document, error)
	List(ctx context.Context, f dto.DocumentFilter) ([]model.Document, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, d *model.Document) error {
	return translate(r.db.WithContext(ctx).Create(d).Error)
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	var d model.Document
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r *documentRepo) List(ctx context.Context, f dto.DocumentFilter) ([]model.Document, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Document{})
	if f.EntityType != "" {
		q = q.Where("entity_type = ?", f.EntityType)
	}
	if f.EntityID != "" {
		q = q.Where("entity_id = ?", f.EntityID)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var docs []model.Document
	err := q.Scopes(paginate(f.PageQuery)).Order("created_at DESC").Find(&docs).Error
	return docs, total, err
}

func (r *documentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Document{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
