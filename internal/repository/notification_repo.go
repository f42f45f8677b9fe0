package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/model"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Notification, error)
	ListForUser(ctx context.Context, userID uuid.UUID, f dto.NotificationFilter) ([]model.Notification, int64, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	// Exists reports whether an unread notification of the same type already
	// references the same entity, so sweeps do not pile up duplicates.
	Exists(ctx context.Context, userID uuid.UUID, typ model.NotificationType, entityID uuid.UUID) (bool, error)
	// Preferences returns ErrNotFound when the user never saved any; callers
	// treat that as both channels enabled.
	Preferences(ctx context.Context, userID uuid.UUID) (*model.NotificationPreference, error)
	SavePreferences(ctx context.Context, p *model.NotificationPreference) error
}

type notificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *model.Notification) error {
	return translate(r.db.WithContext(ctx).Create(n).Error)
}

func (r *notificationRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	var n model.Notification
	err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &n, nil
}

func (r *notificationRepo) ListForUser(ctx context.Context, userID uuid.UUID, f dto.NotificationFilter) ([]model.Notification, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Notification{}).Where("user_id = ?", userID)
	if f.UnreadOnly {
		q = q.Where("read = false")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notes []model.Notification
	err := q.Scopes(paginate(f.PageQuery)).Order("created_at DESC").Find(&notes).Error
	return notes, total, err
}

func (r *notificationRepo) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND read = false", userID).
		Count(&n).Error
	return n, err
}

func (r *notificationRepo) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *notificationRepo) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND read = false", userID).
		Update("read", true).Error
}

func (r *notificationRepo) Exists(ctx context.Context, userID uuid.UUID, typ model.NotificationType, entityID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND type = ? AND entity_id = ? AND read = false", userID, typ, entityID).
		Count(&n).Error
	return n > 0, err
}

func (r *notificationRepo) Preferences(ctx context.Context, userID uuid.UUID) (*model.NotificationPreference, error) {
	var p model.NotificationPreference
	err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *notificationRepo) SavePreferences(ctx context.Context, p *model.NotificationPreference) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email_enabled", "telegram_enabled", "updated_at"}),
	}).Create(p).Error
}
