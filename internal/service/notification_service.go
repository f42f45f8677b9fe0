package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/i18n"
	"github.com/dzhusipov/fleet-core/internal/model"
	"github.com/dzhusipov/fleet-core/internal/repository"
)

// Dispatcher hands a stored notification to the async delivery pipeline.
// A nil Dispatcher leaves notifications in-app only.
type Dispatcher interface {
	EnqueueNotification(ctx context.Context, notificationID uuid.UUID) error
}

type NotificationService struct {
	notifications repository.NotificationRepository
	users         repository.UserRepository
	bundle        *i18n.Bundle
	dispatcher    Dispatcher
	log           zerolog.Logger
}

func NewNotificationService(
	notifications repository.NotificationRepository,
	users repository.UserRepository,
	bundle *i18n.Bundle,
	dispatcher Dispatcher,
	log zerolog.Logger,
) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		users:         users,
		bundle:        bundle,
		dispatcher:    dispatcher,
		log:           log,
	}
}

// NotifyRoles stores one notification per active user holding any of the
// given roles, localized to each user's language, and enqueues delivery.
// Users who already have an unread notification of the same type for the
// same entity are skipped.
func (s *NotificationService) NotifyRoles(
	ctx context.Context,
	roles []model.Role,
	typ model.NotificationType,
	titleKey, messageKey string,
	entityType string,
	entityID uuid.UUID,
	args ...any,
) error {
	users, err := s.users.ByRoles(ctx, roles...)
	if err != nil {
		return err
	}
	for _, u := range users {
		dup, err := s.notifications.Exists(ctx, u.ID, typ, entityID)
		if err != nil {
			return err
		}
		if dup {
			continue
		}
		et := entityType
		eid := entityID
		n := model.Notification{
			UserID:     u.ID,
			Type:       typ,
			Title:      s.bundle.T(u.Language, titleKey),
			Message:    s.bundle.T(u.Language, messageKey, args...),
			EntityType: &et,
			EntityID:   &eid,
		}
		if err := s.notifications.Create(ctx, &n); err != nil {
			return err
		}
		if s.dispatcher != nil {
			if err := s.dispatcher.EnqueueNotification(ctx, n.ID); err != nil {
				s.log.Error().Err(err).Str("notification_id", n.ID.String()).
					Msg("failed to enqueue notification delivery")
			}
		}
	}
	return nil
}

func (s *NotificationService) ListForUser(ctx context.Context, userID uuid.UUID, f dto.NotificationFilter) (dto.Page[dto.NotificationResponse], error) {
	f.Normalize()
	notes, total, err := s.notifications.ListForUser(ctx, userID, f)
	if err != nil {
		return dto.Page[dto.NotificationResponse]{}, err
	}
	items := make([]dto.NotificationResponse, len(notes))
	for i := range notes {
		items[i] = dto.ToNotificationResponse(&notes[i])
	}
	return dto.Page[dto.NotificationResponse]{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize}, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (dto.UnreadCountResponse, error) {
	n, err := s.notifications.UnreadCount(ctx, userID)
	if err != nil {
		return dto.UnreadCountResponse{}, err
	}
	return dto.UnreadCountResponse{Unread: n}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	return s.notifications.MarkRead(ctx, userID, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifications.MarkAllRead(ctx, userID)
}

// Preferences returns the user's delivery switches. Both channels stay
// enabled until the user saves a row.
func (s *NotificationService) Preferences(ctx context.Context, userID uuid.UUID) (dto.NotificationPreferences, error) {
	p, err := s.notifications.Preferences(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.NotificationPreferences{EmailEnabled: true, TelegramEnabled: true}, nil
		}
		return dto.NotificationPreferences{}, err
	}
	return dto.NotificationPreferences{EmailEnabled: p.EmailEnabled, TelegramEnabled: p.TelegramEnabled}, nil
}

func (s *NotificationService) UpdatePreferences(ctx context.Context, userID uuid.UUID, req dto.NotificationPreferences) (dto.NotificationPreferences, error) {
	p := model.NotificationPreference{
		UserID:          userID,
		EmailEnabled:    req.EmailEnabled,
		TelegramEnabled: req.TelegramEnabled,
	}
	if err := s.notifications.SavePreferences(ctx, &p); err != nil {
		return dto.NotificationPreferences{}, err
	}
	return req, nil
}
