package worker

// Delivers stored notifications over the out-of-band channels: email for
// every user, telegram when the user has linked a chat.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/dzhusipov/fleet-core/internal/infra"
	"github.com/dzhusipov/fleet-core/internal/repository"
)

type NotificationWorker struct {
	notifications repository.NotificationRepository
	users         repository.UserRepository
	mailer        *infra.Mailer
	telegram      *infra.TelegramClient
}

func NewNotificationWorker(
	notifications repository.NotificationRepository,
	users repository.UserRepository,
	mailer *infra.Mailer,
	telegram *infra.TelegramClient,
) *NotificationWorker {
	return &NotificationWorker{
		notifications: notifications,
		users:         users,
		mailer:        mailer,
		telegram:      telegram,
	}
}

// Process delivers one notification. A returned error triggers a retry, so
// only transport failures are propagated; a missing row is dropped silently
// (it was deleted between enqueue and delivery).
func (w *NotificationWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload NotificationPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notification_worker: invalid payload")
		return nil
	}

	n, err := w.notifications.GetByID(ctx, payload.NotificationID)
	if err != nil {
		if err == repository.ErrNotFound {
			log.Warn().Str("notification_id", payload.NotificationID.String()).
				Msg("notification_worker: notification vanished, skipping")
			return nil
		}
		return err
	}

	u, err := w.users.GetByID(ctx, n.UserID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil
		}
		return err
	}

	emailOn, telegramOn := true, true
	if pref, perr := w.notifications.Preferences(ctx, n.UserID); perr == nil {
		emailOn, telegramOn = pref.EmailEnabled, pref.TelegramEnabled
	} else if perr != repository.ErrNotFound {
		return perr
	}

	if w.mailer != nil && emailOn && u.Email != "" {
		if err := w.mailer.Send(u.Email, n.Title, n.Message); err != nil {
			return fmt.Errorf("email to %s: %w", u.Email, err)
		}
	}
	if w.telegram != nil && w.telegram.Enabled() && telegramOn && u.TelegramChatID != nil {
		if err := w.telegram.SendMessage(ctx, *u.TelegramChatID, n.Title+"\n"+n.Message); err != nil {
			return fmt.Errorf("telegram to chat %d: %w", *u.TelegramChatID, err)
		}
	}

	log.Info().
		Str("notification_id", n.ID.String()).
		Str("user_id", u.ID.String()).
		Msg("notification_worker: delivered")
	return nil
}
