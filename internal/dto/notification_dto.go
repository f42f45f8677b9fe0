package dto

import (
	"github.com/google/uuid"

	"github.com/dzhusipov/fleet-core/internal/model"
)

type NotificationFilter struct {
	PageQuery
	UnreadOnly bool `form:"unread_only"`
}

type NotificationResponse struct {
	ID         uuid.UUID  `json:"id"`
	Type       string     `json:"type"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	EntityType *string    `json:"entity_type"`
	EntityID   *uuid.UUID `json:"entity_id"`
	Read       bool       `json:"read"`
	CreatedAt  string     `json:"created_at"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

// NotificationPreferences is both the PUT body and the response for the
// per-user delivery channel switches.
type NotificationPreferences struct {
	EmailEnabled    bool `json:"email_enabled"`
	TelegramEnabled bool `json:"telegram_enabled"`
}

func ToNotificationResponse(n *model.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID,
		Type:       string(n.Type),
		Title:      n.Title,
		Message:    n.Message,
		EntityType: n.EntityType,
		EntityID:   n.EntityID,
		Read:       n.Read,
		CreatedAt:  n.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
