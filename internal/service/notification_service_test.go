package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/i18n"
	"github.com/dzhusipov/fleet-core/internal/model"
	"github.com/dzhusipov/fleet-core/internal/repository"
)

// stubNotificationRepo keeps notifications in insertion order.
type stubNotificationRepo struct {
	notes []model.Notification
	prefs map[uuid.UUID]model.NotificationPreference
}

func (r *stubNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	r.notes = append(r.notes, *n)
	return nil
}

func (r *stubNotificationRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Notification, error) {
	for i := range r.notes {
		if r.notes[i].ID == id {
			return &r.notes[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubNotificationRepo) ListForUser(_ context.Context, _ uuid.UUID, _ dto.NotificationFilter) ([]model.Notification, int64, error) {
	return nil, 0, nil
}

func (r *stubNotificationRepo) UnreadCount(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, note := range r.notes {
		if note.UserID == userID && !note.Read {
			n++
		}
	}
	return n, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, userID, id uuid.UUID) error {
	for i := range r.notes {
		if r.notes[i].ID == id && r.notes[i].UserID == userID {
			r.notes[i].Read = true
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *stubNotificationRepo) MarkAllRead(_ context.Context, userID uuid.UUID) error {
	for i := range r.notes {
		if r.notes[i].UserID == userID {
			r.notes[i].Read = true
		}
	}
	return nil
}

func (r *stubNotificationRepo) Exists(_ context.Context, userID uuid.UUID, typ model.NotificationType, entityID uuid.UUID) (bool, error) {
	for _, n := range r.notes {
		if n.UserID == userID && n.Type == typ && n.EntityID != nil && *n.EntityID == entityID && !n.Read {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubNotificationRepo) Preferences(_ context.Context, userID uuid.UUID) (*model.NotificationPreference, error) {
	p, ok := r.prefs[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *stubNotificationRepo) SavePreferences(_ context.Context, p *model.NotificationPreference) error {
	if r.prefs == nil {
		r.prefs = make(map[uuid.UUID]model.NotificationPreference)
	}
	r.prefs[p.UserID] = *p
	return nil
}

var _ repository.NotificationRepository = (*stubNotificationRepo)(nil)

// stubDispatcher records enqueued notification IDs.
type stubDispatcher struct {
	enqueued []uuid.UUID
}

func (d *stubDispatcher) EnqueueNotification(_ context.Context, id uuid.UUID) error {
	d.enqueued = append(d.enqueued, id)
	return nil
}

var _ Dispatcher = (*stubDispatcher)(nil)

func notificationFixture(t *testing.T, users ...*model.User) (*NotificationService, *stubNotificationRepo, *stubDispatcher) {
	t.Helper()
	bundle, err := i18n.Load("en")
	require.NoError(t, err)
	repo := &stubNotificationRepo{}
	dispatcher := &stubDispatcher{}
	svc := NewNotificationService(repo, newStubUserRepo(users...), bundle, dispatcher, zerolog.Nop())
	return svc, repo, dispatcher
}

func TestNotifyRolesFansOutPerUser(t *testing.T) {
	admin := &model.User{Email: "a@x", Role: model.RoleAdmin, Language: "en", Active: true}
	manager := &model.User{Email: "m@x", Role: model.RoleFleetManager, Language: "ru", Active: true}
	driver := &model.User{Email: "d@x", Role: model.RoleDriver, Language: "en", Active: true}
	inactive := &model.User{Email: "i@x", Role: model.RoleAdmin, Language: "en", Active: false}

	svc, repo, dispatcher := notificationFixture(t, admin, manager, driver, inactive)

	vehicleID := uuid.New()
	err := svc.NotifyRoles(context.Background(),
		[]model.Role{model.RoleAdmin, model.RoleFleetManager},
		model.NotifyMileageAlert,
		"notification.title.mileage",
		"notification.mileage_jump",
		"vehicle", vehicleID,
		"KZ123ABC", 1500,
	)
	require.NoError(t, err)

	// driver and inactive admin are excluded
	require.Len(t, repo.notes, 2)
	assert.Len(t, dispatcher.enqueued, 2)

	byUser := make(map[uuid.UUID]model.Notification)
	for _, n := range repo.notes {
		byUser[n.UserID] = n
	}
	// messages localized per user language
	assert.NotEqual(t, byUser[admin.ID].Message, byUser[manager.ID].Message)
	assert.Contains(t, byUser[admin.ID].Message, "KZ123ABC")
}

func TestNotifyRolesSkipsUnreadDuplicates(t *testing.T) {
	admin := &model.User{Email: "a@x", Role: model.RoleAdmin, Language: "en", Active: true}
	svc, repo, dispatcher := notificationFixture(t, admin)

	contractID := uuid.New()
	for i := 0; i < 3; i++ {
		err := svc.NotifyRoles(context.Background(),
			[]model.Role{model.RoleAdmin},
			model.NotifyContractExpiring,
			"notification.title.contract",
			"notification.contract_expiring",
			"contract", contractID,
			"C-42", "Acme Leasing", "2026-09-30",
		)
		require.NoError(t, err)
	}

	assert.Len(t, repo.notes, 1)
	assert.Len(t, dispatcher.enqueued, 1)
}

func TestPreferencesDefaultToEnabled(t *testing.T) {
	admin := &model.User{Email: "a@x", Role: model.RoleAdmin, Language: "en", Active: true}
	svc, _, _ := notificationFixture(t, admin)

	prefs, err := svc.Preferences(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.True(t, prefs.EmailEnabled)
	assert.True(t, prefs.TelegramEnabled)
}

func TestUpdatePreferencesRoundTrip(t *testing.T) {
	admin := &model.User{Email: "a@x", Role: model.RoleAdmin, Language: "en", Active: true}
	svc, _, _ := notificationFixture(t, admin)

	saved, err := svc.UpdatePreferences(context.Background(), admin.ID, dto.NotificationPreferences{
		EmailEnabled:    false,
		TelegramEnabled: true,
	})
	require.NoError(t, err)
	assert.False(t, saved.EmailEnabled)

	prefs, err := svc.Preferences(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.False(t, prefs.EmailEnabled)
	assert.True(t, prefs.TelegramEnabled)
}

func TestNotifyRolesRaisesAgainAfterRead(t *testing.T) {
	admin := &model.User{Email: "a@x", Role: model.RoleAdmin, Language: "en", Active: true}
	svc, repo, _ := notificationFixture(t, admin)

	contractID := uuid.New()
	notify := func() {
		err := svc.NotifyRoles(context.Background(),
			[]model.Role{model.RoleAdmin},
			model.NotifyContractExpiring,
			"notification.title.contract",
			"notification.contract_expiring",
			"contract", contractID,
			"C-42", "Acme Leasing", "2026-09-30",
		)
		require.NoError(t, err)
	}

	notify()
	require.Len(t, repo.notes, 1)

	require.NoError(t, svc.MarkRead(context.Background(), admin.ID, repo.notes[0].ID))
	notify()
	assert.Len(t, repo.notes, 2)
}
