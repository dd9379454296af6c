package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lockerrelay/internal/common"
	"github.com/dmitrijs2005/lockerrelay/internal/logging"
	"github.com/dmitrijs2005/lockerrelay/internal/server/store"
)

func TestNotificationsPath(t *testing.T) {
	assert.Equal(t, "lockers/LOCKER001/notifications", NotificationsPath("LOCKER001"))
}

func TestNotificationService_Clear(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	m := store.NewMemoryStore()
	m.Set("lockers/LOCKER001/notifications/-N1", map[string]any{"msg": "parcel delivered"})
	m.Set("lockers/LOCKER001/owner", "user1")
	s := NewNotificationService(m, log)

	require.NoError(t, s.Clear(context.Background(), "LOCKER001"))

	_, ok := m.Get("lockers/LOCKER001/notifications")
	assert.False(t, ok)
	_, ok = m.Get("lockers/LOCKER001/owner")
	assert.True(t, ok)
	assert.Equal(t, []string{"lockers/LOCKER001/notifications"}, m.Removed())
	assert.Contains(t, buf.String(), "locker_id=LOCKER001")
}

func TestNotificationService_Clear_EmptyID(t *testing.T) {
	m := store.NewMemoryStore()
	s := NewNotificationService(m, logging.Nop{})

	err := s.Clear(context.Background(), "")
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Empty(t, m.Removed(), "no store call for an empty id")
}

func TestNotificationService_Clear_StoreError(t *testing.T) {
	m := store.NewMemoryStore()
	boom := errors.New("Permission denied")
	m.FailWith(boom)
	s := NewNotificationService(m, logging.Nop{})

	err := s.Clear(context.Background(), "LOCKER001")
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "Permission denied", err.Error(), "store errors are not re-wrapped")
	assert.Len(t, m.Removed(), 1)
}

func TestNotificationService_Clear_UnknownLockerAccepted(t *testing.T) {
	m := store.NewMemoryStore()
	s := NewNotificationService(m, logging.Nop{})

	require.NoError(t, s.Clear(context.Background(), "SOMEONE-ELSES"))
	assert.Equal(t, []string{"lockers/SOMEONE-ELSES/notifications"}, m.Removed())
}
