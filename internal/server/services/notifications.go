package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lockerrelay/internal/common"
	"github.com/dmitrijs2005/lockerrelay/internal/logging"
	"github.com/dmitrijs2005/lockerrelay/internal/server/store"
)

// NotificationsPath is the store path holding the notifications of a locker.
func NotificationsPath(lockerID string) string {
	return fmt.Sprintf("lockers/%s/notifications", lockerID)
}

// NotificationService clears locker notifications.
type NotificationService struct {
	store  store.Store
	logger logging.Logger
}

func NewNotificationService(s store.Store, l logging.Logger) *NotificationService {
	return &NotificationService{store: s, logger: l.With("module", "notification_service")}
}

// Clear deletes every notification of lockerID with a single Remove call.
// An empty id yields common.ErrorValidation without touching the store.
// Store errors are returned unchanged.
//
// The caller's ownership of lockerID is not checked.
func (s *NotificationService) Clear(ctx context.Context, lockerID string) error {
	if lockerID == "" {
		return fmt.Errorf("%w: locker id is required", common.ErrorValidation)
	}

	if err := s.store.Remove(ctx, NotificationsPath(lockerID)); err != nil {
		s.logger.Error(ctx, "error clearing notifications", "locker_id", lockerID, "error", err.Error())
		return err
	}

	s.logger.Info(ctx, "notifications cleared", "locker_id", lockerID)
	return nil
}
