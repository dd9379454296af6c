// Package services contains server-side business logic: login against the
// user directory and clearing locker notifications in the store.
package services

import (
	"context"

	"github.com/dmitrijs2005/lockerrelay/internal/common"
	"github.com/dmitrijs2005/lockerrelay/internal/logging"
	"github.com/dmitrijs2005/lockerrelay/internal/server/users"
)

// LoginResult is returned on successful login.
type LoginResult struct {
	Username string
	LockerID string
}

// AuthService verifies credentials and resolves the caller's locker. It
// issues no sessions; every call is checked independently.
type AuthService struct {
	directory users.Directory
	logger    logging.Logger
}

func NewAuthService(d users.Directory, l logging.Logger) *AuthService {
	return &AuthService{directory: d, logger: l.With("module", "auth_service")}
}

// Login returns common.ErrorUnauthorized for an unknown user or a wrong
// password (the two are not distinguished) and common.ErrorNoLocker when the
// user is valid but owns no locker.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if !s.directory.Verify(username, password) {
		s.logger.Info(ctx, "login rejected", "username", username)
		return nil, common.ErrorUnauthorized
	}

	lockerID, ok := s.directory.LockerFor(username)
	if !ok {
		s.logger.Warn(ctx, "login without locker", "username", username)
		return nil, common.ErrorNoLocker
	}

	s.logger.Info(ctx, "login successful", "username", username, "locker_id", lockerID)
	return &LoginResult{Username: username, LockerID: lockerID}, nil
}
