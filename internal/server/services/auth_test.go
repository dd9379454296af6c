package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lockerrelay/internal/common"
	"github.com/dmitrijs2005/lockerrelay/internal/logging"
	"github.com/dmitrijs2005/lockerrelay/internal/server/users"
)

// ---- fakes ----

type fakeDirectory struct {
	passwords map[string]string
	lockers   map[string]string
	verified  []string
}

func (f *fakeDirectory) Verify(username, password string) bool {
	f.verified = append(f.verified, username)
	p, ok := f.passwords[username]
	return ok && p == password
}

func (f *fakeDirectory) LockerFor(username string) (string, bool) {
	id, ok := f.lockers[username]
	return id, ok
}

// ---- tests ----

func TestAuthService_Login(t *testing.T) {
	dir := &fakeDirectory{
		passwords: map[string]string{"user1": "pass1", "user2": "pass2"},
		lockers:   map[string]string{"user1": "LOCKER001"},
	}
	s := NewAuthService(dir, logging.Nop{})

	tests := []struct {
		name     string
		username string
		password string
		want     *LoginResult
		wantErr  error
	}{
		{name: "ok", username: "user1", password: "pass1", want: &LoginResult{Username: "user1", LockerID: "LOCKER001"}},
		{name: "wrong password", username: "user1", password: "wrong", wantErr: common.ErrorUnauthorized},
		{name: "unknown user", username: "ghost", password: "pass1", wantErr: common.ErrorUnauthorized},
		{name: "empty", wantErr: common.ErrorUnauthorized},
		{name: "no locker", username: "user2", password: "pass2", wantErr: common.ErrorNoLocker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthService_Login_StaticDirectory(t *testing.T) {
	dir, err := users.NewStaticDirectory(users.DefaultAccounts)
	require.NoError(t, err)
	s := NewAuthService(dir, logging.Nop{})

	got, err := s.Login(context.Background(), "user1", "pass1")
	require.NoError(t, err)
	assert.Equal(t, "LOCKER001", got.LockerID)

	_, err = s.Login(context.Background(), "user1", "wrong")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}
