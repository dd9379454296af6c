// Package users provides the read-only identity lookup used by login:
// password verification and user → locker ownership.
package users

import (
	"crypto/subtle"
	"errors"
	"fmt"
)

// Directory answers identity questions. Implementations must be safe for
// concurrent use.
type Directory interface {
	// Verify reports whether password is the password of username.
	Verify(username, password string) bool
	// LockerFor returns the locker owned by username.
	LockerFor(username string) (string, bool)
}

// StaticDirectory is a Directory over a fixed table. The table is never
// modified after construction.
type StaticDirectory struct {
	passwords map[string]string
	lockers   map[string]string
}

// NewStaticDirectory builds a directory from accounts. Usernames must be
// unique and non-empty.
func NewStaticDirectory(accounts []Account) (*StaticDirectory, error) {
	d := &StaticDirectory{
		passwords: make(map[string]string, len(accounts)),
		lockers:   make(map[string]string, len(accounts)),
	}

	for _, a := range accounts {
		if a.Username == "" {
			return nil, errors.New("empty username in user table")
		}
		if _, dup := d.passwords[a.Username]; dup {
			return nil, fmt.Errorf("duplicate username %q in user table", a.Username)
		}
		d.passwords[a.Username] = a.Password
		if a.LockerID != "" {
			d.lockers[a.Username] = a.LockerID
		}
	}

	return d, nil
}

// Verify is an exact byte-for-byte comparison.
func (d *StaticDirectory) Verify(username, password string) bool {
	want, ok := d.passwords[username]
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(want), []byte(password)) == 1
}

func (d *StaticDirectory) LockerFor(username string) (string, bool) {
	id, ok := d.lockers[username]
	return id, ok && id != ""
}
