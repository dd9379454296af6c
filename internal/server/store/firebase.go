package store

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"github.com/dmitrijs2005/lockerrelay/internal/server/credentials"
)

// DatabaseURL returns the default Realtime Database URL for a project.
func DatabaseURL(projectID string) string {
	return fmt.Sprintf("https://%s.firebaseio.com", projectID)
}

// FirebaseStore is a Store backed by Firebase Realtime Database.
type FirebaseStore struct {
	client *db.Client
	url    string
}

// NewFirebaseStore builds a database client for creds. When databaseURL is
// empty the project's default database is used. No request is made here, so
// an unreachable database only shows up on the first Remove.
func NewFirebaseStore(ctx context.Context, creds *credentials.Credentials, databaseURL string) (*FirebaseStore, error) {
	if databaseURL == "" {
		databaseURL = DatabaseURL(creds.ProjectID)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		DatabaseURL: databaseURL,
		ProjectID:   creds.ProjectID,
	}, option.WithCredentials(creds.Google))
	if err != nil {
		return nil, fmt.Errorf("firebase app init: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase database init: %w", err)
	}

	return &FirebaseStore{client: client, url: databaseURL}, nil
}

// URL returns the database URL the store talks to.
func (s *FirebaseStore) URL() string {
	return s.url
}

func (s *FirebaseStore) Remove(ctx context.Context, path string) error {
	return s.client.NewRef(path).Delete(ctx)
}
