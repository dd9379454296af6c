// Package credentials resolves the service account the relay uses to talk to
// Firebase. The account comes either from an inline JSON value or from a key
// file; it must carry a project id, which also names the database.
package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"

	"github.com/dmitrijs2005/lockerrelay/internal/logging"
	"github.com/dmitrijs2005/lockerrelay/internal/server/config"
)

const serviceAccountType = "service_account"

// Scopes requested for Realtime Database access.
var Scopes = []string{
	"https://www.googleapis.com/auth/cloud-platform",
	"https://www.googleapis.com/auth/firebase.database",
	"https://www.googleapis.com/auth/userinfo.email",
}

var (
	ErrNoCredentials      = fmt.Errorf("no service account configured: set %s or %s", config.EnvCredentialsJSON, config.EnvCredentialsPath)
	ErrInvalidCredentials = errors.New("invalid service account")
	ErrNoProjectID        = errors.New("project_id not found in service account")
)

// Credentials is a parsed service account. It is immutable after Load.
type Credentials struct {
	ProjectID   string
	ClientEmail string
	// Source describes where the account came from, for diagnostics.
	Source string
	JSON   []byte
	Google *google.Credentials
}

type serviceAccountFile struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

// Load resolves the service account from cfg. Inline JSON takes precedence;
// the key file path is only consulted when no inline value is set.
func Load(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Credentials, error) {
	if cfg.CredentialsJSON != "" {
		creds, err := Parse(ctx, []byte(cfg.CredentialsJSON), config.EnvCredentialsJSON)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", config.EnvCredentialsJSON, err)
		}
		logger.Info(ctx, "service account loaded", "source", config.EnvCredentialsJSON, "project_id", creds.ProjectID)
		return creds, nil
	}

	if cfg.CredentialsPath == "" {
		return nil, ErrNoCredentials
	}

	data, err := readFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("loading service account key from %s: %w: %w", cfg.CredentialsPath, ErrInvalidCredentials, err)
	}

	creds, err := Parse(ctx, data, "file:"+cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("loading service account key from %s: %w", cfg.CredentialsPath, err)
	}
	logger.Info(ctx, "service account loaded", "source", "file", "path", cfg.CredentialsPath, "project_id", creds.ProjectID)
	return creds, nil
}

// Parse decodes a service-account JSON document.
func Parse(ctx context.Context, data []byte, source string) (*Credentials, error) {
	var f serviceAccountFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	if f.ProjectID == "" {
		return nil, ErrNoProjectID
	}
	if f.Type != serviceAccountType {
		return nil, fmt.Errorf("%w: type %q, want %q", ErrInvalidCredentials, f.Type, serviceAccountType)
	}
	if f.ClientEmail == "" || f.PrivateKey == "" {
		return nil, fmt.Errorf("%w: client_email and private_key are required", ErrInvalidCredentials)
	}

	gc, err := google.CredentialsFromJSON(ctx, data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	return &Credentials{
		ProjectID:   f.ProjectID,
		ClientEmail: f.ClientEmail,
		Source:      source,
		JSON:        data,
		Google:      gc,
	}, nil
}
