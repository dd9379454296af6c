package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/lockerrelay/internal/common"
	"github.com/dmitrijs2005/lockerrelay/internal/netx"
)

// LoginResult is what a successful login returns.
type LoginResult struct {
	Message  string
	Username string
	LockerID string
}

// Client is the API used by the CLI.
type Client interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	ClearNotifications(ctx context.Context, lockerID string) (string, error)
}

// HTTPClient implements Client against a lockerrelay server.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client for the server at baseURL. Each request is
// bounded by timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type clearRequest struct {
	LockerID string `json:"lockerId"`
}

// response covers every body shape the server sends.
type response struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	LockerID string `json:"lockerId"`
	Error    string `json:"error"`
	Details  string `json:"details"`
}

func (r *response) text() string {
	msg := r.Message
	if r.Error != "" {
		msg = r.Error
	}
	if r.Details != "" {
		msg += " " + r.Details
	}
	return msg
}

func (c *HTTPClient) post(ctx context.Context, path string, in any) (*response, error) {
	var out response
	status, err := netx.PostJSON(ctx, c.http, c.baseURL+path, in, &out)
	if err != nil {
		if status == 0 {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}

	switch {
	case status == http.StatusOK:
		return &out, nil
	case status == http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %s", common.ErrorValidation, out.text())
	case status == http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: %s", common.ErrorUnauthorized, out.text())
	case status == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s", common.ErrorNoLocker, out.text())
	case status >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: %s", common.ErrorInternal, out.text())
	default:
		return nil, fmt.Errorf("%w: status %d", ErrUnexpectedResponse, status)
	}
}

// Login checks username and password and returns the assigned locker.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	out, err := c.post(ctx, "/api/login", loginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	return &LoginResult{Message: out.Message, Username: out.Username, LockerID: out.LockerID}, nil
}

// ClearNotifications removes every notification stored for lockerID and
// returns the server's confirmation message.
func (c *HTTPClient) ClearNotifications(ctx context.Context, lockerID string) (string, error) {
	out, err := c.post(ctx, "/clear-notifications", clearRequest{LockerID: lockerID})
	if err != nil {
		return "", err
	}
	return out.Message, nil
}
