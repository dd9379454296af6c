// Package client talks to the lockerrelay HTTP API.
//
// # Overview
//
// Client is the transport-agnostic contract used by the CLI (Login and
// ClearNotifications). HTTPClient implements it over JSON/HTTP.
//
// # Error Handling
//
// Responses are mapped to sentinel errors that callers match with errors.Is:
// ErrUnavailable for transport failures, and common.ErrorUnauthorized,
// common.ErrorNoLocker, common.ErrorValidation and common.ErrorInternal for
// 401, 403, 400 and 5xx answers. The server's message is kept in the error text.
package client
