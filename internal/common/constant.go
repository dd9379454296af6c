package common

// RequestIDHeaderName is the HTTP header carrying the request correlation id.
// The server echoes it back and generates one when the caller did not send it.
const RequestIDHeaderName = "X-Request-ID"
