package middleware

// contextKey is the type of keys this package stores in Gin and request contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("request_logger")
	requestIDKey = contextKey("request_id")
)

// requestIDHeader carries the request id in and out of the service.
const requestIDHeader = "X-Request-ID"
