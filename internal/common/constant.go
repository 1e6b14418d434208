package common

// HTTP header names shared by the client and the reference server.
const (
	AuthHeaderName           = "Authorization"
	IdempotencyKeyHeaderName = "Idempotency-Key"
)

// API paths shared by the client and the reference server.
const (
	APIPrefix      = "/api/v1"
	HealthPath     = APIPrefix + "/health"
	EntriesPath    = APIPrefix + "/entries"
	RegisterPath   = APIPrefix + "/auth/register"
	LoginPath      = APIPrefix + "/auth/login"
	DefaultPageLen = 50
)
