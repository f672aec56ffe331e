package constants

// Context keys for values attached by the auth middleware.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
)

// Pagination bounds for the ticket list endpoint. A zero limit means
// "return everything", which is the default.
const (
	MinPage     = 1
	MaxPageSize = 100
)
