package models

import "time"

// Activity event types.
const (
	ActivityRegister    = "REGISTER"
	ActivityLogin       = "LOGIN"
	ActivityLoginFailed = "LOGIN_FAILED"
	ActivityLogout      = "LOGOUT"
)

// ActivityEvent is a single account activity entry.
type ActivityEvent struct {
	EventID     string    `json:"event_id"`
	UserID      int       `json:"user_id,omitempty"` // 0 when no account matched
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // REGISTER | LOGIN | LOGIN_FAILED | LOGOUT
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
