package tracker

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format for exercise dates. Clients string-match it,
// so it is a contract, not a presentation choice.
const DateLayout = "Mon Jan 02 2006"

// Exercise is a single log entry owned by a user. It has no identity of its
// own and is persisted embedded in the user's log.
type Exercise struct {
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        time.Time `json:"date"`
}

// User represents a tracked user with an append-only exercise log
type User struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Log       []Exercise `json:"log"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Username string `json:"username" form:"username"`
}

// UserResponse is the projected user shape returned by the user endpoints
type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}

// ExerciseInput carries the raw, loosely-typed exercise fields exactly as
// they arrived. Duration may be a JSON number or a numeric string; nothing
// here has been validated yet.
type ExerciseInput struct {
	Description string `json:"description" form:"description"`
	Duration    any    `json:"duration" form:"duration"`
	Date        string `json:"date" form:"date"`
}

// ExerciseResponse is returned after a successful append
type ExerciseResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogQuery carries the raw from/to/limit query parameters for a log lookup
type LogQuery struct {
	From  string
	To    string
	Limit string
}

// LogEntry is the output form of one exercise in a log response
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse is the filtered, ordered, truncated view of a user's log
type LogResponse struct {
	Username string     `json:"username"`
	Count    int        `json:"count"`
	ID       string     `json:"id"`
	Log      []LogEntry `json:"log"`
}
