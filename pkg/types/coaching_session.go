package types

type CoachingSessionStatus int8

const (
	SESSION_STATUS_ACTIVE CoachingSessionStatus = 1
	SESSION_STATUS_ENDED  CoachingSessionStatus = 2
)

// CoachingSession is the persisted row of one coaching conversation.
// The in-memory state machine lives in pkg/coach; this mirror is what
// survives process restarts and feeds the history endpoints.
type CoachingSession struct {
	ID            string                `json:"id" db:"id"`
	UserID        string                `json:"user_id" db:"user_id"`
	Mode          CoachingMode          `json:"mode" db:"mode"`
	Status        CoachingSessionStatus `json:"status" db:"status"`
	Title         string                `json:"title" db:"title"`
	Context       StringMap             `json:"context" db:"context"`
	Goals         StringList            `json:"goals" db:"goals"`
	ProgressNotes string                `json:"progress_notes" db:"progress_notes"`
	MessageCount  int                   `json:"message_count" db:"message_count"`
	StartTime     int64                 `json:"start_time" db:"start_time"`
	EndTime       int64                 `json:"end_time" db:"end_time"`
	CreatedAt     int64                 `json:"created_at" db:"created_at"`
}

type ChatMessage struct {
	ID        string          `json:"id" db:"id"`
	SessionID string          `json:"session_id" db:"session_id"`
	UserID    string          `json:"user_id" db:"user_id"`
	Role      MessageUserRole `json:"role" db:"role"`
	Message   string          `json:"message" db:"message"`
	SendTime  int64           `json:"send_time" db:"send_time"`
}

// SessionSummary is returned when a session ends.
type SessionSummary struct {
	SessionID     string       `json:"session_id"`
	Mode          CoachingMode `json:"mode"`
	Duration      string       `json:"duration"`
	MessageCount  int          `json:"message_count"`
	Goals         []string     `json:"goals"`
	ProgressNotes string       `json:"progress_notes"`
	Context       StringMap    `json:"context"`
}

// ReplyMetadata accompanies every assistant reply.
type ReplyMetadata struct {
	SessionID    string       `json:"session_id"`
	Mode         CoachingMode `json:"mode"`
	MessageCount int          `json:"message_count"`
	Timestamp    int64        `json:"timestamp"`
	TokensUsed   int          `json:"tokens_used"`
	Error        string       `json:"error,omitempty"`
}
