package types

type GoalType string

const (
	GOAL_TYPE_CAREER        GoalType = "career"
	GOAL_TYPE_HEALTH        GoalType = "health"
	GOAL_TYPE_RELATIONSHIPS GoalType = "relationships"
	GOAL_TYPE_LEARNING      GoalType = "learning"
	GOAL_TYPE_PERSONAL      GoalType = "personal"
	GOAL_TYPE_FINANCIAL     GoalType = "financial"
)

func (t GoalType) Valid() bool {
	switch t {
	case GOAL_TYPE_CAREER, GOAL_TYPE_HEALTH, GOAL_TYPE_RELATIONSHIPS,
		GOAL_TYPE_LEARNING, GOAL_TYPE_PERSONAL, GOAL_TYPE_FINANCIAL:
		return true
	}
	return false
}

// GoalStatus transitions are not-started -> in-progress -> completed, with
// paused/cancelled as side exits. Not strictly enforced; any caller may set
// any status.
type GoalStatus string

const (
	GOAL_STATUS_NOT_STARTED GoalStatus = "not_started"
	GOAL_STATUS_IN_PROGRESS GoalStatus = "in_progress"
	GOAL_STATUS_COMPLETED   GoalStatus = "completed"
	GOAL_STATUS_PAUSED      GoalStatus = "paused"
	GOAL_STATUS_CANCELLED   GoalStatus = "cancelled"
)

func (s GoalStatus) Valid() bool {
	switch s {
	case GOAL_STATUS_NOT_STARTED, GOAL_STATUS_IN_PROGRESS, GOAL_STATUS_COMPLETED,
		GOAL_STATUS_PAUSED, GOAL_STATUS_CANCELLED:
		return true
	}
	return false
}

type Goal struct {
	ID                 string     `json:"id" db:"id"`
	UserID             string     `json:"user_id" db:"user_id"`
	Title              string     `json:"title" db:"title"`
	Description        string     `json:"description" db:"description"`
	GoalType           GoalType   `json:"goal_type" db:"goal_type"`
	Status             GoalStatus `json:"status" db:"status"`
	TargetDate         int64      `json:"target_date" db:"target_date"`
	CompletionCriteria string     `json:"completion_criteria" db:"completion_criteria"`
	ProgressPercentage int        `json:"progress_percentage" db:"progress_percentage"`
	Milestones         StringList `json:"milestones" db:"milestones"`
	Notes              string     `json:"notes" db:"notes"`
	CreatedAt          int64      `json:"created_at" db:"created_at"`
	UpdatedAt          int64      `json:"updated_at" db:"updated_at"`
}

// GoalOverview aggregates a user's goal portfolio.
type GoalOverview struct {
	Total          int      `json:"total"`
	Completed      int      `json:"completed"`
	InProgress     int      `json:"in_progress"`
	NotStarted     int      `json:"not_started"`
	CompletionRate float64  `json:"completion_rate"`
	NeedAttention  []string `json:"need_attention"`
	Insights       []string `json:"insights"`
}
