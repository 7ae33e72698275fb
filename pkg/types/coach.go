package types

// CoachingMode selects which persona drives a session.
type CoachingMode string

const (
	MODE_PERSONAL   CoachingMode = "personal"
	MODE_UNIVERSITY CoachingMode = "university"
	MODE_HYBRID     CoachingMode = "hybrid"
)

func (m CoachingMode) Valid() bool {
	switch m {
	case MODE_PERSONAL, MODE_UNIVERSITY, MODE_HYBRID:
		return true
	}
	return false
}

// ExpertiseTier grades how deep the AI guidance injected into the persona
// should go. Ordered: basic < intermediate < advanced < expert.
type ExpertiseTier string

const (
	TIER_BASIC        ExpertiseTier = "basic"
	TIER_INTERMEDIATE ExpertiseTier = "intermediate"
	TIER_ADVANCED     ExpertiseTier = "advanced"
	TIER_EXPERT       ExpertiseTier = "expert"
)

type MessageUserRole int8

const (
	USER_ROLE_UNKNOWN   MessageUserRole = 0
	USER_ROLE_USER      MessageUserRole = 1
	USER_ROLE_ASSISTANT MessageUserRole = 2
	USER_ROLE_SYSTEM    MessageUserRole = 3
)

func (s MessageUserRole) String() string {
	switch s {
	case USER_ROLE_ASSISTANT:
		return "assistant"
	case USER_ROLE_USER:
		return "user"
	case USER_ROLE_SYSTEM:
		return "system"
	default:
		return "unknown"
	}
}

func GetMessageUserRole(r string) MessageUserRole {
	switch r {
	case "assistant":
		return USER_ROLE_ASSISTANT
	case "user":
		return USER_ROLE_USER
	case "system":
		return USER_ROLE_SYSTEM
	default:
		return USER_ROLE_UNKNOWN
	}
}

// MessageContext is one entry of the model-facing message list.
type MessageContext struct {
	Role    MessageUserRole `json:"role"`
	Content string          `json:"content"`
}
