package types

// AIImplementationPhase is the ordered rollout ladder for university AI
// projects. Advancement walks the list in order.
type AIImplementationPhase string

const (
	PHASE_ASSESSMENT   AIImplementationPhase = "assessment"
	PHASE_STRATEGY     AIImplementationPhase = "strategy"
	PHASE_PILOT        AIImplementationPhase = "pilot"
	PHASE_DEPLOYMENT   AIImplementationPhase = "deployment"
	PHASE_SCALING      AIImplementationPhase = "scaling"
	PHASE_OPTIMIZATION AIImplementationPhase = "optimization"
)

// ImplementationPhases in rollout order.
var ImplementationPhases = []AIImplementationPhase{
	PHASE_ASSESSMENT,
	PHASE_STRATEGY,
	PHASE_PILOT,
	PHASE_DEPLOYMENT,
	PHASE_SCALING,
	PHASE_OPTIMIZATION,
}

func (p AIImplementationPhase) Valid() bool {
	for _, v := range ImplementationPhases {
		if p == v {
			return true
		}
	}
	return false
}

// Next returns the following phase and false once the ladder is exhausted.
func (p AIImplementationPhase) Next() (AIImplementationPhase, bool) {
	for i, v := range ImplementationPhases {
		if p == v && i+1 < len(ImplementationPhases) {
			return ImplementationPhases[i+1], true
		}
	}
	return p, false
}

type AIUseCase string

const (
	USE_CASE_RESEARCH_ACCELERATION    AIUseCase = "research_acceleration"
	USE_CASE_AUTOMATED_GRADING        AIUseCase = "automated_grading"
	USE_CASE_PERSONALIZED_LEARNING    AIUseCase = "personalized_learning"
	USE_CASE_ADMINISTRATIVE_AUTOMATON AIUseCase = "administrative_automation"
	USE_CASE_DATA_ANALYTICS           AIUseCase = "data_analytics"
	USE_CASE_CONTENT_GENERATION       AIUseCase = "content_generation"
	USE_CASE_PREDICTIVE_MODELING      AIUseCase = "predictive_modeling"
)

type AIProject struct {
	ID               string                `json:"id" db:"id"`
	UserID           string                `json:"user_id" db:"user_id"`
	Title            string                `json:"title" db:"title"`
	Description      string                `json:"description" db:"description"`
	UseCase          AIUseCase             `json:"use_case" db:"use_case"`
	Phase            AIImplementationPhase `json:"phase" db:"phase"`
	Stakeholders     StringList            `json:"stakeholders" db:"stakeholders"`
	StartDate        int64                 `json:"start_date" db:"start_date"`
	TargetCompletion int64                 `json:"target_completion" db:"target_completion"`
	Budget           float64               `json:"budget" db:"budget"`
	SuccessCriteria  StringList            `json:"success_criteria" db:"success_criteria"`
	Risks            StringList            `json:"risks" db:"risks"`
	ProgressNotes    string                `json:"progress_notes" db:"progress_notes"`
	KPIs             FloatMap              `json:"kpis" db:"kpis"`
	CreatedAt        int64                 `json:"created_at" db:"created_at"`
	UpdatedAt        int64                 `json:"updated_at" db:"updated_at"`
}

// UpdateAIProjectArgs carries the editable project fields.
type UpdateAIProjectArgs struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Budget           float64    `json:"budget"`
	SuccessCriteria  StringList `json:"success_criteria"`
	Risks            StringList `json:"risks"`
	KPIs             FloatMap   `json:"kpis"`
	TargetCompletion int64      `json:"target_completion"`
}

type ChallengeStatus string

const (
	CHALLENGE_STATUS_OPEN        ChallengeStatus = "open"
	CHALLENGE_STATUS_IN_PROGRESS ChallengeStatus = "in_progress"
	CHALLENGE_STATUS_RESOLVED    ChallengeStatus = "resolved"
)

func (s ChallengeStatus) Valid() bool {
	switch s {
	case CHALLENGE_STATUS_OPEN, CHALLENGE_STATUS_IN_PROGRESS, CHALLENGE_STATUS_RESOLVED:
		return true
	}
	return false
}

// Challenge records an obstacle met during AI adoption. Severity is 1-10.
type Challenge struct {
	ID                   string          `json:"id" db:"id"`
	UserID               string          `json:"user_id" db:"user_id"`
	Title                string          `json:"title" db:"title"`
	Description          string          `json:"description" db:"description"`
	Category             string          `json:"category" db:"category"`
	Severity             int             `json:"severity" db:"severity"`
	StakeholdersAffected StringList      `json:"stakeholders_affected" db:"stakeholders_affected"`
	ProposedSolutions    StringList      `json:"proposed_solutions" db:"proposed_solutions"`
	Status               ChallengeStatus `json:"status" db:"status"`
	CreatedAt            int64           `json:"created_at" db:"created_at"`
	UpdatedAt            int64           `json:"updated_at" db:"updated_at"`
}

// RoadmapStage is one stage of the static implementation roadmap.
type RoadmapStage struct {
	Phase        string     `json:"phase"`
	Duration     string     `json:"duration"`
	Activities   StringList `json:"activities"`
	Deliverables StringList `json:"deliverables"`
}

// ImplementationStatus aggregates a user's AI rollout portfolio.
type ImplementationStatus struct {
	TotalProjects          int            `json:"total_projects"`
	ProjectsByPhase        map[string]int `json:"projects_by_phase"`
	OpenChallenges         int            `json:"open_challenges"`
	HighSeverityChallenges int            `json:"high_severity_challenges"`
}
