package types

// UsageRecord is one model call in the cost ledger.
type UsageRecord struct {
	Timestamp        string       `json:"timestamp" db:"timestamp"`
	Model            string       `json:"model" db:"model"`
	PromptTokens     int          `json:"prompt_tokens" db:"prompt_tokens"`
	CompletionTokens int          `json:"completion_tokens" db:"completion_tokens"`
	TotalTokens      int          `json:"total_tokens" db:"total_tokens"`
	CostUSD          float64      `json:"cost_usd" db:"cost_usd"`
	SessionID        string       `json:"session_id" db:"session_id"`
	Mode             CoachingMode `json:"mode" db:"mode"`
}

// UsageSummary is the reduced view over a ledger time range.
type UsageSummary struct {
	TotalRequests int                  `json:"total_requests"`
	TotalTokens   int                  `json:"total_tokens"`
	TotalCostUSD  float64              `json:"total_cost_usd"`
	TotalCostSEK  float64              `json:"total_cost_sek"`
	ByMode        map[CoachingMode]int `json:"by_mode"`
}

// MonthlyUsageSummary covers the current calendar month.
type MonthlyUsageSummary struct {
	TotalRequests     int     `json:"total_requests"`
	TotalTokens       int     `json:"total_tokens"`
	TotalCostUSD      float64 `json:"total_cost_usd"`
	TotalCostSEK      float64 `json:"total_cost_sek"`
	AvgCostPerRequest float64 `json:"average_cost_per_request"`
	DaysThisMonth     int     `json:"days_this_month"`
}

// UsageReport is the full overview served to operators.
type UsageReport struct {
	Today           UsageSummary        `json:"today"`
	Yesterday       UsageSummary        `json:"yesterday"`
	Month           MonthlyUsageSummary `json:"month"`
	Recommendations []string            `json:"recommendations"`
}
