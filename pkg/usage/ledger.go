package usage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/vagledaren/vagledaren/pkg/types"
)

// Approximate USD to SEK exchange rate used for the Swedish cost view.
const SEK_PER_USD = 10.5

// Recommendation thresholds.
const (
	dailyCostLimitUSD   = 5
	monthlyCostLimitUSD = 50
	dailyRequestLimit   = 100
)

type modelPricing struct {
	Input  float64 // USD per 1000 prompt tokens
	Output float64 // USD per 1000 completion tokens
}

// pricing lists known model rates. Unknown models are billed at the
// gpt-4 rate so costs get overestimated rather than missed.
var pricing = map[string]modelPricing{
	"gpt-4":         {Input: 0.03, Output: 0.06},
	"gpt-4-turbo":   {Input: 0.01, Output: 0.03},
	"gpt-3.5-turbo": {Input: 0.0015, Output: 0.002},
}

const fallbackModel = "gpt-4"

// CalculateCost prices one model call in USD.
func CalculateCost(model string, promptTokens, completionTokens int) float64 {
	rates, ok := pricing[model]
	if !ok {
		rates = pricing[fallbackModel]
	}

	inputCost := float64(promptTokens) / 1000 * rates.Input
	outputCost := float64(completionTokens) / 1000 * rates.Output
	return inputCost + outputCost
}

// Ledger is the append-only cost record of every model call, persisted
// as a single JSON file. Writes rewrite the whole file under a lock,
// which is fine at coaching request rates.
type Ledger struct {
	mu      sync.Mutex
	path    string
	records []types.UsageRecord

	now func() time.Time
}

// NewLedger opens or creates the ledger file. A missing file starts an
// empty ledger, a corrupt one is an error.
func NewLedger(path string) (*Ledger, error) {
	l := &Ledger{
		path: path,
		now:  time.Now,
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("failed to read usage ledger %s, %w", path, err)
	}

	if err = json.Unmarshal(raw, &l.records); err != nil {
		return nil, fmt.Errorf("failed to parse usage ledger %s, %w", path, err)
	}

	slog.Info("usage ledger loaded", slog.String("path", path), slog.Int("records", len(l.records)))
	return l, nil
}

// Track appends one model call to the ledger and persists it.
func (l *Ledger) Track(usage *openai.Usage, model, sessionID string, mode types.CoachingMode) (types.UsageRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	record := types.UsageRecord{
		Timestamp:        l.now().Format(time.RFC3339),
		Model:            model,
		PromptTokens:     usage.PromptTokens,
		CompletionTokens: usage.CompletionTokens,
		TotalTokens:      usage.TotalTokens,
		CostUSD:          CalculateCost(model, usage.PromptTokens, usage.CompletionTokens),
		SessionID:        sessionID,
		Mode:             mode,
	}

	l.records = append(l.records, record)
	if err := l.saveLocked(); err != nil {
		return record, err
	}
	return record, nil
}

func (l *Ledger) saveLocked() error {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create ledger dir, %w", err)
		}
	}

	raw, err := json.MarshalIndent(l.records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal usage ledger, %w", err)
	}
	if err = os.WriteFile(l.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write usage ledger, %w", err)
	}
	return nil
}

// Records returns a copy of all tracked calls.
func (l *Ledger) Records() []types.UsageRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]types.UsageRecord, len(l.records))
	copy(out, l.records)
	return out
}

// DailySummary reduces the ledger over one calendar day.
func (l *Ledger) DailySummary(day time.Time) types.UsageSummary {
	l.mu.Lock()
	defer l.mu.Unlock()

	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	summary := types.UsageSummary{
		ByMode: map[types.CoachingMode]int{},
	}
	for _, record := range l.records {
		ts, err := time.Parse(time.RFC3339, record.Timestamp)
		if err != nil || ts.Before(startOfDay) || !ts.Before(endOfDay) {
			continue
		}
		summary.TotalRequests++
		summary.TotalTokens += record.TotalTokens
		summary.TotalCostUSD += record.CostUSD
		summary.ByMode[record.Mode]++
	}
	summary.TotalCostSEK = summary.TotalCostUSD * SEK_PER_USD
	return summary
}

// MonthlySummary reduces the ledger over the current calendar month.
func (l *Ledger) MonthlySummary() types.MonthlyUsageSummary {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var summary types.MonthlyUsageSummary
	for _, record := range l.records {
		ts, err := time.Parse(time.RFC3339, record.Timestamp)
		if err != nil || ts.Before(startOfMonth) {
			continue
		}
		summary.TotalRequests++
		summary.TotalTokens += record.TotalTokens
		summary.TotalCostUSD += record.CostUSD
	}
	summary.TotalCostSEK = summary.TotalCostUSD * SEK_PER_USD
	if summary.TotalRequests > 0 {
		summary.AvgCostPerRequest = summary.TotalCostUSD / float64(summary.TotalRequests)
	}
	summary.DaysThisMonth = now.Day()
	return summary
}

// Report combines today, yesterday and the running month with spend
// recommendations.
func (l *Ledger) Report() types.UsageReport {
	now := l.now()
	today := l.DailySummary(now)
	yesterday := l.DailySummary(now.AddDate(0, 0, -1))
	month := l.MonthlySummary()

	return types.UsageReport{
		Today:           today,
		Yesterday:       yesterday,
		Month:           month,
		Recommendations: recommendations(today, month),
	}
}

func recommendations(daily types.UsageSummary, monthly types.MonthlyUsageSummary) []string {
	var recs []string

	if daily.TotalCostUSD > dailyCostLimitUSD {
		recs = append(recs, "🚨 Hög daglig kostnad! Överväg att begränsa antal meddelanden.")
	}
	if monthly.TotalCostUSD > monthlyCostLimitUSD {
		recs = append(recs, "💰 Månadskostnad över $50. Kanske dags att sätta en budget-gräns?")
	}
	if daily.TotalRequests > dailyRequestLimit {
		recs = append(recs, "📊 Många requests idag. Kontrollera att du inte kör automatiska loops.")
	}
	if len(recs) == 0 {
		recs = append(recs, "✅ Användningen ser bra ut! Fortsätt så.")
	}

	return recs
}
