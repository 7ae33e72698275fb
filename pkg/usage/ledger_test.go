package usage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vagledaren/vagledaren/pkg/types"
)

func TestCalculateCost(t *testing.T) {
	// 1000 prompt + 1000 completion tokens at listed rates.
	assert.InDelta(t, 0.09, CalculateCost("gpt-4", 1000, 1000), 1e-9)
	assert.InDelta(t, 0.04, CalculateCost("gpt-4-turbo", 1000, 1000), 1e-9)
	assert.InDelta(t, 0.0035, CalculateCost("gpt-3.5-turbo", 1000, 1000), 1e-9)

	// Fractional token counts.
	assert.InDelta(t, 0.0015*0.5+0.002*0.25, CalculateCost("gpt-3.5-turbo", 500, 250), 1e-9)

	// Unknown models are billed at the gpt-4 rate.
	assert.InDelta(t, CalculateCost("gpt-4", 800, 200), CalculateCost("okänd-modell", 800, 200), 1e-9)
}

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := NewLedger(filepath.Join(t.TempDir(), "api_usage.json"))
	require.NoError(t, err)
	return l
}

func TestLedgerTrackAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "api_usage.json")

	l, err := NewLedger(path)
	require.NoError(t, err)

	record, err := l.Track(&openai.Usage{
		PromptTokens:     500,
		CompletionTokens: 250,
		TotalTokens:      750,
	}, "gpt-3.5-turbo", "user-1_20260828_120000", types.MODE_PERSONAL)
	require.NoError(t, err)
	assert.InDelta(t, 0.0015*0.5+0.002*0.25, record.CostUSD, 1e-9)
	assert.Equal(t, 750, record.TotalTokens)

	// The file is the source of truth, a new ledger sees the record.
	reloaded, err := NewLedger(path)
	require.NoError(t, err)
	records := reloaded.Records()
	require.Len(t, records, 1)
	assert.Equal(t, record, records[0])
}

func TestLedgerDailySummary(t *testing.T) {
	l := newTestLedger(t)

	base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	clock := base
	l.now = func() time.Time { return clock }

	_, err := l.Track(&openai.Usage{PromptTokens: 1000, CompletionTokens: 1000, TotalTokens: 2000}, "gpt-4", "s1", types.MODE_PERSONAL)
	require.NoError(t, err)

	clock = base.Add(2 * time.Hour)
	_, err = l.Track(&openai.Usage{PromptTokens: 1000, CompletionTokens: 1000, TotalTokens: 2000}, "gpt-3.5-turbo", "s2", types.MODE_UNIVERSITY)
	require.NoError(t, err)

	// Previous day, must not count.
	clock = base.AddDate(0, 0, -1)
	_, err = l.Track(&openai.Usage{PromptTokens: 1000, CompletionTokens: 0, TotalTokens: 1000}, "gpt-4", "s3", types.MODE_PERSONAL)
	require.NoError(t, err)

	summary := l.DailySummary(base)
	assert.Equal(t, 2, summary.TotalRequests)
	assert.Equal(t, 4000, summary.TotalTokens)
	assert.InDelta(t, 0.09+0.0035, summary.TotalCostUSD, 1e-9)
	assert.InDelta(t, (0.09+0.0035)*SEK_PER_USD, summary.TotalCostSEK, 1e-9)
	assert.Equal(t, map[types.CoachingMode]int{
		types.MODE_PERSONAL:   1,
		types.MODE_UNIVERSITY: 1,
	}, summary.ByMode)
}

func TestLedgerMonthlySummary(t *testing.T) {
	l := newTestLedger(t)

	base := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	clock := base
	l.now = func() time.Time { return clock }

	for i := 0; i < 3; i++ {
		clock = base.AddDate(0, 0, i)
		_, err := l.Track(&openai.Usage{PromptTokens: 1000, CompletionTokens: 1000, TotalTokens: 2000}, "gpt-4-turbo", "s1", types.MODE_HYBRID)
		require.NoError(t, err)
	}

	// Last month, outside the window.
	clock = base.AddDate(0, -1, 0)
	_, err := l.Track(&openai.Usage{PromptTokens: 1000, CompletionTokens: 1000, TotalTokens: 2000}, "gpt-4-turbo", "s1", types.MODE_HYBRID)
	require.NoError(t, err)

	clock = base.AddDate(0, 0, 2)
	summary := l.MonthlySummary()
	assert.Equal(t, 3, summary.TotalRequests)
	assert.Equal(t, 6000, summary.TotalTokens)
	assert.InDelta(t, 0.12, summary.TotalCostUSD, 1e-9)
	assert.InDelta(t, 0.04, summary.AvgCostPerRequest, 1e-9)
	assert.Equal(t, 17, summary.DaysThisMonth)
}

func TestLedgerRecommendations(t *testing.T) {
	quiet := recommendations(types.UsageSummary{}, types.MonthlyUsageSummary{})
	require.Len(t, quiet, 1)
	assert.Contains(t, quiet[0], "Användningen ser bra ut")

	noisy := recommendations(
		types.UsageSummary{TotalRequests: 150, TotalCostUSD: 6},
		types.MonthlyUsageSummary{TotalCostUSD: 60},
	)
	assert.Len(t, noisy, 3)
}
