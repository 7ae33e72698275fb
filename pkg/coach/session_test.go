package coach

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vagledaren/vagledaren/pkg/ai"
	"github.com/vagledaren/vagledaren/pkg/types"
)

// fakeDriver records the queries it receives and replies with canned
// responses, optionally failing.
type fakeDriver struct {
	reply   string
	fail    error
	queries [][]*types.MessageContext
}

func (f *fakeDriver) Model() string { return "gpt-3.5-turbo" }

func (f *fakeDriver) Query(ctx context.Context, query []*types.MessageContext) (ai.GenerateResponse, error) {
	copied := make([]*types.MessageContext, len(query))
	copy(copied, query)
	f.queries = append(f.queries, copied)

	if f.fail != nil {
		return ai.GenerateResponse{}, f.fail
	}
	return ai.GenerateResponse{
		Received: []string{f.reply},
		Model:    "gpt-3.5-turbo",
		Usage: &openai.Usage{
			PromptTokens:     120,
			CompletionTokens: 30,
			TotalTokens:      150,
		},
	}, nil
}

func newTestSession(driver *fakeDriver, opts Options) *Session {
	return NewSession("user-1", types.MODE_PERSONAL, nil, driver, newTestComposer(), opts)
}

func TestSessionStartsWithSystemPrompt(t *testing.T) {
	s := newTestSession(&fakeDriver{reply: "Hej!"}, Options{})

	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, types.USER_ROLE_SYSTEM, msgs[0].Role)
	assert.Equal(t, Persona(types.MODE_PERSONAL), msgs[0].Content)
	assert.True(t, s.Active())
}

func TestSessionTurnAppendsBothMessages(t *testing.T) {
	driver := &fakeDriver{reply: "Trevligt att träffas!"}
	s := newTestSession(driver, Options{})

	reply, meta, err := s.GetResponse(context.Background(), "Hej, vad heter du?")
	require.NoError(t, err)
	assert.Equal(t, "Trevligt att träffas!", reply)
	assert.Equal(t, s.ID(), meta.SessionID)
	assert.Equal(t, types.MODE_PERSONAL, meta.Mode)
	assert.Equal(t, 3, meta.MessageCount)
	assert.Equal(t, 150, meta.TokensUsed)
	assert.Empty(t, meta.Error)

	msgs := s.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, types.USER_ROLE_USER, msgs[1].Role)
	assert.Equal(t, "Hej, vad heter du?", msgs[1].Content)
	assert.Equal(t, types.USER_ROLE_ASSISTANT, msgs[2].Role)
}

func TestSessionNonAITurnSendsBarePersona(t *testing.T) {
	driver := &fakeDriver{reply: "Hej!"}
	s := newTestSession(driver, Options{})

	_, _, err := s.GetResponse(context.Background(), "Hej, vad heter du?")
	require.NoError(t, err)

	require.Len(t, driver.queries, 1)
	assert.Equal(t, Persona(types.MODE_PERSONAL), driver.queries[0][0].Content)
}

func TestSessionAITurnComposesSystemPrompt(t *testing.T) {
	driver := &fakeDriver{reply: "ML är..."}
	s := newTestSession(driver, Options{})

	_, _, err := s.GetResponse(context.Background(), "Vad är machine learning?")
	require.NoError(t, err)

	require.Len(t, driver.queries, 1)
	sent := driver.queries[0][0].Content
	assert.Contains(t, sent, "## AI-Expertis Kontext")
	assert.Contains(t, sent, "Machine Learning Fundamentals")

	// The stored history keeps the original persona, enrichment is
	// recomputed per turn.
	assert.Equal(t, Persona(types.MODE_PERSONAL), s.Messages()[0].Content)
}

func TestSessionModelErrorKeepsSessionUsable(t *testing.T) {
	driver := &fakeDriver{fail: errors.New("api unavailable")}
	s := newTestSession(driver, Options{})

	reply, meta, err := s.GetResponse(context.Background(), "Hej!")
	require.NoError(t, err)
	assert.Equal(t, ErrorReply, reply)
	assert.Equal(t, "api unavailable", meta.Error)
	assert.True(t, s.Active())

	// User message is retained, no assistant message was added.
	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, types.USER_ROLE_USER, msgs[1].Role)

	// A retry after recovery continues the same conversation.
	driver.fail = nil
	driver.reply = "Nu fungerar det igen."
	reply, _, err = s.GetResponse(context.Background(), "Försök igen?")
	require.NoError(t, err)
	assert.Equal(t, "Nu fungerar det igen.", reply)
}

func TestSessionTruncationKeepsSystemAndRecent(t *testing.T) {
	driver := &fakeDriver{reply: "ok"}
	s := newTestSession(driver, Options{TokenBudget: 1, KeepRecent: 4})

	for i := 0; i < 6; i++ {
		_, _, err := s.GetResponse(context.Background(), fmt.Sprintf("meddelande nummer %d med lite extra innehåll", i))
		require.NoError(t, err)
	}

	last := driver.queries[len(driver.queries)-1]
	require.Len(t, last, 5)
	assert.Equal(t, types.USER_ROLE_SYSTEM, last[0].Role)

	// The final entry is the newest user message.
	assert.Equal(t, types.USER_ROLE_USER, last[len(last)-1].Role)
	assert.Contains(t, last[len(last)-1].Content, "nummer 5")

	// Full history is untouched by truncation.
	assert.Len(t, s.Messages(), 13)
}

func TestSessionGoalsAndNotes(t *testing.T) {
	s := newTestSession(&fakeDriver{reply: "ok"}, Options{})

	require.NoError(t, s.SetGoals([]string{"lära mig ML", "bygga pilot"}))
	require.NoError(t, s.AddProgressNote("första samtalet klart"))

	summary := s.Summary()
	assert.Equal(t, []string{"lära mig ML", "bygga pilot"}, summary.Goals)
	assert.Contains(t, summary.ProgressNotes, "första samtalet klart")
}

func TestSessionEnd(t *testing.T) {
	s := newTestSession(&fakeDriver{reply: "ok"}, Options{})

	summary, err := s.End()
	require.NoError(t, err)
	assert.Equal(t, s.ID(), summary.SessionID)
	assert.False(t, s.Active())

	_, err = s.End()
	assert.ErrorIs(t, err, ErrSessionEnded)

	_, _, err = s.GetResponse(context.Background(), "hej")
	assert.ErrorIs(t, err, ErrSessionEnded)

	assert.ErrorIs(t, s.SetGoals(nil), ErrSessionEnded)
	assert.ErrorIs(t, s.AddProgressNote("x"), ErrSessionEnded)
}

func TestSessionUsageCallback(t *testing.T) {
	var gotModel, gotSession string
	var gotMode types.CoachingMode
	var gotTokens int

	opts := Options{
		OnUsage: func(usage *openai.Usage, model, sessionID string, mode types.CoachingMode) {
			gotModel = model
			gotSession = sessionID
			gotMode = mode
			gotTokens = usage.TotalTokens
		},
	}
	s := newTestSession(&fakeDriver{reply: "ok"}, opts)

	_, _, err := s.GetResponse(context.Background(), "Hej!")
	require.NoError(t, err)

	assert.Equal(t, "gpt-3.5-turbo", gotModel)
	assert.Equal(t, s.ID(), gotSession)
	assert.Equal(t, types.MODE_PERSONAL, gotMode)
	assert.Equal(t, 150, gotTokens)
}

func TestManagerSingleActiveSession(t *testing.T) {
	m := NewManager(&fakeDriver{reply: "ok"}, newTestComposer(), Options{})

	s1, err := m.Start("user-1", types.MODE_PERSONAL, nil)
	require.NoError(t, err)

	_, err = m.Start("user-1", types.MODE_UNIVERSITY, nil)
	assert.ErrorIs(t, err, ErrSessionAlreadyActive)

	got, err := m.Get("user-1")
	require.NoError(t, err)
	assert.Same(t, s1, got)

	_, err = m.Get("user-2")
	assert.ErrorIs(t, err, ErrNoActiveSession)

	summary, err := m.End("user-1")
	require.NoError(t, err)
	assert.Equal(t, s1.ID(), summary.SessionID)

	_, err = m.Get("user-1")
	assert.ErrorIs(t, err, ErrNoActiveSession)

	// A new session can start once the old one ended.
	_, err = m.Start("user-1", types.MODE_HYBRID, nil)
	require.NoError(t, err)
}

func TestManagerConcurrentStartSingleWinner(t *testing.T) {
	m := NewManager(&fakeDriver{reply: "ok"}, newTestComposer(), Options{})

	const attempts = 16
	var (
		wg       sync.WaitGroup
		started  int32
		rejected int32
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Start("user-1", types.MODE_PERSONAL, nil)
			switch {
			case err == nil:
				atomic.AddInt32(&started, 1)
			case errors.Is(err, ErrSessionAlreadyActive):
				atomic.AddInt32(&rejected, 1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, started)
	assert.EqualValues(t, attempts-1, rejected)

	// The surviving session is the one the registry serves.
	_, err := m.Get("user-1")
	require.NoError(t, err)
}
