package coach

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/vagledaren/vagledaren/pkg/ai"
	"github.com/vagledaren/vagledaren/pkg/types"
)

var (
	ErrNoActiveSession      = errors.New("ingen aktiv session")
	ErrSessionEnded         = errors.New("sessionen är avslutad")
	ErrSessionAlreadyActive = errors.New("användaren har redan en aktiv session")
)

// ErrorReply is returned to the user when the model call fails. The
// session stays active and the user's message is kept so a retry
// continues the same conversation.
const ErrorReply = "Jag beklagar, det uppstod ett fel. Kan du försöka igen?"

const (
	DEFAULT_TOKEN_BUDGET = 4000
	DEFAULT_KEEP_RECENT  = 10
)

// UsageFunc receives the token usage of every successful model call.
type UsageFunc func(usage *openai.Usage, model, sessionID string, mode types.CoachingMode)

type Options struct {
	// TokenBudget is the prompt size above which history is truncated.
	TokenBudget int
	// KeepRecent is how many trailing messages survive truncation,
	// the system prompt is always kept on top of these.
	KeepRecent int
	OnUsage    UsageFunc
}

func (o *Options) fill() {
	if o.TokenBudget <= 0 {
		o.TokenBudget = DEFAULT_TOKEN_BUDGET
	}
	if o.KeepRecent <= 0 {
		o.KeepRecent = DEFAULT_KEEP_RECENT
	}
}

// Session is one live coaching conversation. All exported methods are
// safe for concurrent use, a session serializes its own turns.
type Session struct {
	mu sync.Mutex

	id            string
	userID        string
	mode          types.CoachingMode
	status        types.CoachingSessionStatus
	startTime     time.Time
	messages      []*types.MessageContext
	context       types.StringMap
	goals         []string
	progressNotes string

	driver   ai.ChatAI
	composer *Composer
	opts     Options
}

// NewSession starts a coaching conversation in the given mode. The
// persona becomes the first message of the history.
func NewSession(userID string, mode types.CoachingMode, sessionContext types.StringMap, driver ai.ChatAI, composer *Composer, opts Options) *Session {
	opts.fill()
	now := time.Now()
	if sessionContext == nil {
		sessionContext = types.StringMap{}
	}

	s := &Session{
		id:        fmt.Sprintf("%s_%s", userID, now.Format("20060102_150405")),
		userID:    userID,
		mode:      mode,
		status:    types.SESSION_STATUS_ACTIVE,
		startTime: now,
		context:   sessionContext,
		driver:    driver,
		composer:  composer,
		opts:      opts,
	}
	s.messages = append(s.messages, &types.MessageContext{
		Role:    types.USER_ROLE_SYSTEM,
		Content: Persona(mode),
	})

	slog.Info("coaching session started",
		slog.String("session_id", s.id),
		slog.String("user_id", userID),
		slog.String("mode", string(mode)))
	return s
}

func (s *Session) ID() string               { return s.id }
func (s *Session) UserID() string           { return s.userID }
func (s *Session) Mode() types.CoachingMode { return s.mode }
func (s *Session) StartTime() time.Time     { return s.startTime }

func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status == types.SESSION_STATUS_ACTIVE
}

// Messages returns a copy of the full history, system prompt included.
func (s *Session) Messages() []*types.MessageContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*types.MessageContext, len(s.messages))
	copy(out, s.messages)
	return out
}

// GetResponse runs one conversation turn. A failed model call yields
// the Swedish error reply with metadata carrying the cause, the user
// message stays in history and the session stays active.
func (s *Session) GetResponse(ctx context.Context, userMessage string) (string, types.ReplyMetadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != types.SESSION_STATUS_ACTIVE {
		return "", types.ReplyMetadata{}, ErrSessionEnded
	}

	s.messages = append(s.messages, &types.MessageContext{
		Role:    types.USER_ROLE_USER,
		Content: userMessage,
	})

	query := s.prepareQuery(userMessage)

	meta := types.ReplyMetadata{
		SessionID: s.id,
		Mode:      s.mode,
	}

	resp, err := s.driver.Query(ctx, query)
	if err != nil {
		slog.Error("coach model call failed",
			slog.String("session_id", s.id),
			slog.String("error", err.Error()))
		meta.MessageCount = len(s.messages)
		meta.Timestamp = time.Now().Unix()
		meta.Error = err.Error()
		return ErrorReply, meta, nil
	}

	reply := resp.Message()
	s.messages = append(s.messages, &types.MessageContext{
		Role:    types.USER_ROLE_ASSISTANT,
		Content: reply,
	})

	if resp.Usage != nil {
		meta.TokensUsed = resp.Usage.TotalTokens
		if s.opts.OnUsage != nil {
			model := resp.Model
			if model == "" {
				model = s.driver.Model()
			}
			s.opts.OnUsage(resp.Usage, model, s.id, s.mode)
		}
	}

	meta.MessageCount = len(s.messages)
	meta.Timestamp = time.Now().Unix()
	return reply, meta, nil
}

// prepareQuery builds the model-facing message list for this turn: the
// per-turn composed system prompt plus the conversation, truncated when
// the token budget is exceeded. Caller holds the lock.
func (s *Session) prepareQuery(userMessage string) []*types.MessageContext {
	query := make([]*types.MessageContext, 0, len(s.messages))
	for _, msg := range s.messages {
		switch msg.Role {
		case types.USER_ROLE_SYSTEM, types.USER_ROLE_USER, types.USER_ROLE_ASSISTANT:
		default:
			continue
		}
		query = append(query, msg)
	}

	// Recompose the system prompt for this query so knowledge context
	// follows what the user is asking right now.
	query[0] = &types.MessageContext{
		Role:    types.USER_ROLE_SYSTEM,
		Content: s.composer.Compose(Persona(s.mode), userMessage, s.mode),
	}

	total, err := ai.NumTokensFromMessages(query, s.driver.Model())
	if err != nil {
		slog.Warn("token count failed, skipping truncation",
			slog.String("session_id", s.id),
			slog.String("error", err.Error()))
		return query
	}

	if total > s.opts.TokenBudget && len(query) > s.opts.KeepRecent+1 {
		truncated := make([]*types.MessageContext, 0, s.opts.KeepRecent+1)
		truncated = append(truncated, query[0])
		truncated = append(truncated, query[len(query)-s.opts.KeepRecent:]...)
		query = truncated
	}

	return query
}

// SetGoals replaces the session goals.
func (s *Session) SetGoals(goals []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != types.SESSION_STATUS_ACTIVE {
		return ErrSessionEnded
	}
	s.goals = goals
	slog.Info("session goals set", slog.String("session_id", s.id), slog.Int("goals", len(goals)))
	return nil
}

// AddProgressNote appends a timestamped note to the session journal.
func (s *Session) AddProgressNote(note string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != types.SESSION_STATUS_ACTIVE {
		return ErrSessionEnded
	}
	s.progressNotes += fmt.Sprintf("\n[%s] %s", time.Now().Format("2006-01-02 15:04"), note)
	return nil
}

// Summary snapshots the session without changing its state.
func (s *Session) Summary() types.SessionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summaryLocked()
}

func (s *Session) summaryLocked() types.SessionSummary {
	goals := make([]string, len(s.goals))
	copy(goals, s.goals)
	return types.SessionSummary{
		SessionID:     s.id,
		Mode:          s.mode,
		Duration:      time.Since(s.startTime).String(),
		MessageCount:  len(s.messages),
		Goals:         goals,
		ProgressNotes: s.progressNotes,
		Context:       s.context,
	}
}

// End closes the session and returns its final summary. Ending twice
// returns ErrSessionEnded.
func (s *Session) End() (types.SessionSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != types.SESSION_STATUS_ACTIVE {
		return types.SessionSummary{}, ErrSessionEnded
	}
	s.status = types.SESSION_STATUS_ENDED
	summary := s.summaryLocked()
	slog.Info("coaching session ended",
		slog.String("session_id", s.id),
		slog.Int("messages", summary.MessageCount))
	return summary, nil
}
