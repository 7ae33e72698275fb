package coach

import (
	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/vagledaren/vagledaren/pkg/ai"
	"github.com/vagledaren/vagledaren/pkg/types"
)

// Manager holds the live sessions of the process, one active session
// per user at a time.
type Manager struct {
	sessions cmap.ConcurrentMap[string, *Session]
	driver   ai.ChatAI
	composer *Composer
	opts     Options
}

func NewManager(driver ai.ChatAI, composer *Composer, opts Options) *Manager {
	return &Manager{
		sessions: cmap.New[*Session](),
		driver:   driver,
		composer: composer,
		opts:     opts,
	}
}

// Start creates a session for the user. A user with an active session
// must end it first. The check-and-insert runs under the map's shard
// lock so concurrent starts cannot both win.
func (m *Manager) Start(userID string, mode types.CoachingMode, sessionContext types.StringMap) (*Session, error) {
	var conflict bool
	session := m.sessions.Upsert(userID, nil, func(exist bool, current, _ *Session) *Session {
		if exist && current.Active() {
			conflict = true
			return current
		}
		return NewSession(userID, mode, sessionContext, m.driver, m.composer, m.opts)
	})
	if conflict {
		return nil, ErrSessionAlreadyActive
	}
	return session, nil
}

// Get returns the user's active session.
func (m *Manager) Get(userID string) (*Session, error) {
	session, ok := m.sessions.Get(userID)
	if !ok {
		return nil, ErrNoActiveSession
	}
	if !session.Active() {
		return nil, ErrNoActiveSession
	}
	return session, nil
}

// End closes the user's active session and drops it from the registry.
func (m *Manager) End(userID string) (types.SessionSummary, error) {
	session, err := m.Get(userID)
	if err != nil {
		return types.SessionSummary{}, err
	}

	summary, err := session.End()
	if err != nil {
		return types.SessionSummary{}, err
	}

	m.sessions.Remove(userID)
	return summary, nil
}
