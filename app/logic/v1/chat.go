package v1

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/vagledaren/vagledaren/app/core"
	"github.com/vagledaren/vagledaren/pkg/coach"
	"github.com/vagledaren/vagledaren/pkg/errors"
	"github.com/vagledaren/vagledaren/pkg/i18n"
	"github.com/vagledaren/vagledaren/pkg/safe"
	"github.com/vagledaren/vagledaren/pkg/types"
	"github.com/vagledaren/vagledaren/pkg/utils"
)

type CoachLogic struct {
	UserInfo
	ctx  context.Context
	core *core.Core
}

func NewCoachLogic(ctx context.Context, core *core.Core) *CoachLogic {
	return &CoachLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

// StartSession opens a coaching session. One active session per user;
// a second start is rejected until the first one ends.
func (l *CoachLogic) StartSession(mode types.CoachingMode, sessionContext types.StringMap) (*types.CoachingSession, error) {
	userID := l.GetUserInfo().UserID
	if userID == "" {
		return nil, errors.New("CoachLogic.StartSession.check", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}
	if !mode.Valid() {
		return nil, errors.New("CoachLogic.StartSession.mode", i18n.ERROR_INVALID_MODE, nil).Code(http.StatusBadRequest)
	}

	session, err := l.core.Srv().Coach().Start(userID, mode, sessionContext)
	if err != nil {
		if err == coach.ErrSessionAlreadyActive {
			return nil, errors.New("CoachLogic.StartSession.Coach.Start", i18n.ERROR_SESSION_ALREADY_ACTIVE, err).Code(http.StatusConflict)
		}
		return nil, errors.New("CoachLogic.StartSession.Coach.Start", i18n.ERROR_INTERNAL, err)
	}

	row := types.CoachingSession{
		ID:           session.ID(),
		UserID:       userID,
		Mode:         mode,
		Status:       types.SESSION_STATUS_ACTIVE,
		Title:        sessionContext["topic"],
		Context:      sessionContext,
		Goals:        types.StringList{},
		MessageCount: 1, // system persona message
		StartTime:    session.StartTime().Unix(),
		CreatedAt:    time.Now().Unix(),
	}
	if err = l.core.Store().CoachingSessionStore().Create(l.ctx, row); err != nil {
		// roll the in-memory session back so the user is not stuck
		l.core.Srv().Coach().End(userID)
		return nil, errors.New("CoachLogic.StartSession.CoachingSessionStore.Create", i18n.ERROR_INTERNAL, err)
	}

	return &row, nil
}

// SendMessage runs one conversation turn and persists both sides of it.
func (l *CoachLogic) SendMessage(message string) (string, types.ReplyMetadata, error) {
	userID := l.GetUserInfo().UserID
	if message == "" {
		return "", types.ReplyMetadata{}, errors.New("CoachLogic.SendMessage.check", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	session, err := l.core.Srv().Coach().Get(userID)
	if err != nil {
		return "", types.ReplyMetadata{}, errors.New("CoachLogic.SendMessage.Coach.Get", i18n.ERROR_SESSION_NOT_ACTIVE, err).Code(http.StatusNotFound)
	}

	semaphore := l.core.Semaphores().ModelCalls()
	if !semaphore.TryAcquire() {
		return "", types.ReplyMetadata{}, errors.New("CoachLogic.SendMessage.semaphore", i18n.ERROR_TOO_MANY_REQUESTS, nil).Code(http.StatusTooManyRequests)
	}
	defer semaphore.Release()

	timer := l.core.Metrics().ModelResponseTimer(l.core.Srv().AI().Model())
	reply, meta, err := session.GetResponse(l.ctx, message)
	timer.ObserveDuration()
	if err != nil {
		return "", types.ReplyMetadata{}, errors.New("CoachLogic.SendMessage.GetResponse", i18n.ERROR_INTERNAL, err)
	}
	if meta.Error != "" {
		l.core.Metrics().ModelErrorInc("chat")
	}

	messages := turnRows(session.ID(), userID, message, reply, meta, time.Now().Unix())

	sessionID := session.ID()
	summary := session.Summary()
	safe.Run(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()
		if err := l.core.Store().ChatMessageStore().BatchCreate(ctx, messages); err != nil {
			slog.Error("failed to persist chat turn", slog.String("session_id", sessionID), slog.Any("error", err))
		}
		if err := l.core.Store().CoachingSessionStore().UpdateProgress(ctx, sessionID,
			summary.Goals, summary.ProgressNotes, summary.MessageCount); err != nil {
			slog.Error("failed to sync session progress", slog.String("session_id", sessionID), slog.Any("error", err))
		}
	})

	return reply, meta, nil
}

// turnRows maps one conversation turn to transcript rows. A failed model
// call keeps only the user message, matching the in-memory history the
// session replays on retry: the canned error reply is never stored.
func turnRows(sessionID, userID, message, reply string, meta types.ReplyMetadata, now int64) []*types.ChatMessage {
	rows := []*types.ChatMessage{
		{
			ID:        utils.GenUniqIDStr(),
			SessionID: sessionID,
			UserID:    userID,
			Role:      types.USER_ROLE_USER,
			Message:   message,
			SendTime:  now,
		},
	}
	if meta.Error != "" {
		return rows
	}

	return append(rows, &types.ChatMessage{
		ID:        utils.GenUniqIDStr(),
		SessionID: sessionID,
		UserID:    userID,
		Role:      types.USER_ROLE_ASSISTANT,
		Message:   reply,
		SendTime:  now,
	})
}

// EndSession closes the active session and returns its summary.
func (l *CoachLogic) EndSession() (types.SessionSummary, error) {
	userID := l.GetUserInfo().UserID

	summary, err := l.core.Srv().Coach().End(userID)
	if err != nil {
		if err == coach.ErrNoActiveSession {
			return types.SessionSummary{}, errors.New("CoachLogic.EndSession.Coach.End", i18n.ERROR_SESSION_NOT_ACTIVE, err).Code(http.StatusNotFound)
		}
		return types.SessionSummary{}, errors.New("CoachLogic.EndSession.Coach.End", i18n.ERROR_INTERNAL, err)
	}

	if err = l.core.Store().CoachingSessionStore().SetStatus(l.ctx, summary.SessionID,
		types.SESSION_STATUS_ENDED, time.Now().Unix()); err != nil {
		return types.SessionSummary{}, errors.New("CoachLogic.EndSession.CoachingSessionStore.SetStatus", i18n.ERROR_INTERNAL, err)
	}

	return summary, nil
}

// GetActiveSession returns the running session summary.
func (l *CoachLogic) GetActiveSession() (types.SessionSummary, error) {
	session, err := l.core.Srv().Coach().Get(l.GetUserInfo().UserID)
	if err != nil {
		return types.SessionSummary{}, errors.New("CoachLogic.GetActiveSession.Coach.Get", i18n.ERROR_SESSION_NOT_ACTIVE, err).Code(http.StatusNotFound)
	}
	return session.Summary(), nil
}

// SetGoals replaces the goal list on the active session.
func (l *CoachLogic) SetGoals(goals []string) error {
	session, err := l.core.Srv().Coach().Get(l.GetUserInfo().UserID)
	if err != nil {
		return errors.New("CoachLogic.SetGoals.Coach.Get", i18n.ERROR_SESSION_NOT_ACTIVE, err).Code(http.StatusNotFound)
	}
	if err = session.SetGoals(goals); err != nil {
		return errors.New("CoachLogic.SetGoals.session", i18n.ERROR_SESSION_ENDED, err).Code(http.StatusConflict)
	}

	summary := session.Summary()
	if err = l.core.Store().CoachingSessionStore().UpdateProgress(l.ctx, session.ID(),
		summary.Goals, summary.ProgressNotes, summary.MessageCount); err != nil {
		return errors.New("CoachLogic.SetGoals.CoachingSessionStore.UpdateProgress", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// AddProgressNote appends a timestamped note to the active session.
func (l *CoachLogic) AddProgressNote(note string) error {
	if note == "" {
		return errors.New("CoachLogic.AddProgressNote.check", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}
	session, err := l.core.Srv().Coach().Get(l.GetUserInfo().UserID)
	if err != nil {
		return errors.New("CoachLogic.AddProgressNote.Coach.Get", i18n.ERROR_SESSION_NOT_ACTIVE, err).Code(http.StatusNotFound)
	}
	if err = session.AddProgressNote(note); err != nil {
		return errors.New("CoachLogic.AddProgressNote.session", i18n.ERROR_SESSION_ENDED, err).Code(http.StatusConflict)
	}

	summary := session.Summary()
	if err = l.core.Store().CoachingSessionStore().UpdateProgress(l.ctx, session.ID(),
		summary.Goals, summary.ProgressNotes, summary.MessageCount); err != nil {
		return errors.New("CoachLogic.AddProgressNote.CoachingSessionStore.UpdateProgress", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// ListSessions pages through the user's persisted sessions, newest first.
func (l *CoachLogic) ListSessions(page, pageSize uint64) ([]types.CoachingSession, int64, error) {
	userID := l.GetUserInfo().UserID
	list, err := l.core.Store().CoachingSessionStore().List(l.ctx, userID, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, 0, errors.New("CoachLogic.ListSessions.CoachingSessionStore.List", i18n.ERROR_INTERNAL, err)
	}
	total, err := l.core.Store().CoachingSessionStore().Total(l.ctx, userID)
	if err != nil {
		return nil, 0, errors.New("CoachLogic.ListSessions.CoachingSessionStore.Total", i18n.ERROR_INTERNAL, err)
	}
	return list, total, nil
}

// SessionHistory pages through the stored transcript of one session.
func (l *CoachLogic) SessionHistory(sessionID string, page, pageSize uint64) ([]types.ChatMessage, int64, error) {
	session, err := l.core.Store().CoachingSessionStore().Get(l.ctx, sessionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, 0, errors.New("CoachLogic.SessionHistory.CoachingSessionStore.Get", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return nil, 0, errors.New("CoachLogic.SessionHistory.CoachingSessionStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if session.UserID != l.GetUserInfo().UserID {
		return nil, 0, errors.New("CoachLogic.SessionHistory.auth.check", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden)
	}

	list, err := l.core.Store().ChatMessageStore().ListBySession(l.ctx, sessionID, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, 0, errors.New("CoachLogic.SessionHistory.ChatMessageStore.ListBySession", i18n.ERROR_INTERNAL, err)
	}
	total, err := l.core.Store().ChatMessageStore().TotalInSession(l.ctx, sessionID)
	if err != nil {
		return nil, 0, errors.New("CoachLogic.SessionHistory.ChatMessageStore.TotalInSession", i18n.ERROR_INTERNAL, err)
	}
	return list, total, nil
}
