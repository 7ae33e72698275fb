package store

import (
	"context"

	"github.com/vagledaren/vagledaren/pkg/sqlstore"
	"github.com/vagledaren/vagledaren/pkg/types"
)

type CoachingSessionStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.CoachingSession) error
	Get(ctx context.Context, id string) (*types.CoachingSession, error)
	GetActiveByUser(ctx context.Context, userID string) (*types.CoachingSession, error)
	// UpdateProgress syncs the mutable session state after a turn.
	UpdateProgress(ctx context.Context, id string, goals types.StringList, progressNotes string, messageCount int) error
	SetStatus(ctx context.Context, id string, status types.CoachingSessionStatus, endTime int64) error
	List(ctx context.Context, userID string, page, pageSize uint64) ([]types.CoachingSession, error)
	Total(ctx context.Context, userID string) (int64, error)
}

type ChatMessageStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.ChatMessage) error
	BatchCreate(ctx context.Context, datas []*types.ChatMessage) error
	ListBySession(ctx context.Context, sessionID string, page, pageSize uint64) ([]types.ChatMessage, error)
	TotalInSession(ctx context.Context, sessionID string) (int64, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}

type GoalStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.Goal) error
	Get(ctx context.Context, userID, id string) (*types.Goal, error)
	UpdateProgress(ctx context.Context, userID, id string, progress int, status types.GoalStatus, notes string) error
	UpdateMilestones(ctx context.Context, userID, id string, milestones types.StringList) error
	Delete(ctx context.Context, userID, id string) error
	List(ctx context.Context, userID string, statuses []types.GoalStatus, page, pageSize uint64) ([]types.Goal, error)
	// ListOverdue returns uncompleted goals with a target date before the cutoff.
	ListOverdue(ctx context.Context, userID string, before int64) ([]types.Goal, error)
	Total(ctx context.Context, userID string, statuses []types.GoalStatus) (int64, error)
}

type AIProjectStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.AIProject) error
	Get(ctx context.Context, userID, id string) (*types.AIProject, error)
	SetPhase(ctx context.Context, userID, id string, phase types.AIImplementationPhase, progressNotes string) error
	Update(ctx context.Context, userID, id string, args types.UpdateAIProjectArgs) error
	Delete(ctx context.Context, userID, id string) error
	List(ctx context.Context, userID string, page, pageSize uint64) ([]types.AIProject, error)
	Total(ctx context.Context, userID string) (int64, error)
}

type ChallengeStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.Challenge) error
	Get(ctx context.Context, userID, id string) (*types.Challenge, error)
	SetStatus(ctx context.Context, userID, id string, status types.ChallengeStatus) error
	SetSolutions(ctx context.Context, userID, id string, solutions types.StringList) error
	List(ctx context.Context, userID string, status types.ChallengeStatus, page, pageSize uint64) ([]types.Challenge, error)
	Total(ctx context.Context, userID string, status types.ChallengeStatus) (int64, error)
}

type ReflectionStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.Reflection) error
	Get(ctx context.Context, userID string, id int64) (*types.Reflection, error)
	Delete(ctx context.Context, userID string, id int64) error
	List(ctx context.Context, userID string, page, pageSize uint64) ([]types.Reflection, error)
	// ListSince returns reflections on or after the given date (YYYY-MM-DD).
	ListSince(ctx context.Context, userID, sinceDate string) ([]types.Reflection, error)
	Total(ctx context.Context, userID string) (int64, error)
}

// UsageRecordStore mirrors the file ledger into postgres so usage can
// be queried alongside the rest of the data.
type UsageRecordStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.UsageRecord) error
	List(ctx context.Context, page, pageSize uint64) ([]types.UsageRecord, error)
	ListByTimeRange(ctx context.Context, start, end string) ([]types.UsageRecord, error)
	Total(ctx context.Context) (int64, error)
}

type AccessTokenStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.AccessToken) error
	GetAccessToken(ctx context.Context, token string) (*types.AccessToken, error)
	Delete(ctx context.Context, userID string, id int64) error
	ClearUserTokens(ctx context.Context, userID string) error
	ListAccessTokens(ctx context.Context, userID string, page, pageSize uint64) ([]types.AccessToken, error)
}

type UserStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.User) error
	GetUser(ctx context.Context, id string) (*types.User, error)
	GetByEmail(ctx context.Context, email string) (*types.User, error)
	UpdateProfile(ctx context.Context, id, name, email string) error
}
