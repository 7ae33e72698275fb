package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/vagledaren/vagledaren/pkg/register"
	"github.com/vagledaren/vagledaren/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.CoachingSessionStore = NewCoachingSessionStore(provider)
	})
}

type CoachingSessionStore struct {
	CommonFields
}

func NewCoachingSessionStore(provider SqlProviderAchieve) *CoachingSessionStore {
	repo := &CoachingSessionStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_COACHING_SESSION)
	repo.SetAllColumns("id", "user_id", "mode", "status", "title", "context", "goals",
		"progress_notes", "message_count", "start_time", "end_time", "created_at")
	return repo
}

func (s *CoachingSessionStore) Create(ctx context.Context, data types.CoachingSession) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.ID, data.UserID, data.Mode, data.Status, data.Title, data.Context, data.Goals,
			data.ProgressNotes, data.MessageCount, data.StartTime, data.EndTime, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *CoachingSessionStore) Get(ctx context.Context, id string) (*types.CoachingSession, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.CoachingSession
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *CoachingSessionStore) GetActiveByUser(ctx context.Context, userID string) (*types.CoachingSession, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"user_id": userID, "status": types.SESSION_STATUS_ACTIVE}).
		OrderBy("start_time DESC").Limit(1)

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.CoachingSession
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *CoachingSessionStore) UpdateProgress(ctx context.Context, id string, goals types.StringList, progressNotes string, messageCount int) error {
	query := sq.Update(s.GetTable()).SetMap(map[string]interface{}{
		"goals":          goals,
		"progress_notes": progressNotes,
		"message_count":  messageCount,
	}).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *CoachingSessionStore) SetStatus(ctx context.Context, id string, status types.CoachingSessionStatus, endTime int64) error {
	query := sq.Update(s.GetTable()).SetMap(map[string]interface{}{
		"status":   status,
		"end_time": endTime,
	}).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *CoachingSessionStore) List(ctx context.Context, userID string, page, pageSize uint64) ([]types.CoachingSession, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID}).
		OrderBy("start_time DESC")
	if page != types.NO_PAGINATION || pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.CoachingSession
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *CoachingSessionStore) Total(ctx context.Context, userID string) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable()).Where(sq.Eq{"user_id": userID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var total int64
	if err = s.GetReplica(ctx).Get(&total, queryString, args...); err != nil {
		return 0, err
	}
	return total, nil
}
