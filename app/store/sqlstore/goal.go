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
		provider.stores.GoalStore = NewGoalStore(provider)
	})
}

type GoalStore struct {
	CommonFields
}

func NewGoalStore(provider SqlProviderAchieve) *GoalStore {
	repo := &GoalStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_GOAL)
	repo.SetAllColumns("id", "user_id", "title", "description", "goal_type", "status",
		"target_date", "completion_criteria", "progress_percentage", "milestones",
		"notes", "created_at", "updated_at")
	return repo
}

func (s *GoalStore) Create(ctx context.Context, data types.Goal) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = data.CreatedAt
	}
	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.ID, data.UserID, data.Title, data.Description, data.GoalType, data.Status,
			data.TargetDate, data.CompletionCriteria, data.ProgressPercentage, data.Milestones,
			data.Notes, data.CreatedAt, data.UpdatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *GoalStore) Get(ctx context.Context, userID, id string) (*types.Goal, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Goal
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *GoalStore) UpdateProgress(ctx context.Context, userID, id string, progress int, status types.GoalStatus, notes string) error {
	query := sq.Update(s.GetTable()).SetMap(map[string]interface{}{
		"progress_percentage": progress,
		"status":              status,
		"notes":               notes,
		"updated_at":          time.Now().Unix(),
	}).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *GoalStore) UpdateMilestones(ctx context.Context, userID, id string, milestones types.StringList) error {
	query := sq.Update(s.GetTable()).SetMap(map[string]interface{}{
		"milestones": milestones,
		"updated_at": time.Now().Unix(),
	}).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *GoalStore) Delete(ctx context.Context, userID, id string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *GoalStore) List(ctx context.Context, userID string, statuses []types.GoalStatus, page, pageSize uint64) ([]types.Goal, error) {
	cond := sq.And{sq.Eq{"user_id": userID}}
	if len(statuses) > 0 {
		cond = append(cond, sq.Eq{"status": statuses})
	}
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(cond).
		OrderBy("created_at DESC")
	if page != types.NO_PAGINATION || pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Goal
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *GoalStore) ListOverdue(ctx context.Context, userID string, before int64) ([]types.Goal, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.And{
		sq.Eq{"user_id": userID},
		sq.Gt{"target_date": 0},
		sq.Lt{"target_date": before},
		sq.NotEq{"status": types.GOAL_STATUS_COMPLETED},
	}).OrderBy("target_date ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Goal
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *GoalStore) Total(ctx context.Context, userID string, statuses []types.GoalStatus) (int64, error) {
	cond := sq.And{sq.Eq{"user_id": userID}}
	if len(statuses) > 0 {
		cond = append(cond, sq.Eq{"status": statuses})
	}
	query := sq.Select("COUNT(*)").From(s.GetTable()).Where(cond)

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
