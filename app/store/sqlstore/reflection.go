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
		provider.stores.ReflectionStore = NewReflectionStore(provider)
	})
}

type ReflectionStore struct {
	CommonFields
}

func NewReflectionStore(provider SqlProviderAchieve) *ReflectionStore {
	repo := &ReflectionStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_REFLECTION)
	repo.SetAllColumns("id", "user_id", "date", "prompt", "response",
		"mood_rating", "energy_rating", "insights", "created_at")
	return repo
}

func (s *ReflectionStore) Create(ctx context.Context, data types.Reflection) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.ID, data.UserID, data.Date, data.Prompt, data.Response,
			data.MoodRating, data.EnergyRating, data.Insights, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *ReflectionStore) Get(ctx context.Context, userID string, id int64) (*types.Reflection, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Reflection
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *ReflectionStore) Delete(ctx context.Context, userID string, id int64) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *ReflectionStore) List(ctx context.Context, userID string, page, pageSize uint64) ([]types.Reflection, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID}).
		OrderBy("date DESC")
	if page != types.NO_PAGINATION || pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Reflection
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ReflectionStore) ListSince(ctx context.Context, userID, sinceDate string) ([]types.Reflection, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.And{sq.Eq{"user_id": userID}, sq.GtOrEq{"date": sinceDate}}).
		OrderBy("date DESC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Reflection
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ReflectionStore) Total(ctx context.Context, userID string) (int64, error) {
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
