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
		provider.stores.ChallengeStore = NewChallengeStore(provider)
	})
}

type ChallengeStore struct {
	CommonFields
}

func NewChallengeStore(provider SqlProviderAchieve) *ChallengeStore {
	repo := &ChallengeStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_CHALLENGE)
	repo.SetAllColumns("id", "user_id", "title", "description", "category", "severity",
		"stakeholders_affected", "proposed_solutions", "status", "created_at", "updated_at")
	return repo
}

func (s *ChallengeStore) Create(ctx context.Context, data types.Challenge) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = data.CreatedAt
	}
	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.ID, data.UserID, data.Title, data.Description, data.Category, data.Severity,
			data.StakeholdersAffected, data.ProposedSolutions, data.Status, data.CreatedAt, data.UpdatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *ChallengeStore) Get(ctx context.Context, userID, id string) (*types.Challenge, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Challenge
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *ChallengeStore) SetStatus(ctx context.Context, userID, id string, status types.ChallengeStatus) error {
	query := sq.Update(s.GetTable()).SetMap(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now().Unix(),
	}).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *ChallengeStore) SetSolutions(ctx context.Context, userID, id string, solutions types.StringList) error {
	query := sq.Update(s.GetTable()).SetMap(map[string]interface{}{
		"proposed_solutions": solutions,
		"updated_at":         time.Now().Unix(),
	}).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *ChallengeStore) List(ctx context.Context, userID string, status types.ChallengeStatus, page, pageSize uint64) ([]types.Challenge, error) {
	cond := sq.And{sq.Eq{"user_id": userID}}
	if status != "" {
		cond = append(cond, sq.Eq{"status": status})
	}
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(cond).
		OrderBy("severity DESC", "created_at DESC")
	if page != types.NO_PAGINATION || pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Challenge
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ChallengeStore) Total(ctx context.Context, userID string, status types.ChallengeStatus) (int64, error) {
	cond := sq.And{sq.Eq{"user_id": userID}}
	if status != "" {
		cond = append(cond, sq.Eq{"status": status})
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
