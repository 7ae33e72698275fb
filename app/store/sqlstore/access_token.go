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
		provider.stores.AccessTokenStore = NewAccessTokenStore(provider)
	})
}

type AccessTokenStore struct {
	CommonFields
}

func NewAccessTokenStore(provider SqlProviderAchieve) *AccessTokenStore {
	repo := &AccessTokenStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_ACCESS_TOKEN)
	repo.SetAllColumns("id", "user_id", "token", "info", "created_at", "expires_at")
	return repo
}

func (s *AccessTokenStore) Create(ctx context.Context, data types.AccessToken) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.ID, data.UserID, data.Token, data.Info, data.CreatedAt, data.ExpiresAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *AccessTokenStore) GetAccessToken(ctx context.Context, token string) (*types.AccessToken, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"token": token})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.AccessToken
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *AccessTokenStore) Delete(ctx context.Context, userID string, id int64) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *AccessTokenStore) ClearUserTokens(ctx context.Context, userID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"user_id": userID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *AccessTokenStore) ListAccessTokens(ctx context.Context, userID string, page, pageSize uint64) ([]types.AccessToken, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")
	if page != types.NO_PAGINATION || pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.AccessToken
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}
