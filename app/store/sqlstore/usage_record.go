package sqlstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/vagledaren/vagledaren/pkg/register"
	"github.com/vagledaren/vagledaren/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.UsageRecordStore = NewUsageRecordStore(provider)
	})
}

type UsageRecordStore struct {
	CommonFields
}

func NewUsageRecordStore(provider SqlProviderAchieve) *UsageRecordStore {
	repo := &UsageRecordStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_USAGE_RECORD)
	repo.SetAllColumns("timestamp", "model", "prompt_tokens", "completion_tokens",
		"total_tokens", "cost_usd", "session_id", "mode")
	return repo
}

func (s *UsageRecordStore) Create(ctx context.Context, data types.UsageRecord) error {
	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.Timestamp, data.Model, data.PromptTokens, data.CompletionTokens,
			data.TotalTokens, data.CostUSD, data.SessionID, data.Mode)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *UsageRecordStore) List(ctx context.Context, page, pageSize uint64) ([]types.UsageRecord, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		OrderBy("timestamp DESC")
	if page != types.NO_PAGINATION || pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.UsageRecord
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *UsageRecordStore) ListByTimeRange(ctx context.Context, start, end string) ([]types.UsageRecord, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.And{sq.GtOrEq{"timestamp": start}, sq.Lt{"timestamp": end}}).
		OrderBy("timestamp ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.UsageRecord
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *UsageRecordStore) Total(ctx context.Context) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable())

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
