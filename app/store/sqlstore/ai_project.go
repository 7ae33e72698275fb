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
		provider.stores.AIProjectStore = NewAIProjectStore(provider)
	})
}

type AIProjectStore struct {
	CommonFields
}

func NewAIProjectStore(provider SqlProviderAchieve) *AIProjectStore {
	repo := &AIProjectStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_AI_PROJECT)
	repo.SetAllColumns("id", "user_id", "title", "description", "use_case", "phase",
		"stakeholders", "start_date", "target_completion", "budget", "success_criteria",
		"risks", "progress_notes", "kpis", "created_at", "updated_at")
	return repo
}

func (s *AIProjectStore) Create(ctx context.Context, data types.AIProject) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = data.CreatedAt
	}
	query := sq.Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.ID, data.UserID, data.Title, data.Description, data.UseCase, data.Phase,
			data.Stakeholders, data.StartDate, data.TargetCompletion, data.Budget, data.SuccessCriteria,
			data.Risks, data.ProgressNotes, data.KPIs, data.CreatedAt, data.UpdatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *AIProjectStore) Get(ctx context.Context, userID, id string) (*types.AIProject, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.AIProject
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *AIProjectStore) SetPhase(ctx context.Context, userID, id string, phase types.AIImplementationPhase, progressNotes string) error {
	query := sq.Update(s.GetTable()).SetMap(map[string]interface{}{
		"phase":          phase,
		"progress_notes": progressNotes,
		"updated_at":     time.Now().Unix(),
	}).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *AIProjectStore) Update(ctx context.Context, userID, id string, args types.UpdateAIProjectArgs) error {
	query := sq.Update(s.GetTable()).SetMap(map[string]interface{}{
		"title":             args.Title,
		"description":       args.Description,
		"budget":            args.Budget,
		"success_criteria":  args.SuccessCriteria,
		"risks":             args.Risks,
		"kpis":              args.KPIs,
		"target_completion": args.TargetCompletion,
		"updated_at":        time.Now().Unix(),
	}).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, sqlArgs, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, sqlArgs...)
	return err
}

func (s *AIProjectStore) Delete(ctx context.Context, userID, id string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *AIProjectStore) List(ctx context.Context, userID string, page, pageSize uint64) ([]types.AIProject, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")
	if page != types.NO_PAGINATION || pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.AIProject
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *AIProjectStore) Total(ctx context.Context, userID string) (int64, error) {
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
