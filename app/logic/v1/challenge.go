package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/vagledaren/vagledaren/app/core"
	"github.com/vagledaren/vagledaren/pkg/errors"
	"github.com/vagledaren/vagledaren/pkg/i18n"
	"github.com/vagledaren/vagledaren/pkg/types"
	"github.com/vagledaren/vagledaren/pkg/utils"
)

type ChallengeLogic struct {
	UserInfo
	ctx  context.Context
	core *core.Core
}

func NewChallengeLogic(ctx context.Context, core *core.Core) *ChallengeLogic {
	return &ChallengeLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

type CreateChallengeArgs struct {
	Title                string           `json:"title" binding:"required"`
	Description          string           `json:"description"`
	Category             string           `json:"category"`
	Severity             int              `json:"severity" binding:"required"`
	StakeholdersAffected types.StringList `json:"stakeholders_affected"`
}

func (l *ChallengeLogic) CreateChallenge(args CreateChallengeArgs) (*types.Challenge, error) {
	userID := l.GetUserInfo().UserID
	if userID == "" {
		return nil, errors.New("ChallengeLogic.CreateChallenge.check", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}
	if args.Severity < 1 || args.Severity > 10 {
		return nil, errors.New("ChallengeLogic.CreateChallenge.severity", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	now := time.Now().Unix()
	challenge := types.Challenge{
		ID:                   utils.GenUniqIDStr(),
		UserID:               userID,
		Title:                args.Title,
		Description:          args.Description,
		Category:             args.Category,
		Severity:             args.Severity,
		StakeholdersAffected: args.StakeholdersAffected,
		ProposedSolutions:    types.StringList{},
		Status:               types.CHALLENGE_STATUS_OPEN,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := l.core.Store().ChallengeStore().Create(l.ctx, challenge); err != nil {
		return nil, errors.New("ChallengeLogic.CreateChallenge.ChallengeStore.Create", i18n.ERROR_INTERNAL, err)
	}
	return &challenge, nil
}

func (l *ChallengeLogic) GetChallenge(id string) (*types.Challenge, error) {
	challenge, err := l.core.Store().ChallengeStore().Get(l.ctx, l.GetUserInfo().UserID, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("ChallengeLogic.GetChallenge.ChallengeStore.Get", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return nil, errors.New("ChallengeLogic.GetChallenge.ChallengeStore.Get", i18n.ERROR_INTERNAL, err)
	}
	return challenge, nil
}

// ProposeSolution appends a solution idea and moves an open challenge to
// in progress.
func (l *ChallengeLogic) ProposeSolution(id, solution string) (*types.Challenge, error) {
	if solution == "" {
		return nil, errors.New("ChallengeLogic.ProposeSolution.check", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	challenge, err := l.GetChallenge(id)
	if err != nil {
		return nil, errors.Trace("ChallengeLogic.ProposeSolution", err)
	}

	challenge.ProposedSolutions = append(challenge.ProposedSolutions, solution)
	if err = l.core.Store().ChallengeStore().SetSolutions(l.ctx, challenge.UserID, id, challenge.ProposedSolutions); err != nil {
		return nil, errors.New("ChallengeLogic.ProposeSolution.ChallengeStore.SetSolutions", i18n.ERROR_INTERNAL, err)
	}

	if challenge.Status == types.CHALLENGE_STATUS_OPEN {
		if err = l.core.Store().ChallengeStore().SetStatus(l.ctx, challenge.UserID, id, types.CHALLENGE_STATUS_IN_PROGRESS); err != nil {
			return nil, errors.New("ChallengeLogic.ProposeSolution.ChallengeStore.SetStatus", i18n.ERROR_INTERNAL, err)
		}
		challenge.Status = types.CHALLENGE_STATUS_IN_PROGRESS
	}
	return challenge, nil
}

func (l *ChallengeLogic) SetStatus(id string, status types.ChallengeStatus) error {
	if !status.Valid() {
		return errors.New("ChallengeLogic.SetStatus.status", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}
	challenge, err := l.GetChallenge(id)
	if err != nil {
		return errors.Trace("ChallengeLogic.SetStatus", err)
	}
	if err = l.core.Store().ChallengeStore().SetStatus(l.ctx, challenge.UserID, id, status); err != nil {
		return errors.New("ChallengeLogic.SetStatus.ChallengeStore.SetStatus", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// ListChallenges pages the user's challenges, highest severity first.
// An empty status lists all of them.
func (l *ChallengeLogic) ListChallenges(status types.ChallengeStatus, page, pageSize uint64) ([]types.Challenge, int64, error) {
	if status != "" && !status.Valid() {
		return nil, 0, errors.New("ChallengeLogic.ListChallenges.status", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	userID := l.GetUserInfo().UserID
	list, err := l.core.Store().ChallengeStore().List(l.ctx, userID, status, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, 0, errors.New("ChallengeLogic.ListChallenges.ChallengeStore.List", i18n.ERROR_INTERNAL, err)
	}
	total, err := l.core.Store().ChallengeStore().Total(l.ctx, userID, status)
	if err != nil {
		return nil, 0, errors.New("ChallengeLogic.ListChallenges.ChallengeStore.Total", i18n.ERROR_INTERNAL, err)
	}
	return list, total, nil
}
