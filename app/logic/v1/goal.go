package v1

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/vagledaren/vagledaren/app/core"
	"github.com/vagledaren/vagledaren/pkg/errors"
	"github.com/vagledaren/vagledaren/pkg/i18n"
	"github.com/vagledaren/vagledaren/pkg/types"
	"github.com/vagledaren/vagledaren/pkg/utils"
)

type GoalLogic struct {
	UserInfo
	ctx  context.Context
	core *core.Core
}

func NewGoalLogic(ctx context.Context, core *core.Core) *GoalLogic {
	return &GoalLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

type CreateGoalArgs struct {
	Title              string         `json:"title" binding:"required"`
	Description        string         `json:"description"`
	GoalType           types.GoalType `json:"goal_type" binding:"required"`
	TargetDate         int64          `json:"target_date"`
	CompletionCriteria string         `json:"completion_criteria"`
}

func (l *GoalLogic) CreateGoal(args CreateGoalArgs) (*types.Goal, error) {
	userID := l.GetUserInfo().UserID
	if userID == "" {
		return nil, errors.New("GoalLogic.CreateGoal.check", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}
	if !args.GoalType.Valid() {
		return nil, errors.New("GoalLogic.CreateGoal.goalType", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	now := time.Now().Unix()
	goal := types.Goal{
		ID:                 utils.GenUniqIDStr(),
		UserID:             userID,
		Title:              args.Title,
		Description:        args.Description,
		GoalType:           args.GoalType,
		Status:             types.GOAL_STATUS_NOT_STARTED,
		TargetDate:         args.TargetDate,
		CompletionCriteria: args.CompletionCriteria,
		Milestones:         types.StringList{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := l.core.Store().GoalStore().Create(l.ctx, goal); err != nil {
		return nil, errors.New("GoalLogic.CreateGoal.GoalStore.Create", i18n.ERROR_INTERNAL, err)
	}
	return &goal, nil
}

func (l *GoalLogic) GetGoal(id string) (*types.Goal, error) {
	goal, err := l.core.Store().GoalStore().Get(l.ctx, l.GetUserInfo().UserID, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("GoalLogic.GetGoal.GoalStore.Get", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return nil, errors.New("GoalLogic.GetGoal.GoalStore.Get", i18n.ERROR_INTERNAL, err)
	}
	return goal, nil
}

// UpdateProgress moves the completion percentage and derives the status:
// 100 or more completes the goal, anything above zero marks it in progress.
func (l *GoalLogic) UpdateProgress(id string, progress int, notes string) (*types.Goal, error) {
	if progress < 0 || progress > 100 {
		return nil, errors.New("GoalLogic.UpdateProgress.range", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	goal, err := l.GetGoal(id)
	if err != nil {
		return nil, errors.Trace("GoalLogic.UpdateProgress", err)
	}

	status := progressStatus(goal.Status, progress)
	if err = l.core.Store().GoalStore().UpdateProgress(l.ctx, goal.UserID, id, progress, status, notes); err != nil {
		return nil, errors.New("GoalLogic.UpdateProgress.GoalStore.UpdateProgress", i18n.ERROR_INTERNAL, err)
	}

	goal.ProgressPercentage = progress
	goal.Status = status
	if notes != "" {
		goal.Notes = notes
	}
	return goal, nil
}

func progressStatus(current types.GoalStatus, progress int) types.GoalStatus {
	switch {
	case progress >= 100:
		return types.GOAL_STATUS_COMPLETED
	case progress > 0:
		return types.GOAL_STATUS_IN_PROGRESS
	default:
		return current
	}
}

// AddMilestone appends a dated milestone to the goal.
func (l *GoalLogic) AddMilestone(id, milestone string) (*types.Goal, error) {
	if milestone == "" {
		return nil, errors.New("GoalLogic.AddMilestone.check", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	goal, err := l.GetGoal(id)
	if err != nil {
		return nil, errors.Trace("GoalLogic.AddMilestone", err)
	}

	entry := fmt.Sprintf("%s: %s", time.Now().Format("2006-01-02"), milestone)
	goal.Milestones = append(goal.Milestones, entry)
	if err = l.core.Store().GoalStore().UpdateMilestones(l.ctx, goal.UserID, id, goal.Milestones); err != nil {
		return nil, errors.New("GoalLogic.AddMilestone.GoalStore.UpdateMilestones", i18n.ERROR_INTERNAL, err)
	}
	return goal, nil
}

func (l *GoalLogic) DeleteGoal(id string) error {
	if _, err := l.GetGoal(id); err != nil {
		return errors.Trace("GoalLogic.DeleteGoal", err)
	}
	if err := l.core.Store().GoalStore().Delete(l.ctx, l.GetUserInfo().UserID, id); err != nil {
		return errors.New("GoalLogic.DeleteGoal.GoalStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func (l *GoalLogic) ListGoals(statuses []types.GoalStatus, page, pageSize uint64) ([]types.Goal, int64, error) {
	userID := l.GetUserInfo().UserID
	list, err := l.core.Store().GoalStore().List(l.ctx, userID, statuses, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, 0, errors.New("GoalLogic.ListGoals.GoalStore.List", i18n.ERROR_INTERNAL, err)
	}
	total, err := l.core.Store().GoalStore().Total(l.ctx, userID, statuses)
	if err != nil {
		return nil, 0, errors.New("GoalLogic.ListGoals.GoalStore.Total", i18n.ERROR_INTERNAL, err)
	}
	return list, total, nil
}

// Overview aggregates the user's goal portfolio and flags goals that are
// overdue or stalled.
func (l *GoalLogic) Overview() (*types.GoalOverview, error) {
	userID := l.GetUserInfo().UserID
	goals, err := l.core.Store().GoalStore().List(l.ctx, userID, nil, types.NO_PAGINATION, types.NO_PAGINATION)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("GoalLogic.Overview.GoalStore.List", i18n.ERROR_INTERNAL, err)
	}

	overview := buildOverview(goals, time.Now())
	return &overview, nil
}

func buildOverview(goals []types.Goal, now time.Time) types.GoalOverview {
	overview := types.GoalOverview{
		NeedAttention: []string{},
		Insights:      []string{},
	}
	overview.Total = len(goals)

	var careerCount int
	for _, g := range goals {
		switch g.Status {
		case types.GOAL_STATUS_COMPLETED:
			overview.Completed++
		case types.GOAL_STATUS_IN_PROGRESS:
			overview.InProgress++
		case types.GOAL_STATUS_NOT_STARTED:
			overview.NotStarted++
		}
		if g.GoalType == types.GOAL_TYPE_CAREER {
			careerCount++
		}

		if overdueGoal(g, now) {
			overview.NeedAttention = append(overview.NeedAttention, g.Title)
		}
	}

	if overview.Total > 0 {
		overview.CompletionRate = float64(overview.Completed) / float64(overview.Total) * 100
	}

	if careerCount > 2 {
		overview.Insights = append(overview.Insights,
			"Jag ser att du fokuserar mycket på karriär. Kom ihåg att balansera med personligt välmående.")
	}
	if len(overview.NeedAttention) > 2 {
		overview.Insights = append(overview.Insights,
			"Du har flera försenade mål. Kanske dags att omprioritera eller justera dina deadlines?")
	}
	if len(overview.Insights) == 0 {
		overview.Insights = append(overview.Insights,
			"Kom ihåg att fira små framsteg - de leder till stora förändringar!",
			"Är du nöjd med balansen mellan att utmana dig själv och att vila?",
			"Vad roligt planerar du att göra för dig själv denna vecka?")
	}
	if len(overview.Insights) > 3 {
		overview.Insights = overview.Insights[:3]
	}

	return overview
}

func overdueGoal(g types.Goal, now time.Time) bool {
	return g.TargetDate > 0 && g.TargetDate < now.Unix() && g.Status != types.GOAL_STATUS_COMPLETED
}
