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

type ReflectionLogic struct {
	UserInfo
	ctx  context.Context
	core *core.Core
}

func NewReflectionLogic(ctx context.Context, core *core.Core) *ReflectionLogic {
	return &ReflectionLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

type CreateReflectionArgs struct {
	Prompt       string `json:"prompt" binding:"required"`
	Response     string `json:"response" binding:"required"`
	MoodRating   int    `json:"mood_rating" binding:"required"`
	EnergyRating int    `json:"energy_rating" binding:"required"`
	Insights     string `json:"insights"`
}

func (l *ReflectionLogic) CreateReflection(args CreateReflectionArgs) (*types.Reflection, error) {
	userID := l.GetUserInfo().UserID
	if userID == "" {
		return nil, errors.New("ReflectionLogic.CreateReflection.check", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}
	if args.MoodRating < 1 || args.MoodRating > 10 || args.EnergyRating < 1 || args.EnergyRating > 10 {
		return nil, errors.New("ReflectionLogic.CreateReflection.rating", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	now := time.Now()
	reflection := types.Reflection{
		ID:           utils.GenUniqID(),
		UserID:       userID,
		Date:         now.Format("2006-01-02"),
		Prompt:       args.Prompt,
		Response:     args.Response,
		MoodRating:   args.MoodRating,
		EnergyRating: args.EnergyRating,
		Insights:     args.Insights,
		CreatedAt:    now.Unix(),
	}
	if err := l.core.Store().ReflectionStore().Create(l.ctx, reflection); err != nil {
		return nil, errors.New("ReflectionLogic.CreateReflection.ReflectionStore.Create", i18n.ERROR_INTERNAL, err)
	}
	return &reflection, nil
}

func (l *ReflectionLogic) DeleteReflection(id int64) error {
	_, err := l.core.Store().ReflectionStore().Get(l.ctx, l.GetUserInfo().UserID, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.New("ReflectionLogic.DeleteReflection.ReflectionStore.Get", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return errors.New("ReflectionLogic.DeleteReflection.ReflectionStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if err = l.core.Store().ReflectionStore().Delete(l.ctx, l.GetUserInfo().UserID, id); err != nil {
		return errors.New("ReflectionLogic.DeleteReflection.ReflectionStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func (l *ReflectionLogic) ListReflections(page, pageSize uint64) ([]types.Reflection, int64, error) {
	userID := l.GetUserInfo().UserID
	list, err := l.core.Store().ReflectionStore().List(l.ctx, userID, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, 0, errors.New("ReflectionLogic.ListReflections.ReflectionStore.List", i18n.ERROR_INTERNAL, err)
	}
	total, err := l.core.Store().ReflectionStore().Total(l.ctx, userID)
	if err != nil {
		return nil, 0, errors.New("ReflectionLogic.ListReflections.ReflectionStore.Total", i18n.ERROR_INTERNAL, err)
	}
	return list, total, nil
}

// RecentReflections returns entries from the last N days, default 7.
func (l *ReflectionLogic) RecentReflections(days int) ([]types.Reflection, error) {
	if days <= 0 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days).Format("2006-01-02")
	list, err := l.core.Store().ReflectionStore().ListSince(l.ctx, l.GetUserInfo().UserID, since)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("ReflectionLogic.RecentReflections.ReflectionStore.ListSince", i18n.ERROR_INTERNAL, err)
	}
	return list, nil
}

var generalReflectionPrompts = []string{
	"Vad är du mest stolt över som du har åstadkommit denna vecka?",
	"Vilken utmaning ser du fram emot att tackle nästa?",
	"På en skala 1-10, hur nöjd känner du dig med din progress just nu?",
	"Vad skulle göra nästa vecka till en riktigt bra vecka för dig?",
	"Vilken färdighet eller kunskap skulle du vilja utveckla mest?",
	"Hur mår du med balansen mellan arbete och vila just nu?",
	"Vad ger dig mest energi i ditt dagliga liv?",
	"Om du kunde ge dig själv för 6 månader sedan ett råd, vad skulle det vara?",
}

var weeklyReviewQuestions = []string{
	"Vad är du mest tacksam för denna vecka?",
	"Vilken utmaning lyckades du hantera bra?",
	"Vad lärde du dig om dig själv?",
	"Vilken progress är du mest nöjd med?",
	"Vad skulle du göra annorlunda om du kunde göra om veckan?",
	"Hur känner du dig inför nästa vecka?",
	"Vilken positiv vana vill du fortsätta bygga på?",
	"Vad behöver du mest stöd med framöver?",
}

// CoachingPrompts generates reflection prompts from the user's goal
// situation: active goals first, then overdue ones, then three general
// development prompts.
func (l *ReflectionLogic) CoachingPrompts() ([]string, error) {
	userID := l.GetUserInfo().UserID
	prompts := []string{}

	active, err := l.core.Store().GoalStore().List(l.ctx, userID,
		[]types.GoalStatus{types.GOAL_STATUS_NOT_STARTED, types.GOAL_STATUS_IN_PROGRESS},
		types.NO_PAGINATION, types.NO_PAGINATION)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("ReflectionLogic.CoachingPrompts.GoalStore.List", i18n.ERROR_INTERNAL, err)
	}
	if len(active) > 0 {
		goal := active[0]
		prompts = append(prompts,
			fmt.Sprintf("Hur går det med ditt mål '%s'? Vad har du gjort denna vecka för att komma närmare?", goal.Title),
			fmt.Sprintf("Vilka hinder har du stött på med '%s' och hur kan vi tackle dem?", goal.Title),
			fmt.Sprintf("Vad motiverar dig mest med att uppnå '%s'?", goal.Title),
		)
	}

	overdue, err := l.core.Store().GoalStore().ListOverdue(l.ctx, userID, time.Now().Unix())
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("ReflectionLogic.CoachingPrompts.GoalStore.ListOverdue", i18n.ERROR_INTERNAL, err)
	}
	if len(overdue) > 0 {
		prompts = append(prompts,
			fmt.Sprintf("Jag ser att '%s' är försenat. Vill du justera målet eller behöver vi hitta nya strategier?", overdue[0].Title),
			"Vad har gjort det svårt att hålla deadlines? Låt oss diskutera hur vi kan förbättra planeringen.",
		)
	}

	prompts = append(prompts, generalReflectionPrompts[:3]...)
	return prompts, nil
}

// WeeklyReviewQuestions is the static weekly retrospective set.
func (l *ReflectionLogic) WeeklyReviewQuestions() []string {
	out := make([]string, len(weeklyReviewQuestions))
	copy(out, weeklyReviewQuestions)
	return out
}
