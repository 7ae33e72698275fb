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

type ProjectLogic struct {
	UserInfo
	ctx  context.Context
	core *core.Core
}

func NewProjectLogic(ctx context.Context, core *core.Core) *ProjectLogic {
	return &ProjectLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

type CreateProjectArgs struct {
	Title            string           `json:"title" binding:"required"`
	Description      string           `json:"description"`
	UseCase          types.AIUseCase  `json:"use_case" binding:"required"`
	Stakeholders     types.StringList `json:"stakeholders"`
	TargetCompletion int64            `json:"target_completion"`
	Budget           float64          `json:"budget"`
	SuccessCriteria  types.StringList `json:"success_criteria"`
	Risks            types.StringList `json:"risks"`
}

// CreateProject registers a new AI rollout project, always starting in
// the assessment phase.
func (l *ProjectLogic) CreateProject(args CreateProjectArgs) (*types.AIProject, error) {
	userID := l.GetUserInfo().UserID
	if userID == "" {
		return nil, errors.New("ProjectLogic.CreateProject.check", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}

	now := time.Now().Unix()
	project := types.AIProject{
		ID:               utils.GenUniqIDStr(),
		UserID:           userID,
		Title:            args.Title,
		Description:      args.Description,
		UseCase:          args.UseCase,
		Phase:            types.PHASE_ASSESSMENT,
		Stakeholders:     args.Stakeholders,
		StartDate:        now,
		TargetCompletion: args.TargetCompletion,
		Budget:           args.Budget,
		SuccessCriteria:  args.SuccessCriteria,
		Risks:            args.Risks,
		KPIs:             types.FloatMap{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := l.core.Store().AIProjectStore().Create(l.ctx, project); err != nil {
		return nil, errors.New("ProjectLogic.CreateProject.AIProjectStore.Create", i18n.ERROR_INTERNAL, err)
	}
	return &project, nil
}

func (l *ProjectLogic) GetProject(id string) (*types.AIProject, error) {
	project, err := l.core.Store().AIProjectStore().Get(l.ctx, l.GetUserInfo().UserID, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("ProjectLogic.GetProject.AIProjectStore.Get", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return nil, errors.New("ProjectLogic.GetProject.AIProjectStore.Get", i18n.ERROR_INTERNAL, err)
	}
	return project, nil
}

// AdvancePhase moves the project one step along the rollout ladder and
// stamps the transition into the progress notes.
func (l *ProjectLogic) AdvancePhase(id, notes string) (*types.AIProject, error) {
	project, err := l.GetProject(id)
	if err != nil {
		return nil, errors.Trace("ProjectLogic.AdvancePhase", err)
	}

	next, ok := project.Phase.Next()
	if !ok {
		return nil, errors.New("ProjectLogic.AdvancePhase.last", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	timestamp := time.Now().Format("2006-01-02 15:04")
	progressNotes := project.ProgressNotes + fmt.Sprintf("\n[%s] Moved to %s: %s", timestamp, next, notes)

	if err = l.core.Store().AIProjectStore().SetPhase(l.ctx, project.UserID, id, next, progressNotes); err != nil {
		return nil, errors.New("ProjectLogic.AdvancePhase.AIProjectStore.SetPhase", i18n.ERROR_INTERNAL, err)
	}

	project.Phase = next
	project.ProgressNotes = progressNotes
	return project, nil
}

func (l *ProjectLogic) UpdateProject(id string, args types.UpdateAIProjectArgs) error {
	project, err := l.GetProject(id)
	if err != nil {
		return errors.Trace("ProjectLogic.UpdateProject", err)
	}
	if err = l.core.Store().AIProjectStore().Update(l.ctx, project.UserID, id, args); err != nil {
		return errors.New("ProjectLogic.UpdateProject.AIProjectStore.Update", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func (l *ProjectLogic) DeleteProject(id string) error {
	project, err := l.GetProject(id)
	if err != nil {
		return errors.Trace("ProjectLogic.DeleteProject", err)
	}
	if err = l.core.Store().AIProjectStore().Delete(l.ctx, project.UserID, id); err != nil {
		return errors.New("ProjectLogic.DeleteProject.AIProjectStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func (l *ProjectLogic) ListProjects(page, pageSize uint64) ([]types.AIProject, int64, error) {
	userID := l.GetUserInfo().UserID
	list, err := l.core.Store().AIProjectStore().List(l.ctx, userID, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, 0, errors.New("ProjectLogic.ListProjects.AIProjectStore.List", i18n.ERROR_INTERNAL, err)
	}
	total, err := l.core.Store().AIProjectStore().Total(l.ctx, userID)
	if err != nil {
		return nil, 0, errors.New("ProjectLogic.ListProjects.AIProjectStore.Total", i18n.ERROR_INTERNAL, err)
	}
	return list, total, nil
}

// ImplementationStatus summarizes the rollout portfolio.
func (l *ProjectLogic) ImplementationStatus() (*types.ImplementationStatus, error) {
	userID := l.GetUserInfo().UserID
	projects, err := l.core.Store().AIProjectStore().List(l.ctx, userID, types.NO_PAGINATION, types.NO_PAGINATION)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("ProjectLogic.ImplementationStatus.AIProjectStore.List", i18n.ERROR_INTERNAL, err)
	}
	challenges, err := l.core.Store().ChallengeStore().List(l.ctx, userID, "", types.NO_PAGINATION, types.NO_PAGINATION)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("ProjectLogic.ImplementationStatus.ChallengeStore.List", i18n.ERROR_INTERNAL, err)
	}

	status := &types.ImplementationStatus{
		TotalProjects:   len(projects),
		ProjectsByPhase: make(map[string]int),
	}
	for _, phase := range types.ImplementationPhases {
		status.ProjectsByPhase[string(phase)] = 0
	}
	for _, p := range projects {
		status.ProjectsByPhase[string(p.Phase)]++
	}
	for _, c := range challenges {
		if c.Status != types.CHALLENGE_STATUS_OPEN {
			continue
		}
		status.OpenChallenges++
		if c.Severity >= 7 {
			status.HighSeverityChallenges++
		}
	}
	return status, nil
}

// Roadmap is the static three-stage implementation plan.
func (l *ProjectLogic) Roadmap() []types.RoadmapStage {
	return []types.RoadmapStage{
		{
			Phase:    "Assessment & Strategy",
			Duration: "2-3 månader",
			Activities: types.StringList{
				"Kartlägg nuvarande AI-mognad och kapacitet",
				"Identifiera high-value use cases",
				"Analysera stakeholder-behov och motstånd",
				"Utveckla AI-policy och etiska riktlinjer",
				"Skapa business case och budget",
			},
			Deliverables: types.StringList{
				"AI Maturity Assessment Report",
				"Strategic AI Implementation Plan",
				"Risk Assessment och Mitigation Plan",
			},
		},
		{
			Phase:    "Pilot Projects",
			Duration: "3-6 månader",
			Activities: types.StringList{
				"Välj 2-3 lågrisk, high-impact pilotprojekt",
				"Bygg tvärfunktionella team",
				"Implementera grundläggande AI-infrastruktur",
				"Träna nyckelpersoner och champions",
				"Utveckla mät- och utvärderingssystem",
			},
			Deliverables: types.StringList{
				"Fungerande AI-pilotlösningar",
				"Träningspaket och dokumentation",
				"Utvärderingsrapport med lessons learned",
			},
		},
		{
			Phase:    "Scaling & Deployment",
			Duration: "6-12 månader",
			Activities: types.StringList{
				"Rulla ut framgångsrika piloter university-wide",
				"Implementera fullskalig träningsprogram",
				"Integrera AI-verktyg med befintliga system",
				"Utveckla supportprocesser och governance",
				"Mät impact och ROI kontinuerligt",
			},
			Deliverables: types.StringList{
				"University-wide AI platform",
				"Comprehensive training program",
				"AI Governance framework",
				"Impact och ROI rapporter",
			},
		},
	}
}
