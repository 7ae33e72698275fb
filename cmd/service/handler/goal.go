package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/vagledaren/vagledaren/app/logic/v1"
	"github.com/vagledaren/vagledaren/app/response"
	"github.com/vagledaren/vagledaren/pkg/types"
	"github.com/vagledaren/vagledaren/pkg/utils"
)

func (s *HttpSrv) CreateGoal(c *gin.Context) {
	var (
		err error
		req v1.CreateGoalArgs
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	goal, err := v1.NewGoalLogic(c, s.Core).CreateGoal(req)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, goal)
}

func (s *HttpSrv) GetGoal(c *gin.Context) {
	id, _ := c.Params.Get("goal")
	goal, err := v1.NewGoalLogic(c, s.Core).GetGoal(id)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, goal)
}

type UpdateGoalProgressRequest struct {
	Progress int    `json:"progress" form:"progress"`
	Notes    string `json:"notes" form:"notes"`
}

func (s *HttpSrv) UpdateGoalProgress(c *gin.Context) {
	var (
		err error
		req UpdateGoalProgressRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	id, _ := c.Params.Get("goal")
	goal, err := v1.NewGoalLogic(c, s.Core).UpdateProgress(id, req.Progress, req.Notes)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, goal)
}

type AddGoalMilestoneRequest struct {
	Milestone string `json:"milestone" form:"milestone" binding:"required"`
}

func (s *HttpSrv) AddGoalMilestone(c *gin.Context) {
	var (
		err error
		req AddGoalMilestoneRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	id, _ := c.Params.Get("goal")
	goal, err := v1.NewGoalLogic(c, s.Core).AddMilestone(id, req.Milestone)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, goal)
}

func (s *HttpSrv) DeleteGoal(c *gin.Context) {
	id, _ := c.Params.Get("goal")
	if err := v1.NewGoalLogic(c, s.Core).DeleteGoal(id); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

type ListGoalsRequest struct {
	ListPage
	Status []types.GoalStatus `json:"status" form:"status"`
}

type ListGoalsResponse struct {
	List  []types.Goal `json:"list"`
	Total int64        `json:"total"`
}

func (s *HttpSrv) ListGoals(c *gin.Context) {
	var (
		err error
		req ListGoalsRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	req.Fill()
	list, total, err := v1.NewGoalLogic(c, s.Core).ListGoals(req.Status, req.Page, req.PageSize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, ListGoalsResponse{
		List:  list,
		Total: total,
	})
}

func (s *HttpSrv) GoalOverview(c *gin.Context) {
	overview, err := v1.NewGoalLogic(c, s.Core).Overview()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, overview)
}
