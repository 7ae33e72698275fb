package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/vagledaren/vagledaren/app/logic/v1"
	"github.com/vagledaren/vagledaren/app/response"
	"github.com/vagledaren/vagledaren/pkg/types"
	"github.com/vagledaren/vagledaren/pkg/utils"
)

func (s *HttpSrv) CreateProject(c *gin.Context) {
	var (
		err error
		req v1.CreateProjectArgs
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	project, err := v1.NewProjectLogic(c, s.Core).CreateProject(req)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, project)
}

func (s *HttpSrv) GetProject(c *gin.Context) {
	id, _ := c.Params.Get("project")
	project, err := v1.NewProjectLogic(c, s.Core).GetProject(id)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, project)
}

type AdvancePhaseRequest struct {
	Notes string `json:"notes" form:"notes"`
}

func (s *HttpSrv) AdvanceProjectPhase(c *gin.Context) {
	var (
		err error
		req AdvancePhaseRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	id, _ := c.Params.Get("project")
	project, err := v1.NewProjectLogic(c, s.Core).AdvancePhase(id, req.Notes)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, project)
}

func (s *HttpSrv) UpdateProject(c *gin.Context) {
	var (
		err error
		req types.UpdateAIProjectArgs
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	id, _ := c.Params.Get("project")
	if err = v1.NewProjectLogic(c, s.Core).UpdateProject(id, req); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

func (s *HttpSrv) DeleteProject(c *gin.Context) {
	id, _ := c.Params.Get("project")
	if err := v1.NewProjectLogic(c, s.Core).DeleteProject(id); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

type ListProjectsResponse struct {
	List  []types.AIProject `json:"list"`
	Total int64             `json:"total"`
}

func (s *HttpSrv) ListProjects(c *gin.Context) {
	var (
		err error
		req ListPage
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	req.Fill()
	list, total, err := v1.NewProjectLogic(c, s.Core).ListProjects(req.Page, req.PageSize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, ListProjectsResponse{
		List:  list,
		Total: total,
	})
}

func (s *HttpSrv) ImplementationStatus(c *gin.Context) {
	status, err := v1.NewProjectLogic(c, s.Core).ImplementationStatus()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, status)
}

func (s *HttpSrv) ImplementationRoadmap(c *gin.Context) {
	response.APISuccess(c, v1.NewProjectLogic(c, s.Core).Roadmap())
}
