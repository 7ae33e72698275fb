package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/vagledaren/vagledaren/app/logic/v1"
	"github.com/vagledaren/vagledaren/app/response"
	"github.com/vagledaren/vagledaren/pkg/types"
	"github.com/vagledaren/vagledaren/pkg/utils"
)

func (s *HttpSrv) CreateChallenge(c *gin.Context) {
	var (
		err error
		req v1.CreateChallengeArgs
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	challenge, err := v1.NewChallengeLogic(c, s.Core).CreateChallenge(req)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, challenge)
}

func (s *HttpSrv) GetChallenge(c *gin.Context) {
	id, _ := c.Params.Get("challenge")
	challenge, err := v1.NewChallengeLogic(c, s.Core).GetChallenge(id)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, challenge)
}

type ProposeSolutionRequest struct {
	Solution string `json:"solution" form:"solution" binding:"required"`
}

func (s *HttpSrv) ProposeChallengeSolution(c *gin.Context) {
	var (
		err error
		req ProposeSolutionRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	id, _ := c.Params.Get("challenge")
	challenge, err := v1.NewChallengeLogic(c, s.Core).ProposeSolution(id, req.Solution)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, challenge)
}

type SetChallengeStatusRequest struct {
	Status types.ChallengeStatus `json:"status" form:"status" binding:"required"`
}

func (s *HttpSrv) SetChallengeStatus(c *gin.Context) {
	var (
		err error
		req SetChallengeStatusRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	id, _ := c.Params.Get("challenge")
	if err = v1.NewChallengeLogic(c, s.Core).SetStatus(id, req.Status); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

type ListChallengesRequest struct {
	ListPage
	Status types.ChallengeStatus `json:"status" form:"status"`
}

type ListChallengesResponse struct {
	List  []types.Challenge `json:"list"`
	Total int64             `json:"total"`
}

func (s *HttpSrv) ListChallenges(c *gin.Context) {
	var (
		err error
		req ListChallengesRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	req.Fill()
	list, total, err := v1.NewChallengeLogic(c, s.Core).ListChallenges(req.Status, req.Page, req.PageSize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, ListChallengesResponse{
		List:  list,
		Total: total,
	})
}
