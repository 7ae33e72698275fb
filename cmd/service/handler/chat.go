package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/vagledaren/vagledaren/app/logic/v1"
	"github.com/vagledaren/vagledaren/app/response"
	"github.com/vagledaren/vagledaren/pkg/types"
	"github.com/vagledaren/vagledaren/pkg/utils"
)

type StartSessionRequest struct {
	Mode    types.CoachingMode `json:"mode" form:"mode" binding:"required"`
	Context types.StringMap    `json:"context" form:"context"`
}

func (s *HttpSrv) StartSession(c *gin.Context) {
	var (
		err error
		req StartSessionRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	session, err := v1.NewCoachLogic(c, s.Core).StartSession(req.Mode, req.Context)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, session)
}

type SendMessageRequest struct {
	Message string `json:"message" form:"message" binding:"required"`
}

type SendMessageResponse struct {
	Reply string              `json:"reply"`
	Meta  types.ReplyMetadata `json:"meta"`
}

func (s *HttpSrv) SendMessage(c *gin.Context) {
	var (
		err error
		req SendMessageRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	reply, meta, err := v1.NewCoachLogic(c, s.Core).SendMessage(req.Message)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, SendMessageResponse{
		Reply: reply,
		Meta:  meta,
	})
}

func (s *HttpSrv) EndSession(c *gin.Context) {
	summary, err := v1.NewCoachLogic(c, s.Core).EndSession()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, summary)
}

func (s *HttpSrv) GetActiveSession(c *gin.Context) {
	summary, err := v1.NewCoachLogic(c, s.Core).GetActiveSession()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, summary)
}

type SetSessionGoalsRequest struct {
	Goals []string `json:"goals" form:"goals" binding:"required"`
}

func (s *HttpSrv) SetSessionGoals(c *gin.Context) {
	var (
		err error
		req SetSessionGoalsRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewCoachLogic(c, s.Core).SetGoals(req.Goals); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

type AddProgressNoteRequest struct {
	Note string `json:"note" form:"note" binding:"required"`
}

func (s *HttpSrv) AddProgressNote(c *gin.Context) {
	var (
		err error
		req AddProgressNoteRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewCoachLogic(c, s.Core).AddProgressNote(req.Note); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

type ListSessionsResponse struct {
	List  []types.CoachingSession `json:"list"`
	Total int64                   `json:"total"`
}

func (s *HttpSrv) ListSessions(c *gin.Context) {
	var (
		err error
		req ListPage
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	req.Fill()
	list, total, err := v1.NewCoachLogic(c, s.Core).ListSessions(req.Page, req.PageSize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, ListSessionsResponse{
		List:  list,
		Total: total,
	})
}

type SessionHistoryResponse struct {
	List  []types.ChatMessage `json:"list"`
	Total int64               `json:"total"`
}

func (s *HttpSrv) SessionHistory(c *gin.Context) {
	var (
		err error
		req ListPage
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	req.Fill()
	sessionID, _ := c.Params.Get("session")
	list, total, err := v1.NewCoachLogic(c, s.Core).SessionHistory(sessionID, req.Page, req.PageSize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, SessionHistoryResponse{
		List:  list,
		Total: total,
	})
}
