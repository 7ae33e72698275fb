package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	v1 "github.com/vagledaren/vagledaren/app/logic/v1"
	"github.com/vagledaren/vagledaren/app/response"
	"github.com/vagledaren/vagledaren/pkg/errors"
	"github.com/vagledaren/vagledaren/pkg/i18n"
	"github.com/vagledaren/vagledaren/pkg/types"
	"github.com/vagledaren/vagledaren/pkg/utils"
)

func (s *HttpSrv) CreateReflection(c *gin.Context) {
	var (
		err error
		req v1.CreateReflectionArgs
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	reflection, err := v1.NewReflectionLogic(c, s.Core).CreateReflection(req)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, reflection)
}

func (s *HttpSrv) DeleteReflection(c *gin.Context) {
	raw, _ := c.Params.Get("reflection")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.APIError(c, errors.New("api.DeleteReflection.ParseInt", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest))
		return
	}

	if err = v1.NewReflectionLogic(c, s.Core).DeleteReflection(id); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

type ListReflectionsResponse struct {
	List  []types.Reflection `json:"list"`
	Total int64              `json:"total"`
}

func (s *HttpSrv) ListReflections(c *gin.Context) {
	var (
		err error
		req ListPage
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	req.Fill()
	list, total, err := v1.NewReflectionLogic(c, s.Core).ListReflections(req.Page, req.PageSize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, ListReflectionsResponse{
		List:  list,
		Total: total,
	})
}

type RecentReflectionsRequest struct {
	Days int `json:"days" form:"days"`
}

func (s *HttpSrv) RecentReflections(c *gin.Context) {
	var (
		err error
		req RecentReflectionsRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	list, err := v1.NewReflectionLogic(c, s.Core).RecentReflections(req.Days)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, list)
}

type ReflectionPromptsResponse struct {
	Prompts []string `json:"prompts"`
}

// ReflectionPrompts serves coaching prompts derived from the caller's
// current goal state.
func (s *HttpSrv) ReflectionPrompts(c *gin.Context) {
	prompts, err := v1.NewReflectionLogic(c, s.Core).CoachingPrompts()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, ReflectionPromptsResponse{Prompts: prompts})
}

func (s *HttpSrv) WeeklyReviewQuestions(c *gin.Context) {
	response.APISuccess(c, ReflectionPromptsResponse{
		Prompts: v1.NewReflectionLogic(c, s.Core).WeeklyReviewQuestions(),
	})
}
