package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/vagledaren/vagledaren/app/logic/v1"
	"github.com/vagledaren/vagledaren/app/response"
	"github.com/vagledaren/vagledaren/pkg/types"
	"github.com/vagledaren/vagledaren/pkg/utils"
)

type DailyUsageRequest struct {
	Day string `json:"day" form:"day"`
}

func (s *HttpSrv) DailyUsage(c *gin.Context) {
	var (
		err error
		req DailyUsageRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	summary, err := v1.NewUsageLogic(c, s.Core).DailySummary(req.Day)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, summary)
}

func (s *HttpSrv) MonthlyUsage(c *gin.Context) {
	response.APISuccess(c, v1.NewUsageLogic(c, s.Core).MonthlySummary())
}

func (s *HttpSrv) UsageReport(c *gin.Context) {
	response.APISuccess(c, v1.NewUsageLogic(c, s.Core).Report())
}

type ListUsageRecordsResponse struct {
	List  []types.UsageRecord `json:"list"`
	Total int64               `json:"total"`
}

func (s *HttpSrv) ListUsageRecords(c *gin.Context) {
	var (
		err error
		req ListPage
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	req.Fill()
	list, total, err := v1.NewUsageLogic(c, s.Core).ListRecords(req.Page, req.PageSize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, ListUsageRecordsResponse{
		List:  list,
		Total: total,
	})
}
