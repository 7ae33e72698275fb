package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vagledaren/vagledaren/app/core"
	"github.com/vagledaren/vagledaren/pkg/types"
)

type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}

// ListPage is the shared query binding for paginated list endpoints.
type ListPage struct {
	Page     uint64 `json:"page" form:"page"`
	PageSize uint64 `json:"pagesize" form:"pagesize" binding:"lte=100"`
}

// Fill normalizes unset values. The store layer computes
// (page-1)*pagesize as uint64, so page must never reach it as zero.
func (p *ListPage) Fill() {
	if p.Page == 0 {
		p.Page = types.DEFAULT_PAGE
	}
	if p.PageSize == 0 {
		p.PageSize = types.DEFAULT_PAGE_SIZE
	}
}
