package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vagledaren/vagledaren/pkg/utils"
)

func bindListPage(t *testing.T, query string) (ListPage, error) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/list?"+query, nil)

	var req ListPage
	err := utils.BindArgsWithGin(c, &req)
	return req, err
}

func TestListPageFill(t *testing.T) {
	// page=0 must not flow into the (page-1)*pagesize offset math.
	req, err := bindListPage(t, "page=0&pagesize=20")
	require.NoError(t, err)
	req.Fill()
	assert.Equal(t, uint64(1), req.Page)
	assert.Equal(t, uint64(20), req.PageSize)
	assert.Equal(t, uint64(0), (req.Page-1)*req.PageSize)

	req, err = bindListPage(t, "")
	require.NoError(t, err)
	req.Fill()
	assert.Equal(t, uint64(1), req.Page)
	assert.Equal(t, uint64(20), req.PageSize)

	req, err = bindListPage(t, "page=3&pagesize=0")
	require.NoError(t, err)
	req.Fill()
	assert.Equal(t, uint64(3), req.Page)
	assert.Equal(t, uint64(20), req.PageSize)

	req, err = bindListPage(t, "page=2&pagesize=50")
	require.NoError(t, err)
	req.Fill()
	assert.Equal(t, uint64(2), req.Page)
	assert.Equal(t, uint64(50), req.PageSize)
}

func TestListPageSizeCap(t *testing.T) {
	_, err := bindListPage(t, "page=1&pagesize=500")
	assert.Error(t, err)
}
