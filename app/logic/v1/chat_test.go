package v1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vagledaren/vagledaren/pkg/coach"
	"github.com/vagledaren/vagledaren/pkg/types"
	"github.com/vagledaren/vagledaren/pkg/utils"
)

func TestTurnRowsSuccessfulTurn(t *testing.T) {
	utils.SetupIDWorker(1)
	now := time.Now().Unix()

	rows := turnRows("sid", "uid", "Hej!", "Hej på dig!", types.ReplyMetadata{}, now)
	require.Len(t, rows, 2)
	assert.Equal(t, types.USER_ROLE_USER, rows[0].Role)
	assert.Equal(t, "Hej!", rows[0].Message)
	assert.Equal(t, types.USER_ROLE_ASSISTANT, rows[1].Role)
	assert.Equal(t, "Hej på dig!", rows[1].Message)
	for _, row := range rows {
		assert.Equal(t, "sid", row.SessionID)
		assert.Equal(t, "uid", row.UserID)
		assert.Equal(t, now, row.SendTime)
		assert.NotEmpty(t, row.ID)
	}
}

func TestTurnRowsFailedTurnKeepsOnlyUserMessage(t *testing.T) {
	utils.SetupIDWorker(1)
	meta := types.ReplyMetadata{Error: "api unavailable"}

	rows := turnRows("sid", "uid", "Hej!", coach.ErrorReply, meta, time.Now().Unix())
	require.Len(t, rows, 1)
	assert.Equal(t, types.USER_ROLE_USER, rows[0].Role)
	assert.Equal(t, "Hej!", rows[0].Message)
}
