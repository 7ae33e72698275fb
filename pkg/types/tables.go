package types

import "fmt"

type TableName string

func (s TableName) Name() string {
	return fmt.Sprintf("%s%s", TABLE_PREFIX, s)
}

const TABLE_PREFIX = "vgl_"

const (
	TABLE_COACHING_SESSION = TableName("coaching_session")
	TABLE_CHAT_MESSAGE     = TableName("chat_message")
	TABLE_GOAL             = TableName("goal")
	TABLE_AI_PROJECT       = TableName("ai_project")
	TABLE_CHALLENGE        = TableName("challenge")
	TABLE_REFLECTION       = TableName("reflection")
	TABLE_USAGE_RECORD     = TableName("usage_record")
	TABLE_ACCESS_TOKEN     = TableName("access_token")
	TABLE_USER             = TableName("user")
)
