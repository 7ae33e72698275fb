package v1

import (
	"context"

	"github.com/vagledaren/vagledaren/pkg/types"
)

const (
	TOKEN_CONTEXT_KEY = "__vgl.access_token"
	LANGUAGE_KEY      = "__vgl.accept_language"
)

// InjectTokenClaim gets the validated token meta from context.
func InjectTokenClaim(ctx context.Context) (types.UserTokenMeta, bool) {
	val, ok := ctx.Value(TOKEN_CONTEXT_KEY).(types.UserTokenMeta)
	return val, ok
}

func InjectLanguage(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(LANGUAGE_KEY).(string)
	return val, ok
}
