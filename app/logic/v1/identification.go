package v1

import (
	"context"
	"log/slog"

	"github.com/vagledaren/vagledaren/app/core"
	"github.com/vagledaren/vagledaren/pkg/types"
)

type _userInfo struct {
	u    *types.UserTokenMeta
	ctx  context.Context
	core *core.Core
}

func (u *_userInfo) GetUserInfo() types.UserTokenMeta {
	return *u.u
}

func SetupUserInfo(ctx context.Context, core *core.Core) UserInfo {
	userInfo, ok := InjectTokenClaim(ctx)
	if !ok {
		slog.Error("Not found user in context", slog.String("component", "logic.v1.setupUserInfo"))
		userInfo = types.UserTokenMeta{}
	}
	return &_userInfo{
		u:    &userInfo,
		ctx:  ctx,
		core: core,
	}
}

type UserInfo interface {
	GetUserInfo() types.UserTokenMeta
}
