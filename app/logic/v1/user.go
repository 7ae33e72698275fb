package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/vagledaren/vagledaren/app/core"
	"github.com/vagledaren/vagledaren/pkg/errors"
	"github.com/vagledaren/vagledaren/pkg/i18n"
	"github.com/vagledaren/vagledaren/pkg/types"
	"github.com/vagledaren/vagledaren/pkg/utils"
)

type UserLogic struct {
	UserInfo
	ctx  context.Context
	core *core.Core
}

func NewUserLogic(ctx context.Context, core *core.Core) *UserLogic {
	return &UserLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

// Register creates a user. Email is unique; a duplicate registration is
// rejected.
func (l *UserLogic) Register(name, email string) (string, error) {
	if name == "" || email == "" {
		return "", errors.New("UserLogic.Register.check", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	exist, err := l.core.Store().UserStore().GetByEmail(l.ctx, email)
	if err != nil && err != sql.ErrNoRows {
		return "", errors.New("UserLogic.Register.UserStore.GetByEmail", i18n.ERROR_INTERNAL, err)
	}
	if exist != nil {
		return "", errors.New("UserLogic.Register.exist", i18n.ERROR_EXIST, nil).Code(http.StatusForbidden)
	}

	now := time.Now().Unix()
	user := types.User{
		ID:        utils.GenUniqIDStr(),
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = l.core.Store().UserStore().Create(l.ctx, user); err != nil {
		return "", errors.New("UserLogic.Register.UserStore.Create", i18n.ERROR_INTERNAL, err)
	}
	return user.ID, nil
}

func (l *UserLogic) GetUser(id string) (*types.User, error) {
	user, err := l.core.Store().UserStore().GetUser(l.ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("UserLogic.GetUser.UserStore.GetUser", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return nil, errors.New("UserLogic.GetUser.UserStore.GetUser", i18n.ERROR_INTERNAL, err)
	}
	return user, nil
}

// Profile returns the authed user's own record.
func (l *UserLogic) Profile() (*types.User, error) {
	userID := l.GetUserInfo().UserID
	if userID == "" {
		return nil, errors.New("UserLogic.Profile.check", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}
	return l.GetUser(userID)
}

func (l *UserLogic) UpdateProfile(name, email string) error {
	userID := l.GetUserInfo().UserID
	if userID == "" {
		return errors.New("UserLogic.UpdateProfile.check", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}

	user, err := l.GetUser(userID)
	if err != nil {
		return errors.Trace("UserLogic.UpdateProfile", err)
	}

	if name == "" {
		name = user.Name
	}
	if email == "" {
		email = user.Email
	}
	if email != user.Email {
		exist, err := l.core.Store().UserStore().GetByEmail(l.ctx, email)
		if err != nil && err != sql.ErrNoRows {
			return errors.New("UserLogic.UpdateProfile.UserStore.GetByEmail", i18n.ERROR_INTERNAL, err)
		}
		if exist != nil {
			return errors.New("UserLogic.UpdateProfile.exist", i18n.ERROR_EXIST, nil).Code(http.StatusForbidden)
		}
	}

	if err = l.core.Store().UserStore().UpdateProfile(l.ctx, userID, name, email); err != nil {
		return errors.New("UserLogic.UpdateProfile.UserStore.UpdateProfile", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
