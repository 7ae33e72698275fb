package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	v1 "github.com/vagledaren/vagledaren/app/logic/v1"
	"github.com/vagledaren/vagledaren/app/response"
	"github.com/vagledaren/vagledaren/pkg/utils"
)

type RegisterUserRequest struct {
	Name  string `json:"name" form:"name" binding:"required"`
	Email string `json:"email" form:"email" binding:"required,email"`
}

type RegisterUserResponse struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

// RegisterUser creates an account and mints its first access token.
func (s *HttpSrv) RegisterUser(c *gin.Context) {
	var (
		err error
		req RegisterUserRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	userID, err := v1.NewUserLogic(c, s.Core).Register(req.Name, req.Email)
	if err != nil {
		response.APIError(c, err)
		return
	}

	token, err := v1.NewAuthLogic(c, s.Core).GenAccessToken("register", userID, time.Now().AddDate(0, 6, 0).Unix())
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, RegisterUserResponse{
		UserID: userID,
		Token:  token,
	})
}

func (s *HttpSrv) Profile(c *gin.Context) {
	user, err := v1.NewUserLogic(c, s.Core).Profile()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, user)
}

type UpdateProfileRequest struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
}

func (s *HttpSrv) UpdateProfile(c *gin.Context) {
	var (
		err error
		req UpdateProfileRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewUserLogic(c, s.Core).UpdateProfile(req.Name, req.Email); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

type CreateAccessTokenRequest struct {
	Info      string `json:"info" form:"info"`
	ExpiresAt int64  `json:"expires_at" form:"expires_at"`
}

type CreateAccessTokenResponse struct {
	Token string `json:"token"`
}

func (s *HttpSrv) CreateAccessToken(c *gin.Context) {
	var (
		err error
		req CreateAccessTokenRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	claims, _ := v1.InjectTokenClaim(c)
	token, err := v1.NewAuthLogic(c, s.Core).GenAccessToken(req.Info, claims.UserID, req.ExpiresAt)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, CreateAccessTokenResponse{Token: token})
}

func (s *HttpSrv) ListAccessTokens(c *gin.Context) {
	var (
		err error
		req ListPage
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	req.Fill()
	claims, _ := v1.InjectTokenClaim(c)
	list, err := v1.NewAuthLogic(c, s.Core).ListAccessTokens(claims.UserID, req.Page, req.PageSize)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, list)
}

func (s *HttpSrv) ClearAccessTokens(c *gin.Context) {
	claims, _ := v1.InjectTokenClaim(c)
	if err := v1.NewAuthLogic(c, s.Core).ClearUserTokens(claims.UserID); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}
