package v1

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/vagledaren/vagledaren/app/core"
	"github.com/vagledaren/vagledaren/pkg/auth"
	"github.com/vagledaren/vagledaren/pkg/errors"
	"github.com/vagledaren/vagledaren/pkg/i18n"
	"github.com/vagledaren/vagledaren/pkg/types"
	"github.com/vagledaren/vagledaren/pkg/utils"
)

const tokenCacheTTL = time.Hour * 24

type AuthLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewAuthLogic(ctx context.Context, core *core.Core) *AuthLogic {
	return &AuthLogic{
		ctx:  ctx,
		core: core,
	}
}

// GenAccessToken mints an opaque token for a user and stores it in
// postgres with a redis write-through.
func (l *AuthLogic) GenAccessToken(info, userID string, expiresAt int64) (string, error) {
	if userID == "" {
		return "", errors.New("AuthLogic.GenAccessToken.check", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	token := utils.RandomStr(64)
	record := types.AccessToken{
		ID:        utils.GenUniqID(),
		UserID:    userID,
		Token:     token,
		Info:      info,
		CreatedAt: time.Now().Unix(),
		ExpiresAt: expiresAt,
	}
	if err := l.core.Store().AccessTokenStore().Create(l.ctx, record); err != nil {
		return "", errors.New("AuthLogic.GenAccessToken.AccessTokenStore.Create", i18n.ERROR_INTERNAL, err)
	}

	meta := &types.UserTokenMeta{UserID: userID, ExpiresAt: expiresAt}
	if err := auth.CacheToken(l.ctx, token, meta, l.core.Cache(), tokenCacheTTL); err != nil {
		// the store fallback still works without the cache entry
		slog.Warn("failed to cache access token", slog.String("user_id", userID), slog.Any("error", err))
	}

	return token, nil
}

// ValidateToken resolves a token to its owner: redis first, postgres as
// fallback with a cache write-back. Expired tokens are unauthorized.
func (l *AuthLogic) ValidateToken(tokenValue string) (*types.UserTokenMeta, error) {
	meta, err := auth.ValidateTokenFromCache(l.ctx, tokenValue, l.core.Cache())
	if err == nil {
		if tokenExpired(meta.ExpiresAt) {
			return nil, errors.New("AuthLogic.ValidateToken.cache.expired", i18n.ERROR_INVALID_TOKEN, nil).Code(http.StatusUnauthorized)
		}
		return meta, nil
	}

	record, err := l.core.Store().AccessTokenStore().GetAccessToken(l.ctx, tokenValue)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("AuthLogic.ValidateToken.AccessTokenStore.GetAccessToken", i18n.ERROR_INVALID_TOKEN, err).Code(http.StatusUnauthorized)
		}
		return nil, errors.New("AuthLogic.ValidateToken.AccessTokenStore.GetAccessToken", i18n.ERROR_INTERNAL, err)
	}
	if tokenExpired(record.ExpiresAt) {
		return nil, errors.New("AuthLogic.ValidateToken.expired", i18n.ERROR_INVALID_TOKEN, nil).Code(http.StatusUnauthorized)
	}

	meta = &types.UserTokenMeta{UserID: record.UserID, ExpiresAt: record.ExpiresAt}
	if err := auth.CacheToken(l.ctx, tokenValue, meta, l.core.Cache(), tokenCacheTTL); err != nil {
		slog.Warn("failed to cache access token", slog.String("user_id", record.UserID), slog.Any("error", err))
	}
	return meta, nil
}

func tokenExpired(expiresAt int64) bool {
	return expiresAt > 0 && expiresAt < time.Now().Unix()
}

func (l *AuthLogic) ListAccessTokens(userID string, page, pageSize uint64) ([]types.AccessToken, error) {
	list, err := l.core.Store().AccessTokenStore().ListAccessTokens(l.ctx, userID, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("AuthLogic.ListAccessTokens.AccessTokenStore.ListAccessTokens", i18n.ERROR_INTERNAL, err)
	}
	return list, nil
}

// ClearUserTokens revokes all of a user's tokens. Cached entries age out
// within the cache TTL.
func (l *AuthLogic) ClearUserTokens(userID string) error {
	if err := l.core.Store().AccessTokenStore().ClearUserTokens(l.ctx, userID); err != nil {
		return errors.New("AuthLogic.ClearUserTokens.AccessTokenStore.ClearUserTokens", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
