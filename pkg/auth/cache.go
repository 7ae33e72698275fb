package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vagledaren/vagledaren/pkg/errors"
	"github.com/vagledaren/vagledaren/pkg/i18n"
	"github.com/vagledaren/vagledaren/pkg/types"
	"github.com/vagledaren/vagledaren/pkg/utils"
)

func tokenCacheKey(tokenValue string) string {
	return fmt.Sprintf("user:token:%s", utils.MD5(tokenValue))
}

// ValidateTokenFromCache resolves an access token via the cache. A
// cache miss is an unauthorized error, the caller decides whether to
// fall back to the store.
func ValidateTokenFromCache(ctx context.Context, tokenValue string, cache types.Cache) (*types.UserTokenMeta, error) {
	if tokenValue == "" {
		return nil, errors.New("auth.ValidateTokenFromCache.empty_token", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}

	tokenMetaStr, err := cache.Get(ctx, tokenCacheKey(tokenValue))
	if err != nil && err != redis.Nil {
		return nil, errors.New("auth.ValidateTokenFromCache.cache_get", i18n.ERROR_INTERNAL, err)
	}

	if tokenMetaStr == "" {
		return nil, errors.New("auth.ValidateTokenFromCache.token_not_found", i18n.ERROR_UNAUTHORIZED, fmt.Errorf("nil token")).Code(http.StatusUnauthorized)
	}

	var meta types.UserTokenMeta
	if err := json.Unmarshal([]byte(tokenMetaStr), &meta); err != nil {
		return nil, errors.New("auth.ValidateTokenFromCache.unmarshal", i18n.ERROR_INTERNAL, err).Code(http.StatusUnauthorized)
	}

	return &meta, nil
}

// CacheToken stores a validated token so the next requests skip the
// database lookup.
func CacheToken(ctx context.Context, tokenValue string, meta *types.UserTokenMeta, cache types.Cache, ttl time.Duration) error {
	raw, err := json.Marshal(meta)
	if err != nil {
		return errors.New("auth.CacheToken.marshal", i18n.ERROR_INTERNAL, err)
	}
	if err = cache.SetEx(ctx, tokenCacheKey(tokenValue), string(raw), ttl); err != nil {
		return errors.New("auth.CacheToken.cache_set", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
