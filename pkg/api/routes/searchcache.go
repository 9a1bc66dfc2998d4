package routes

import (
	"context"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/railbooker/railbooker/pkg/redis_client"
)

// searchCache holds marshalled search responses keyed by the full query
// string. Nil when redis is unavailable - every operation then falls
// through to a fresh computation.
var searchCache *cache.Cache[string]

func SetupSearchCache() {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(5*time.Minute))

	searchCache = cache.New[string](redisStore)
}

func cachedSearchResponse(key string) (string, bool) {
	if searchCache == nil {
		return "", false
	}

	value, err := searchCache.Get(context.Background(), key)
	if err != nil {
		return "", false
	}

	return value, true
}

func storeSearchResponse(key string, response string) {
	if searchCache == nil {
		return
	}

	searchCache.Set(context.Background(), key, response)
}
