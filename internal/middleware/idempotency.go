package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"go-fieldtrack/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderIdempotentHit  = "Idempotent-Replayed"

	idempotencyLockTTL  = 30 * time.Second
	idempotencyCacheTTL = 24 * time.Hour
)

type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func IdempotencyCacheKey(path, userID, key string) string {
	return fmt.Sprintf("idemp:%s:%s:%s", path, userID, key)
}

// Idempotency replays the stored response of a successful POST carrying the same
// Idempotency-Key for the same user. A concurrent duplicate gets 409 while the first
// request holds the lock.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	log := zap.L().Named("middleware.idempotency")
	return func(c *gin.Context) {
		idempKey := c.GetHeader(HeaderIdempotencyKey)
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := IdempotencyCacheKey(c.FullPath(), c.GetString(ContextUserID), idempKey)
		lockKey := cacheKey + ":lock"

		if cached, err := rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			c.Header(HeaderIdempotentHit, "true")
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			c.Abort()
			return
		}

		acquired, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			// Redis trouble must not block check-ins; the unique index still guards state.
			log.Warn("idempotency lock failed, continuing without it", zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			response.Abort(c, http.StatusConflict, "PROCESSING", "A request with this Idempotency-Key is still being processed")
			return
		}
		defer rdb.Del(ctx, lockKey)

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec

		c.Next()

		if status := rec.Status(); status >= 200 && status < 300 {
			if err := rdb.Set(ctx, cacheKey, rec.body.Bytes(), idempotencyCacheTTL).Err(); err != nil {
				log.Warn("store idempotent response failed", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}
}
