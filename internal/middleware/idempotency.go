package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/riooastfu/pastimobile-be/internal/shared/apperror"
	"github.com/riooastfu/pastimobile-be/internal/shared/contextutil"
	"github.com/riooastfu/pastimobile-be/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"

	idempotencyStoreKey = "idempotency_store"

	IdempotencyLockTTL   = 30 * time.Second
	IdempotencyResultTTL = 24 * time.Hour
)

var errIdempotencyProcessing = apperror.New(
	"PROCESSING",
	"Transaksi Anda sedang diproses, mohon tunggu sebentar.",
	http.StatusConflict,
)

type idempotentResult struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

func IdempotencyKey(path, pin, key string) string {
	return fmt.Sprintf("idemp:%s:%s:%s", path, pin, key)
}

// Idempotency menyimpan hasil POST per (route, pin, Idempotency-Key).
// Request tanpa header diteruskan apa adanya. rdb nil mematikan middleware.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader(HeaderIdempotencyKey)
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		log := contextutil.GetLogger(ctx, zap.L().Named("middleware.idempotency"))

		cacheKey := IdempotencyKey(c.FullPath(), c.GetString(ContextPIN), idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(ctx, cacheKey).Bytes()
		if err == nil {
			var res idempotentResult
			if err := json.Unmarshal(val, &res); err == nil {
				c.Header("Idempotent-Replayed", "true")
				response.Success(c, res.Status, res.Data, "")
				c.Abort()
				return
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Warn("read idempotency cache failed", zap.String("key", cacheKey), zap.Error(err))
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", IdempotencyLockTTL).Result()
		if err != nil {
			// redis bermasalah: proses tanpa perlindungan idempotensi
			log.Warn("acquire idempotency lock failed", zap.String("key", lockKey), zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			abortWith(c, errIdempotencyProcessing)
			return
		}

		c.Set(idempotencyStoreKey, func(status int, data any) {
			payload, err := json.Marshal(data)
			if err != nil {
				log.Error("marshal idempotent response failed", zap.Error(err))
				return
			}
			raw, err := json.Marshal(idempotentResult{Status: status, Data: payload})
			if err != nil {
				return
			}
			if err := rdb.Set(ctx, cacheKey, raw, IdempotencyResultTTL).Err(); err != nil {
				log.Warn("write idempotency cache failed", zap.String("key", cacheKey), zap.Error(err))
			}
		})

		c.Next()

		if err := rdb.Del(ctx, lockKey).Err(); err != nil {
			log.Warn("release idempotency lock failed", zap.String("key", lockKey), zap.Error(err))
		}
	}
}

// StoreIdempotentResponse dipanggil handler setelah operasi sukses.
// Tidak melakukan apa-apa jika route tidak dilindungi Idempotency.
func StoreIdempotentResponse(c *gin.Context, status int, data any) {
	v, ok := c.Get(idempotencyStoreKey)
	if !ok {
		return
	}
	if store, ok := v.(func(int, any)); ok {
		store(status, data)
	}
}
