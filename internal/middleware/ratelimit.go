package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/washapp/carwash-api/internal/httperr"
)

const rateLimitWindow = time.Minute

// RateLimit aplica uma janela fixa por IP sobre o Redis. Redis indisponível
// abre o limitador em vez de derrubar a API.
func RateLimit(rdb *redis.Client, perMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateLimitKey(c.ClientIP())

		n, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.Printf("rate limiter unavailable, failing open: %v", err)
			c.Next()
			return
		}

		if n == 1 {
			rdb.Expire(c.Request.Context(), key, rateLimitWindow)
		}

		if Exceeded(n, perMinute) {
			c.Header("Retry-After", fmt.Sprintf("%d", int(rateLimitWindow.Seconds())))
			httperr.Write(c, http.StatusTooManyRequests, "Terlalu banyak permintaan, coba lagi nanti")
			c.Abort()
			return
		}

		c.Next()
	}
}

func rateLimitKey(ip string) string {
	return "ratelimit:" + ip
}

func Exceeded(count int64, perMinute int) bool {
	return count > int64(perMinute)
}
