package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimitMiddleware ограничивает частоту запросов одного пользователя.
// rate задается в формате limiter, например "60-M". Пустая строка отключает ограничение.
// Ставится после JWTAuthMiddleware: ключом служит id из сессии.
func RateLimitMiddleware(rate string, log *logrus.Logger) gin.HandlerFunc {
	if rate == "" {
		return func(c *gin.Context) { c.Next() }
	}

	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		log.WithError(err).Warnf("Invalid rate %q, rate limiting disabled", rate)
		return func(c *gin.Context) { c.Next() }
	}
	lim := limiter.New(memory.NewStore(), parsed)

	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if _, ok := c.Get(sessionContextKey); ok {
			key = "user:" + mustSession(c).UserID.String()
		}

		lctx, err := lim.Get(c.Request.Context(), key)
		if err != nil {
			log.WithError(err).Warn("Rate limiter lookup failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
		if lctx.Reached {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
