package middleware

import (
	"net/http"
	"strconv"
	"sync"

	"storefront/internal/usecase"
	"storefront/internal/validator"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// これを超えたら作り直す
const maxLimiters = 10000

// RateLimiterはユーザー（未ログインはIP）ごとのtoken bucket
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	log      logrus.FieldLogger
}

func NewRateLimiter(requestsPerSecond int, burst int, log logrus.FieldLogger) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		log:      log,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.limiters[key]
	if !exists {
		if len(rl.limiters) >= maxLimiters {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

// ActionRateLimitは action エンドポイント用。超えたら 429 と general エラー
func (rl *RateLimiter) ActionRateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()
			if id := IdentityFrom(c); id.IsAuthenticated() {
				key = "user:" + strconv.FormatInt(id.UserID, 10)
			}

			if !rl.getLimiter(key).Allow() {
				if rl.log != nil {
					rl.log.WithFields(logrus.Fields{
						"key":    key,
						"path":   c.Request().URL.Path,
						"method": c.Request().Method,
					}).Warn("rate limit exceeded")
				}
				return c.JSON(http.StatusTooManyRequests, usecase.State{
					Success: false,
					Errors:  validator.General("Too many requests. Please slow down."),
				})
			}
			return next(c)
		}
	}
}

// ActionRateLimitはNewRateLimiter(limit, burst).ActionRateLimit()の短縮
func ActionRateLimit(limit, burst int, log logrus.FieldLogger) echo.MiddlewareFunc {
	return NewRateLimiter(limit, burst, log).ActionRateLimit()
}
