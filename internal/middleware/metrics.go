package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HTTPObserverは infra/metrics.Metrics
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// Metricsはルート単位（c.Path()）でリクエストを記録する
func Metrics(obs HTTPObserver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Path() == "/metrics" {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}
			obs.ObserveHTTP(c.Request().Method, c.Path(), status, time.Since(start))
			return err
		}
	}
}
