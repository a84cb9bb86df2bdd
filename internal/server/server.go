package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"storefront/internal/handler"
	"storefront/internal/infra/metrics"
	"storefront/internal/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// 停止時に処理中リクエストを待つ上限
const shutdownTimeout = 10 * time.Second

// Optionsはecho組み立てに必要なもの
type Options struct {
	Log         logrus.FieldLogger
	Metrics     *metrics.Metrics
	Resolver    middleware.IdentityResolver
	AuthCookie  string
	ActionLimit int
	ActionBurst int
	Renderer    echo.Renderer
	Handlers    Handlers
}

// NewはミドルウェアとルートをつけたEcho
func New(opt Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = opt.Renderer

	log := opt.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.WithFields(logrus.Fields{
				"path":  c.Request().URL.Path,
				"stack": string(stack),
			}).WithError(err).Error("panic recovered")
			return err
		},
	}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			entry := log.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"request_id": v.RequestID,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))
	if opt.Metrics != nil {
		e.Use(middleware.Metrics(opt.Metrics))
	}
	e.Use(middleware.Session(opt.Resolver, opt.AuthCookie))

	guards := handler.Guards{
		RequireAuth: middleware.RequireAuth("/login"),
		AdminOnly:   middleware.AdminRoleGuard(),
	}
	if opt.ActionLimit > 0 {
		guards.ActionLimit = middleware.ActionRateLimit(opt.ActionLimit, opt.ActionBurst, log)
	}

	RegisterRoutes(e, opt.Handlers, guards, opt.Metrics)
	return e
}

// Startはctxが終わるまで待ち、終わったら処理中のリクエストを待って止める
func Start(ctx context.Context, e *echo.Echo, addr string, log logrus.FieldLogger) error {
	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	log.WithField("addr", addr).Info("storefront listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("shutting down")
	return e.Shutdown(shutdownCtx)
}
