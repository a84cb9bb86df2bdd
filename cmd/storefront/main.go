package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/infra/backend"
	"storefront/internal/infra/metrics"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/server"
	"storefront/internal/usecase"
	"storefront/internal/view"

	"github.com/sirupsen/logrus"
)

func newLogger(cfg config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	if cfg.IsDevelopment() {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if cfg.IsDevelopment() && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)
	return log
}

func main() {
	//設定（.envがあれば読む）
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := newLogger(cfg)

	m := metrics.New()

	//バックエンドAPIクライアント
	client, err := backend.New(backend.Config{
		BaseURL:  cfg.APIURL,
		Log:      log,
		Observer: m,
	})
	if err != nil {
		log.WithError(err).Fatal("backend client")
	}

	//Repository（API実装）生成
	productRepo := infraRepo.NewProductAPIRepository(client)
	cartRepo := infraRepo.NewCartAPIRepository(client)
	orderRepo := infraRepo.NewOrderAPIRepository(client)
	paymentRepo := infraRepo.NewPaymentAPIRepository(client)
	userRepo := infraRepo.NewUserAPIRepository(client)
	profileRepo := infraRepo.NewProfileAPIRepository(client)
	addressRepo := infraRepo.NewAddressAPIRepository(client)
	authRepo := infraRepo.NewAuthAPIRepository(client)

	//Usecase生成
	actions := usecase.NewActions(log, m)
	authUC := usecase.NewAuthUsecase(cfg, authRepo, actions)
	productUC := usecase.NewProductUsecase(productRepo, actions)
	cartUC := usecase.NewCartUsecase(cartRepo, actions)
	orderUC := usecase.NewOrderUsecase(orderRepo, cartRepo, actions)
	checkoutUC := usecase.NewCheckoutUsecase(orderRepo, cartRepo, paymentRepo, profileRepo, actions, nil)
	paymentUC := usecase.NewPaymentUsecase(paymentRepo, cartRepo, log, cfg.PaymentRedirectDelay)
	profileUC := usecase.NewProfileUsecase(profileRepo, addressRepo, actions)
	adminOrderUC := usecase.NewAdminOrderUsecase(orderRepo, actions)
	adminUserUC := usecase.NewAdminUserUsecase(userRepo, actions)

	//画面
	renderer, err := view.NewRenderer(cfg.ImageBase())
	if err != nil {
		log.WithError(err).Fatal("parse templates")
	}
	cache := view.NewCache(cfg.ViewCacheSize, cfg.ViewCacheTTL)
	pres := handler.NewPresenter(renderer, cache, log)

	//Handler生成
	handlers := server.Handlers{
		Auth:         handler.NewAuthHandler(authUC, pres, cfg),
		Product:      handler.NewProductHandler(productUC, cartUC, orderUC, pres),
		Cart:         handler.NewCartHandler(cartUC, pres),
		Order:        handler.NewOrderHandler(orderUC, pres),
		Checkout:     handler.NewCheckoutHandler(checkoutUC, cartUC, profileUC, paymentUC, pres),
		Profile:      handler.NewProfileHandler(profileUC, pres),
		AdminProduct: handler.NewAdminProductHandler(productUC, pres),
		AdminOrder:   handler.NewAdminOrderHandler(adminOrderUC, pres),
		AdminUser:    handler.NewAdminUserHandler(adminUserUC, pres),
	}

	e := server.New(server.Options{
		Log:         log,
		Metrics:     m,
		Resolver:    authUC,
		AuthCookie:  cfg.AuthCookie,
		ActionLimit: cfg.ActionRateLimit,
		ActionBurst: cfg.ActionRateBurst,
		Renderer:    renderer,
		Handlers:    handlers,
	})

	//Server起動（SIGINT/SIGTERMで停止）
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx, e, cfg.Addr(), log); err != nil {
		log.WithError(err).Fatal("server")
	}
}
