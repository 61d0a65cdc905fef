package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"mono-checkout-gateway/config"
	"mono-checkout-gateway/internal/controller/rest"
	"mono-checkout-gateway/internal/controller/rest/handlers"
	"mono-checkout-gateway/internal/domain/checkout"
	"mono-checkout-gateway/internal/domain/notify"
	"mono-checkout-gateway/internal/external/mono"
	"mono-checkout-gateway/internal/external/telegram"
	"mono-checkout-gateway/pkg/logger"
	"mono-checkout-gateway/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func Run(cfg config.Config) error {
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	engine := NewGinEngine()

	var gateway checkout.PaymentGateway
	if cfg.MonoToken != "" {
		gateway = mono.New(
			cfg.MonoBaseURL,
			cfg.MonoCheckoutPath,
			cfg.MonoToken,
			&http.Client{Timeout: cfg.HTTPMonoClientTimeout},
		)
	} else {
		slog.Warn("MONO_TOKEN is not set, checkout requests will be rejected")
	}

	checkoutService := checkout.NewCheckoutService(gateway, checkout.ServiceConfig{
		SiteBaseURL:        cfg.SiteBaseURL,
		DefaultCallbackURL: strings.TrimRight(cfg.SiteBaseURL, "/") + cfg.CallbackPath,
	})

	var messenger notify.Messenger
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != "" {
		messenger = telegram.New(
			cfg.TelegramBaseURL,
			cfg.TelegramBotToken,
			cfg.TelegramChatID,
			&http.Client{Timeout: cfg.HTTPTelegramClientTimeout},
		)
	} else {
		slog.Warn("Telegram credentials are not set, payment notifications will be dropped")
	}
	notifier := notify.NewNotifier(messenger)

	router := rest.NewRouter(
		handlers.NewCheckoutHandler(checkoutService),
		handlers.NewCallbackHandler(notifier),
	)
	router.SetUp(engine)

	return serve(engine, cfg.Port)
}

func NewGinEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(
		metrics.GinMiddleware(),
		logger.CorrelationMiddleware(),
		logger.RequestLogger(),
		gin.Recovery(),
	)
	return engine
}

func serve(handler http.Handler, port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
