package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/dnsfilter/dnsfilter-report/docs"
	"github.com/dnsfilter/dnsfilter-report/internal/api/routes"
	"github.com/dnsfilter/dnsfilter-report/internal/categoria"
	"github.com/dnsfilter/dnsfilter-report/internal/config"
	"github.com/dnsfilter/dnsfilter-report/internal/logging"
	"github.com/dnsfilter/dnsfilter-report/internal/observability"
	"go.uber.org/zap"
)

// @title           DNSfilter Categorias API
// @version         1.0
// @description     API de consulta dos rótulos das categorias usadas no relatório do DNSfilter

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

func main() {
	cfg := config.LoadConfig()

	logger, err := logging.New(cfg)
	if err != nil {
		// logger ainda não existe
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := observability.InitTracer(ctx, cfg, logger.Sugar())
	if err != nil {
		logger.Warn("Tracing indisponível", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: routes.SetupRouter(cfg, logger),
	}

	go func() {
		logger.Info("Servidor iniciado",
			zap.String("port", cfg.ServerPort),
			zap.Int("categorias", categoria.Len()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Erro ao iniciar servidor", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Erro ao encerrar servidor", zap.Error(err))
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Error("Erro ao encerrar tracer", zap.Error(err))
	}
}
