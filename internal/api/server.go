package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-insights-api/internal/api/handler"
	"github.com/vfg2006/brand-insights-api/internal/api/handler/router"
	"github.com/vfg2006/brand-insights-api/internal/config"
	"github.com/vfg2006/brand-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/brand-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/brand-insights-api/internal/usecases/campaigning"
	"github.com/vfg2006/brand-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/brand-insights-api/internal/usecases/mentioning"
	"github.com/vfg2006/brand-insights-api/internal/usecases/profiling"
	"github.com/vfg2006/brand-insights-api/internal/usecases/scraping"
	"github.com/vfg2006/brand-insights-api/pkg/metrics"
	"github.com/vfg2006/brand-insights-api/pkg/middleware"
)

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Insights      insighting.Insighter
	Campaigns     campaigning.CampaignService
	Mentions      mentioning.MentionService
	Profile       profiling.ProfileService
	Analysis      analyzing.AnalysisService
	Scraping      scraping.ScrapeService
	Cron          handler.CronJobServices
}

type Server struct {
	httpServer *http.Server
	onShutdown []func()
}

func New(config *config.Config, services Services, m *metrics.Metrics) (*Server, error) {
	imageClient := &http.Client{Timeout: config.ImageProxy.Timeout}

	rt := router.New(
		router.WithMetrics(m),
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.AdInsights(services.Insights)...),
		router.WithRoutes(handler.Campaigns(services.Campaigns, services.Mentions)...),
		router.WithRoutes(handler.Profile(services.Profile)...),
		router.WithRoutes(handler.Analysis(services.Analysis)...),
		router.WithRoutes(handler.ScrapeJobs(services.Scraping)...),
		router.WithRoutes(handler.ImageProxyRoutes(imageClient, m)...),
		router.WithRoutes(handler.CronJobs(services.Cron)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.App.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	if services.Scraping != nil {
		srv.onShutdown = append(srv.onShutdown, services.Scraping.Shutdown)
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	// Jobs de scraping pendentes são cancelados depois que o HTTP para de aceitar requisições
	for _, fn := range s.onShutdown {
		fn()
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
