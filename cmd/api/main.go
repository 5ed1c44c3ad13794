package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-insights-api/infrastructure/cache"
	"github.com/vfg2006/brand-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/brand-insights-api/infrastructure/integrator/dash"
	"github.com/vfg2006/brand-insights-api/infrastructure/integrator/dash/dashclient"
	"github.com/vfg2006/brand-insights-api/infrastructure/integrator/notion"
	"github.com/vfg2006/brand-insights-api/infrastructure/integrator/notion/notionclient"
	"github.com/vfg2006/brand-insights-api/infrastructure/integrator/openai"
	"github.com/vfg2006/brand-insights-api/infrastructure/integrator/scraper"
	"github.com/vfg2006/brand-insights-api/infrastructure/repository"
	"github.com/vfg2006/brand-insights-api/internal/api"
	"github.com/vfg2006/brand-insights-api/internal/api/handler"
	"github.com/vfg2006/brand-insights-api/internal/config"
	"github.com/vfg2006/brand-insights-api/internal/scheduler"
	"github.com/vfg2006/brand-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/brand-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/brand-insights-api/internal/usecases/campaigning"
	"github.com/vfg2006/brand-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/brand-insights-api/internal/usecases/mentioning"
	"github.com/vfg2006/brand-insights-api/internal/usecases/profiling"
	"github.com/vfg2006/brand-insights-api/internal/usecases/scraping"
	"github.com/vfg2006/brand-insights-api/pkg/metrics"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	// Valores monetários saem como número no JSON
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.New(prometheus.DefaultRegisterer)

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	memberRepo := repository.NewDashMemberRepository(pgConn)
	rawAdInsightRepo := repository.NewRawAdInsightRepository(pgConn)

	viewStore := redisStore(ctx, cfg.Redis)
	viewCache := insighting.NewViewCache(viewStore, cfg.Cache.ViewTTL, m)

	dashClient := dashclient.NewClient(cfg, m)
	dashIntegrator := dash.New(cfg, dashClient)

	notionClient := notionclient.NewClient(cfg, m)
	notionIntegrator := notion.New(cfg, notionClient)

	scraperClient := scraper.NewClient(cfg, m)
	openaiClient := openai.NewClient(cfg, m)

	authenticator := authenticating.NewService(dashIntegrator, memberRepo, cfg)
	insightService := insighting.NewService(cfg, rawAdInsightRepo, dashIntegrator, viewCache, m)
	campaignService := campaigning.NewService(notionIntegrator)
	mentionService := mentioning.NewService(notionIntegrator)
	profileService := profiling.NewService(dashClient)
	analysisService := analyzing.NewService(openaiClient, m)
	scrapeManager := scraping.NewManager(cfg, scraperClient, dashIntegrator, m)

	adInsightSyncService := scheduler.NewAdInsightSyncService(
		memberRepo,
		rawAdInsightRepo,
		insightService,
		cfg,
		m,
	)

	if err := adInsightSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de insights de anúncios")
	} else {
		logrus.Info("Agendador de sincronização de insights de anúncios iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Insights:      insightService,
		Campaigns:     campaignService,
		Mentions:      mentionService,
		Profile:       profileService,
		Analysis:      analysisService,
		Scraping:      scrapeManager,
		Cron: handler.CronJobServices{
			AdInsightSync: adInsightSyncService,
		},
	}, m)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// redisStore conecta ao Redis. Sem Redis a API segue funcionando, recalculando as visões a cada requisição.
func redisStore(ctx context.Context, redisConfig config.Redis) insighting.ViewStore {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	store, err := cache.NewRedisStore(pingCtx, redisConfig)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, cache de visões desativado")
		return nil
	}
	return store
}
