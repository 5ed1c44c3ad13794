package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Redis          Redis          `mapstructure:",squash"`
	Cache          Cache          `mapstructure:",squash"`
	Dash           Dash           `mapstructure:",squash"`
	Notion         Notion         `mapstructure:",squash"`
	OpenAI         OpenAI         `mapstructure:",squash"`
	Scraper        Scraper        `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	AdInsightSync  AdInsightSync  `mapstructure:",squash"`
	ImageProxy     ImageProxy     `mapstructure:",squash"`
	ReportLocation *time.Location `mapstructure:"-"`
}

type App struct {
	LogLevel       string   `mapstructure:"log_level"`
	Timezone       string   `mapstructure:"report_timezone"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type Cache struct {
	ViewTTL time.Duration `mapstructure:"cache_view_ttl"`
}

// Dash é o backend intermediário que sincroniza os dados da Meta
type Dash struct {
	URL            string        `mapstructure:"dash_url"`
	APIKey         string        `mapstructure:"dash_api_key"`
	Timeout        time.Duration `mapstructure:"dash_timeout"`
	RequestsPerSec float64       `mapstructure:"dash_requests_per_second"`
	Burst          int           `mapstructure:"dash_burst"`
}

type Notion struct {
	URL                 string            `mapstructure:"notion_url"`
	Version             string            `mapstructure:"notion_version"`
	Token               string            `mapstructure:"notion_token"`
	CampaignsDB         string            `mapstructure:"notion_campaigns_db"`
	InfluencersDB       string            `mapstructure:"notion_influencers_db"`
	MentionsDB          string            `mapstructure:"notion_mentions_db"`
	ApplicantsDB        string            `mapstructure:"notion_applicants_db"`
	ApplicantsByLoginID map[string]string `mapstructure:"-"`
	ApplicantsMapping   []string          `mapstructure:"notion_applicants_db_by_login"`
	RequestsPerSec      float64           `mapstructure:"notion_requests_per_second"`
}

type OpenAI struct {
	URL         string        `mapstructure:"openai_url"`
	APIKey      string        `mapstructure:"openai_api_key"`
	Model       string        `mapstructure:"openai_model"`
	Temperature float64       `mapstructure:"openai_temperature"`
	MaxTokens   int           `mapstructure:"openai_max_tokens"`
	Timeout     time.Duration `mapstructure:"openai_timeout"`
}

type Scraper struct {
	URL          string        `mapstructure:"scraper_url"`
	PollInterval time.Duration `mapstructure:"scraper_poll_interval"`
	MaxAttempts  int           `mapstructure:"scraper_max_attempts"`
}

type Auth struct {
	Secret        string        `mapstructure:"auth_secret"`
	TokenDuration time.Duration `mapstructure:"auth_token_duration"`
}

type AdInsightSync struct {
	CronSchedule      string `mapstructure:"ad_insight_sync_cron"`
	LookbackDays      int    `mapstructure:"ad_insight_sync_lookback_days"`
	MaxConcurrentJobs int    `mapstructure:"ad_insight_sync_max_concurrent_jobs"`
	RetentionDays     int    `mapstructure:"ad_insight_retention_days"`
	Enabled           bool   `mapstructure:"ad_insight_sync_enabled"`
}

type ImageProxy struct {
	Timeout time.Duration `mapstructure:"image_proxy_timeout"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/brand_insights?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_VIEW_TTL", "6h")

	viper.SetDefault("DASH_URL", "https://matcha.pnutbutter.kr")
	viper.SetDefault("DASH_API_KEY", "")
	viper.SetDefault("DASH_TIMEOUT", "30s")
	viper.SetDefault("DASH_REQUESTS_PER_SECOND", 10)
	viper.SetDefault("DASH_BURST", 5)

	viper.SetDefault("NOTION_URL", "https://api.notion.com/v1")
	viper.SetDefault("NOTION_VERSION", "2022-06-28")
	viper.SetDefault("NOTION_TOKEN", "")
	viper.SetDefault("NOTION_CAMPAIGNS_DB", "2b708b1c-348f-8141-999f-f77b91095543")
	viper.SetDefault("NOTION_INFLUENCERS_DB", "94d490dd-8b65-4351-a6eb-eb32a965134f")
	viper.SetDefault("NOTION_MENTIONS_DB", "2bd08b1c348f8023bf04fa37fc57d0b6")
	viper.SetDefault("NOTION_APPLICANTS_DB", "2b708b1c348f81b0a367e99677c3c0da")
	viper.SetDefault("NOTION_APPLICANTS_DB_BY_LOGIN", "")
	viper.SetDefault("NOTION_REQUESTS_PER_SECOND", 3) // limite documentado da API do Notion

	viper.SetDefault("OPENAI_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_TEMPERATURE", 0.7)
	viper.SetDefault("OPENAI_MAX_TOKENS", 1000)
	viper.SetDefault("OPENAI_TIMEOUT", "60s")

	viper.SetDefault("SCRAPER_URL", "http://localhost:3001")
	viper.SetDefault("SCRAPER_POLL_INTERVAL", "500ms")
	viper.SetDefault("SCRAPER_MAX_ATTEMPTS", 1000)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_DURATION", "24h")

	// Defaults para sincronização de insights de anúncios
	viper.SetDefault("AD_INSIGHT_SYNC_CRON", "0 3 * * *")      // Todos os dias às 3h da manhã
	viper.SetDefault("AD_INSIGHT_SYNC_LOOKBACK_DAYS", 7)       // 7 dias para buscar dados
	viper.SetDefault("AD_INSIGHT_SYNC_MAX_CONCURRENT_JOBS", 3) // 3 membros em paralelo
	viper.SetDefault("AD_INSIGHT_RETENTION_DAYS", 400)         // 0 desativa a limpeza
	viper.SetDefault("AD_INSIGHT_SYNC_ENABLED", false)

	viper.SetDefault("IMAGE_PROXY_TIMEOUT", "15s")

	viper.SetDefault("REPORT_TIMEZONE", "Asia/Seoul")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(config.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("fuso horário de relatório inválido %q: %w", config.App.Timezone, err)
	}
	config.ReportLocation = location

	config.Notion.ApplicantsByLoginID = ParseApplicantsMapping(config.Notion.ApplicantsMapping)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// ParseApplicantsMapping converte entradas "loginId=databaseId" no mapa de bases de candidatos
func ParseApplicantsMapping(entries []string) map[string]string {
	mapping := make(map[string]string, len(entries))
	for _, entry := range entries {
		loginID, dbID, ok := strings.Cut(strings.TrimSpace(entry), "=")
		if !ok || loginID == "" || dbID == "" {
			continue
		}
		mapping[loginID] = dbID
	}
	return mapping
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
