package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/brand-insights-api/internal/api/handler/router"
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

type middlewares = []func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func AdInsights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ads/insights",
			Method:      http.MethodGet,
			Handler:     GetAdInsights(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ads/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshAdInsights(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Campaigns(service campaigning.CampaignService, mentions mentioning.MentionService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodGet,
			Handler:     GetCampaign(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/influencers",
			Method:      http.MethodGet,
			Handler:     ListInfluencers(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/mentions",
			Method:      http.MethodGet,
			Handler:     ListMentions(mentions),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/applicants",
			Method:      http.MethodGet,
			Handler:     ListApplicants(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Profile(service profiling.ProfileService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/profile/insights",
			Method:      http.MethodGet,
			Handler:     GetProfileInsights(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Analysis(service analyzing.AnalysisService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analysis",
			Method:      http.MethodPost,
			Handler:     Analyze(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func ScrapeJobs(service scraping.ScrapeService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/scrape-jobs",
			Method:      http.MethodPost,
			Handler:     StartScrapeJob(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/scrape-jobs/:id",
			Method:      http.MethodGet,
			Handler:     GetScrapeJob(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/scrape-jobs/:id",
			Method:      http.MethodDelete,
			Handler:     CancelScrapeJob(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func ImageProxyRoutes(client *http.Client, m *metrics.Metrics) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/image-proxy",
			Method:  http.MethodGet,
			Handler: ImageProxy(client, m),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}
