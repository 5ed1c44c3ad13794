package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/brand-insights-api/internal/config"
	"github.com/vfg2006/brand-insights-api/internal/domain"
	"github.com/vfg2006/brand-insights-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const apiName = "scraper"

type Client interface {
	GetJobStatus(ctx context.Context, jobID string) (*domain.ScrapeJobStatus, error)
}

type ScraperClient struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

func NewClient(cfg *config.Config, m *metrics.Metrics) Client {
	return &ScraperClient{
		baseURL:    cfg.Scraper.URL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		metrics:    m,
	}
}

// GetJobStatus consulta o status de um job de coleta de menções
func (c *ScraperClient) GetJobStatus(ctx context.Context, jobID string) (*domain.ScrapeJobStatus, error) {
	start := time.Now()
	endpoint := fmt.Sprintf("%s/api/status/mension/%s", c.baseURL, url.PathEscape(jobID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.metrics.RecordExternalAPIFailure(apiName, "request_creation")
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordExternalAPIFailure(apiName, "network_error")
		return nil, errors.Wrap(err, "erro ao consultar status do job")
	}
	defer resp.Body.Close()

	duration := time.Since(start)

	if resp.StatusCode != http.StatusOK {
		c.metrics.RecordExternalAPICall(apiName, fmt.Sprintf("error_%d", resp.StatusCode), duration)
		return nil, errors.Errorf("serviço de scraping retornou status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordExternalAPIFailure(apiName, "read_body")
		return nil, errors.Wrap(err, "erro ao ler resposta do serviço de scraping")
	}

	status := &domain.ScrapeJobStatus{}
	if err := json.Unmarshal(body, status); err != nil {
		c.metrics.RecordExternalAPIFailure(apiName, "json_parse")
		return nil, errors.Wrap(err, "erro ao decodificar JSON")
	}

	c.metrics.RecordExternalAPICall(apiName, "success", duration)

	return status, nil
}
