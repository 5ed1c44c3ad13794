package notionclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	notiondomain "github.com/vfg2006/brand-insights-api/infrastructure/integrator/notion/domain"
	"github.com/vfg2006/brand-insights-api/internal/config"
	"github.com/vfg2006/brand-insights-api/pkg/metrics"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const apiName = "notion"

// limite de páginas por consulta completa, evita laço infinito se o cursor não avançar
const maxQueryPages = 200

type Client interface {
	QueryDatabase(ctx context.Context, databaseID string, query notiondomain.QueryRequest) (*notiondomain.QueryResponse, error)
	QueryAll(ctx context.Context, databaseID string, filter any, sorts []notiondomain.Sort) ([]notiondomain.Page, error)
	GetPage(ctx context.Context, pageID string) (*notiondomain.Page, error)
}

type NotionClient struct {
	cfg         *config.Config
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	metrics     *metrics.Metrics
}

func NewClient(cfg *config.Config, m *metrics.Metrics) Client {
	requestsPerSec := cfg.Notion.RequestsPerSec
	if requestsPerSec <= 0 {
		requestsPerSec = 3
	}

	return &NotionClient{
		cfg:         cfg,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		rateLimiter: rate.NewLimiter(rate.Limit(requestsPerSec), 1),
		metrics:     m,
	}
}

func (c *NotionClient) QueryDatabase(ctx context.Context, databaseID string, query notiondomain.QueryRequest) (*notiondomain.QueryResponse, error) {
	if query.PageSize <= 0 || query.PageSize > notiondomain.MaxPageSize {
		query.PageSize = notiondomain.MaxPageSize
	}

	response := &notiondomain.QueryResponse{}
	path := fmt.Sprintf("/databases/%s/query", url.PathEscape(databaseID))
	if err := c.do(ctx, http.MethodPost, path, query, response); err != nil {
		return nil, err
	}

	return response, nil
}

// QueryAll segue has_more/next_cursor até esgotar a base
func (c *NotionClient) QueryAll(ctx context.Context, databaseID string, filter any, sorts []notiondomain.Sort) ([]notiondomain.Page, error) {
	pages := make([]notiondomain.Page, 0)
	query := notiondomain.QueryRequest{
		Filter:   filter,
		Sorts:    sorts,
		PageSize: notiondomain.MaxPageSize,
	}

	for i := 0; i < maxQueryPages; i++ {
		response, err := c.QueryDatabase(ctx, databaseID, query)
		if err != nil {
			return nil, err
		}

		pages = append(pages, response.Results...)

		if !response.HasMore || response.NextCursor == nil || *response.NextCursor == "" {
			return pages, nil
		}
		query.StartCursor = *response.NextCursor
	}

	logrus.WithFields(logrus.Fields{
		"database_id": databaseID,
		"pages":       len(pages),
	}).Warn("Consulta ao Notion interrompida no limite de páginas")

	return pages, nil
}

func (c *NotionClient) GetPage(ctx context.Context, pageID string) (*notiondomain.Page, error) {
	page := &notiondomain.Page{}
	if err := c.do(ctx, http.MethodGet, "/pages/"+url.PathEscape(pageID), nil, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (c *NotionClient) do(ctx context.Context, method, path string, payload any, out any) error {
	start := time.Now()

	if err := c.rateLimiter.Wait(ctx); err != nil {
		c.metrics.RecordExternalAPIFailure(apiName, "rate_limit")
		return errors.Wrap(err, "limite de requisições ao Notion")
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			c.metrics.RecordExternalAPIFailure(apiName, "json_marshal")
			return errors.Wrap(err, "erro ao serializar consulta")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.Notion.URL+path, body)
	if err != nil {
		c.metrics.RecordExternalAPIFailure(apiName, "request_creation")
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.Notion.Token)
	req.Header.Set("Notion-Version", c.cfg.Notion.Version)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordExternalAPIFailure(apiName, "network_error")
		return errors.Wrapf(err, "erro ao chamar Notion %s", path)
	}
	defer resp.Body.Close()

	duration := time.Since(start)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordExternalAPIFailure(apiName, "read_body")
		return errors.Wrap(err, "erro ao ler resposta do Notion")
	}

	if resp.StatusCode != http.StatusOK {
		c.metrics.RecordExternalAPICall(apiName, fmt.Sprintf("error_%d", resp.StatusCode), duration)

		errResp := &notiondomain.ErrorResponse{}
		_ = json.Unmarshal(respBody, errResp)
		errResp.Status = resp.StatusCode
		return errResp
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		c.metrics.RecordExternalAPIFailure(apiName, "json_parse")
		return errors.Wrap(err, "erro ao decodificar JSON")
	}

	c.metrics.RecordExternalAPICall(apiName, "success", duration)

	return nil
}
