package dashclient

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
	dashdomain "github.com/vfg2006/brand-insights-api/infrastructure/integrator/dash/domain"
	"github.com/vfg2006/brand-insights-api/internal/config"
	"github.com/vfg2006/brand-insights-api/pkg/metrics"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const apiName = "dash"

type Client interface {
	GetAdStatisticsSummary(ctx context.Context, dashMemberID, startTime, endTime string) ([]dashdomain.AdStatisticsCampaign, error)
	GetAdDetailInfo(ctx context.Context, adIDs []string, endTime string) ([]dashdomain.AdDetailInfo, error)
	GetMemberInsights(ctx context.Context, dashMemberID string) ([]dashdomain.MemberInsight, error)
	GetFollowers(ctx context.Context, dashMemberID string) ([]dashdomain.Follower, error)
	GetFollowerInsights(ctx context.Context, dashMemberID string) ([]dashdomain.FollowerInsight, error)
	GetMedia(ctx context.Context, dashMemberID string) ([]dashdomain.MediaResponse, error)
	Login(ctx context.Context, userID, password string) (*dashdomain.Member, error)
	CreateCampaignResults(ctx context.Context, results []dashdomain.CampaignResult) error
}

type DashClient struct {
	cfg         *config.Config
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	metrics     *metrics.Metrics
}

func NewClient(cfg *config.Config, m *metrics.Metrics) Client {
	requestsPerSec := cfg.Dash.RequestsPerSec
	if requestsPerSec <= 0 {
		requestsPerSec = 10
	}
	burst := max(cfg.Dash.Burst, 1)

	return &DashClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Dash.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		rateLimiter: rate.NewLimiter(rate.Limit(requestsPerSec), burst),
		metrics:     m,
	}
}

// do executa a requisição, desembrulha o envelope padrão e decodifica o result em out
func (c *DashClient) do(ctx context.Context, method, path string, query url.Values, payload any, out any) error {
	start := time.Now()

	if err := c.rateLimiter.Wait(ctx); err != nil {
		c.metrics.RecordExternalAPIFailure(apiName, "rate_limit")
		return errors.Wrap(err, "limite de requisições ao backend dash")
	}

	endpoint := c.cfg.Dash.URL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			c.metrics.RecordExternalAPIFailure(apiName, "json_marshal")
			return errors.Wrap(err, "erro ao serializar corpo da requisição")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		c.metrics.RecordExternalAPIFailure(apiName, "request_creation")
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cfg.Dash.APIKey != "" {
		req.Header.Set("X-API-KEY", c.cfg.Dash.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordExternalAPIFailure(apiName, "network_error")
		return errors.Wrapf(err, "erro ao chamar %s %s", method, path)
	}
	defer resp.Body.Close()

	duration := time.Since(start)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordExternalAPIFailure(apiName, "read_body")
		return errors.Wrap(err, "erro ao ler resposta do backend dash")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.metrics.RecordExternalAPICall(apiName, fmt.Sprintf("error_%d", resp.StatusCode), duration)

		errResp := &dashdomain.ErrorResponse{}
		if len(respBody) > 0 {
			if err := json.Unmarshal(respBody, errResp); err != nil {
				logrus.WithField("body", string(respBody)).Debug("Corpo de erro do backend dash fora do padrão")
			}
		}
		errResp.StatusCode = resp.StatusCode
		return errResp
	}

	c.metrics.RecordExternalAPICall(apiName, "success", duration)

	if out == nil || len(respBody) == 0 {
		return nil
	}

	envelope := dashdomain.Response[jsoniter.RawMessage]{}
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		c.metrics.RecordExternalAPIFailure(apiName, "json_parse")
		return errors.Wrap(err, "erro ao decodificar JSON")
	}

	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}

	if err := json.Unmarshal(envelope.Result, out); err != nil {
		c.metrics.RecordExternalAPIFailure(apiName, "json_parse")
		return errors.Wrap(err, "erro ao decodificar result")
	}

	logrus.WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"duration": duration,
	}).Debug("Requisição ao backend dash concluída")

	return nil
}
