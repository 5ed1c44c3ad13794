package insighting

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-insights-api/internal/domain"
	"github.com/vfg2006/brand-insights-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ViewCache guarda as visões derivadas por (membro, versão dos dados, período, intervalo).
// Falhas do backend de cache nunca interrompem a requisição: a visão é recalculada.
type ViewCache struct {
	store   ViewStore
	ttl     time.Duration
	metrics *metrics.Metrics
}

func NewViewCache(store ViewStore, ttl time.Duration, m *metrics.Metrics) *ViewCache {
	return &ViewCache{
		store:   store,
		ttl:     ttl,
		metrics: m,
	}
}

// ViewKey monta a chave da visão. O início da janela atual entra na chave para que
// períodos relativos (daily/weekly/monthly) não sobrevivam à virada do dia.
func ViewKey(dashMemberID string, version int64, window domain.ComparisonWindow, custom *domain.CustomRange) string {
	return fmt.Sprintf("view:%s:v%d:%s:%s:%s",
		dashMemberID,
		version,
		window.Type,
		window.Current.Start.Format(time.DateOnly),
		custom.Key(),
	)
}

// Version retorna a versão atual e false quando o backend de cache está indisponível
func (c *ViewCache) Version(ctx context.Context, dashMemberID string) (int64, bool) {
	if c == nil || c.store == nil {
		return 0, false
	}

	version, err := c.store.Version(ctx, dashMemberID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"dash_member_id": dashMemberID,
			"error":          err,
		}).Warn("Não foi possível ler a versão dos dados brutos no cache")
		c.metrics.RecordViewCache("error")
		return 0, false
	}

	return version, true
}

// Bump invalida as visões do membro incrementando a versão dos dados brutos
func (c *ViewCache) Bump(ctx context.Context, dashMemberID string) int64 {
	if c == nil || c.store == nil {
		return 0
	}

	version, err := c.store.BumpVersion(ctx, dashMemberID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"dash_member_id": dashMemberID,
			"error":          err,
		}).Warn("Não foi possível incrementar a versão dos dados brutos")
		return 0
	}

	return version
}

func (c *ViewCache) Load(ctx context.Context, key string) (*domain.AdInsightsView, bool) {
	if c == nil || c.store == nil {
		return nil, false
	}

	data, found, err := c.store.Get(ctx, key)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Erro ao ler visão do cache")
		c.metrics.RecordViewCache("error")
		return nil, false
	}
	if !found {
		c.metrics.RecordViewCache("miss")
		return nil, false
	}

	view := &domain.AdInsightsView{}
	if err := json.Unmarshal(data, view); err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Visão em cache corrompida, recalculando")
		c.metrics.RecordViewCache("error")
		return nil, false
	}

	c.metrics.RecordViewCache("hit")
	return view, true
}

func (c *ViewCache) Save(ctx context.Context, key string, view *domain.AdInsightsView) {
	if c == nil || c.store == nil {
		return
	}

	data, err := json.Marshal(view)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Erro ao serializar visão")
		return
	}

	if err := c.store.Set(ctx, key, data, c.ttl); err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Erro ao gravar visão no cache")
	}
}

// ComputeView recalcula a visão completa a partir das linhas brutas. Não tem efeitos colaterais.
// ComputeView monta a visão do período. As entidades (linhas sem métricas) só entram na
// hierarquia, para que campanhas sem entrega na janela apareçam como encerradas.
func ComputeView(dashMemberID string, rows, entities []domain.RawAdInsight, window domain.ComparisonWindow, version int64, now time.Time) *domain.AdInsightsView {
	hierarchyRows := make([]domain.RawAdInsight, 0, len(entities)+len(rows))
	hierarchyRows = append(hierarchyRows, entities...)
	hierarchyRows = append(hierarchyRows, rows...)

	return &domain.AdInsightsView{
		DashMemberID:   dashMemberID,
		Window:         window,
		DataVersion:    version,
		Performance:    domain.NewAdPerformance(SumRange(rows, window.Current), SumRange(rows, window.Previous)),
		Hierarchy:      BuildHierarchy(hierarchyRows, window),
		Daily:          BuildDailySeries(rows, window),
		CampaignDaily:  BuildCampaignDailySeries(rows, window),
		ServerSyncTime: LatestSync(rows),
		GeneratedAt:    now,
	}
}

// LatestSync retorna o maior lastSyncedAt entre as linhas
func LatestSync(rows []domain.RawAdInsight) *time.Time {
	var latest *time.Time
	for i := range rows {
		synced := rows[i].LastSyncedAt
		if synced == nil {
			continue
		}
		if latest == nil || synced.After(*latest) {
			t := *synced
			latest = &t
		}
	}
	return latest
}
