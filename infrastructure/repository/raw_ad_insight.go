package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/brand-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/brand-insights-api/internal/domain"
)

const (
	rawAdInsightsTable = "raw_ad_insights"

	// limite de linhas por INSERT para não estourar o máximo de parâmetros do postgres
	upsertBatchSize = 500
)

var rawAdInsightColumns = []string{
	"dash_member_id", "campaign_id", "campaign_name", "adset_id", "adset_name", "ad_id", "ad_name",
	"date", "spend", "reach", "clicks", "impressions", "results", "revenue",
	"platform_status", "objective", "thumbnail_url", "creative_message", "campaign_created_time", "last_synced_at",
}

type RawAdInsightRepository interface {
	UpsertBatch(ctx context.Context, rows []domain.RawAdInsight) error
	GetByDateRange(ctx context.Context, dashMemberID string, start, end time.Time) ([]domain.RawAdInsight, error)
	ListEntities(ctx context.Context, dashMemberID string, loc *time.Location) ([]domain.RawAdInsight, error)
	CountByMember(ctx context.Context, dashMemberID string) (int, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type rawAdInsightRepository struct {
	conn *postgres.Connection
}

func NewRawAdInsightRepository(conn *postgres.Connection) RawAdInsightRepository {
	return &rawAdInsightRepository{
		conn: conn,
	}
}

func (r *rawAdInsightRepository) UpsertBatch(ctx context.Context, rows []domain.RawAdInsight) error {
	if len(rows) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(rows); start += upsertBatchSize {
			end := min(start+upsertBatchSize, len(rows))
			if err := r.upsertChunk(ctx, tx, rows[start:end]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *rawAdInsightRepository) upsertChunk(ctx context.Context, q postgres.Queryer, rows []domain.RawAdInsight) error {
	query := squirrel.StatementBuilder.
		Insert(rawAdInsightsTable).
		Columns(rawAdInsightColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		var createdTime *time.Time
		if !row.CampaignCreated.IsZero() {
			createdTime = &row.CampaignCreated
		}

		query = query.Values(
			row.DashMemberID,
			row.CampaignID,
			row.CampaignName,
			row.AdSetID,
			row.AdSetName,
			row.AdID,
			row.AdName,
			row.Date.Format(time.DateOnly),
			row.Spend,
			row.Reach,
			row.Clicks,
			row.Impressions,
			row.Results,
			row.Revenue,
			string(row.PlatformStatus),
			row.Objective,
			row.ThumbnailURL,
			row.CreativeMessage,
			createdTime,
			row.LastSyncedAt,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (dash_member_id, ad_id, date) DO UPDATE SET
			campaign_id = EXCLUDED.campaign_id,
			campaign_name = EXCLUDED.campaign_name,
			adset_id = EXCLUDED.adset_id,
			adset_name = EXCLUDED.adset_name,
			ad_name = EXCLUDED.ad_name,
			spend = EXCLUDED.spend,
			reach = EXCLUDED.reach,
			clicks = EXCLUDED.clicks,
			impressions = EXCLUDED.impressions,
			results = EXCLUDED.results,
			revenue = EXCLUDED.revenue,
			platform_status = EXCLUDED.platform_status,
			objective = EXCLUDED.objective,
			thumbnail_url = COALESCE(NULLIF(EXCLUDED.thumbnail_url, ''), raw_ad_insights.thumbnail_url),
			creative_message = COALESCE(NULLIF(EXCLUDED.creative_message, ''), raw_ad_insights.creative_message),
			campaign_created_time = COALESCE(EXCLUDED.campaign_created_time, raw_ad_insights.campaign_created_time),
			last_synced_at = EXCLUDED.last_synced_at,
			updated_at = NOW()
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, sqlQuery, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// GetByDateRange retorna as linhas do intervalo semiaberto [start, end)
func (r *rawAdInsightRepository) GetByDateRange(ctx context.Context, dashMemberID string, start, end time.Time) ([]domain.RawAdInsight, error) {
	query, args, err := squirrel.
		Select(rawAdInsightColumns...).
		From(rawAdInsightsTable).
		Where(squirrel.Eq{"dash_member_id": dashMemberID}).
		Where(squirrel.GtOrEq{"date": start.Format(time.DateOnly)}).
		Where(squirrel.Lt{"date": end.Format(time.DateOnly)}).
		OrderBy("date ASC", "ad_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	insights := make([]domain.RawAdInsight, 0)
	for rows.Next() {
		insight, err := scanRawAdInsight(rows, start.Location())
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear insights brutos: %w", err)
		}
		insights = append(insights, insight)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return insights, nil
}

// ListEntities retorna a linha mais recente de cada anúncio do membro, com as métricas zeradas.
// Serve para que campanhas sem entrega na janela continuem aparecendo na hierarquia.
func (r *rawAdInsightRepository) ListEntities(ctx context.Context, dashMemberID string, loc *time.Location) ([]domain.RawAdInsight, error) {
	query, args, err := squirrel.
		Select(rawAdInsightColumns...).
		Options("DISTINCT ON (ad_id)").
		From(rawAdInsightsTable).
		Where(squirrel.Eq{"dash_member_id": dashMemberID}).
		OrderBy("ad_id ASC", "date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entities := make([]domain.RawAdInsight, 0)
	for rows.Next() {
		insight, err := scanRawAdInsight(rows, loc)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entidades: %w", err)
		}
		entities = append(entities, insight.WithoutMetrics())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entities, nil
}

func (r *rawAdInsightRepository) CountByMember(ctx context.Context, dashMemberID string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(rawAdInsightsTable).
		Where(squirrel.Eq{"dash_member_id": dashMemberID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar insights brutos: %w", err)
	}

	return count, nil
}

func (r *rawAdInsightRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete(rawAdInsightsTable).
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func scanRawAdInsight(rows *sql.Rows, loc *time.Location) (domain.RawAdInsight, error) {
	var (
		insight        domain.RawAdInsight
		date           time.Time
		platformStatus string
		createdTime    sql.NullTime
		lastSyncedAt   sql.NullTime
	)

	err := rows.Scan(
		&insight.DashMemberID,
		&insight.CampaignID,
		&insight.CampaignName,
		&insight.AdSetID,
		&insight.AdSetName,
		&insight.AdID,
		&insight.AdName,
		&date,
		&insight.Spend,
		&insight.Reach,
		&insight.Clicks,
		&insight.Impressions,
		&insight.Results,
		&insight.Revenue,
		&platformStatus,
		&insight.Objective,
		&insight.ThumbnailURL,
		&insight.CreativeMessage,
		&createdTime,
		&lastSyncedAt,
	)
	if err != nil {
		return insight, err
	}

	// colunas DATE voltam como meia-noite UTC; reinterpretamos no fuso do relatório
	insight.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	insight.PlatformStatus = domain.AdStatus(platformStatus)
	if createdTime.Valid {
		insight.CampaignCreated = createdTime.Time
	}
	if lastSyncedAt.Valid {
		t := lastSyncedAt.Time
		insight.LastSyncedAt = &t
	}

	return insight, nil
}
