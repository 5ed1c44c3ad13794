package dash

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dashdomain "github.com/vfg2006/brand-insights-api/infrastructure/integrator/dash/domain"
	"github.com/vfg2006/brand-insights-api/infrastructure/integrator/dash/mocks"
	"github.com/vfg2006/brand-insights-api/internal/config"
	"github.com/vfg2006/brand-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestIntegrator(t *testing.T) (*DashIntegrator, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	return New(&config.Config{ReportLocation: time.UTC}, client), client
}

func TestDashIntegrator_FetchRawAdInsights(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(client *mocks.MockClient)
		validate func(t *testing.T, rows []domain.RawAdInsight, err error)
	}{
		{
			name: "Linhas normalizadas com detalhes dos anúncios",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetAdStatisticsSummary(gomock.Any(), "member-1", "2024-01-01", "2024-01-02").
					Return(statisticsFixture(), nil)
				client.EXPECT().
					GetAdDetailInfo(gomock.Any(), []string{"A", "B"}, "2024-01-02").
					Return([]dashdomain.AdDetailInfo{{AdID: "A", ThumbnailURL: "https://img/a.jpg"}}, nil)
			},
			validate: func(t *testing.T, rows []domain.RawAdInsight, err error) {
				require.NoError(t, err)
				require.Len(t, rows, 2)
				for _, r := range rows {
					assert.Equal(t, "member-1", r.DashMemberID)
				}
				assert.Equal(t, "https://img/a.jpg", rows[0].ThumbnailURL)
			},
		},
		{
			name: "Falha nos detalhes não impede as métricas",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetAdStatisticsSummary(gomock.Any(), "member-1", gomock.Any(), gomock.Any()).
					Return(statisticsFixture(), nil)
				client.EXPECT().
					GetAdDetailInfo(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, rows []domain.RawAdInsight, err error) {
				require.NoError(t, err)
				require.Len(t, rows, 2)
				assert.Empty(t, rows[0].ThumbnailURL)
				assert.Equal(t, int64(10), rows[0].Clicks)
			},
		},
		{
			name: "Sem campanhas não busca detalhes",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetAdStatisticsSummary(gomock.Any(), "member-1", gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			validate: func(t *testing.T, rows []domain.RawAdInsight, err error) {
				require.NoError(t, err)
				assert.Empty(t, rows)
			},
		},
		{
			name: "Erro no resumo é propagado",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetAdStatisticsSummary(gomock.Any(), "member-1", gomock.Any(), gomock.Any()).
					Return(nil, &dashdomain.ErrorResponse{StatusCode: 500})
			},
			validate: func(t *testing.T, rows []domain.RawAdInsight, err error) {
				assert.Nil(t, rows)
				var errResp *dashdomain.ErrorResponse
				assert.True(t, errors.As(err, &errResp))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator, client := newTestIntegrator(t)
			tt.setup(client)

			rows, err := integrator.FetchRawAdInsights(ctx, "member-1", start, end)

			tt.validate(t, rows, err)
		})
	}
}

func TestDashIntegrator_Login(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		member   *dashdomain.Member
		err      error
		validate func(t *testing.T, member *domain.DashMember, err error)
	}{
		{
			name:   "Membro autenticado",
			member: &dashdomain.Member{ID: "member-1", UserID: "marca", Name: "Marca", Role: "ADMIN", Status: "active"},
			validate: func(t *testing.T, member *domain.DashMember, err error) {
				require.NoError(t, err)
				assert.Equal(t, "member-1", member.ID)
				assert.Equal(t, "marca", member.LoginID)
				assert.Equal(t, domain.RoleAdmin, member.Role)
				assert.Equal(t, domain.DashMemberStatusActive, member.Status)
			},
		},
		{
			name: "Credenciais recusadas",
			err:  &dashdomain.ErrorResponse{StatusCode: 401},
			validate: func(t *testing.T, member *domain.DashMember, err error) {
				assert.Nil(t, member)
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			},
		},
		{
			name:   "Resposta sem membro",
			member: &dashdomain.Member{},
			validate: func(t *testing.T, member *domain.DashMember, err error) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			},
		},
		{
			name: "Backend indisponível",
			err:  errors.New("connection refused"),
			validate: func(t *testing.T, member *domain.DashMember, err error) {
				require.Error(t, err)
				assert.NotErrorIs(t, err, ErrInvalidCredentials)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator, client := newTestIntegrator(t)
			client.EXPECT().Login(gomock.Any(), "marca", "segredo").Return(tt.member, tt.err)

			member, err := integrator.Login(ctx, "marca", "segredo")

			tt.validate(t, member, err)
		})
	}
}

func TestMapCampaignResults(t *testing.T) {
	posts := []domain.ScrapedPost{
		{PostID: "p1", PostURL: "https://instagram.com/p/1", LikesCount: 10, PostedAt: "2024-01-01T10:00:00.000Z"},
		{PostID: "p2", PostedAt: "2024-01-01T11:00:00"},
	}
	day := time.Date(2024, 1, 3, 15, 0, 0, 0, time.UTC)

	results := MapCampaignResults("member-1", "camp-1", posts, day)

	require.Len(t, results, 2)
	assert.Equal(t, "member-1", results[0].DashMemberID)
	assert.Equal(t, "camp-1", results[0].CampaignID)
	assert.Equal(t, "2024-01-03", results[0].Time)
	assert.Equal(t, "2024-01-01T10:00:00.000", results[0].PostedAt)
	assert.Equal(t, int64(10), results[0].LikesCount)
	assert.Equal(t, "2024-01-01T11:00:00", results[1].PostedAt)
}

func TestDashIntegrator_SendCampaignResults(t *testing.T) {
	integrator, client := newTestIntegrator(t)
	client.EXPECT().
		CreateCampaignResults(gomock.Any(), gomock.Len(1)).
		Return(errors.New("bad gateway"))

	err := integrator.SendCampaignResults(context.Background(), "member-1", "camp-1", []domain.ScrapedPost{{PostID: "p1"}}, time.Now())

	assert.Error(t, err)
}
