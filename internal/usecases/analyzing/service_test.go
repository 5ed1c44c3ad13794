package analyzing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/brand-insights-api/internal/domain"
	"github.com/vfg2006/brand-insights-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/brand-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)

func campaignRequest() domain.AnalysisRequest {
	return domain.AnalysisRequest{
		Type:         domain.AnalysisCampaign,
		CampaignName: "겨울 캠페인",
		Contents: []domain.CampaignContent{
			{InfluencerName: "ana", Type: "reel", Likes: 1200, Comments: 30},
		},
		PerformanceData: &domain.CampaignPerformanceSummary{TotalLikes: 1200, ContentCount: 1},
	}
}

func TestService_Analyze(t *testing.T) {
	tests := []struct {
		name     string
		req      domain.AnalysisRequest
		setup    func(completer *mocks.MockCompleter)
		validate func(t *testing.T, analysis *domain.Analysis, err error)
	}{
		{
			name: "Resposta do modelo com texto ao redor do JSON",
			req:  campaignRequest(),
			setup: func(completer *mocks.MockCompleter) {
				completer.EXPECT().
					Complete(gomock.Any(), systemPrompts[domain.AnalysisCampaign], gomock.Any()).
					Return("Claro!\n```json\n{\"summary\":\"Bom\",\"insights\":[\"a\",\"b\"],\"recommendation\":\"c\"}\n```", nil)
			},
			validate: func(t *testing.T, analysis *domain.Analysis, err error) {
				require.NoError(t, err)
				assert.False(t, analysis.Fallback)
				assert.Equal(t, "Bom", analysis.Summary)
				assert.Equal(t, []string{"a", "b"}, analysis.Insights)
				assert.Equal(t, fixedNow, analysis.GeneratedAt)
			},
		},
		{
			name: "Resposta sem JSON usa fallback de campanha",
			req:  campaignRequest(),
			setup: func(completer *mocks.MockCompleter) {
				completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("não sei", nil)
			},
			validate: func(t *testing.T, analysis *domain.Analysis, err error) {
				require.NoError(t, err)
				assert.True(t, analysis.Fallback)
				assert.Len(t, analysis.Insights, 3)
				assert.Equal(t, "총 1,200개의 좋아요를 획득했습니다.", analysis.Insights[1])
				assert.Equal(t, "더 많은 데이터가 수집되면 정확한 분석이 가능합니다.", analysis.Recommendation)
			},
		},
		{
			name: "Falha na OpenAI usa fallback de perfil",
			req: domain.AnalysisRequest{
				Type:        domain.AnalysisProfile,
				ProfileData: &domain.ProfileInsight{Followers: 15000, EngagementRate: 3.2},
			},
			setup: func(completer *mocks.MockCompleter) {
				completer.EXPECT().
					Complete(gomock.Any(), systemPrompts[domain.AnalysisProfile], gomock.Any()).
					Return("", errors.New("timeout"))
			},
			validate: func(t *testing.T, analysis *domain.Analysis, err error) {
				require.NoError(t, err)
				assert.True(t, analysis.Fallback)
				require.Len(t, analysis.Insights, 5)
				assert.Equal(t, "현재 팔로워 수는 15,000명입니다.", analysis.Insights[0])
				assert.Equal(t, "참여율은 3.2%입니다.", analysis.Insights[2])
			},
		},
		{
			name: "JSON sem insights usa fallback de anúncios",
			req: domain.AnalysisRequest{
				Type:   domain.AnalysisAds,
				AdData: &domain.AdPerformance{Spend: decimal.NewFromInt(250000), ROAS: 2.5},
			},
			setup: func(completer *mocks.MockCompleter) {
				completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return(`{"summary":"x"}`, nil)
			},
			validate: func(t *testing.T, analysis *domain.Analysis, err error) {
				require.NoError(t, err)
				assert.True(t, analysis.Fallback)
				require.Len(t, analysis.Insights, 5)
				assert.Equal(t, "총 광고 지출은 ₩250,000입니다.", analysis.Insights[0])
				assert.Equal(t, "ROAS는 2.50x입니다.", analysis.Insights[1])
			},
		},
		{
			name: "Tipo vazio é tratado como campanha",
			req: domain.AnalysisRequest{
				Contents: []domain.CampaignContent{{InfluencerName: "ana"}},
			},
			setup: func(completer *mocks.MockCompleter) {
				completer.EXPECT().
					Complete(gomock.Any(), systemPrompts[domain.AnalysisCampaign], gomock.Any()).
					Return(`{"summary":"s","insights":["i"],"recommendation":"r"}`, nil)
			},
			validate: func(t *testing.T, analysis *domain.Analysis, err error) {
				require.NoError(t, err)
				assert.Equal(t, "s", analysis.Summary)
			},
		},
		{
			name:  "Campanha sem conteúdos",
			req:   domain.AnalysisRequest{Type: domain.AnalysisCampaign},
			setup: func(completer *mocks.MockCompleter) {},
			validate: func(t *testing.T, analysis *domain.Analysis, err error) {
				assert.Nil(t, analysis)
				var analysisErr *AnalysisError
				require.True(t, errors.As(err, &analysisErr))
				assert.Equal(t, apiErrors.ErrMissingRequiredData, analysisErr.Code)
				assert.ErrorIs(t, err, ErrMissingContents)
			},
		},
		{
			name:  "Perfil sem dados",
			req:   domain.AnalysisRequest{Type: domain.AnalysisProfile},
			setup: func(completer *mocks.MockCompleter) {},
			validate: func(t *testing.T, analysis *domain.Analysis, err error) {
				assert.ErrorIs(t, err, ErrMissingProfileData)
			},
		},
		{
			name:  "Anúncios sem dados",
			req:   domain.AnalysisRequest{Type: domain.AnalysisAds},
			setup: func(completer *mocks.MockCompleter) {},
			validate: func(t *testing.T, analysis *domain.Analysis, err error) {
				assert.ErrorIs(t, err, ErrMissingAdData)
			},
		},
		{
			name:  "Tipo desconhecido",
			req:   domain.AnalysisRequest{Type: "stories"},
			setup: func(completer *mocks.MockCompleter) {},
			validate: func(t *testing.T, analysis *domain.Analysis, err error) {
				var analysisErr *AnalysisError
				require.True(t, errors.As(err, &analysisErr))
				assert.Equal(t, apiErrors.ErrInvalidRequest, analysisErr.Code)
				assert.ErrorIs(t, err, ErrInvalidAnalysisType)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			completer := mocks.NewMockCompleter(ctrl)
			tt.setup(completer)

			service := &Service{completer: completer, now: func() time.Time { return fixedNow }}

			analysis, err := service.Analyze(context.Background(), tt.req)

			tt.validate(t, analysis, err)
		})
	}
}

func TestParseReply(t *testing.T) {
	analysis, err := ParseReply(`{"summary":"s","insights":["i1","i2","i3"],"recommendation":"r"}`)
	require.NoError(t, err)
	assert.Len(t, analysis.Insights, 3)

	_, err = ParseReply(`{"summary": "s", "insights": [`)
	assert.ErrorIs(t, err, ErrMalformedReply)

	_, err = ParseReply(`{summary: s}`)
	assert.ErrorIs(t, err, ErrMalformedReply)
}
