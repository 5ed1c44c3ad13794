package analyzing

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vfg2006/brand-insights-api/internal/domain"
)

var jsonBlock = regexp.MustCompile(`\{[\s\S]*\}`)

type llmReply struct {
	Summary        string   `json:"summary"`
	Insights       []string `json:"insights"`
	Recommendation string   `json:"recommendation"`
}

// ParseReply extrai o primeiro bloco {...} da resposta do modelo.
// Respostas sem resumo ou sem insights são tratadas como malformadas.
func ParseReply(reply string) (*domain.Analysis, error) {
	block := jsonBlock.FindString(reply)
	if block == "" {
		return nil, ErrMalformedReply
	}

	parsed := llmReply{}
	if err := json.Unmarshal([]byte(block), &parsed); err != nil {
		return nil, NewAnalysisError(ErrMalformedReply, "", err.Error())
	}

	if strings.TrimSpace(parsed.Summary) == "" || len(parsed.Insights) == 0 {
		return nil, ErrMalformedReply
	}

	return &domain.Analysis{
		Summary:        parsed.Summary,
		Insights:       parsed.Insights,
		Recommendation: parsed.Recommendation,
	}, nil
}

// Fallback monta uma análise determinística a partir dos mesmos agregados enviados ao modelo
func Fallback(req domain.AnalysisRequest) *domain.Analysis {
	switch req.Type {
	case domain.AnalysisProfile:
		p := req.ProfileData
		if p == nil {
			p = &domain.ProfileInsight{}
		}
		return &domain.Analysis{
			Summary: "프로필 분석을 완료했습니다.",
			Insights: []string{
				fmt.Sprintf("현재 팔로워 수는 %s명입니다.", count(p.Followers)),
				fmt.Sprintf("도달 수는 %s입니다.", count(p.Reach)),
				fmt.Sprintf("참여율은 %.1f%%입니다.", p.EngagementRate),
				fmt.Sprintf("프로필 방문 수는 %s입니다.", count(p.ProfileViews)),
				"더 많은 데이터가 필요합니다.",
			},
			Recommendation: "꾸준한 콘텐츠 업로드로 팔로워 성장을 유지하세요.",
			Fallback:       true,
		}

	case domain.AnalysisAds:
		ad := req.AdData
		if ad == nil {
			ad = &domain.AdPerformance{}
		}
		return &domain.Analysis{
			Summary: "광고 분석을 완료했습니다.",
			Insights: []string{
				fmt.Sprintf("총 광고 지출은 ₩%s입니다.", count(ad.Spend.Round(0).IntPart())),
				fmt.Sprintf("ROAS는 %.2fx입니다.", ad.ROAS),
				fmt.Sprintf("총 클릭 수는 %s입니다.", count(ad.Clicks)),
				fmt.Sprintf("CTR은 %.2f%%입니다.", ad.CTR),
				"더 많은 데이터가 필요합니다.",
			},
			Recommendation: "광고 성과를 개선하기 위해 타겟팅과 크리에이티브를 테스트해보세요.",
			Fallback:       true,
		}

	default:
		perf := req.PerformanceData
		if perf == nil {
			perf = &domain.CampaignPerformanceSummary{}
		}
		return &domain.Analysis{
			Summary: "캠페인 분석을 완료했습니다.",
			Insights: []string{
				fmt.Sprintf("총 %d개의 콘텐츠가 게시되었습니다.", perf.ContentCount),
				fmt.Sprintf("총 %s개의 좋아요를 획득했습니다.", count(perf.TotalLikes)),
				"평균 참여율 분석이 필요합니다.",
			},
			Recommendation: "더 많은 데이터가 수집되면 정확한 분석이 가능합니다.",
			Fallback:       true,
		}
	}
}
