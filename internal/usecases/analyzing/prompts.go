package analyzing

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vfg2006/brand-insights-api/internal/domain"
	"github.com/vfg2006/brand-insights-api/pkg/utils"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	maxCampaignContents = 20
	maxCaptionRunes     = 200
	maxRecentContents   = 10
	maxTopCampaigns     = 5
	maxDailyPoints      = 7
)

var systemPrompts = map[domain.AnalysisType]string{
	domain.AnalysisCampaign: "당신은 인플루언서 마케팅 캠페인 분석 전문가입니다. 항상 JSON 형식으로만 응답합니다.",
	domain.AnalysisProfile:  "당신은 인스타그램 프로필 성장 전문가입니다. 항상 JSON 형식으로만 응답합니다.",
	domain.AnalysisAds:      "당신은 Meta 광고 최적화 전문가입니다. 항상 JSON 형식으로만 응답합니다.",
}

const jsonOnly = "반드시 JSON 형식으로만 응답하고, 마크다운이나 다른 텍스트 없이 순수 JSON만 반환해주세요."

var printer = message.NewPrinter(language.Korean)

// BuildPrompt retorna as mensagens de sistema e de usuário para o tipo de análise
func BuildPrompt(req domain.AnalysisRequest) (string, string) {
	switch req.Type {
	case domain.AnalysisProfile:
		return systemPrompts[req.Type], buildProfilePrompt(req)
	case domain.AnalysisAds:
		return systemPrompts[req.Type], buildAdsPrompt(req)
	default:
		return systemPrompts[domain.AnalysisCampaign], buildCampaignPrompt(req)
	}
}

func buildCampaignPrompt(req domain.AnalysisRequest) string {
	perf := req.PerformanceData
	if perf == nil {
		perf = &domain.CampaignPerformanceSummary{}
	}

	name := req.CampaignName
	if name == "" {
		name = "미정"
	}

	var b strings.Builder
	b.WriteString("당신은 인플루언서 마케팅 전문가입니다. 다음 캠페인 데이터를 분석하고 인사이트를 제공해주세요.\n\n")
	fmt.Fprintf(&b, "캠페인명: %s\n\n", name)
	b.WriteString("성과 요약:\n")
	fmt.Fprintf(&b, "- 총 좋아요: %s\n", count(perf.TotalLikes))
	fmt.Fprintf(&b, "- 총 댓글: %s\n", count(perf.TotalComments))
	fmt.Fprintf(&b, "- 총 공유: %s\n", count(perf.TotalShares))
	fmt.Fprintf(&b, "- 총 조회수: %s\n", count(perf.TotalViews))
	fmt.Fprintf(&b, "- 콘텐츠 수: %d\n\n", perf.ContentCount)

	b.WriteString("TOP 인플루언서:\n")
	if len(perf.TopInfluencers) == 0 {
		b.WriteString("없음\n")
	}
	for i, inf := range perf.TopInfluencers {
		fmt.Fprintf(&b, "%d. %s: 좋아요 %d, 댓글 %d\n", i+1, inf.Name, inf.Likes, inf.Comments)
	}

	contents := req.Contents
	if len(contents) > maxCampaignContents {
		contents = contents[:maxCampaignContents]
	}
	sample := make([]domain.CampaignContent, 0, len(contents))
	for _, c := range contents {
		c.Caption = truncateRunes(c.Caption, maxCaptionRunes)
		sample = append(sample, c)
	}
	encoded, _ := json.MarshalIndent(sample, "", "  ")

	b.WriteString("\n최근 콘텐츠 샘플:\n")
	b.Write(encoded)
	b.WriteString("\n\n다음 형식으로 JSON 응답해주세요:\n")
	b.WriteString(`{"summary": "캠페인 전체 성과에 대한 2-3문장 요약", "insights": ["구체적인 수치를 포함한 인사이트 3개"], "recommendation": "향후 캠페인 전략에 대한 구체적인 추천"}`)
	b.WriteString("\n\n")
	b.WriteString(jsonOnly)

	return b.String()
}

func buildProfilePrompt(req domain.AnalysisRequest) string {
	p := req.ProfileData
	if p == nil {
		p = &domain.ProfileInsight{}
	}

	var b strings.Builder
	b.WriteString("당신은 인스타그램 프로필 성장 전문가입니다. 다음 프로필 데이터를 분석하고 성장 전략을 제공해주세요.\n\n")
	b.WriteString("프로필 지표:\n")
	fmt.Fprintf(&b, "- 팔로워: %s (%s%%)\n", count(p.Followers), signed(p.FollowersGrowth))
	fmt.Fprintf(&b, "- 도달: %s (%s%%)\n", count(p.Reach), signed(p.ReachGrowth))
	fmt.Fprintf(&b, "- 노출: %s\n", count(p.Impressions))
	fmt.Fprintf(&b, "- 참여율: %.1f%%\n", p.EngagementRate)
	fmt.Fprintf(&b, "- 프로필 방문: %s\n", count(p.ProfileViews))
	fmt.Fprintf(&b, "- 웹사이트 클릭: %s\n\n", count(p.WebsiteClicks))

	b.WriteString("팔로워 인구통계:\n")
	if d := req.FollowerDemographic; d != nil {
		fmt.Fprintf(&b, "- 성별: 남성 %.1f%%, 여성 %.1f%%\n", d.Gender.MalePercent, d.Gender.FemalePercent)

		ages := make([]string, 0, 3)
		for _, a := range d.Age[:min(3, len(d.Age))] {
			ages = append(ages, fmt.Sprintf("%s세(%.1f%%)", a.Range, a.Percent))
		}
		fmt.Fprintf(&b, "- 주요 연령대: %s\n", joinOr(ages, "정보 없음"))

		countries := make([]string, 0, 3)
		for _, c := range d.Country[:min(3, len(d.Country))] {
			countries = append(countries, fmt.Sprintf("%s(%.1f%%)", c.Name, c.Percent))
		}
		fmt.Fprintf(&b, "- 주요 국가: %s\n", joinOr(countries, "정보 없음"))
	} else {
		b.WriteString("- 정보 없음\n")
	}

	b.WriteString("\n최근 콘텐츠 성과 (최대 10개):\n")
	recent := req.RecentContent[:min(maxRecentContents, len(req.RecentContent))]
	if len(recent) == 0 {
		b.WriteString("콘텐츠 데이터 없음\n")
	}
	for i, c := range recent {
		fmt.Fprintf(&b, "%d. [%s] 조회 %s, 도달 %s, 좋아요 %s, 참여율 %.1f%%\n",
			i+1, c.Type, count(c.Views), count(c.Reach), count(c.Likes), c.EngagementRate)
	}

	b.WriteString("\n다음 형식으로 JSON 응답해주세요:\n")
	b.WriteString(`{"summary": "성장세, 강점, 개선점을 포함한 2-3문장 요약", "insights": ["인사이트 5개"], "recommendation": "프로필 성장을 위한 구체적인 콘텐츠 전략 추천"}`)
	b.WriteString("\n\n")
	b.WriteString(jsonOnly)

	return b.String()
}

func buildAdsPrompt(req domain.AnalysisRequest) string {
	ad := req.AdData
	if ad == nil {
		ad = &domain.AdPerformance{}
	}

	var b strings.Builder
	b.WriteString("당신은 Meta 광고 최적화 전문가입니다. 다음 광고 데이터를 분석하고 성과 개선 전략을 제공해주세요.\n\n")
	b.WriteString("전체 광고 성과:\n")
	fmt.Fprintf(&b, "- 총 지출: ₩%s (%s%%)\n", count(ad.Spend.Round(0).IntPart()), signed(ad.SpendGrowth))
	fmt.Fprintf(&b, "- ROAS: %.2fx (%s%%)\n", ad.ROAS, signed(ad.ROASGrowth))
	fmt.Fprintf(&b, "- 총 결과: %s (%s%%)\n", count(ad.Results), signed(ad.ResultsGrowth))
	fmt.Fprintf(&b, "- 결과당 비용: ₩%s (%s%%)\n", count(int64(ad.CostPerResult)), signed(ad.CostPerResultGrowth))
	fmt.Fprintf(&b, "- 총 도달: %s (%s%%)\n", count(ad.Reach), signed(ad.ReachGrowth))
	fmt.Fprintf(&b, "- 총 클릭: %s (%s%%)\n", count(ad.Clicks), signed(ad.ClicksGrowth))
	fmt.Fprintf(&b, "- CTR: %.2f%% (%s%%)\n", ad.CTR, signed(ad.CTRGrowth))
	fmt.Fprintf(&b, "- CPC: ₩%s (%s%%)\n\n", count(int64(ad.CPC)), signed(ad.CPCGrowth))

	b.WriteString("TOP 캠페인 성과 (최대 5개):\n")
	top := req.TopCampaigns[:min(maxTopCampaigns, len(req.TopCampaigns))]
	if len(top) == 0 {
		b.WriteString("캠페인 데이터 없음\n")
	}
	for i, c := range top {
		if c == nil {
			continue
		}
		fmt.Fprintf(&b, "%d. %s: 지출 ₩%s, ROAS %.2fx, 결과 %s, 클릭 %s\n",
			i+1, c.Name, count(c.Spend.Round(0).IntPart()), c.ROAS, count(c.Results), count(c.Clicks))
	}

	b.WriteString("\n최근 7일 일별 추이:\n")
	daily := req.DailyData[max(0, len(req.DailyData)-maxDailyPoints):]
	if len(daily) == 0 {
		b.WriteString("일별 데이터 없음\n")
	}
	for _, d := range daily {
		fmt.Fprintf(&b, "%s: 지출 ₩%s, ROAS %.2fx, 클릭 %s, CTR %.2f%%\n",
			d.Date, count(d.Spend.Round(0).IntPart()), d.ROAS, count(d.Clicks), d.CTR)
	}

	b.WriteString("\n다음 형식으로 JSON 응답해주세요:\n")
	b.WriteString(`{"summary": "ROAS 동향, 비용 효율성, 개선점을 포함한 2-3문장 요약", "insights": ["인사이트 5개"], "recommendation": "예산 배분 또는 최적화 전략 추천"}`)
	b.WriteString("\n\n")
	b.WriteString(jsonOnly)

	return b.String()
}

// count formata inteiros com separador de milhar
func count(n int64) string {
	return printer.Sprintf("%d", n)
}

func signed(growth float64) string {
	return fmt.Sprintf("%+.1f", utils.RoundWithOneDecimalPlace(growth))
}

func joinOr(values []string, empty string) string {
	if len(values) == 0 {
		return empty
	}
	return strings.Join(values, ", ")
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
