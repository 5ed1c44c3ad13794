package profiling

import (
	"sort"
	"strings"
	"time"

	dashdomain "github.com/vfg2006/brand-insights-api/infrastructure/integrator/dash/domain"
	"github.com/vfg2006/brand-insights-api/internal/domain"
	"github.com/vfg2006/brand-insights-api/pkg/utils"
)

const (
	periodDay    = "day"
	periodDays28 = "days_28"

	// pontos diários exibidos no gráfico do perfil
	dailyPoints = 14
)

// MapProfileInsight monta os KPIs do perfil a partir das métricas de 28 dias e do histórico de seguidores
func MapProfileInsight(insights []dashdomain.MemberInsight, followers []dashdomain.Follower) (*domain.ProfileInsight, error) {
	if len(followers) == 0 {
		return nil, domain.ErrNoFollowerData
	}

	sorted := sortFollowers(followers, false)
	latest := sorted[0]

	var followersGrowth float64
	if len(sorted) > 1 {
		followersGrowth = domain.Growth(float64(latest.FollowersCount), float64(sorted[1].FollowersCount))
	}

	recent := filterByPeriod(insights, periodDays28, "")

	reach := metricValue(recent, "reach")
	totalInteractions := metricValue(recent, "total_interactions")

	var engagement float64
	if reach > 0 {
		engagement = float64(totalInteractions) / float64(reach) * 100
	}

	return &domain.ProfileInsight{
		Followers:       latest.FollowersCount,
		FollowersGrowth: utils.RoundWithOneDecimalPlace(followersGrowth),
		Reach:           reach,
		Impressions:     metricValue(recent, "impressions"),
		ProfileViews:    metricValue(recent, "profile_views"),
		WebsiteClicks:   metricValue(recent, "website_clicks"),
		EngagementRate:  utils.RoundWithOneDecimalPlace(engagement),
	}, nil
}

// MapDailyProfileData usa os últimos 14 pontos de seguidores em ordem crescente
func MapDailyProfileData(followers []dashdomain.Follower, insights []dashdomain.MemberInsight) []domain.DailyProfileData {
	daily := make([]domain.DailyProfileData, 0, dailyPoints)
	if len(followers) == 0 {
		return daily
	}

	sorted := sortFollowers(followers, true)
	if len(sorted) > dailyPoints {
		sorted = sorted[len(sorted)-dailyPoints:]
	}

	for _, f := range sorted {
		day := datePart(f.Time)
		dayInsights := filterByPeriod(insights, periodDay, day)

		reach := metricValue(dayInsights, "reach")
		interactions := metricValue(dayInsights, "total_interactions")

		var engagement float64
		if reach > 0 {
			engagement = float64(interactions) / float64(reach) * 100
		}

		daily = append(daily, domain.DailyProfileData{
			Date:        dayLabel(day),
			Followers:   f.FollowersCount,
			Reach:       reach,
			Impressions: metricValue(dayInsights, "impressions"),
			Engagement:  utils.RoundWithOneDecimalPlace(engagement),
		})
	}

	return daily
}

func MapContentItems(media []dashdomain.MediaResponse) []domain.ContentItem {
	items := make([]domain.ContentItem, 0, len(media))

	for _, m := range media {
		insights := m.DashMediaInsights

		reach := insightValue(insights, "reach")
		likes := m.DashMedia.LikeCount
		comments := m.DashMedia.CommentsCount
		saves := insightValue(insights, "saved")

		thumbnail := m.DashMedia.ThumbnailURL
		if thumbnail == "" {
			thumbnail = m.DashMedia.MediaURL
		}

		items = append(items, domain.ContentItem{
			ID:             m.DashMedia.ID,
			Type:           MapMediaType(m.DashMedia.MediaType),
			UploadDate:     datePart(m.DashMedia.PostedAt),
			ThumbnailURL:   thumbnail,
			Views:          firstInsightValue(insights, "views", "plays", "video_views"),
			Reach:          reach,
			Impressions:    insightValue(insights, "impressions"),
			Likes:          likes,
			Comments:       comments,
			Saves:          saves,
			Shares:         insightValue(insights, "shares"),
			EngagementRate: utils.RoundWithOneDecimalPlace(domain.EngagementRate(likes, comments, saves, reach)),
		})
	}

	return items
}

func MapMediaType(mediaType string) domain.MediaType {
	normalized := strings.ToUpper(mediaType)
	switch {
	case strings.Contains(normalized, "REEL"), strings.Contains(normalized, "VIDEO"):
		return domain.MediaReels
	case strings.Contains(normalized, "CAROUSEL"):
		return domain.MediaCarousel
	case strings.Contains(normalized, "STORY"):
		return domain.MediaStory
	default:
		return domain.MediaFeed
	}
}

// MapFollowerDemographic usa o registro mais recente, que já vem agregado
func MapFollowerDemographic(insights []dashdomain.FollowerInsight) (*domain.FollowerDemographic, error) {
	if len(insights) == 0 {
		return nil, domain.ErrNoFollowerInsightData
	}

	latest := insights[0]
	for _, i := range insights[1:] {
		if i.Time > latest.Time {
			latest = i
		}
	}

	male := latest.Gender.Male
	female := latest.Gender.Female
	genderTotal := male + female

	ages := []domain.AgeBucket{
		{Range: "13-17", Count: latest.Age.Age13To17},
		{Range: "18-24", Count: latest.Age.Age18To24},
		{Range: "25-34", Count: latest.Age.Age25To34},
		{Range: "35-44", Count: latest.Age.Age35To44},
		{Range: "45-54", Count: latest.Age.Age45To54},
		{Range: "55-64", Count: latest.Age.Age55To64},
		{Range: "65+", Count: latest.Age.Age65Plus},
	}
	var ageTotal int64
	for _, a := range ages {
		ageTotal += a.Count
	}

	ageBuckets := make([]domain.AgeBucket, 0, len(ages))
	for _, a := range ages {
		if a.Count <= 0 {
			continue
		}
		a.Percent = utils.Percent(a.Count, ageTotal)
		ageBuckets = append(ageBuckets, a)
	}
	sort.SliceStable(ageBuckets, func(i, j int) bool {
		return ageBuckets[i].Count > ageBuckets[j].Count
	})

	countries := make([]domain.CountryBucket, 0, len(latest.Country.Countries))
	for code, count := range latest.Country.Countries {
		countries = append(countries, domain.CountryBucket{
			Code:  code,
			Name:  domain.CountryName(code),
			Count: count,
		})
	}
	sort.Slice(countries, func(i, j int) bool {
		if countries[i].Count != countries[j].Count {
			return countries[i].Count > countries[j].Count
		}
		return countries[i].Code < countries[j].Code
	})
	if len(countries) > 10 {
		countries = countries[:10]
	}

	var countryTotal int64
	for _, c := range countries {
		countryTotal += c.Count
	}
	for i := range countries {
		countries[i].Percent = utils.Percent(countries[i].Count, countryTotal)
	}

	return &domain.FollowerDemographic{
		Gender: domain.GenderBreakdown{
			Male:          male,
			Female:        female,
			MalePercent:   utils.Percent(male, genderTotal),
			FemalePercent: utils.Percent(female, genderTotal),
		},
		Age:     ageBuckets,
		Country: countries,
		Total:   max(genderTotal, ageTotal, countryTotal),
	}, nil
}

// sortFollowers ordena por data. Datas ISO ordenam corretamente como texto.
func sortFollowers(followers []dashdomain.Follower, ascending bool) []dashdomain.Follower {
	sorted := make([]dashdomain.Follower, len(followers))
	copy(sorted, followers)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return sorted[i].Time < sorted[j].Time
		}
		return sorted[i].Time > sorted[j].Time
	})
	return sorted
}

func filterByPeriod(insights []dashdomain.MemberInsight, period, dayPrefix string) []dashdomain.MemberInsight {
	filtered := make([]dashdomain.MemberInsight, 0)
	for _, i := range insights {
		if i.Period != period {
			continue
		}
		if dayPrefix != "" && !strings.HasPrefix(i.Time, dayPrefix) {
			continue
		}
		filtered = append(filtered, i)
	}
	return filtered
}

func metricValue(insights []dashdomain.MemberInsight, metricName string) int64 {
	for _, i := range insights {
		if i.MetricName == metricName {
			return int64(i.Value)
		}
	}
	return 0
}

func insightValue(insights []dashdomain.MediaInsight, name string) int64 {
	for _, i := range insights {
		if i.Name == name {
			return int64(i.Value)
		}
	}
	return 0
}

// firstInsightValue retorna o primeiro valor não zero entre as métricas, na ordem dada
func firstInsightValue(insights []dashdomain.MediaInsight, names ...string) int64 {
	for _, name := range names {
		if v := insightValue(insights, name); v != 0 {
			return v
		}
	}
	return 0
}

func datePart(value string) string {
	day, _, _ := strings.Cut(value, "T")
	return day
}

func dayLabel(day string) string {
	t, err := time.Parse(time.DateOnly, day)
	if err != nil {
		return day
	}
	return domain.DayLabel(t)
}
