package domain

import "errors"

var (
	ErrNoFollowerData        = errors.New("não há dados de seguidores")
	ErrNoFollowerInsightData = errors.New("não há dados de análise de seguidores")
)

type ProfileInsight struct {
	Followers       int64   `json:"followers"`
	FollowersGrowth float64 `json:"followers_growth"`
	Following       int64   `json:"following"`
	Posts           int64   `json:"posts"`
	Reach           int64   `json:"reach"`
	ReachGrowth     float64 `json:"reach_growth"`
	Impressions     int64   `json:"impressions"`
	ProfileViews    int64   `json:"profile_views"`
	WebsiteClicks   int64   `json:"website_clicks"`
	EngagementRate  float64 `json:"engagement_rate"`
}

type DailyProfileData struct {
	Date        string  `json:"date"`
	Followers   int64   `json:"followers"`
	Reach       int64   `json:"reach"`
	Impressions int64   `json:"impressions"`
	Engagement  float64 `json:"engagement"`
}

type MediaType string

const (
	MediaReels    MediaType = "reels"
	MediaFeed     MediaType = "feed"
	MediaStory    MediaType = "story"
	MediaCarousel MediaType = "carousel"
)

type ContentItem struct {
	ID             string    `json:"id"`
	Type           MediaType `json:"type"`
	UploadDate     string    `json:"upload_date"`
	ThumbnailURL   string    `json:"thumbnail_url"`
	Views          int64     `json:"views"`
	Reach          int64     `json:"reach"`
	Impressions    int64     `json:"impressions"`
	Likes          int64     `json:"likes"`
	Comments       int64     `json:"comments"`
	Saves          int64     `json:"saves"`
	Shares         int64     `json:"shares"`
	EngagementRate float64   `json:"engagement_rate"`
}

type GenderBreakdown struct {
	Male          int64   `json:"male"`
	Female        int64   `json:"female"`
	MalePercent   float64 `json:"male_percent"`
	FemalePercent float64 `json:"female_percent"`
}

type AgeBucket struct {
	Range   string  `json:"range"`
	Count   int64   `json:"count"`
	Percent float64 `json:"percent"`
}

type CountryBucket struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Count   int64   `json:"count"`
	Percent float64 `json:"percent"`
}

type FollowerDemographic struct {
	Gender  GenderBreakdown `json:"gender"`
	Age     []AgeBucket     `json:"age"`
	Country []CountryBucket `json:"country"`
	Total   int64           `json:"total"`
}

// ProfileView é a visão completa da aba de perfil
type ProfileView struct {
	Insight     *ProfileInsight      `json:"insight"`
	Daily       []DailyProfileData   `json:"daily"`
	Contents    []ContentItem        `json:"contents"`
	Demographic *FollowerDemographic `json:"demographic"`
}

var CountryNames = map[string]string{
	"KR": "한국",
	"US": "미국",
	"JP": "일본",
	"CN": "중국",
	"TW": "대만",
	"HK": "홍콩",
	"SG": "싱가포르",
	"TH": "태국",
	"VN": "베트남",
	"ID": "인도네시아",
	"PH": "필리핀",
	"MY": "말레이시아",
	"IN": "인도",
	"AU": "호주",
	"GB": "영국",
	"DE": "독일",
	"FR": "프랑스",
	"CA": "캐나다",
	"BR": "브라질",
	"MX": "멕시코",
}

func CountryName(code string) string {
	if name, ok := CountryNames[code]; ok {
		return name
	}
	return code
}
