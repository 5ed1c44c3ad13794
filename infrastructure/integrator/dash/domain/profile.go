package dashdomain

type MemberInsight struct {
	ID           string  `json:"id"`
	MetricName   string  `json:"metricName"`
	Period       string  `json:"period"`
	Title        string  `json:"title"`
	DashMemberID string  `json:"dashMemberId"`
	Value        float64 `json:"value"`
	CollectedAt  string  `json:"collectedAt"`
	Time         string  `json:"time"`
}

type Follower struct {
	ID             string `json:"id"`
	DashMemberID   string `json:"dashMemberId"`
	FollowersCount int64  `json:"followersCount"`
	Time           string `json:"time"`
}

type FollowerInsight struct {
	ID           string         `json:"id"`
	DashMemberID string         `json:"dashMemberId"`
	Time         string         `json:"time"`
	Gender       GenderInsight  `json:"gender"`
	Age          AgeInsight     `json:"age"`
	Country      CountryInsight `json:"country"`
}

type GenderInsight struct {
	Female  int64 `json:"female"`
	Male    int64 `json:"male"`
	Unknown int64 `json:"unknown"`
}

type AgeInsight struct {
	Age13To17 int64 `json:"age13_17"`
	Age18To24 int64 `json:"age18_24"`
	Age25To34 int64 `json:"age25_34"`
	Age35To44 int64 `json:"age35_44"`
	Age45To54 int64 `json:"age45_54"`
	Age55To64 int64 `json:"age55_64"`
	Age65Plus int64 `json:"age65Plus"`
}

type CountryInsight struct {
	Countries map[string]int64 `json:"countries"`
}

type Media struct {
	ID            string `json:"id"`
	DashMemberID  string `json:"dashMemberId"`
	IgMediaID     string `json:"igMediaId"`
	Time          string `json:"time"`
	Caption       string `json:"caption"`
	MediaType     string `json:"mediaType"`
	MediaURL      string `json:"mediaUrl"`
	ThumbnailURL  string `json:"thumbnailUrl"`
	LikeCount     int64  `json:"likeCount"`
	CommentsCount int64  `json:"commentsCount"`
	PostedAt      string `json:"postedAt"`
}

type MediaInsight struct {
	ID      string  `json:"id"`
	MediaID string  `json:"mediaId"`
	Name    string  `json:"name"`
	Period  string  `json:"period"`
	Value   float64 `json:"value"`
	Time    string  `json:"time"`
}

type MediaResponse struct {
	DashMedia         Media          `json:"dashMedia"`
	DashMediaInsights []MediaInsight `json:"dashMediaInsights"`
}
