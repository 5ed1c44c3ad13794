package dashdomain

// CampaignResult é o registro de post coletado enviado para o backend dash
type CampaignResult struct {
	DashMemberID       string  `json:"dashMemberId"`
	CampaignID         string  `json:"campaignId"`
	Time               string  `json:"time"`
	PostID             string  `json:"postId"`
	PostType           string  `json:"postType"`
	ShortCode          string  `json:"shortCode"`
	PostURL            string  `json:"postUrl"`
	Caption            string  `json:"caption"`
	LikesCount         int64   `json:"likesCount"`
	CommentsCount      int64   `json:"commentsCount"`
	VideoPlayCount     int64   `json:"videoPlayCount"`
	IgPlayCount        int64   `json:"igPlayCount"`
	ReshareCount       int64   `json:"reshareCount"`
	VideoDuration      float64 `json:"videoDuration"`
	PostedAt           string  `json:"postedAt"`
	OwnerID            string  `json:"ownerId"`
	OwnerUsername      string  `json:"ownerUsername"`
	OwnerFullName      string  `json:"ownerFullName"`
	OwnerProfilePicURL *string `json:"ownerProfilePicUrl"`
	DisplayURL         string  `json:"displayUrl"`
	VideoURL           string  `json:"videoUrl"`
	Images             string  `json:"images"`
	Hashtags           string  `json:"hashtags"`
	Mentions           string  `json:"mentions"`
	TaggedUsers        string  `json:"taggedUsers"`
	MusicInfo          string  `json:"musicInfo"`
	CoauthorProducers  string  `json:"coauthorProducers"`
	ChildPosts         string  `json:"childPosts"`
}
