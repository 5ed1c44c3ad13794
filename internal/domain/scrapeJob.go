package domain

import "time"

type ScrapeJobState string

const (
	ScrapeJobPending   ScrapeJobState = "pending"
	ScrapeJobSucceeded ScrapeJobState = "succeeded"
	ScrapeJobFailed    ScrapeJobState = "failed"
	ScrapeJobTimedOut  ScrapeJobState = "timed-out"
	ScrapeJobCancelled ScrapeJobState = "cancelled"
)

func (s ScrapeJobState) IsTerminal() bool {
	return s != ScrapeJobPending
}

// Status reportado pelo serviço de scraping
const (
	RemoteJobProcessing = "processing"
	RemoteJobCompleted  = "completed"
	RemoteJobError      = "error"
)

// ScrapedPost é um post coletado pelo serviço de scraping
type ScrapedPost struct {
	ID                 string  `json:"id"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
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

// ScrapeJobStatus é a resposta do endpoint de status do serviço de scraping
type ScrapeJobStatus struct {
	Status string        `json:"status"`
	Result []ScrapedPost `json:"result"`
	Error  *string       `json:"error"`
}

type ScrapeJobRequest struct {
	JobID      string `json:"job_id"`
	CampaignID string `json:"campaign_id"`
}

// ScrapeJob é o retrato de um acompanhamento de job de scraping
type ScrapeJob struct {
	Handle       string         `json:"handle"`
	JobID        string         `json:"job_id"`
	CampaignID   string         `json:"campaign_id"`
	DashMemberID string         `json:"dash_member_id"`
	State        ScrapeJobState `json:"state"`
	Attempts     int            `json:"attempts"`
	Error        string         `json:"error,omitempty"`
	Posts        []ScrapedPost  `json:"posts,omitempty"`
	StartedAt    time.Time      `json:"started_at"`
	FinishedAt   *time.Time     `json:"finished_at,omitempty"`
}
