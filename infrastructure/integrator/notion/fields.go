package notion

// Propriedades das bases do Notion, na ordem em que são tentadas

var campaignFields = struct {
	Name, Category, CampaignType, ProductType, Participants, StartDate, EndDate, Manager, Status, Budget, Spent Field
}{
	Name:         F(S("캠페인명", KindTitle), S("이름", KindTitle)),
	Category:     F(S("카테고리", KindSelect), S("카테고리", KindMultiSelect)),
	CampaignType: F(S("캠페인유형", KindSelect)),
	ProductType:  F(S("협찬제품", KindSelect), S("제품유형", KindSelect)),
	Participants: F(S("참여인원", KindNumber), S("참여자수", KindRollupNumber)),
	StartDate:    F(S("시작일", KindDate), S("캠페인시작일", KindDate)),
	EndDate:      F(S("종료일", KindDate), S("캠페인종료일", KindDate)),
	Manager:      F(S("담당자", KindRichText), S("담당자", KindPeople)),
	Status:       F(S("상태", KindSelect), S("진행상태", KindSelect)),
	Budget:       F(S("예산", KindNumber)),
	Spent:        F(S("집행금액", KindNumber)),
}

var influencerFields = struct {
	Name, Followers, Profile, Category, Email, Phone, Rewards, Status Field
}{
	Name:      F(S("이름", KindTitle)),
	Followers: F(S("팔로워 수", KindRichText), S("팔로워 수", KindNumber)),
	Profile:   F(S("인스타그램 프로필", KindRichText), S("인스타그램 프로필", KindURL)),
	Category:  F(S("활동 분야", KindMultiSelect)),
	Email:     F(S("이메일", KindRichText), S("이메일", KindEmail)),
	Phone:     F(S("연락처", KindPhoneNumber)),
	Rewards:   F(S("희망 보상", KindMultiSelect)),
	Status:    F(S("상태", KindStatus), S("상태", KindSelect)),
}

var mentionFields = struct {
	PostURL, InfluencerName, Handle, Type, Likes, Comments, Shares, Views, Reach, Impressions, PostedAt, Caption, Thumbnail Field
}{
	PostURL:        F(S("Post URL", KindURL)),
	InfluencerName: F(S("ownerFulName", KindRichText), S("ownerUsername", KindRichText)),
	Handle:         F(S("ownerUsername", KindRichText)),
	Type:           F(S("type", KindSelect)),
	Likes:          F(S("likesCounts", KindNumber), S("좋아요", KindNumber)),
	Comments:       F(S("commentsCount", KindNumber), S("댓글", KindNumber)),
	Shares:         F(S("reshareCount", KindNumber), S("공유", KindNumber)),
	Views:          F(S("VideoPlayCount", KindNumber), S("조회수", KindNumber)),
	Reach:          F(S("도달", KindNumber)),
	Impressions:    F(S("노출", KindNumber)),
	PostedAt:       F(S("피드게시일", KindDate)),
	Caption:        F(S("caption", KindRichText)),
	Thumbnail:      F(S("displayUrl", KindFiles)),
}

// relação da base de menções com a base de campanhas
const mentionCampaignRelation = "캠페인 DB"

var applicantFields = struct {
	AppliedAt, Name, Phone, InstagramID, Expectation, MarketingConsent Field
}{
	AppliedAt:        F(S("접수 일시", KindDate)),
	Name:             F(S("이름", KindTitle)),
	Phone:            F(S("연락처", KindPhoneNumber)),
	InstagramID:      F(S("인스타그램 ID", KindRichText)),
	Expectation:      F(S("한 줄 기대평", KindRichText)),
	MarketingConsent: F(S("콘텐츠 2차 활용 및 마케팅 이용 동의", KindCheckbox)),
}

const applicantSortProperty = "접수 일시"
