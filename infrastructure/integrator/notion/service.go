package notion

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	notiondomain "github.com/vfg2006/brand-insights-api/infrastructure/integrator/notion/domain"
	"github.com/vfg2006/brand-insights-api/infrastructure/integrator/notion/notionclient"
	"github.com/vfg2006/brand-insights-api/internal/config"
	"github.com/vfg2006/brand-insights-api/internal/domain"
)

var ErrNotFound = errors.New("página não encontrada no Notion")

type NotionIntegrator struct {
	cfg    *config.Config
	Client notionclient.Client
}

func New(cfg *config.Config, client notionclient.Client) *NotionIntegrator {
	return &NotionIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *NotionIntegrator) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	pages, err := s.Client.QueryAll(ctx, s.cfg.Notion.CampaignsDB, nil, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao consultar campanhas no Notion")
		return nil, errors.Wrap(err, "erro ao consultar campanhas")
	}

	campaigns := make([]domain.Campaign, 0, len(pages))
	for _, page := range pages {
		if page.Archived {
			continue
		}
		campaigns = append(campaigns, toCampaign(page))
	}

	return campaigns, nil
}

func (s *NotionIntegrator) GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	page, err := s.Client.GetPage(ctx, campaignID)
	if err != nil {
		var errResp *notiondomain.ErrorResponse
		if errors.As(err, &errResp) && errResp.IsNotFound() {
			return nil, ErrNotFound
		}
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("Erro ao consultar campanha no Notion")
		return nil, errors.Wrap(err, "erro ao consultar campanha")
	}

	if page.Archived {
		return nil, ErrNotFound
	}

	campaign := toCampaign(*page)
	return &campaign, nil
}

func (s *NotionIntegrator) ListInfluencers(ctx context.Context) ([]domain.Influencer, error) {
	sorts := []notiondomain.Sort{notiondomain.SortByTimestamp("last_edited_time")}

	pages, err := s.Client.QueryAll(ctx, s.cfg.Notion.InfluencersDB, nil, sorts)
	if err != nil {
		logrus.WithError(err).Error("Erro ao consultar influenciadores no Notion")
		return nil, errors.Wrap(err, "erro ao consultar influenciadores")
	}

	influencers := make([]domain.Influencer, 0, len(pages))
	for _, page := range pages {
		influencers = append(influencers, toInfluencer(page))
	}

	return influencers, nil
}

// ListMentions retorna as menções mais recentes primeiro, ainda sem deduplicação
func (s *NotionIntegrator) ListMentions(ctx context.Context, campaignID string) ([]domain.Mention, error) {
	var filter any
	if campaignID != "" {
		filter = notiondomain.RelationContains(mentionCampaignRelation, campaignID)
	}
	sorts := []notiondomain.Sort{notiondomain.SortByTimestamp("created_time")}

	pages, err := s.Client.QueryAll(ctx, s.cfg.Notion.MentionsDB, filter, sorts)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("Erro ao consultar menções no Notion")
		return nil, errors.Wrap(err, "erro ao consultar menções")
	}

	mentions := make([]domain.Mention, 0, len(pages))
	for _, page := range pages {
		mentions = append(mentions, toMention(page))
	}

	return mentions, nil
}

// ListApplicants usa a base de candidatos do login informado ou a base padrão
func (s *NotionIntegrator) ListApplicants(ctx context.Context, loginID string) ([]domain.Applicant, error) {
	databaseID := s.ApplicantsDatabase(loginID)
	sorts := []notiondomain.Sort{notiondomain.SortByProperty(applicantSortProperty)}

	pages, err := s.Client.QueryAll(ctx, databaseID, nil, sorts)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"login_id":    loginID,
			"database_id": databaseID,
			"error":       err.Error(),
		}).Error("Erro ao consultar candidatos no Notion")
		return nil, errors.Wrap(err, "erro ao consultar candidatos")
	}

	applicants := make([]domain.Applicant, 0, len(pages))
	for _, page := range pages {
		applicants = append(applicants, toApplicant(page))
	}

	return applicants, nil
}

func (s *NotionIntegrator) ApplicantsDatabase(loginID string) string {
	if databaseID, ok := s.cfg.Notion.ApplicantsByLoginID[loginID]; ok && databaseID != "" {
		return databaseID
	}
	return s.cfg.Notion.ApplicantsDB
}

func toCampaign(page notiondomain.Page) domain.Campaign {
	props := page.Properties
	f := campaignFields

	return domain.Campaign{
		ID:           page.ID,
		Name:         f.Name.Text(props, ""),
		Category:     f.Category.Text(props, ""),
		CampaignType: f.CampaignType.Text(props, domain.DefaultCampaignType),
		ProductType:  f.ProductType.Text(props, ""),
		Participants: int(f.Participants.Number(props, 0)),
		StartDate:    f.StartDate.Text(props, ""),
		EndDate:      f.EndDate.Text(props, ""),
		Manager:      f.Manager.Text(props, ""),
		Status:       f.Status.Text(props, domain.DefaultCampaignStatus),
		Budget:       f.Budget.Number(props, 0),
		Spent:        f.Spent.Number(props, 0),
	}
}

func toInfluencer(page notiondomain.Page) domain.Influencer {
	props := page.Properties
	f := influencerFields

	influencer := domain.Influencer{
		ID:           page.ID,
		Name:         f.Name.Text(props, ""),
		Handle:       strings.TrimSpace(strings.Replace(f.Profile.Text(props, ""), "@", "", 1)),
		Platform:     "instagram",
		Category:     f.Category.List(props),
		Followers:    int64(math.Trunc(f.Followers.Number(props, 0))),
		Email:        f.Email.Text(props, ""),
		Phone:        f.Phone.Text(props, ""),
		Notes:        strings.Join(f.Rewards.List(props), ", "),
		Status:       f.Status.Text(props, ""),
		CreatedAt:    parsePageTime(page.CreatedTime),
		LastModified: parsePageTime(page.LastEditedTime),
	}
	influencer.EstimateEngagement()

	return influencer
}

func toMention(page notiondomain.Page) domain.Mention {
	props := page.Properties
	f := mentionFields

	return domain.Mention{
		ID:             page.ID,
		InfluencerName: f.InfluencerName.Text(props, ""),
		Handle:         f.Handle.Text(props, ""),
		Platform:       "instagram",
		Type:           strings.ToLower(f.Type.Text(props, "post")),
		Likes:          int64(f.Likes.Number(props, 0)),
		Comments:       int64(f.Comments.Number(props, 0)),
		Shares:         int64(f.Shares.Number(props, 0)),
		Views:          int64(f.Views.Number(props, 0)),
		Reach:          int64(f.Reach.Number(props, 0)),
		Impressions:    int64(f.Impressions.Number(props, 0)),
		PostURL:        f.PostURL.Text(props, ""),
		PostedAt:       f.PostedAt.Text(props, ""),
		Caption:        f.Caption.Text(props, ""),
		Thumbnail:      f.Thumbnail.Text(props, ""),
		CreatedAt:      parsePageTime(page.CreatedTime),
	}
}

func toApplicant(page notiondomain.Page) domain.Applicant {
	props := page.Properties
	f := applicantFields

	return domain.Applicant{
		ID:               page.ID,
		Name:             f.Name.Text(props, ""),
		PhoneNumber:      f.Phone.Text(props, ""),
		InstagramID:      f.InstagramID.Text(props, ""),
		AppliedAt:        f.AppliedAt.Text(props, ""),
		Expectation:      f.Expectation.Text(props, ""),
		MarketingConsent: f.MarketingConsent.Bool(props, false),
	}
}

func parsePageTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
