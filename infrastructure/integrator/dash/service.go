package dash

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-insights-api/infrastructure/integrator/dash/dashclient"
	dashdomain "github.com/vfg2006/brand-insights-api/infrastructure/integrator/dash/domain"
	"github.com/vfg2006/brand-insights-api/internal/config"
	"github.com/vfg2006/brand-insights-api/internal/domain"
)

var ErrInvalidCredentials = errors.New("credenciais recusadas pelo backend dash")

type DashIntegrator struct {
	cfg      *config.Config
	Client   dashclient.Client
	location *time.Location
}

func New(cfg *config.Config, client dashclient.Client) *DashIntegrator {
	location := cfg.ReportLocation
	if location == nil {
		location = time.UTC
	}

	return &DashIntegrator{
		cfg:      cfg,
		Client:   client,
		location: location,
	}
}

// FetchRawAdInsights busca as linhas diárias por anúncio do intervalo inclusivo [start, end]
func (s *DashIntegrator) FetchRawAdInsights(ctx context.Context, dashMemberID string, start, end time.Time) ([]domain.RawAdInsight, error) {
	startTime := start.Format(time.DateOnly)
	endTime := end.Format(time.DateOnly)

	campaigns, err := s.Client.GetAdStatisticsSummary(ctx, dashMemberID, startTime, endTime)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"dash_member_id": dashMemberID,
			"start":          startTime,
			"end":            endTime,
			"error":          err.Error(),
		}).Error("insights: failed to get ad statistics summary")
		return nil, errors.Wrap(err, "erro ao buscar resumo de estatísticas de anúncios")
	}

	adIDs := collectAdIDs(campaigns)

	details := make(map[string]dashdomain.AdDetailInfo, len(adIDs))
	if len(adIDs) > 0 {
		infos, err := s.Client.GetAdDetailInfo(ctx, adIDs, endTime)
		if err != nil {
			// sem detalhes os anúncios ficam sem criativo, mas as métricas continuam válidas
			logrus.WithFields(logrus.Fields{
				"dash_member_id": dashMemberID,
				"ads":            len(adIDs),
				"error":          err.Error(),
			}).Warn("insights: failed to get ad detail info")
		}
		for _, info := range infos {
			details[info.AdID] = info
		}
	}

	rows := NormalizeStatistics(campaigns, details, s.location)
	for i := range rows {
		rows[i].DashMemberID = dashMemberID
	}

	logrus.WithFields(logrus.Fields{
		"dash_member_id": dashMemberID,
		"campaigns":      len(campaigns),
		"ads":            len(adIDs),
		"rows":           len(rows),
	}).Debug("insights: successfully normalized ad statistics")

	return rows, nil
}

// Login valida as credenciais no backend dash e devolve o membro autenticado
func (s *DashIntegrator) Login(ctx context.Context, loginID, password string) (*domain.DashMember, error) {
	member, err := s.Client.Login(ctx, loginID, password)
	if err != nil {
		var errResp *dashdomain.ErrorResponse
		if errors.As(err, &errResp) && errResp.IsUnauthorized() {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, "erro ao autenticar no backend dash")
	}

	if member == nil || member.ID == "" {
		return nil, ErrInvalidCredentials
	}

	status := domain.DashMemberStatus(strings.ToUpper(member.Status))
	if status == "" {
		status = domain.DashMemberStatusActive
	}

	loginIDFromDash := member.UserID
	if loginIDFromDash == "" {
		loginIDFromDash = loginID
	}

	return &domain.DashMember{
		ID:      member.ID,
		LoginID: loginIDFromDash,
		Name:    member.Name,
		Role:    strings.ToLower(member.Role),
		Status:  status,
	}, nil
}

// SendCampaignResults repassa os posts coletados para o backend dash como resultados da campanha
func (s *DashIntegrator) SendCampaignResults(ctx context.Context, dashMemberID, campaignID string, posts []domain.ScrapedPost, day time.Time) error {
	results := MapCampaignResults(dashMemberID, campaignID, posts, day.In(s.location))

	if err := s.Client.CreateCampaignResults(ctx, results); err != nil {
		logrus.WithFields(logrus.Fields{
			"dash_member_id": dashMemberID,
			"campaign_id":    campaignID,
			"posts":          len(posts),
			"error":          err.Error(),
		}).Error("Erro ao enviar resultados da campanha ao backend dash")
		return errors.Wrap(err, "erro ao enviar resultados da campanha")
	}

	return nil
}

func MapCampaignResults(dashMemberID, campaignID string, posts []domain.ScrapedPost, day time.Time) []dashdomain.CampaignResult {
	results := make([]dashdomain.CampaignResult, 0, len(posts))
	for _, p := range posts {
		results = append(results, dashdomain.CampaignResult{
			DashMemberID:       dashMemberID,
			CampaignID:         campaignID,
			Time:               day.Format(time.DateOnly),
			PostID:             p.PostID,
			PostType:           p.PostType,
			ShortCode:          p.ShortCode,
			PostURL:            p.PostURL,
			Caption:            p.Caption,
			LikesCount:         p.LikesCount,
			CommentsCount:      p.CommentsCount,
			VideoPlayCount:     p.VideoPlayCount,
			IgPlayCount:        p.IgPlayCount,
			ReshareCount:       p.ReshareCount,
			VideoDuration:      p.VideoDuration,
			PostedAt:           strings.TrimSuffix(p.PostedAt, "Z"),
			OwnerID:            p.OwnerID,
			OwnerUsername:      p.OwnerUsername,
			OwnerFullName:      p.OwnerFullName,
			OwnerProfilePicURL: p.OwnerProfilePicURL,
			DisplayURL:         p.DisplayURL,
			VideoURL:           p.VideoURL,
			Images:             p.Images,
			Hashtags:           p.Hashtags,
			Mentions:           p.Mentions,
			TaggedUsers:        p.TaggedUsers,
			MusicInfo:          p.MusicInfo,
			CoauthorProducers:  p.CoauthorProducers,
			ChildPosts:         p.ChildPosts,
		})
	}
	return results
}

func collectAdIDs(campaigns []dashdomain.AdStatisticsCampaign) []string {
	seen := make(map[string]bool)
	ids := make([]string, 0)
	for _, c := range campaigns {
		for _, adSet := range c.DashAdSetResponses {
			for _, r := range adSet.Responses {
				if r.AdID == "" || seen[r.AdID] {
					continue
				}
				seen[r.AdID] = true
				ids = append(ids, r.AdID)
			}
		}
	}
	return ids
}
