package profiling

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	dashdomain "github.com/vfg2006/brand-insights-api/infrastructure/integrator/dash/domain"
	"github.com/vfg2006/brand-insights-api/internal/domain"
	"github.com/vfg2006/brand-insights-api/pkg/apiErrors"
)

type Service struct {
	source ProfileSource
}

func NewService(source ProfileSource) ProfileService {
	return &Service{
		source: source,
	}
}

type profileData struct {
	insights         []dashdomain.MemberInsight
	followers        []dashdomain.Follower
	followerInsights []dashdomain.FollowerInsight
	media            []dashdomain.MediaResponse
}

// GetProfileView busca os quatro recursos do perfil em paralelo e monta a visão.
// Sem histórico de seguidores a visão não pode ser montada. Sem dados demográficos
// a visão é retornada com Demographic nulo.
func (s *Service) GetProfileView(ctx context.Context, dashMemberID string) (*domain.ProfileView, error) {
	if dashMemberID == "" {
		return nil, NewProfileError(ErrMemberRequired, apiErrors.ErrMissingRequiredData, "")
	}

	data, err := s.fetch(ctx, dashMemberID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"dash_member_id": dashMemberID,
			"error":          err.Error(),
		}).Error("Erro ao buscar dados de perfil")
		return nil, NewProfileError(ErrFetchProfile, apiErrors.ErrExternalService, err.Error())
	}

	insight, err := MapProfileInsight(data.insights, data.followers)
	if err != nil {
		return nil, NewProfileError(err, apiErrors.ErrNotFound, dashMemberID)
	}

	demographic, err := MapFollowerDemographic(data.followerInsights)
	if err != nil {
		logrus.WithField("dash_member_id", dashMemberID).Warn("Perfil sem dados demográficos de seguidores")
	}

	return &domain.ProfileView{
		Insight:     insight,
		Daily:       MapDailyProfileData(data.followers, data.insights),
		Contents:    MapContentItems(data.media),
		Demographic: demographic,
	}, nil
}

func (s *Service) fetch(ctx context.Context, dashMemberID string) (*profileData, error) {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		data     profileData
	)

	setErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	wg.Add(4)

	go func() {
		defer wg.Done()
		insights, err := s.source.GetMemberInsights(ctx, dashMemberID)
		if err != nil {
			setErr(errors.Wrap(err, "member insights"))
			return
		}
		data.insights = insights
	}()

	go func() {
		defer wg.Done()
		followers, err := s.source.GetFollowers(ctx, dashMemberID)
		if err != nil {
			setErr(errors.Wrap(err, "followers"))
			return
		}
		data.followers = followers
	}()

	go func() {
		defer wg.Done()
		followerInsights, err := s.source.GetFollowerInsights(ctx, dashMemberID)
		if err != nil {
			setErr(errors.Wrap(err, "follower insights"))
			return
		}
		data.followerInsights = followerInsights
	}()

	go func() {
		defer wg.Done()
		media, err := s.source.GetMedia(ctx, dashMemberID)
		if err != nil {
			setErr(errors.Wrap(err, "media"))
			return
		}
		data.media = media
	}()

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return &data, nil
}
