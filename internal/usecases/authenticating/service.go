package authenticating

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-insights-api/infrastructure/integrator/dash"
	"github.com/vfg2006/brand-insights-api/infrastructure/repository"
	"github.com/vfg2006/brand-insights-api/internal/config"
	"github.com/vfg2006/brand-insights-api/internal/domain"
	"github.com/vfg2006/brand-insights-api/pkg/apiErrors"
)

const defaultTokenDuration = 24 * time.Hour

// CredentialVerifier confere login e senha no backend dash. As credenciais não são guardadas aqui.
type CredentialVerifier interface {
	Login(ctx context.Context, loginID, password string) (*domain.DashMember, error)
}

type Authenticator interface {
	Login(ctx context.Context, loginID, password string) (*domain.LoginResponse, error)
	GetMember(ctx context.Context, dashMemberID string) (*domain.DashMember, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	verifier   CredentialVerifier
	memberRepo repository.DashMemberRepository
	cfg        *config.Config
	now        func() time.Time
}

func NewService(verifier CredentialVerifier, memberRepo repository.DashMemberRepository, cfg *config.Config) Authenticator {
	return &Service{
		verifier:   verifier,
		memberRepo: memberRepo,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (s *Service) Login(ctx context.Context, loginID, password string) (*domain.LoginResponse, error) {
	loginID = strings.TrimSpace(loginID)
	if loginID == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Login e senha são obrigatórios")
	}

	member, err := s.verifier.Login(ctx, loginID, password)
	if err != nil {
		if errors.Is(err, dash.ErrInvalidCredentials) {
			return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Login ou senha incorretos")
		}
		logrus.WithFields(logrus.Fields{
			"login_id": loginID,
			"error":    err.Error(),
		}).Error("Erro ao autenticar no backend dash")
		return nil, NewAuthError(ErrDashUnavailable, apiErrors.ErrExternalService, err.Error())
	}

	if member.Status != domain.DashMemberStatusActive {
		return nil, NewMemberAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, member.ID, "Conta desativada")
	}

	now := s.now()
	member.LastLoginAt = &now

	if err := s.memberRepo.SaveOrUpdate(ctx, member); err != nil {
		logrus.WithFields(logrus.Fields{
			"dash_member_id": member.ID,
			"error":          err.Error(),
		}).Error("Erro ao salvar membro dash")
		return nil, NewMemberAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, member.ID, "Erro ao salvar membro")
	}

	token, err := s.generateJWT(member, now)
	if err != nil {
		return nil, NewMemberAuthError(ErrTokenGeneration, apiErrors.ErrInternalServer, member.ID, err.Error())
	}

	logrus.WithField("dash_member_id", member.ID).Info("Login realizado")

	return &domain.LoginResponse{
		Token:  token,
		Member: member,
	}, nil
}

func (s *Service) GetMember(ctx context.Context, dashMemberID string) (*domain.DashMember, error) {
	member, err := s.memberRepo.GetByID(ctx, dashMemberID)
	if err != nil {
		logrus.WithField("dash_member_id", dashMemberID).Error(err)
		return nil, NewMemberAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, dashMemberID, err.Error())
	}
	if member == nil {
		return nil, NewMemberAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, dashMemberID, "")
	}
	return member, nil
}

func (s *Service) generateJWT(member *domain.DashMember, issuedAt time.Time) (string, error) {
	duration := s.cfg.Auth.TokenDuration
	if duration <= 0 {
		duration = defaultTokenDuration
	}

	claims := domain.Claims{
		DashMemberID: member.ID,
		LoginID:      member.LoginID,
		Name:         member.Name,
		Role:         member.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   member.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.DashMemberID == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
