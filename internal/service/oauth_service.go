package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"industrial-site-be/internal/config"
	"industrial-site-be/internal/dto"
	"industrial-site-be/internal/entity"
	"industrial-site-be/internal/pkg/apperror"
	"industrial-site-be/internal/pkg/logger"
	"industrial-site-be/internal/repository/specification"
	"industrial-site-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

var ErrUnsupportedProvider = errors.New("unsupported provider")

type IOAuthService interface {
	// GetLoginURL returns the provider consent URL and the state the callback must echo back.
	GetLoginURL(provider string) (url string, state string, err error)
	HandleCallback(ctx context.Context, provider string, code string) (*dto.LoginResponse, error)
}

type googleUser struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

type oauthService struct {
	uowFactory  unitofwork.RepositoryFactory
	authService IAuthService
	googleConf  *oauth2.Config
	logger      logger.ILogger
}

func NewOAuthService(uowFactory unitofwork.RepositoryFactory, authService IAuthService, cfg config.OAuthConfig, log logger.ILogger) IOAuthService {
	conf := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &oauthService{
		uowFactory:  uowFactory,
		authService: authService,
		googleConf:  conf,
		logger:      log,
	}
}

func (s *oauthService) GetLoginURL(provider string) (string, string, error) {
	if provider != "google" {
		return "", "", apperror.Wrap(http.StatusBadRequest, "unsupported provider", ErrUnsupportedProvider)
	}
	if s.googleConf.ClientID == "" {
		return "", "", apperror.New(http.StatusServiceUnavailable, "google sign-in is not configured")
	}

	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", "", err
	}
	state := base64.RawURLEncoding.EncodeToString(b)
	return s.googleConf.AuthCodeURL(state), state, nil
}

func (s *oauthService) HandleCallback(ctx context.Context, provider string, code string) (*dto.LoginResponse, error) {
	if provider != "google" {
		return nil, apperror.Wrap(http.StatusBadRequest, "unsupported provider", ErrUnsupportedProvider)
	}

	token, err := s.googleConf.Exchange(ctx, code)
	if err != nil {
		s.logger.Warn("OAUTH", "Code exchange failed", map[string]interface{}{"error": err.Error()})
		return nil, apperror.Wrap(http.StatusUnauthorized, "code exchange failed", err)
	}

	profile, err := s.fetchProfile(ctx, token)
	if err != nil {
		s.logger.Error("OAUTH", "Failed getting user info", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	if !profile.VerifiedEmail {
		return nil, apperror.Unauthorized("google account email is not verified")
	}

	user, err := s.findOrCreateUser(ctx, profile)
	if err != nil {
		return nil, err
	}
	return s.authService.IssueFor(ctx, user)
}

func (s *oauthService) fetchProfile(ctx context.Context, token *oauth2.Token) (*googleUser, error) {
	resp, err := s.googleConf.Client(ctx, token).Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed getting user info: %w", err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info request returned %d", resp.StatusCode)
	}

	var profile googleUser
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *oauthService) findOrCreateUser(ctx context.Context, profile *googleUser) (*entity.User, error) {
	email := normalizeEmail(profile.Email)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}

	var avatar *string
	if profile.Picture != "" {
		avatar = &profile.Picture
	}

	if user == nil {
		user = &entity.User{
			Id:        uuid.New(),
			Email:     email,
			FullName:  profile.Name,
			AvatarURL: avatar,
			CreatedAt: utcNow(),
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return nil, err
		}
		s.logger.Info("OAUTH", "User created from Google sign-in", map[string]interface{}{"email": email})
	} else if avatar != nil {
		user.AvatarURL = avatar
		if err := uow.UserRepository().Update(ctx, user); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return user, nil
}
