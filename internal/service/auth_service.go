package service

import (
	"context"
	"time"

	"industrial-site-be/internal/dto"
	"industrial-site-be/internal/entity"
	"industrial-site-be/internal/pkg/apperror"
	"industrial-site-be/internal/pkg/logger"
	"industrial-site-be/internal/pkg/serverutils"
	"industrial-site-be/internal/repository/specification"
	"industrial-site-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Session(ctx context.Context, token string) (*dto.SessionResponse, error)
	CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*dto.UserDTO, error)
	// IssueFor creates a session for an already authenticated user.
	IssueFor(ctx context.Context, user *entity.User) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   *serverutils.SessionIssuer
	allowList  IApprovedEmailService
	logger     logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, sessions *serverutils.SessionIssuer, allowList IApprovedEmailService, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		sessions:   sessions,
		allowList:  allowList,
		logger:     log,
	}
}

func toUserDTO(user *entity.User) dto.UserDTO {
	res := dto.UserDTO{
		Id:       user.Id,
		Email:    user.Email,
		FullName: user.FullName,
	}
	if user.AvatarURL != nil {
		res.AvatarURL = *user.AvatarURL
	}
	return res
}

func redirectFor(approved bool) string {
	if approved {
		return serverutils.AdminHomePath
	}
	return serverutils.UnauthorizedLoginPath
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	// Same message for unknown users, OAuth-only users and wrong passwords.
	if user == nil || user.PasswordHash == nil {
		return nil, apperror.Unauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("AUTH", "Failed login attempt", map[string]interface{}{"email": user.Email})
		return nil, apperror.Unauthorized("invalid credentials")
	}

	return s.IssueFor(ctx, user)
}

func (s *authService) IssueFor(ctx context.Context, user *entity.User) (*dto.LoginResponse, error) {
	token, expiresAt, err := s.sessions.Issue(user.Id.String(), user.Email)
	if err != nil {
		return nil, err
	}
	approved, err := s.allowList.IsApproved(ctx, user.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Info("AUTH", "User signed in", map[string]interface{}{
		"email":    user.Email,
		"approved": approved,
	})
	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Approved:    approved,
		Redirect:    redirectFor(approved),
		User:        toUserDTO(user),
	}, nil
}

func (s *authService) Session(ctx context.Context, token string) (*dto.SessionResponse, error) {
	if token == "" {
		return &dto.SessionResponse{Redirect: serverutils.LoginPath}, nil
	}
	claims, err := s.sessions.Parse(token)
	if err != nil {
		return &dto.SessionResponse{Redirect: serverutils.LoginPath}, nil
	}

	approved, err := s.allowList.IsApproved(ctx, claims.Email)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{
		Authenticated: true,
		Approved:      approved,
		Email:         claims.Email,
		Redirect:      redirectFor(approved),
	}, nil
}

func (s *authService) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*dto.UserDTO, error) {
	email := normalizeEmail(req.Email)
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}

	var user *entity.User
	if existing != nil {
		// Re-running create-admin resets the password.
		existing.PasswordHash = &hashStr
		existing.FullName = req.FullName
		if err := uow.UserRepository().Update(ctx, existing); err != nil {
			return nil, err
		}
		user = existing
	} else {
		user = &entity.User{
			Id:           uuid.New(),
			Email:        email,
			PasswordHash: &hashStr,
			FullName:     req.FullName,
			CreatedAt:    time.Now().UTC(),
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return nil, err
		}
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	res := toUserDTO(user)
	return &res, nil
}
