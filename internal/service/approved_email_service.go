package service

import (
	"context"
	"fmt"
	"strings"

	"industrial-site-be/internal/dto"
	"industrial-site-be/internal/entity"
	"industrial-site-be/internal/pkg/apperror"
	"industrial-site-be/internal/pkg/logger"
	"industrial-site-be/internal/repository/memory"
	"industrial-site-be/internal/repository/scope"
	"industrial-site-be/internal/repository/specification"
	"industrial-site-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// IApprovedEmailService manages the admin allow-list. A signed-in user reaches the admin area
// only when their email is on it.
type IApprovedEmailService interface {
	IsApproved(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*dto.ApprovedEmailResponse, error)
	Approve(ctx context.Context, req *dto.ApprovedEmailRequest) (*dto.ApprovedEmailResponse, error)
	Revoke(ctx context.Context, id uuid.UUID) error
	RevokeByEmail(ctx context.Context, email string) error
}

// AccessNotifier reaches the open admin sessions of a user whose access was revoked.
type AccessNotifier interface {
	NotifyAccessRevoked(userID uuid.UUID)
}

type approvedEmailService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.AllowListCache
	notifier   AccessNotifier
	logger     logger.ILogger
}

// NewApprovedEmailService builds the allow-list service. notifier may be nil.
func NewApprovedEmailService(uowFactory unitofwork.RepositoryFactory, cache *memory.AllowListCache, notifier AccessNotifier, log logger.ILogger) IApprovedEmailService {
	return &approvedEmailService{
		uowFactory: uowFactory,
		cache:      cache,
		notifier:   notifier,
		logger:     log,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *approvedEmailService) IsApproved(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" {
		return false, nil
	}
	if approved, found := s.cache.Get(email); found {
		return approved, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.ApprovedEmailRepository().Count(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return false, err
	}
	approved := count > 0
	s.cache.Save(email, approved)
	return approved, nil
}

func toApprovedEmailResponse(e *entity.ApprovedEmail) *dto.ApprovedEmailResponse {
	return &dto.ApprovedEmailResponse{
		Id:        e.Id,
		Email:     e.Email,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}

func (s *approvedEmailService) List(ctx context.Context) ([]*dto.ApprovedEmailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	emails, err := uow.ApprovedEmailRepository().FindAll(ctx, specification.Scoped{Scope: scope.OrderByCreatedDesc})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ApprovedEmailResponse, 0, len(emails))
	for _, e := range emails {
		res = append(res, toApprovedEmailResponse(e))
	}
	return res, nil
}

func (s *approvedEmailService) Approve(ctx context.Context, req *dto.ApprovedEmailRequest) (*dto.ApprovedEmailResponse, error) {
	email := normalizeEmail(req.Email)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	existing, err := uow.ApprovedEmailRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict(fmt.Sprintf("%s is already approved", email))
	}

	approved := &entity.ApprovedEmail{
		Id:        uuid.New(),
		Email:     email,
		Note:      req.Note,
		CreatedAt: utcNow(),
	}
	if err := uow.ApprovedEmailRepository().Create(ctx, approved); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.cache.Delete(email)
	s.logger.Info("AUTH", "Email approved for admin access", map[string]interface{}{"email": email})
	return toApprovedEmailResponse(approved), nil
}

func (s *approvedEmailService) Revoke(ctx context.Context, id uuid.UUID) error {
	return s.revoke(ctx, specification.ByID{ID: id})
}

func (s *approvedEmailService) RevokeByEmail(ctx context.Context, email string) error {
	return s.revoke(ctx, specification.ByEmail{Email: normalizeEmail(email)})
}

func (s *approvedEmailService) revoke(ctx context.Context, spec specification.Specification) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	approved, err := uow.ApprovedEmailRepository().FindOne(ctx, spec)
	if err != nil {
		return err
	}
	if approved == nil {
		return notFound("approved email")
	}
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: approved.Email})
	if err != nil {
		return err
	}
	if err := uow.ApprovedEmailRepository().Delete(ctx, approved.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.cache.Delete(approved.Email)
	if user != nil && s.notifier != nil {
		s.notifier.NotifyAccessRevoked(user.Id)
	}
	s.logger.Info("AUTH", "Email removed from admin allow-list", map[string]interface{}{"email": approved.Email})
	return nil
}
