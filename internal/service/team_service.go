package service

import (
	"context"

	"industrial-site-be/internal/dto"
	"industrial-site-be/internal/entity"
	"industrial-site-be/internal/repository/scope"
	"industrial-site-be/internal/repository/specification"
	"industrial-site-be/internal/repository/unitofwork"
	"industrial-site-be/pkg/events"

	"github.com/google/uuid"
)

type ITeamService interface {
	ContentAdmin[dto.TeamMemberRequest, dto.TeamMemberResponse]
}

type teamService struct {
	uowFactory       unitofwork.RepositoryFactory
	presenter        *Presenter
	publisherService IPublisherService
}

func NewTeamService(uowFactory unitofwork.RepositoryFactory, presenter *Presenter, publisherService IPublisherService) ITeamService {
	return &teamService{
		uowFactory:       uowFactory,
		presenter:        presenter,
		publisherService: publisherService,
	}
}

func (s *teamService) List(ctx context.Context) ([]*dto.TeamMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	members, err := uow.TeamMemberRepository().FindAll(ctx, specification.Scoped{Scope: scope.OrderByDisplayOrder})
	if err != nil {
		return nil, err
	}
	return s.presenter.TeamMembers(members), nil
}

func (s *teamService) Get(ctx context.Context, id uuid.UUID) (*dto.TeamMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	member, err := uow.TeamMemberRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, notFound("team member")
	}
	return s.presenter.TeamMember(member), nil
}

func applyTeamMember(m *entity.TeamMember, req *dto.TeamMemberRequest) {
	m.Name = req.Name
	m.Title = req.Title
	m.Bio = req.Bio
	m.PhotoURL = req.PhotoURL
	m.Email = req.Email
	m.Phone = req.Phone
	m.DisplayOrder = req.DisplayOrder
	m.Published = req.Published
}

func (s *teamService) Create(ctx context.Context, req *dto.TeamMemberRequest) (*dto.TeamMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member := &entity.TeamMember{Id: uuid.New(), CreatedAt: utcNow()}
	applyTeamMember(member, req)
	if err := uow.TeamMemberRepository().Create(ctx, member); err != nil {
		return nil, err
	}

	s.publisherService.PublishContentChanged(ctx, KindTeamMember, member.Id, "", "", events.ActionCreated)
	return s.presenter.TeamMember(member), nil
}

func (s *teamService) Update(ctx context.Context, id uuid.UUID, req *dto.TeamMemberRequest) (*dto.TeamMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	member, err := uow.TeamMemberRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, notFound("team member")
	}
	applyTeamMember(member, req)
	if err := uow.TeamMemberRepository().Update(ctx, member); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.PublishContentChanged(ctx, KindTeamMember, member.Id, "", "", events.ActionUpdated)
	return s.presenter.TeamMember(member), nil
}

func (s *teamService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	member, err := uow.TeamMemberRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if member == nil {
		return notFound("team member")
	}
	if err := uow.TeamMemberRepository().Delete(ctx, member.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.publisherService.PublishContentChanged(ctx, KindTeamMember, member.Id, "", "", events.ActionDeleted)
	return nil
}
