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

type ILocationService interface {
	ContentAdmin[dto.LocationRequest, dto.LocationResponse]
}

type locationService struct {
	uowFactory       unitofwork.RepositoryFactory
	presenter        *Presenter
	publisherService IPublisherService
}

func NewLocationService(uowFactory unitofwork.RepositoryFactory, presenter *Presenter, publisherService IPublisherService) ILocationService {
	return &locationService{
		uowFactory:       uowFactory,
		presenter:        presenter,
		publisherService: publisherService,
	}
}

func (s *locationService) List(ctx context.Context) ([]*dto.LocationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	locations, err := uow.LocationRepository().FindAll(ctx, specification.Scoped{Scope: scope.HeadquartersFirst})
	if err != nil {
		return nil, err
	}
	return s.presenter.Locations(locations), nil
}

func (s *locationService) Get(ctx context.Context, id uuid.UUID) (*dto.LocationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	location, err := uow.LocationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, notFound("location")
	}
	return s.presenter.Location(location), nil
}

func applyLocation(l *entity.Location, req *dto.LocationRequest) {
	l.Name = req.Name
	l.Address = req.Address
	l.City = req.City
	l.State = req.State
	l.Zip = req.Zip
	l.Phone = req.Phone
	l.Email = req.Email
	l.IsHeadquarters = req.IsHeadquarters
	l.Lat = req.Lat
	l.Lng = req.Lng
	l.Published = req.Published
}

func (s *locationService) Create(ctx context.Context, req *dto.LocationRequest) (*dto.LocationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	location := &entity.Location{Id: uuid.New(), CreatedAt: utcNow()}
	applyLocation(location, req)
	if err := uow.LocationRepository().Create(ctx, location); err != nil {
		return nil, err
	}

	s.publisherService.PublishContentChanged(ctx, KindLocation, location.Id, "", "", events.ActionCreated)
	return s.presenter.Location(location), nil
}

func (s *locationService) Update(ctx context.Context, id uuid.UUID, req *dto.LocationRequest) (*dto.LocationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	location, err := uow.LocationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, notFound("location")
	}
	applyLocation(location, req)
	if err := uow.LocationRepository().Update(ctx, location); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.PublishContentChanged(ctx, KindLocation, location.Id, "", "", events.ActionUpdated)
	return s.presenter.Location(location), nil
}

func (s *locationService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	location, err := uow.LocationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if location == nil {
		return notFound("location")
	}
	if err := uow.LocationRepository().Delete(ctx, location.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.publisherService.PublishContentChanged(ctx, KindLocation, location.Id, "", "", events.ActionDeleted)
	return nil
}
