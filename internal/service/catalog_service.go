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

// ICatalogService manages the services offered by the company and their sub-services.
type ICatalogService interface {
	ContentAdmin[dto.ServiceRequest, dto.ServiceDetailResponse]

	ListSubServices(ctx context.Context, serviceId uuid.UUID) ([]*dto.SubServiceResponse, error)
	CreateSubService(ctx context.Context, serviceId uuid.UUID, req *dto.SubServiceRequest) (*dto.SubServiceResponse, error)
	UpdateSubService(ctx context.Context, serviceId, id uuid.UUID, req *dto.SubServiceRequest) (*dto.SubServiceResponse, error)
	DeleteSubService(ctx context.Context, serviceId, id uuid.UUID) error
}

type catalogService struct {
	uowFactory       unitofwork.RepositoryFactory
	presenter        *Presenter
	publisherService IPublisherService
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, presenter *Presenter, publisherService IPublisherService) ICatalogService {
	return &catalogService{
		uowFactory:       uowFactory,
		presenter:        presenter,
		publisherService: publisherService,
	}
}

func (s *catalogService) List(ctx context.Context) ([]*dto.ServiceDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	services, err := uow.ServiceRepository().FindAll(ctx, specification.Scoped{Scope: scope.OrderByDisplayOrder})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ServiceDetailResponse, 0, len(services))
	for _, svc := range services {
		res = append(res, &dto.ServiceDetailResponse{ServiceResponse: *s.presenter.Service(svc)})
	}
	return res, nil
}

func (s *catalogService) Get(ctx context.Context, id uuid.UUID) (*dto.ServiceDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	svc, err := uow.ServiceRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, notFound("service")
	}

	subs, err := uow.SubServiceRepository().FindAll(ctx,
		specification.ByServiceID{ServiceID: svc.Id},
		specification.Scoped{Scope: scope.OrderByDisplayOrder},
	)
	if err != nil {
		return nil, err
	}

	return &dto.ServiceDetailResponse{
		ServiceResponse: *s.presenter.Service(svc),
		SubServices:     s.presenter.SubServices(subs),
	}, nil
}

func (s *catalogService) Create(ctx context.Context, req *dto.ServiceRequest) (*dto.ServiceDetailResponse, error) {
	description, err := parseDocument(req.Description, "description")
	if err != nil {
		return nil, err
	}
	slugValue, err := resolveSlug(req.Slug, req.Name)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := ensureSlugFree[entity.Service](ctx, uow.ServiceRepository(), slugValue, uuid.Nil); err != nil {
		return nil, err
	}

	svc := &entity.Service{
		Id:           uuid.New(),
		Name:         req.Name,
		Slug:         slugValue,
		Tagline:      req.Tagline,
		Description:  description,
		Icon:         req.Icon,
		HeroImageURL: req.HeroImageURL,
		DisplayOrder: req.DisplayOrder,
		Published:    req.Published,
		CreatedAt:    utcNow(),
	}
	if err := uow.ServiceRepository().Create(ctx, svc); err != nil {
		return nil, slugWriteError(err, slugValue)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.PublishContentChanged(ctx, KindService, svc.Id, svc.Slug, svc.Slug, events.ActionCreated)
	return &dto.ServiceDetailResponse{
		ServiceResponse: *s.presenter.Service(svc),
		SubServices:     []*dto.SubServiceResponse{},
	}, nil
}

func (s *catalogService) Update(ctx context.Context, id uuid.UUID, req *dto.ServiceRequest) (*dto.ServiceDetailResponse, error) {
	description, err := parseDocument(req.Description, "description")
	if err != nil {
		return nil, err
	}
	slugValue, err := resolveSlug(req.Slug, req.Name)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	svc, err := uow.ServiceRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, notFound("service")
	}
	if err := ensureSlugFree[entity.Service](ctx, uow.ServiceRepository(), slugValue, svc.Id); err != nil {
		return nil, err
	}

	previousSlug := svc.Slug
	svc.Name = req.Name
	svc.Slug = slugValue
	svc.Tagline = req.Tagline
	svc.Description = description
	svc.Icon = req.Icon
	svc.HeroImageURL = req.HeroImageURL
	svc.DisplayOrder = req.DisplayOrder
	svc.Published = req.Published
	if err := uow.ServiceRepository().Update(ctx, svc); err != nil {
		return nil, slugWriteError(err, slugValue)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.PublishContentChanged(ctx, KindService, svc.Id, svc.Slug, previousSlug, events.ActionUpdated)
	return s.Get(ctx, svc.Id)
}

func (s *catalogService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	svc, err := uow.ServiceRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if svc == nil {
		return notFound("service")
	}
	if err := uow.SubServiceRepository().DeleteByServiceId(ctx, svc.Id); err != nil {
		return err
	}
	if err := uow.ServiceRepository().Delete(ctx, svc.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.publisherService.PublishContentChanged(ctx, KindService, svc.Id, svc.Slug, svc.Slug, events.ActionDeleted)
	return nil
}

func (s *catalogService) findService(ctx context.Context, uow unitofwork.UnitOfWork, serviceId uuid.UUID) (*entity.Service, error) {
	svc, err := uow.ServiceRepository().FindOne(ctx, specification.ByID{ID: serviceId})
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, notFound("service")
	}
	return svc, nil
}

func (s *catalogService) ListSubServices(ctx context.Context, serviceId uuid.UUID) ([]*dto.SubServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.findService(ctx, uow, serviceId); err != nil {
		return nil, err
	}
	subs, err := uow.SubServiceRepository().FindAll(ctx,
		specification.ByServiceID{ServiceID: serviceId},
		specification.Scoped{Scope: scope.OrderByDisplayOrder},
	)
	if err != nil {
		return nil, err
	}
	return s.presenter.SubServices(subs), nil
}

func (s *catalogService) CreateSubService(ctx context.Context, serviceId uuid.UUID, req *dto.SubServiceRequest) (*dto.SubServiceResponse, error) {
	description, err := parseDocument(req.Description, "description")
	if err != nil {
		return nil, err
	}
	slugValue, err := resolveSlug(req.Slug, req.Name)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	svc, err := s.findService(ctx, uow, serviceId)
	if err != nil {
		return nil, err
	}
	// Sub-service slugs only need to be unique within their service.
	if err := ensureSlugFree[entity.SubService](ctx, uow.SubServiceRepository(), slugValue, uuid.Nil,
		specification.ByServiceID{ServiceID: svc.Id}); err != nil {
		return nil, err
	}

	sub := &entity.SubService{
		Id:           uuid.New(),
		ServiceId:    svc.Id,
		Name:         req.Name,
		Slug:         slugValue,
		Description:  description,
		Icon:         req.Icon,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
		Published:    req.Published,
		CreatedAt:    utcNow(),
	}
	if err := uow.SubServiceRepository().Create(ctx, sub); err != nil {
		return nil, slugWriteError(err, slugValue)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// The parent's public page lists its sub-services.
	s.publisherService.PublishContentChanged(ctx, KindService, svc.Id, svc.Slug, svc.Slug, events.ActionUpdated)
	return s.presenter.SubService(sub), nil
}

func (s *catalogService) UpdateSubService(ctx context.Context, serviceId, id uuid.UUID, req *dto.SubServiceRequest) (*dto.SubServiceResponse, error) {
	description, err := parseDocument(req.Description, "description")
	if err != nil {
		return nil, err
	}
	slugValue, err := resolveSlug(req.Slug, req.Name)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	svc, err := s.findService(ctx, uow, serviceId)
	if err != nil {
		return nil, err
	}
	sub, err := uow.SubServiceRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByServiceID{ServiceID: svc.Id},
	)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, notFound("sub-service")
	}
	if err := ensureSlugFree[entity.SubService](ctx, uow.SubServiceRepository(), slugValue, sub.Id,
		specification.ByServiceID{ServiceID: svc.Id}); err != nil {
		return nil, err
	}

	sub.Name = req.Name
	sub.Slug = slugValue
	sub.Description = description
	sub.Icon = req.Icon
	sub.ImageURL = req.ImageURL
	sub.DisplayOrder = req.DisplayOrder
	sub.Published = req.Published
	if err := uow.SubServiceRepository().Update(ctx, sub); err != nil {
		return nil, slugWriteError(err, slugValue)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.PublishContentChanged(ctx, KindService, svc.Id, svc.Slug, svc.Slug, events.ActionUpdated)
	return s.presenter.SubService(sub), nil
}

func (s *catalogService) DeleteSubService(ctx context.Context, serviceId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	svc, err := s.findService(ctx, uow, serviceId)
	if err != nil {
		return err
	}
	sub, err := uow.SubServiceRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByServiceID{ServiceID: svc.Id},
	)
	if err != nil {
		return err
	}
	if sub == nil {
		return notFound("sub-service")
	}
	if err := uow.SubServiceRepository().Delete(ctx, sub.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.publisherService.PublishContentChanged(ctx, KindService, svc.Id, svc.Slug, svc.Slug, events.ActionUpdated)
	return nil
}
