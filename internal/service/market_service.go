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

type IMarketService interface {
	ContentAdmin[dto.MarketRequest, dto.MarketResponse]
}

type marketService struct {
	uowFactory       unitofwork.RepositoryFactory
	presenter        *Presenter
	publisherService IPublisherService
}

func NewMarketService(uowFactory unitofwork.RepositoryFactory, presenter *Presenter, publisherService IPublisherService) IMarketService {
	return &marketService{
		uowFactory:       uowFactory,
		presenter:        presenter,
		publisherService: publisherService,
	}
}

func (s *marketService) List(ctx context.Context) ([]*dto.MarketResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	markets, err := uow.MarketRepository().FindAll(ctx, specification.Scoped{Scope: scope.OrderByDisplayOrder})
	if err != nil {
		return nil, err
	}
	return s.presenter.Markets(markets), nil
}

func (s *marketService) Get(ctx context.Context, id uuid.UUID) (*dto.MarketResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	market, err := uow.MarketRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if market == nil {
		return nil, notFound("market")
	}
	return s.presenter.Market(market), nil
}

func (s *marketService) Create(ctx context.Context, req *dto.MarketRequest) (*dto.MarketResponse, error) {
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

	if err := ensureSlugFree[entity.Market](ctx, uow.MarketRepository(), slugValue, uuid.Nil); err != nil {
		return nil, err
	}

	market := &entity.Market{
		Id:           uuid.New(),
		Name:         req.Name,
		Slug:         slugValue,
		Description:  description,
		IconURL:      req.IconURL,
		HeroImageURL: req.HeroImageURL,
		DisplayOrder: req.DisplayOrder,
		Published:    req.Published,
		CreatedAt:    utcNow(),
	}
	if err := uow.MarketRepository().Create(ctx, market); err != nil {
		return nil, slugWriteError(err, slugValue)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.PublishContentChanged(ctx, KindMarket, market.Id, market.Slug, market.Slug, events.ActionCreated)
	return s.presenter.Market(market), nil
}

func (s *marketService) Update(ctx context.Context, id uuid.UUID, req *dto.MarketRequest) (*dto.MarketResponse, error) {
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

	market, err := uow.MarketRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if market == nil {
		return nil, notFound("market")
	}
	if err := ensureSlugFree[entity.Market](ctx, uow.MarketRepository(), slugValue, market.Id); err != nil {
		return nil, err
	}

	previousSlug := market.Slug
	market.Name = req.Name
	market.Slug = slugValue
	market.Description = description
	market.IconURL = req.IconURL
	market.HeroImageURL = req.HeroImageURL
	market.DisplayOrder = req.DisplayOrder
	market.Published = req.Published
	if err := uow.MarketRepository().Update(ctx, market); err != nil {
		return nil, slugWriteError(err, slugValue)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.PublishContentChanged(ctx, KindMarket, market.Id, market.Slug, previousSlug, events.ActionUpdated)
	return s.presenter.Market(market), nil
}

func (s *marketService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	market, err := uow.MarketRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if market == nil {
		return notFound("market")
	}
	if err := uow.MarketRepository().Delete(ctx, market.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.publisherService.PublishContentChanged(ctx, KindMarket, market.Id, market.Slug, market.Slug, events.ActionDeleted)
	return nil
}
