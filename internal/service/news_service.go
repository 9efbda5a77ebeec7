package service

import (
	"context"

	"industrial-site-be/internal/dto"
	"industrial-site-be/internal/entity"
	"industrial-site-be/internal/repository/scope"
	"industrial-site-be/internal/repository/specification"
	"industrial-site-be/internal/repository/unitofwork"
	"industrial-site-be/pkg/events"
	"industrial-site-be/pkg/richtext"

	"github.com/google/uuid"
)

// ExcerptLength bounds the excerpt generated for news without one.
const ExcerptLength = 200

type INewsService interface {
	ContentAdmin[dto.NewsRequest, dto.NewsResponse]
}

type newsService struct {
	uowFactory       unitofwork.RepositoryFactory
	presenter        *Presenter
	publisherService IPublisherService
}

func NewNewsService(uowFactory unitofwork.RepositoryFactory, presenter *Presenter, publisherService IPublisherService) INewsService {
	return &newsService{
		uowFactory:       uowFactory,
		presenter:        presenter,
		publisherService: publisherService,
	}
}

func newsType(t string) entity.NewsType {
	if t == string(entity.NewsTypeEvent) {
		return entity.NewsTypeEvent
	}
	return entity.NewsTypeNews
}

func newsExcerpt(excerpt string, content richtext.Document) string {
	if excerpt != "" {
		return excerpt
	}
	return richtext.Excerpt(content, ExcerptLength)
}

func (s *newsService) List(ctx context.Context) ([]*dto.NewsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	articles, err := uow.NewsRepository().FindAll(ctx, specification.Scoped{Scope: scope.OrderByCreatedDesc})
	if err != nil {
		return nil, err
	}
	return s.presenter.NewsList(articles), nil
}

func (s *newsService) Get(ctx context.Context, id uuid.UUID) (*dto.NewsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	article, err := uow.NewsRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, notFound("news article")
	}
	return s.presenter.News(article), nil
}

func (s *newsService) Create(ctx context.Context, req *dto.NewsRequest) (*dto.NewsResponse, error) {
	content, err := parseDocument(req.Content, "content")
	if err != nil {
		return nil, err
	}
	slugValue, err := resolveSlug(req.Slug, req.Title)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := ensureSlugFree[entity.NewsArticle](ctx, uow.NewsRepository(), slugValue, uuid.Nil); err != nil {
		return nil, err
	}

	createdAt := utcNow()
	article := &entity.NewsArticle{
		Id:            uuid.New(),
		Title:         req.Title,
		Slug:          slugValue,
		Type:          newsType(req.Type),
		Excerpt:       newsExcerpt(req.Excerpt, content),
		Content:       content,
		FeaturedImage: req.FeaturedImage,
		EventDate:     req.EventDate,
		EventLocation: req.EventLocation,
		Published:     req.Published,
		PublishedAt:   stampPublished(req.Published, nil, createdAt),
		CreatedAt:     createdAt,
	}
	if err := uow.NewsRepository().Create(ctx, article); err != nil {
		return nil, slugWriteError(err, slugValue)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.PublishContentChanged(ctx, KindNews, article.Id, article.Slug, article.Slug, events.ActionCreated)
	return s.presenter.News(article), nil
}

func (s *newsService) Update(ctx context.Context, id uuid.UUID, req *dto.NewsRequest) (*dto.NewsResponse, error) {
	content, err := parseDocument(req.Content, "content")
	if err != nil {
		return nil, err
	}
	slugValue, err := resolveSlug(req.Slug, req.Title)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	article, err := uow.NewsRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, notFound("news article")
	}
	if err := ensureSlugFree[entity.NewsArticle](ctx, uow.NewsRepository(), slugValue, article.Id); err != nil {
		return nil, err
	}

	previousSlug := article.Slug
	article.Title = req.Title
	article.Slug = slugValue
	article.Type = newsType(req.Type)
	article.Excerpt = newsExcerpt(req.Excerpt, content)
	article.Content = content
	article.FeaturedImage = req.FeaturedImage
	article.EventDate = req.EventDate
	article.EventLocation = req.EventLocation
	article.Published = req.Published
	article.PublishedAt = stampPublished(req.Published, article.PublishedAt, utcNow())
	if err := uow.NewsRepository().Update(ctx, article); err != nil {
		return nil, slugWriteError(err, slugValue)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.PublishContentChanged(ctx, KindNews, article.Id, article.Slug, previousSlug, events.ActionUpdated)
	return s.presenter.News(article), nil
}

func (s *newsService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	article, err := uow.NewsRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if article == nil {
		return notFound("news article")
	}
	if err := uow.NewsRepository().Delete(ctx, article.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.publisherService.PublishContentChanged(ctx, KindNews, article.Id, article.Slug, article.Slug, events.ActionDeleted)
	return nil
}
