package service

import (
	"context"
	"strings"

	"industrial-site-be/internal/dto"
	"industrial-site-be/internal/entity"
	"industrial-site-be/internal/repository/scope"
	"industrial-site-be/internal/repository/specification"
	"industrial-site-be/internal/repository/unitofwork"
	"industrial-site-be/pkg/events"

	"github.com/google/uuid"
)

type IProjectService interface {
	ContentAdmin[dto.ProjectRequest, dto.ProjectDetailResponse]

	AddImage(ctx context.Context, projectId uuid.UUID, req *dto.ProjectImageRequest) (*dto.ProjectImageResponse, error)
	RemoveImage(ctx context.Context, projectId, imageId uuid.UUID) error
}

type projectService struct {
	uowFactory       unitofwork.RepositoryFactory
	presenter        *Presenter
	publisherService IPublisherService
}

func NewProjectService(uowFactory unitofwork.RepositoryFactory, presenter *Presenter, publisherService IPublisherService) IProjectService {
	return &projectService{
		uowFactory:       uowFactory,
		presenter:        presenter,
		publisherService: publisherService,
	}
}

func (s *projectService) List(ctx context.Context) ([]*dto.ProjectDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	projects, err := uow.ProjectRepository().FindAll(ctx, specification.Scoped{Scope: scope.OrderByCreatedDesc})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ProjectDetailResponse, 0, len(projects))
	for _, p := range projects {
		res = append(res, &dto.ProjectDetailResponse{ProjectResponse: *s.presenter.Project(p)})
	}
	return res, nil
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*dto.ProjectDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, notFound("project")
	}

	images, err := uow.ProjectImageRepository().FindAll(ctx,
		specification.ByProjectID{ProjectID: project.Id},
		specification.Scoped{Scope: scope.OrderByDisplayOrder},
	)
	if err != nil {
		return nil, err
	}

	return &dto.ProjectDetailResponse{
		ProjectResponse: *s.presenter.Project(project),
		Images:          s.presenter.ProjectImages(images),
	}, nil
}

func cleanServicesUsed(values []string) []string {
	res := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			res = append(res, v)
		}
	}
	return res
}

func (s *projectService) Create(ctx context.Context, req *dto.ProjectRequest) (*dto.ProjectDetailResponse, error) {
	description, err := parseDocument(req.Description, "description")
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

	if err := ensureSlugFree[entity.Project](ctx, uow.ProjectRepository(), slugValue, uuid.Nil); err != nil {
		return nil, err
	}

	createdAt := utcNow()
	project := &entity.Project{
		Id:            uuid.New(),
		Title:         req.Title,
		Slug:          slugValue,
		Client:        req.Client,
		Location:      req.Location,
		Description:   description,
		Excerpt:       req.Excerpt,
		FeaturedImage: req.FeaturedImage,
		ServicesUsed:  cleanServicesUsed(req.ServicesUsed),
		Market:        req.Market,
		Featured:      req.Featured,
		Published:     req.Published,
		PublishedAt:   stampPublished(req.Published, nil, createdAt),
		CreatedAt:     createdAt,
	}
	if err := uow.ProjectRepository().Create(ctx, project); err != nil {
		return nil, slugWriteError(err, slugValue)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.PublishContentChanged(ctx, KindProject, project.Id, project.Slug, project.Slug, events.ActionCreated)
	return &dto.ProjectDetailResponse{
		ProjectResponse: *s.presenter.Project(project),
		Images:          []*dto.ProjectImageResponse{},
	}, nil
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, req *dto.ProjectRequest) (*dto.ProjectDetailResponse, error) {
	description, err := parseDocument(req.Description, "description")
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

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, notFound("project")
	}
	if err := ensureSlugFree[entity.Project](ctx, uow.ProjectRepository(), slugValue, project.Id); err != nil {
		return nil, err
	}

	previousSlug := project.Slug
	project.Title = req.Title
	project.Slug = slugValue
	project.Client = req.Client
	project.Location = req.Location
	project.Description = description
	project.Excerpt = req.Excerpt
	project.FeaturedImage = req.FeaturedImage
	project.ServicesUsed = cleanServicesUsed(req.ServicesUsed)
	project.Market = req.Market
	project.Featured = req.Featured
	project.Published = req.Published
	project.PublishedAt = stampPublished(req.Published, project.PublishedAt, utcNow())
	if err := uow.ProjectRepository().Update(ctx, project); err != nil {
		return nil, slugWriteError(err, slugValue)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.PublishContentChanged(ctx, KindProject, project.Id, project.Slug, previousSlug, events.ActionUpdated)
	return s.Get(ctx, project.Id)
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if project == nil {
		return notFound("project")
	}
	if err := uow.ProjectImageRepository().DeleteByProjectId(ctx, project.Id); err != nil {
		return err
	}
	if err := uow.ProjectRepository().Delete(ctx, project.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.publisherService.PublishContentChanged(ctx, KindProject, project.Id, project.Slug, project.Slug, events.ActionDeleted)
	return nil
}

func (s *projectService) AddImage(ctx context.Context, projectId uuid.UUID, req *dto.ProjectImageRequest) (*dto.ProjectImageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: projectId})
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, notFound("project")
	}

	image := &entity.ProjectImage{
		Id:           uuid.New(),
		ProjectId:    project.Id,
		ImageURL:     req.ImageURL,
		Caption:      req.Caption,
		DisplayOrder: req.DisplayOrder,
		CreatedAt:    utcNow(),
	}
	if err := uow.ProjectImageRepository().Create(ctx, image); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.PublishContentChanged(ctx, KindProject, project.Id, project.Slug, project.Slug, events.ActionUpdated)
	return s.presenter.ProjectImages([]*entity.ProjectImage{image})[0], nil
}

func (s *projectService) RemoveImage(ctx context.Context, projectId, imageId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: projectId})
	if err != nil {
		return err
	}
	if project == nil {
		return notFound("project")
	}
	image, err := uow.ProjectImageRepository().FindOne(ctx,
		specification.ByID{ID: imageId},
		specification.ByProjectID{ProjectID: project.Id},
	)
	if err != nil {
		return err
	}
	if image == nil {
		return notFound("project image")
	}
	if err := uow.ProjectImageRepository().Delete(ctx, image.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.publisherService.PublishContentChanged(ctx, KindProject, project.Id, project.Slug, project.Slug, events.ActionUpdated)
	return nil
}
