package service

import (
	"context"
	"time"

	"industrial-site-be/internal/dto"
	"industrial-site-be/internal/entity"
	"industrial-site-be/internal/pkg/logger"
	"industrial-site-be/internal/repository/scope"
	"industrial-site-be/internal/repository/specification"
	"industrial-site-be/internal/repository/unitofwork"
	"industrial-site-be/pkg/events"

	"github.com/google/uuid"
)

type ICareerService interface {
	ContentAdmin[dto.JobPostingRequest, dto.JobPostingResponse]

	// ExpirePostings unpublishes published postings whose expiry is at or before at.
	// It returns how many postings were unpublished.
	ExpirePostings(ctx context.Context, at time.Time) (int, error)
}

type careerService struct {
	uowFactory       unitofwork.RepositoryFactory
	presenter        *Presenter
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewCareerService(uowFactory unitofwork.RepositoryFactory, presenter *Presenter, publisherService IPublisherService, log logger.ILogger) ICareerService {
	return &careerService{
		uowFactory:       uowFactory,
		presenter:        presenter,
		publisherService: publisherService,
		logger:           log,
	}
}

func employmentType(t string) entity.EmploymentType {
	if t == "" {
		return entity.EmploymentFullTime
	}
	return entity.EmploymentType(t)
}

func (s *careerService) List(ctx context.Context) ([]*dto.JobPostingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	jobs, err := uow.JobPostingRepository().FindAll(ctx, specification.Scoped{Scope: scope.OrderByCreatedDesc})
	if err != nil {
		return nil, err
	}
	return s.presenter.JobPostings(jobs, utcNow()), nil
}

func (s *careerService) Get(ctx context.Context, id uuid.UUID) (*dto.JobPostingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	job, err := uow.JobPostingRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, notFound("job posting")
	}
	return s.presenter.JobPosting(job, utcNow()), nil
}

func (s *careerService) Create(ctx context.Context, req *dto.JobPostingRequest) (*dto.JobPostingResponse, error) {
	description, err := parseDocument(req.Description, "description")
	if err != nil {
		return nil, err
	}
	requirements, err := parseOptionalDocument(req.Requirements, "requirements")
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

	if err := ensureSlugFree[entity.JobPosting](ctx, uow.JobPostingRepository(), slugValue, uuid.Nil); err != nil {
		return nil, err
	}

	createdAt := utcNow()
	job := &entity.JobPosting{
		Id:             uuid.New(),
		Title:          req.Title,
		Slug:           slugValue,
		Department:     req.Department,
		Location:       req.Location,
		EmploymentType: employmentType(req.EmploymentType),
		Description:    description,
		Requirements:   requirements,
		SalaryRange:    req.SalaryRange,
		Published:      req.Published,
		PublishedAt:    stampPublished(req.Published, nil, createdAt),
		ExpiresAt:      req.ExpiresAt,
		CreatedAt:      createdAt,
	}
	if err := uow.JobPostingRepository().Create(ctx, job); err != nil {
		return nil, slugWriteError(err, slugValue)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.PublishContentChanged(ctx, KindJobPosting, job.Id, job.Slug, job.Slug, events.ActionCreated)
	return s.presenter.JobPosting(job, createdAt), nil
}

func (s *careerService) Update(ctx context.Context, id uuid.UUID, req *dto.JobPostingRequest) (*dto.JobPostingResponse, error) {
	description, err := parseDocument(req.Description, "description")
	if err != nil {
		return nil, err
	}
	requirements, err := parseOptionalDocument(req.Requirements, "requirements")
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

	job, err := uow.JobPostingRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, notFound("job posting")
	}
	if err := ensureSlugFree[entity.JobPosting](ctx, uow.JobPostingRepository(), slugValue, job.Id); err != nil {
		return nil, err
	}

	updatedAt := utcNow()
	previousSlug := job.Slug
	job.Title = req.Title
	job.Slug = slugValue
	job.Department = req.Department
	job.Location = req.Location
	job.EmploymentType = employmentType(req.EmploymentType)
	job.Description = description
	job.Requirements = requirements
	job.SalaryRange = req.SalaryRange
	job.Published = req.Published
	job.PublishedAt = stampPublished(req.Published, job.PublishedAt, updatedAt)
	job.ExpiresAt = req.ExpiresAt
	if err := uow.JobPostingRepository().Update(ctx, job); err != nil {
		return nil, slugWriteError(err, slugValue)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.PublishContentChanged(ctx, KindJobPosting, job.Id, job.Slug, previousSlug, events.ActionUpdated)
	return s.presenter.JobPosting(job, updatedAt), nil
}

func (s *careerService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	job, err := uow.JobPostingRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if job == nil {
		return notFound("job posting")
	}
	if err := uow.JobPostingRepository().Delete(ctx, job.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.publisherService.PublishContentChanged(ctx, KindJobPosting, job.Id, job.Slug, job.Slug, events.ActionDeleted)
	return nil
}

func (s *careerService) ExpirePostings(ctx context.Context, at time.Time) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer uow.Rollback()

	expired, err := uow.JobPostingRepository().FindAll(ctx,
		specification.Published{},
		specification.Expired{At: at},
	)
	if err != nil {
		return 0, err
	}
	for _, job := range expired {
		job.Published = false
		if err := uow.JobPostingRepository().Update(ctx, job); err != nil {
			return 0, err
		}
	}
	if err := uow.Commit(); err != nil {
		return 0, err
	}

	for _, job := range expired {
		s.publisherService.PublishContentChanged(ctx, KindJobPosting, job.Id, job.Slug, job.Slug, events.ActionExpired)
	}
	if len(expired) > 0 {
		s.logger.Info("SCHEDULER", "Expired job postings unpublished", map[string]interface{}{
			"count": len(expired),
		})
	}
	return len(expired), nil
}
