package service

import (
	"context"
	"fmt"
	"strings"

	"industrial-site-be/internal/dto"
	"industrial-site-be/internal/repository/cache"
	"industrial-site-be/internal/repository/scope"
	"industrial-site-be/internal/repository/specification"
	"industrial-site-be/internal/repository/unitofwork"
	"industrial-site-be/pkg/richtext"
)

const homeHighlights = 3

// IPublicService serves published content to the public site. Unpublished records and,
// for job postings, expired ones are reported as not found.
type IPublicService interface {
	Home(ctx context.Context) (*dto.HomeResponse, error)

	ListServices(ctx context.Context) ([]*dto.ServiceResponse, error)
	GetService(ctx context.Context, slug string) (*dto.ServiceDetailResponse, error)
	GetSubService(ctx context.Context, serviceSlug, subSlug string) (*dto.SubServiceResponse, error)

	ListMarkets(ctx context.Context) ([]*dto.MarketResponse, error)
	GetMarket(ctx context.Context, slug string) (*dto.MarketResponse, error)

	ListProjects(ctx context.Context, filter dto.ProjectFilter) ([]*dto.ProjectResponse, error)
	GetProject(ctx context.Context, slug string) (*dto.ProjectDetailResponse, error)

	ListNews(ctx context.Context, filter dto.NewsFilter) ([]*dto.NewsResponse, error)
	GetNews(ctx context.Context, slug string) (*dto.NewsResponse, error)
	NewsMarkdown(ctx context.Context, slug string) (string, error)

	ListCareers(ctx context.Context) ([]*dto.JobPostingResponse, error)
	GetCareer(ctx context.Context, slug string) (*dto.JobPostingResponse, error)

	ListLocations(ctx context.Context) ([]*dto.LocationResponse, error)
	ListTeam(ctx context.Context) ([]*dto.TeamMemberResponse, error)
}

type publicService struct {
	uowFactory unitofwork.RepositoryFactory
	presenter  *Presenter
	pageCache  cache.PageCache
}

func NewPublicService(uowFactory unitofwork.RepositoryFactory, presenter *Presenter, pageCache cache.PageCache) IPublicService {
	return &publicService{
		uowFactory: uowFactory,
		presenter:  presenter,
		pageCache:  pageCache,
	}
}

func (s *publicService) Home(ctx context.Context) (*dto.HomeResponse, error) {
	services, err := s.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.ListProjects(ctx, dto.ProjectFilter{Featured: true, Limit: homeHighlights})
	if err != nil {
		return nil, err
	}
	markets, err := s.ListMarkets(ctx)
	if err != nil {
		return nil, err
	}
	news, err := s.ListNews(ctx, dto.NewsFilter{Limit: homeHighlights})
	if err != nil {
		return nil, err
	}

	return &dto.HomeResponse{
		Services:         services,
		FeaturedProjects: projects,
		Markets:          markets,
		LatestNews:       news,
	}, nil
}

func (s *publicService) ListServices(ctx context.Context) ([]*dto.ServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	services, err := uow.ServiceRepository().FindAll(ctx,
		specification.Published{},
		specification.Scoped{Scope: scope.OrderByDisplayOrder},
	)
	if err != nil {
		return nil, err
	}
	return s.presenter.Services(services), nil
}

func (s *publicService) GetService(ctx context.Context, slug string) (*dto.ServiceDetailResponse, error) {
	var cached dto.ServiceDetailResponse
	if s.pageCache.Get(ctx, KindService, slug, &cached) {
		return &cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	svc, err := uow.ServiceRepository().FindOne(ctx, specification.BySlug{Slug: slug}, specification.Published{})
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, notFound("service")
	}
	subs, err := uow.SubServiceRepository().FindAll(ctx,
		specification.ByServiceID{ServiceID: svc.Id},
		specification.Published{},
		specification.Scoped{Scope: scope.OrderByDisplayOrder},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.ServiceDetailResponse{
		ServiceResponse: *s.presenter.Service(svc),
		SubServices:     s.presenter.SubServices(subs),
	}
	s.pageCache.Set(ctx, KindService, slug, res)
	return res, nil
}

func (s *publicService) GetSubService(ctx context.Context, serviceSlug, subSlug string) (*dto.SubServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	svc, err := uow.ServiceRepository().FindOne(ctx, specification.BySlug{Slug: serviceSlug}, specification.Published{})
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, notFound("service")
	}
	sub, err := uow.SubServiceRepository().FindOne(ctx,
		specification.ByServiceID{ServiceID: svc.Id},
		specification.BySlug{Slug: subSlug},
		specification.Published{},
	)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, notFound("sub-service")
	}
	return s.presenter.SubService(sub), nil
}

func (s *publicService) ListMarkets(ctx context.Context) ([]*dto.MarketResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	markets, err := uow.MarketRepository().FindAll(ctx,
		specification.Published{},
		specification.Scoped{Scope: scope.OrderByDisplayOrder},
	)
	if err != nil {
		return nil, err
	}
	return s.presenter.Markets(markets), nil
}

func (s *publicService) GetMarket(ctx context.Context, slug string) (*dto.MarketResponse, error) {
	var cached dto.MarketResponse
	if s.pageCache.Get(ctx, KindMarket, slug, &cached) {
		return &cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	market, err := uow.MarketRepository().FindOne(ctx, specification.BySlug{Slug: slug}, specification.Published{})
	if err != nil {
		return nil, err
	}
	if market == nil {
		return nil, notFound("market")
	}

	res := s.presenter.Market(market)
	s.pageCache.Set(ctx, KindMarket, slug, res)
	return res, nil
}

func (s *publicService) ListProjects(ctx context.Context, filter dto.ProjectFilter) ([]*dto.ProjectResponse, error) {
	specs := []specification.Specification{
		specification.Published{},
		specification.Scoped{Scope: scope.NewestPublishedFirst},
	}
	if filter.Featured {
		specs = append(specs, specification.Featured{})
	}
	if filter.Market != "" {
		specs = append(specs, specification.Filter("market", filter.Market))
	}
	specs = append(specs, specification.Limit{N: filter.Limit})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	projects, err := uow.ProjectRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return s.presenter.Projects(projects), nil
}

func (s *publicService) GetProject(ctx context.Context, slug string) (*dto.ProjectDetailResponse, error) {
	var cached dto.ProjectDetailResponse
	if s.pageCache.Get(ctx, KindProject, slug, &cached) {
		return &cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	project, err := uow.ProjectRepository().FindOne(ctx, specification.BySlug{Slug: slug}, specification.Published{})
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

	res := &dto.ProjectDetailResponse{
		ProjectResponse: *s.presenter.Project(project),
		Images:          s.presenter.ProjectImages(images),
	}
	s.pageCache.Set(ctx, KindProject, slug, res)
	return res, nil
}

func (s *publicService) ListNews(ctx context.Context, filter dto.NewsFilter) ([]*dto.NewsResponse, error) {
	specs := []specification.Specification{
		specification.Published{},
		specification.Scoped{Scope: scope.NewestPublishedFirst},
	}
	if filter.Type != "" {
		specs = append(specs, specification.Filter("type", filter.Type))
	}
	specs = append(specs, specification.Limit{N: filter.Limit})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	articles, err := uow.NewsRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return s.presenter.NewsList(articles), nil
}

func (s *publicService) GetNews(ctx context.Context, slug string) (*dto.NewsResponse, error) {
	var cached dto.NewsResponse
	if s.pageCache.Get(ctx, KindNews, slug, &cached) {
		return &cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	article, err := uow.NewsRepository().FindOne(ctx, specification.BySlug{Slug: slug}, specification.Published{})
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, notFound("news article")
	}

	res := s.presenter.News(article)
	s.pageCache.Set(ctx, KindNews, slug, res)
	return res, nil
}

func (s *publicService) NewsMarkdown(ctx context.Context, slug string) (string, error) {
	article, err := s.GetNews(ctx, slug)
	if err != nil {
		return "", err
	}
	body, err := richtext.Markdown(article.Content)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", article.Title)
	if body != "" {
		sb.WriteString(body)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func (s *publicService) ListCareers(ctx context.Context) ([]*dto.JobPostingResponse, error) {
	at := utcNow()
	uow := s.uowFactory.NewUnitOfWork(ctx)
	jobs, err := uow.JobPostingRepository().FindAll(ctx,
		specification.Published{},
		specification.NotExpired{At: at},
		specification.Scoped{Scope: scope.NewestPublishedFirst},
	)
	if err != nil {
		return nil, err
	}
	return s.presenter.JobPostings(jobs, at), nil
}

func (s *publicService) GetCareer(ctx context.Context, slug string) (*dto.JobPostingResponse, error) {
	at := utcNow()

	var cached dto.JobPostingResponse
	if s.pageCache.Get(ctx, KindJobPosting, slug, &cached) {
		// A posting can expire while cached.
		if cached.ExpiresAt != nil && !cached.ExpiresAt.After(at) {
			return nil, notFound("job posting")
		}
		return &cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	job, err := uow.JobPostingRepository().FindOne(ctx,
		specification.BySlug{Slug: slug},
		specification.Published{},
		specification.NotExpired{At: at},
	)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, notFound("job posting")
	}

	res := s.presenter.JobPosting(job, at)
	s.pageCache.Set(ctx, KindJobPosting, slug, res)
	return res, nil
}

func (s *publicService) ListLocations(ctx context.Context) ([]*dto.LocationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	locations, err := uow.LocationRepository().FindAll(ctx,
		specification.Published{},
		specification.Scoped{Scope: scope.HeadquartersFirst},
	)
	if err != nil {
		return nil, err
	}
	return s.presenter.Locations(locations), nil
}

func (s *publicService) ListTeam(ctx context.Context) ([]*dto.TeamMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	members, err := uow.TeamMemberRepository().FindAll(ctx,
		specification.Published{},
		specification.Scoped{Scope: scope.OrderByDisplayOrder},
	)
	if err != nil {
		return nil, err
	}
	return s.presenter.TeamMembers(members), nil
}
