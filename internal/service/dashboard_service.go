package service

import (
	"context"

	"industrial-site-be/internal/dto"
	"industrial-site-be/internal/repository/specification"
	"industrial-site-be/internal/repository/unitofwork"
)

type IDashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory) IDashboardService {
	return &dashboardService{uowFactory: uowFactory}
}

func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	stats := &dto.DashboardStatsResponse{}
	published := specification.Published{}

	counts := []struct {
		dest  *int64
		count func() (int64, error)
	}{
		{&stats.TeamMembers, func() (int64, error) { return uow.TeamMemberRepository().Count(ctx) }},
		{&stats.Services, func() (int64, error) { return uow.ServiceRepository().Count(ctx) }},
		{&stats.Projects, func() (int64, error) { return uow.ProjectRepository().Count(ctx) }},
		{&stats.PublishedProjects, func() (int64, error) { return uow.ProjectRepository().Count(ctx, published) }},
		{&stats.Markets, func() (int64, error) { return uow.MarketRepository().Count(ctx) }},
		{&stats.News, func() (int64, error) { return uow.NewsRepository().Count(ctx) }},
		{&stats.PublishedNews, func() (int64, error) { return uow.NewsRepository().Count(ctx, published) }},
		{&stats.Jobs, func() (int64, error) { return uow.JobPostingRepository().Count(ctx) }},
		{&stats.PublishedJobs, func() (int64, error) { return uow.JobPostingRepository().Count(ctx, published) }},
		{&stats.ActiveJobs, func() (int64, error) {
			return uow.JobPostingRepository().Count(ctx, published, specification.NotExpired{At: utcNow()})
		}},
		{&stats.Locations, func() (int64, error) { return uow.LocationRepository().Count(ctx) }},
	}

	for _, c := range counts {
		n, err := c.count()
		if err != nil {
			return nil, err
		}
		*c.dest = n
	}
	return stats, nil
}
