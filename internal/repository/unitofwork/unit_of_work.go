package unitofwork

import (
	"context"

	"industrial-site-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ApprovedEmailRepository() contract.ApprovedEmailRepository

	ServiceRepository() contract.ServiceRepository
	SubServiceRepository() contract.SubServiceRepository
	MarketRepository() contract.MarketRepository
	ProjectRepository() contract.ProjectRepository
	ProjectImageRepository() contract.ProjectImageRepository
	NewsRepository() contract.NewsRepository
	JobPostingRepository() contract.JobPostingRepository
	LocationRepository() contract.LocationRepository
	TeamMemberRepository() contract.TeamMemberRepository
}
