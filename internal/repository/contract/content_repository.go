package contract

import (
	"context"

	"industrial-site-be/internal/entity"

	"github.com/google/uuid"
)

type ServiceRepository interface {
	Repository[entity.Service]
}

type SubServiceRepository interface {
	Repository[entity.SubService]
	DeleteByServiceId(ctx context.Context, serviceId uuid.UUID) error
}

type MarketRepository interface {
	Repository[entity.Market]
}

type ProjectRepository interface {
	Repository[entity.Project]
}

type ProjectImageRepository interface {
	Repository[entity.ProjectImage]
	DeleteByProjectId(ctx context.Context, projectId uuid.UUID) error
}

type NewsRepository interface {
	Repository[entity.NewsArticle]
}

type JobPostingRepository interface {
	Repository[entity.JobPosting]
}

type LocationRepository interface {
	Repository[entity.Location]
}

type TeamMemberRepository interface {
	Repository[entity.TeamMember]
}
