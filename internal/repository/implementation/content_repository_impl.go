package implementation

import (
	"context"

	"industrial-site-be/internal/entity"
	"industrial-site-be/internal/mapper"
	"industrial-site-be/internal/model"
	"industrial-site-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRepositoryImpl struct {
	baseRepository[entity.Service, model.Service]
}

func NewServiceRepository(db *gorm.DB, codec *mapper.DocumentCodec) contract.ServiceRepository {
	return &ServiceRepositoryImpl{baseRepository[entity.Service, model.Service]{db: db, mapper: mapper.NewServiceMapper(codec)}}
}

type SubServiceRepositoryImpl struct {
	baseRepository[entity.SubService, model.SubService]
}

func NewSubServiceRepository(db *gorm.DB, codec *mapper.DocumentCodec) contract.SubServiceRepository {
	return &SubServiceRepositoryImpl{baseRepository[entity.SubService, model.SubService]{db: db, mapper: mapper.NewSubServiceMapper(codec)}}
}

func (r *SubServiceRepositoryImpl) DeleteByServiceId(ctx context.Context, serviceId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("service_id = ?", serviceId).Delete(&model.SubService{}).Error
}

type MarketRepositoryImpl struct {
	baseRepository[entity.Market, model.Market]
}

func NewMarketRepository(db *gorm.DB, codec *mapper.DocumentCodec) contract.MarketRepository {
	return &MarketRepositoryImpl{baseRepository[entity.Market, model.Market]{db: db, mapper: mapper.NewMarketMapper(codec)}}
}

type ProjectRepositoryImpl struct {
	baseRepository[entity.Project, model.Project]
}

func NewProjectRepository(db *gorm.DB, codec *mapper.DocumentCodec) contract.ProjectRepository {
	return &ProjectRepositoryImpl{baseRepository[entity.Project, model.Project]{db: db, mapper: mapper.NewProjectMapper(codec)}}
}

type ProjectImageRepositoryImpl struct {
	baseRepository[entity.ProjectImage, model.ProjectImage]
}

func NewProjectImageRepository(db *gorm.DB) contract.ProjectImageRepository {
	return &ProjectImageRepositoryImpl{baseRepository[entity.ProjectImage, model.ProjectImage]{db: db, mapper: mapper.NewProjectImageMapper()}}
}

func (r *ProjectImageRepositoryImpl) DeleteByProjectId(ctx context.Context, projectId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectId).Delete(&model.ProjectImage{}).Error
}

type NewsRepositoryImpl struct {
	baseRepository[entity.NewsArticle, model.NewsArticle]
}

func NewNewsRepository(db *gorm.DB, codec *mapper.DocumentCodec) contract.NewsRepository {
	return &NewsRepositoryImpl{baseRepository[entity.NewsArticle, model.NewsArticle]{db: db, mapper: mapper.NewNewsMapper(codec)}}
}

type JobPostingRepositoryImpl struct {
	baseRepository[entity.JobPosting, model.JobPosting]
}

func NewJobPostingRepository(db *gorm.DB, codec *mapper.DocumentCodec) contract.JobPostingRepository {
	return &JobPostingRepositoryImpl{baseRepository[entity.JobPosting, model.JobPosting]{db: db, mapper: mapper.NewJobPostingMapper(codec)}}
}

type LocationRepositoryImpl struct {
	baseRepository[entity.Location, model.Location]
}

func NewLocationRepository(db *gorm.DB) contract.LocationRepository {
	return &LocationRepositoryImpl{baseRepository[entity.Location, model.Location]{db: db, mapper: mapper.NewLocationMapper()}}
}

type TeamMemberRepositoryImpl struct {
	baseRepository[entity.TeamMember, model.TeamMember]
}

func NewTeamMemberRepository(db *gorm.DB) contract.TeamMemberRepository {
	return &TeamMemberRepositoryImpl{baseRepository[entity.TeamMember, model.TeamMember]{db: db, mapper: mapper.NewTeamMemberMapper()}}
}
