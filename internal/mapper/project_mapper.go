package mapper

import (
	"industrial-site-be/internal/entity"
	"industrial-site-be/internal/model"

	"gorm.io/datatypes"
)

type ProjectMapper struct {
	codec *DocumentCodec
}

func NewProjectMapper(codec *DocumentCodec) *ProjectMapper {
	return &ProjectMapper{codec: codec}
}

func (m *ProjectMapper) ToEntity(p *model.Project) *entity.Project {
	if p == nil {
		return nil
	}
	services := []string(p.ServicesUsed)
	if services == nil {
		services = []string{}
	}
	return &entity.Project{
		Id:            p.Id,
		Title:         p.Title,
		Slug:          p.Slug,
		Client:        p.Client,
		Location:      p.Location,
		Description:   m.codec.Decode(p.Description, "project", p.Id, "description"),
		Excerpt:       p.Excerpt,
		FeaturedImage: p.FeaturedImage,
		ServicesUsed:  services,
		Market:        p.Market,
		Featured:      p.Featured,
		Published:     p.Published,
		PublishedAt:   p.PublishedAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     optionalTime(p.UpdatedAt),
	}
}

func (m *ProjectMapper) ToModel(p *entity.Project) *model.Project {
	if p == nil {
		return nil
	}
	services := p.ServicesUsed
	if services == nil {
		services = []string{}
	}
	return &model.Project{
		Id:            p.Id,
		Title:         p.Title,
		Slug:          p.Slug,
		Client:        p.Client,
		Location:      p.Location,
		Description:   m.codec.Encode(p.Description),
		Excerpt:       p.Excerpt,
		FeaturedImage: p.FeaturedImage,
		ServicesUsed:  datatypes.JSONSlice[string](services),
		Market:        p.Market,
		Featured:      p.Featured,
		Published:     p.Published,
		PublishedAt:   p.PublishedAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     timeValue(p.UpdatedAt),
	}
}

func (m *ProjectMapper) ToEntities(projects []*model.Project) []*entity.Project {
	entities := make([]*entity.Project, len(projects))
	for i, p := range projects {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

type ProjectImageMapper struct{}

func NewProjectImageMapper() *ProjectImageMapper {
	return &ProjectImageMapper{}
}

func (m *ProjectImageMapper) ToEntity(i *model.ProjectImage) *entity.ProjectImage {
	if i == nil {
		return nil
	}
	return &entity.ProjectImage{
		Id:           i.Id,
		ProjectId:    i.ProjectId,
		ImageURL:     i.ImageURL,
		Caption:      i.Caption,
		DisplayOrder: i.DisplayOrder,
		CreatedAt:    i.CreatedAt,
	}
}

func (m *ProjectImageMapper) ToModel(i *entity.ProjectImage) *model.ProjectImage {
	if i == nil {
		return nil
	}
	return &model.ProjectImage{
		Id:           i.Id,
		ProjectId:    i.ProjectId,
		ImageURL:     i.ImageURL,
		Caption:      i.Caption,
		DisplayOrder: i.DisplayOrder,
		CreatedAt:    i.CreatedAt,
	}
}

func (m *ProjectImageMapper) ToEntities(images []*model.ProjectImage) []*entity.ProjectImage {
	entities := make([]*entity.ProjectImage, len(images))
	for i, img := range images {
		entities[i] = m.ToEntity(img)
	}
	return entities
}
