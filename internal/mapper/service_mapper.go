package mapper

import (
	"industrial-site-be/internal/entity"
	"industrial-site-be/internal/model"
)

type ServiceMapper struct {
	codec *DocumentCodec
}

func NewServiceMapper(codec *DocumentCodec) *ServiceMapper {
	return &ServiceMapper{codec: codec}
}

func (m *ServiceMapper) ToEntity(s *model.Service) *entity.Service {
	if s == nil {
		return nil
	}
	return &entity.Service{
		Id:           s.Id,
		Name:         s.Name,
		Slug:         s.Slug,
		Tagline:      s.Tagline,
		Description:  m.codec.Decode(s.Description, "service", s.Id, "description"),
		Icon:         s.Icon,
		HeroImageURL: s.HeroImageURL,
		DisplayOrder: s.DisplayOrder,
		Published:    s.Published,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    optionalTime(s.UpdatedAt),
	}
}

func (m *ServiceMapper) ToModel(s *entity.Service) *model.Service {
	if s == nil {
		return nil
	}
	return &model.Service{
		Id:           s.Id,
		Name:         s.Name,
		Slug:         s.Slug,
		Tagline:      s.Tagline,
		Description:  m.codec.Encode(s.Description),
		Icon:         s.Icon,
		HeroImageURL: s.HeroImageURL,
		DisplayOrder: s.DisplayOrder,
		Published:    s.Published,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    timeValue(s.UpdatedAt),
	}
}

func (m *ServiceMapper) ToEntities(services []*model.Service) []*entity.Service {
	entities := make([]*entity.Service, len(services))
	for i, s := range services {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

type SubServiceMapper struct {
	codec *DocumentCodec
}

func NewSubServiceMapper(codec *DocumentCodec) *SubServiceMapper {
	return &SubServiceMapper{codec: codec}
}

func (m *SubServiceMapper) ToEntity(s *model.SubService) *entity.SubService {
	if s == nil {
		return nil
	}
	return &entity.SubService{
		Id:           s.Id,
		ServiceId:    s.ServiceId,
		Name:         s.Name,
		Slug:         s.Slug,
		Description:  m.codec.Decode(s.Description, "sub_service", s.Id, "description"),
		Icon:         s.Icon,
		ImageURL:     s.ImageURL,
		DisplayOrder: s.DisplayOrder,
		Published:    s.Published,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    optionalTime(s.UpdatedAt),
	}
}

func (m *SubServiceMapper) ToModel(s *entity.SubService) *model.SubService {
	if s == nil {
		return nil
	}
	return &model.SubService{
		Id:           s.Id,
		ServiceId:    s.ServiceId,
		Name:         s.Name,
		Slug:         s.Slug,
		Description:  m.codec.Encode(s.Description),
		Icon:         s.Icon,
		ImageURL:     s.ImageURL,
		DisplayOrder: s.DisplayOrder,
		Published:    s.Published,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    timeValue(s.UpdatedAt),
	}
}

func (m *SubServiceMapper) ToEntities(subs []*model.SubService) []*entity.SubService {
	entities := make([]*entity.SubService, len(subs))
	for i, s := range subs {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
