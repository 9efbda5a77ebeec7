package mapper

import (
	"industrial-site-be/internal/entity"
	"industrial-site-be/internal/model"
)

type LocationMapper struct{}

func NewLocationMapper() *LocationMapper {
	return &LocationMapper{}
}

func (m *LocationMapper) ToEntity(l *model.Location) *entity.Location {
	if l == nil {
		return nil
	}
	return &entity.Location{
		Id:             l.Id,
		Name:           l.Name,
		Address:        l.Address,
		City:           l.City,
		State:          l.State,
		Zip:            l.Zip,
		Phone:          l.Phone,
		Email:          l.Email,
		IsHeadquarters: l.IsHeadquarters,
		Lat:            l.Lat,
		Lng:            l.Lng,
		Published:      l.Published,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      optionalTime(l.UpdatedAt),
	}
}

func (m *LocationMapper) ToModel(l *entity.Location) *model.Location {
	if l == nil {
		return nil
	}
	return &model.Location{
		Id:             l.Id,
		Name:           l.Name,
		Address:        l.Address,
		City:           l.City,
		State:          l.State,
		Zip:            l.Zip,
		Phone:          l.Phone,
		Email:          l.Email,
		IsHeadquarters: l.IsHeadquarters,
		Lat:            l.Lat,
		Lng:            l.Lng,
		Published:      l.Published,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      timeValue(l.UpdatedAt),
	}
}

func (m *LocationMapper) ToEntities(locations []*model.Location) []*entity.Location {
	entities := make([]*entity.Location, len(locations))
	for i, l := range locations {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
