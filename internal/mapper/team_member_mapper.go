package mapper

import (
	"industrial-site-be/internal/entity"
	"industrial-site-be/internal/model"
)

type TeamMemberMapper struct{}

func NewTeamMemberMapper() *TeamMemberMapper {
	return &TeamMemberMapper{}
}

func (m *TeamMemberMapper) ToEntity(t *model.TeamMember) *entity.TeamMember {
	if t == nil {
		return nil
	}
	return &entity.TeamMember{
		Id:           t.Id,
		Name:         t.Name,
		Title:        t.Title,
		Bio:          t.Bio,
		PhotoURL:     t.PhotoURL,
		Email:        t.Email,
		Phone:        t.Phone,
		DisplayOrder: t.DisplayOrder,
		Published:    t.Published,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    optionalTime(t.UpdatedAt),
	}
}

func (m *TeamMemberMapper) ToModel(t *entity.TeamMember) *model.TeamMember {
	if t == nil {
		return nil
	}
	return &model.TeamMember{
		Id:           t.Id,
		Name:         t.Name,
		Title:        t.Title,
		Bio:          t.Bio,
		PhotoURL:     t.PhotoURL,
		Email:        t.Email,
		Phone:        t.Phone,
		DisplayOrder: t.DisplayOrder,
		Published:    t.Published,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    timeValue(t.UpdatedAt),
	}
}

func (m *TeamMemberMapper) ToEntities(members []*model.TeamMember) []*entity.TeamMember {
	entities := make([]*entity.TeamMember, len(members))
	for i, t := range members {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
