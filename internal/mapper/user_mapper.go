package mapper

import (
	"industrial-site-be/internal/entity"
	"industrial-site-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:           u.Id,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		AvatarURL:    u.AvatarURL,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    optionalTime(u.UpdatedAt),
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:           u.Id,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		AvatarURL:    u.AvatarURL,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    timeValue(u.UpdatedAt),
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

type ApprovedEmailMapper struct{}

func NewApprovedEmailMapper() *ApprovedEmailMapper {
	return &ApprovedEmailMapper{}
}

func (m *ApprovedEmailMapper) ToEntity(a *model.ApprovedEmail) *entity.ApprovedEmail {
	if a == nil {
		return nil
	}
	return &entity.ApprovedEmail{Id: a.Id, Email: a.Email, Note: a.Note, CreatedAt: a.CreatedAt}
}

func (m *ApprovedEmailMapper) ToModel(a *entity.ApprovedEmail) *model.ApprovedEmail {
	if a == nil {
		return nil
	}
	return &model.ApprovedEmail{Id: a.Id, Email: a.Email, Note: a.Note, CreatedAt: a.CreatedAt}
}

func (m *ApprovedEmailMapper) ToEntities(emails []*model.ApprovedEmail) []*entity.ApprovedEmail {
	entities := make([]*entity.ApprovedEmail, len(emails))
	for i, a := range emails {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
