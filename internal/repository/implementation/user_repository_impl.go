package implementation

import (
	"industrial-site-be/internal/entity"
	"industrial-site-be/internal/mapper"
	"industrial-site-be/internal/model"
	"industrial-site-be/internal/repository/contract"

	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	baseRepository[entity.User, model.User]
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{baseRepository[entity.User, model.User]{db: db, mapper: mapper.NewUserMapper()}}
}

type ApprovedEmailRepositoryImpl struct {
	baseRepository[entity.ApprovedEmail, model.ApprovedEmail]
}

func NewApprovedEmailRepository(db *gorm.DB) contract.ApprovedEmailRepository {
	return &ApprovedEmailRepositoryImpl{baseRepository[entity.ApprovedEmail, model.ApprovedEmail]{db: db, mapper: mapper.NewApprovedEmailMapper()}}
}
