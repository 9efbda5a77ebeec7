package unitofwork

import (
	"context"
	"fmt"

	"industrial-site-be/internal/mapper"
	"industrial-site-be/internal/repository/contract"
	"industrial-site-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db    *gorm.DB
	tx    *gorm.DB
	codec *mapper.DocumentCodec
}

func NewUnitOfWork(db *gorm.DB, codec *mapper.DocumentCodec) UnitOfWork {
	return &UnitOfWorkImpl{
		db:    db,
		codec: codec,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

// Rollback is safe to defer after a successful Commit.
func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return nil
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ApprovedEmailRepository() contract.ApprovedEmailRepository {
	return implementation.NewApprovedEmailRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ServiceRepository() contract.ServiceRepository {
	return implementation.NewServiceRepository(u.getDB(), u.codec)
}

func (u *UnitOfWorkImpl) SubServiceRepository() contract.SubServiceRepository {
	return implementation.NewSubServiceRepository(u.getDB(), u.codec)
}

func (u *UnitOfWorkImpl) MarketRepository() contract.MarketRepository {
	return implementation.NewMarketRepository(u.getDB(), u.codec)
}

func (u *UnitOfWorkImpl) ProjectRepository() contract.ProjectRepository {
	return implementation.NewProjectRepository(u.getDB(), u.codec)
}

func (u *UnitOfWorkImpl) ProjectImageRepository() contract.ProjectImageRepository {
	return implementation.NewProjectImageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) NewsRepository() contract.NewsRepository {
	return implementation.NewNewsRepository(u.getDB(), u.codec)
}

func (u *UnitOfWorkImpl) JobPostingRepository() contract.JobPostingRepository {
	return implementation.NewJobPostingRepository(u.getDB(), u.codec)
}

func (u *UnitOfWorkImpl) LocationRepository() contract.LocationRepository {
	return implementation.NewLocationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TeamMemberRepository() contract.TeamMemberRepository {
	return implementation.NewTeamMemberRepository(u.getDB())
}
