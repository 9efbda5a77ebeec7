package unitofwork

import (
	"context"

	"industrial-site-be/internal/mapper"

	"gorm.io/gorm"
)

type RepositoryFactoryImpl struct {
	db    *gorm.DB
	codec *mapper.DocumentCodec
}

func NewRepositoryFactory(db *gorm.DB, codec *mapper.DocumentCodec) RepositoryFactory {
	return &RepositoryFactoryImpl{
		db:    db,
		codec: codec,
	}
}

// NewUnitOfWork is short lived, one per request or job run.
func (f *RepositoryFactoryImpl) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return NewUnitOfWork(f.db.WithContext(ctx), f.codec)
}
