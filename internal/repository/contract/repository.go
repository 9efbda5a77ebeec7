package contract

import (
	"context"
	"errors"

	"industrial-site-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ErrDuplicateKey is returned by Create and Update when a unique index rejects the write.
var ErrDuplicateKey = errors.New("duplicate key")

// Repository is the CRUD surface shared by every content repository. FindOne returns (nil, nil)
// when nothing matches.
type Repository[E any] interface {
	Create(ctx context.Context, e *E) error
	Update(ctx context.Context, e *E) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*E, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*E, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
