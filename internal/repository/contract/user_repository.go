package contract

import (
	"industrial-site-be/internal/entity"
)

type UserRepository interface {
	Repository[entity.User]
}

type ApprovedEmailRepository interface {
	Repository[entity.ApprovedEmail]
}
