package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an admin operator. Access to the admin area additionally requires an ApprovedEmail.
type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash *string
	FullName     string
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

type ApprovedEmail struct {
	Id        uuid.UUID
	Email     string
	Note      string
	CreatedAt time.Time
}
