package entity

import (
	"time"

	"github.com/google/uuid"
)

type TeamMember struct {
	Id           uuid.UUID
	Name         string
	Title        string
	Bio          string
	PhotoURL     string
	Email        string
	Phone        string
	DisplayOrder int
	Published    bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
