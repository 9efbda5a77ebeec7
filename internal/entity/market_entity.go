package entity

import (
	"time"

	"industrial-site-be/pkg/richtext"

	"github.com/google/uuid"
)

type Market struct {
	Id           uuid.UUID
	Name         string
	Slug         string
	Description  richtext.Document
	IconURL      string
	HeroImageURL string
	DisplayOrder int
	Published    bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
