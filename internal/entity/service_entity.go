package entity

import (
	"time"

	"industrial-site-be/pkg/richtext"

	"github.com/google/uuid"
)

type Service struct {
	Id           uuid.UUID
	Name         string
	Slug         string
	Tagline      string
	Description  richtext.Document
	Icon         string
	HeroImageURL string
	DisplayOrder int
	Published    bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

type SubService struct {
	Id           uuid.UUID
	ServiceId    uuid.UUID
	Name         string
	Slug         string
	Description  richtext.Document
	Icon         string
	ImageURL     string
	DisplayOrder int
	Published    bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
