package entity

import (
	"time"

	"industrial-site-be/pkg/richtext"

	"github.com/google/uuid"
)

type Project struct {
	Id            uuid.UUID
	Title         string
	Slug          string
	Client        string
	Location      string
	Description   richtext.Document
	Excerpt       string
	FeaturedImage string
	ServicesUsed  []string
	Market        string
	Featured      bool
	Published     bool
	PublishedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

type ProjectImage struct {
	Id           uuid.UUID
	ProjectId    uuid.UUID
	ImageURL     string
	Caption      string
	DisplayOrder int
	CreatedAt    time.Time
}
