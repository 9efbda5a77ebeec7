package entity

import (
	"time"

	"industrial-site-be/pkg/richtext"

	"github.com/google/uuid"
)

type NewsType string

const (
	NewsTypeNews  NewsType = "news"
	NewsTypeEvent NewsType = "event"
)

type NewsArticle struct {
	Id            uuid.UUID
	Title         string
	Slug          string
	Type          NewsType
	Excerpt       string
	Content       richtext.Document
	FeaturedImage string
	EventDate     *time.Time
	EventLocation string
	Published     bool
	PublishedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
