package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NewsArticle struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title         string         `gorm:"type:varchar(255);not null"`
	Slug          string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_news_articles_live_slug,where:deleted_at IS NULL"`
	Type          string         `gorm:"type:varchar(20);not null;default:'news';index"`
	Excerpt       string         `gorm:"type:text"`
	Content       datatypes.JSON `gorm:"not null"`
	FeaturedImage string         `gorm:"type:text"`
	EventDate     *time.Time
	EventLocation string         `gorm:"type:varchar(255)"`
	Published     bool           `gorm:"not null;default:false;index"`
	PublishedAt   *time.Time     `gorm:"index"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (NewsArticle) TableName() string {
	return "news_articles"
}
