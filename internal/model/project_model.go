package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Project struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title         string         `gorm:"type:varchar(255);not null"`
	Slug          string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_projects_live_slug,where:deleted_at IS NULL"`
	Client        string         `gorm:"type:varchar(255)"`
	Location      string         `gorm:"type:varchar(255)"`
	Description   datatypes.JSON `gorm:"not null"`
	Excerpt       string         `gorm:"type:text"`
	FeaturedImage string         `gorm:"type:text"`
	ServicesUsed  datatypes.JSONSlice[string]
	Market        string `gorm:"type:varchar(255);index"`
	Featured      bool   `gorm:"not null;default:false"`
	Published     bool   `gorm:"not null;default:false;index"`
	PublishedAt   *time.Time
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Project) TableName() string {
	return "projects"
}

type ProjectImage struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectId    uuid.UUID `gorm:"type:uuid;not null;index"`
	ImageURL     string    `gorm:"type:text;not null"`
	Caption      string    `gorm:"type:text"`
	DisplayOrder int       `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (ProjectImage) TableName() string {
	return "project_images"
}
