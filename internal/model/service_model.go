package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Service struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name         string         `gorm:"type:varchar(255);not null"`
	Slug         string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_services_live_slug,where:deleted_at IS NULL"`
	Tagline      string         `gorm:"type:text"`
	Description  datatypes.JSON `gorm:"not null"`
	Icon         string         `gorm:"type:varchar(255)"`
	HeroImageURL string         `gorm:"type:text"`
	DisplayOrder int            `gorm:"not null;default:0"`
	Published    bool           `gorm:"not null;default:false;index"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Service) TableName() string {
	return "services"
}

type SubService struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ServiceId    uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_sub_services_service_live_slug,where:deleted_at IS NULL"`
	Name         string         `gorm:"type:varchar(255);not null"`
	Slug         string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_sub_services_service_live_slug,where:deleted_at IS NULL"`
	Description  datatypes.JSON `gorm:"not null"`
	Icon         string         `gorm:"type:varchar(255)"`
	ImageURL     string         `gorm:"type:text"`
	DisplayOrder int            `gorm:"not null;default:0"`
	Published    bool           `gorm:"not null;default:false"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (SubService) TableName() string {
	return "sub_services"
}
