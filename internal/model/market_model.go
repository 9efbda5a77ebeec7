package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Market struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name         string         `gorm:"type:varchar(255);not null"`
	Slug         string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_markets_live_slug,where:deleted_at IS NULL"`
	Description  datatypes.JSON `gorm:"not null"`
	IconURL      string         `gorm:"type:text"`
	HeroImageURL string         `gorm:"type:text"`
	DisplayOrder int            `gorm:"not null;default:0"`
	Published    bool           `gorm:"not null;default:false;index"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Market) TableName() string {
	return "markets"
}
