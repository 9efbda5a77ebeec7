package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamMember struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name         string         `gorm:"type:varchar(255);not null"`
	Title        string         `gorm:"type:varchar(255)"`
	Bio          string         `gorm:"type:text"`
	PhotoURL     string         `gorm:"type:text"`
	Email        string         `gorm:"type:varchar(255)"`
	Phone        string         `gorm:"type:varchar(50)"`
	DisplayOrder int            `gorm:"not null;default:0"`
	Published    bool           `gorm:"not null;default:false;index"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
