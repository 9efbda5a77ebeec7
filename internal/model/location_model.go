package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Location struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Address        string    `gorm:"type:text"`
	City           string    `gorm:"type:varchar(255)"`
	State          string    `gorm:"type:varchar(100)"`
	Zip            string    `gorm:"type:varchar(20)"`
	Phone          string    `gorm:"type:varchar(50)"`
	Email          string    `gorm:"type:varchar(255)"`
	IsHeadquarters bool      `gorm:"not null;default:false"`
	Lat            *float64
	Lng            *float64
	Published      bool           `gorm:"not null;default:false;index"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Location) TableName() string {
	return "locations"
}
