package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JobPosting struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title          string         `gorm:"type:varchar(255);not null"`
	Slug           string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_job_postings_live_slug,where:deleted_at IS NULL"`
	Department     string         `gorm:"type:varchar(255)"`
	Location       string         `gorm:"type:varchar(255)"`
	EmploymentType string         `gorm:"type:varchar(20);not null;default:'Full-time'"`
	Description    datatypes.JSON `gorm:"not null"`
	Requirements   datatypes.JSON
	SalaryRange    string `gorm:"type:varchar(255)"`
	Published      bool   `gorm:"not null;default:false;index"`
	PublishedAt    *time.Time
	ExpiresAt      *time.Time     `gorm:"index"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (JobPosting) TableName() string {
	return "job_postings"
}
