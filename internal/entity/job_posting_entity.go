package entity

import (
	"time"

	"industrial-site-be/pkg/richtext"

	"github.com/google/uuid"
)

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "Full-time"
	EmploymentPartTime   EmploymentType = "Part-time"
	EmploymentContract   EmploymentType = "Contract"
	EmploymentInternship EmploymentType = "Internship"
)

type JobPosting struct {
	Id             uuid.UUID
	Title          string
	Slug           string
	Department     string
	Location       string
	EmploymentType EmploymentType
	Description    richtext.Document
	Requirements   *richtext.Document
	SalaryRange    string
	Published      bool
	PublishedAt    *time.Time
	ExpiresAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Active reports whether the posting is published and not past its expiry at now.
func (j *JobPosting) Active(now time.Time) bool {
	return j.Published && (j.ExpiresAt == nil || j.ExpiresAt.After(now))
}
