package dto

import (
	"encoding/json"
	"time"

	"industrial-site-be/pkg/richtext"

	"github.com/google/uuid"
)

type DashboardStatsResponse struct {
	TeamMembers       int64 `json:"team_members"`
	Services          int64 `json:"services"`
	Projects          int64 `json:"projects"`
	PublishedProjects int64 `json:"published_projects"`
	Markets           int64 `json:"markets"`
	News              int64 `json:"news"`
	PublishedNews     int64 `json:"published_news"`
	Jobs              int64 `json:"jobs"`
	PublishedJobs     int64 `json:"published_jobs"`
	ActiveJobs        int64 `json:"active_jobs"`
	Locations         int64 `json:"locations"`
}

type SlugResponse struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type DocumentPreviewRequest struct {
	Document json.RawMessage `json:"document"`
}

type DocumentPreviewResponse struct {
	Document richtext.Document `json:"document"`
	HTML     string            `json:"html"`
	Text     string            `json:"text"`
	Empty    bool              `json:"empty"`
}

type ImportHTMLRequest struct {
	HTML string `json:"html" validate:"required"`
}

type ApprovedEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Note  string `json:"note"`
}

type ApprovedEmailResponse struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

type UploadResponse struct {
	URL  string `json:"url"`
	Path string `json:"path"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// Log IDs are MD5 hashes of the log line, not UUIDs.
type LogListResponse struct {
	Id        string `json:"id"`
	Level     string `json:"level"`
	Module    string `json:"module"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type LogDetailResponse struct {
	LogListResponse
	Details map[string]interface{} `json:"details"`
}
