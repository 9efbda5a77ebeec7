package dto

import (
	"encoding/json"
	"time"

	"industrial-site-be/pkg/richtext"

	"github.com/google/uuid"
)

// Document fields arrive as raw JSON so they can be inspected before anything is stored.
// An omitted document becomes the empty document.

type ServiceRequest struct {
	Name         string          `json:"name" validate:"required,max=255"`
	Slug         string          `json:"slug" validate:"omitempty,slug"`
	Tagline      string          `json:"tagline"`
	Description  json.RawMessage `json:"description"`
	Icon         string          `json:"icon"`
	HeroImageURL string          `json:"hero_image_url"`
	DisplayOrder int             `json:"display_order"`
	Published    bool            `json:"published"`
}

type ServiceResponse struct {
	Id              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	Slug            string            `json:"slug"`
	Tagline         string            `json:"tagline"`
	Description     richtext.Document `json:"description"`
	DescriptionHTML string            `json:"description_html"`
	Icon            string            `json:"icon"`
	HeroImageURL    string            `json:"hero_image_url"`
	DisplayOrder    int               `json:"display_order"`
	Published       bool              `json:"published"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       *time.Time        `json:"updated_at"`
}

type ServiceDetailResponse struct {
	ServiceResponse
	SubServices []*SubServiceResponse `json:"sub_services"`
}

type SubServiceRequest struct {
	Name         string          `json:"name" validate:"required,max=255"`
	Slug         string          `json:"slug" validate:"omitempty,slug"`
	Description  json.RawMessage `json:"description"`
	Icon         string          `json:"icon"`
	ImageURL     string          `json:"image_url"`
	DisplayOrder int             `json:"display_order"`
	Published    bool            `json:"published"`
}

type SubServiceResponse struct {
	Id              uuid.UUID         `json:"id"`
	ServiceId       uuid.UUID         `json:"service_id"`
	Name            string            `json:"name"`
	Slug            string            `json:"slug"`
	Description     richtext.Document `json:"description"`
	DescriptionHTML string            `json:"description_html"`
	Icon            string            `json:"icon"`
	ImageURL        string            `json:"image_url"`
	DisplayOrder    int               `json:"display_order"`
	Published       bool              `json:"published"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       *time.Time        `json:"updated_at"`
}

type MarketRequest struct {
	Name         string          `json:"name" validate:"required,max=255"`
	Slug         string          `json:"slug" validate:"omitempty,slug"`
	Description  json.RawMessage `json:"description"`
	IconURL      string          `json:"icon_url"`
	HeroImageURL string          `json:"hero_image_url"`
	DisplayOrder int             `json:"display_order"`
	Published    bool            `json:"published"`
}

type MarketResponse struct {
	Id              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	Slug            string            `json:"slug"`
	Description     richtext.Document `json:"description"`
	DescriptionHTML string            `json:"description_html"`
	IconURL         string            `json:"icon_url"`
	HeroImageURL    string            `json:"hero_image_url"`
	DisplayOrder    int               `json:"display_order"`
	Published       bool              `json:"published"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       *time.Time        `json:"updated_at"`
}

type ProjectRequest struct {
	Title         string          `json:"title" validate:"required,max=255"`
	Slug          string          `json:"slug" validate:"omitempty,slug"`
	Client        string          `json:"client"`
	Location      string          `json:"location"`
	Description   json.RawMessage `json:"description"`
	Excerpt       string          `json:"excerpt"`
	FeaturedImage string          `json:"featured_image"`
	ServicesUsed  []string        `json:"services_used"`
	Market        string          `json:"market"`
	Featured      bool            `json:"featured"`
	Published     bool            `json:"published"`
}

type ProjectResponse struct {
	Id              uuid.UUID         `json:"id"`
	Title           string            `json:"title"`
	Slug            string            `json:"slug"`
	Client          string            `json:"client"`
	Location        string            `json:"location"`
	Description     richtext.Document `json:"description"`
	DescriptionHTML string            `json:"description_html"`
	Excerpt         string            `json:"excerpt"`
	FeaturedImage   string            `json:"featured_image"`
	ServicesUsed    []string          `json:"services_used"`
	Market          string            `json:"market"`
	Featured        bool              `json:"featured"`
	Published       bool              `json:"published"`
	PublishedAt     *time.Time        `json:"published_at"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       *time.Time        `json:"updated_at"`
}

type ProjectDetailResponse struct {
	ProjectResponse
	Images []*ProjectImageResponse `json:"images"`
}

type ProjectImageRequest struct {
	ImageURL     string `json:"image_url" validate:"required"`
	Caption      string `json:"caption"`
	DisplayOrder int    `json:"display_order"`
}

type ProjectImageResponse struct {
	Id           uuid.UUID `json:"id"`
	ProjectId    uuid.UUID `json:"project_id"`
	ImageURL     string    `json:"image_url"`
	Caption      string    `json:"caption"`
	DisplayOrder int       `json:"display_order"`
}

type ProjectFilter struct {
	Featured bool
	Market   string
	Limit    int
}

type NewsRequest struct {
	Title         string          `json:"title" validate:"required,max=255"`
	Slug          string          `json:"slug" validate:"omitempty,slug"`
	Type          string          `json:"type" validate:"omitempty,oneof=news event"`
	Excerpt       string          `json:"excerpt"`
	Content       json.RawMessage `json:"content"`
	FeaturedImage string          `json:"featured_image"`
	EventDate     *time.Time      `json:"event_date"`
	EventLocation string          `json:"event_location"`
	Published     bool            `json:"published"`
}

type NewsResponse struct {
	Id            uuid.UUID         `json:"id"`
	Title         string            `json:"title"`
	Slug          string            `json:"slug"`
	Type          string            `json:"type"`
	Excerpt       string            `json:"excerpt"`
	Content       richtext.Document `json:"content"`
	ContentHTML   string            `json:"content_html"`
	FeaturedImage string            `json:"featured_image"`
	EventDate     *time.Time        `json:"event_date"`
	EventLocation string            `json:"event_location"`
	Published     bool              `json:"published"`
	PublishedAt   *time.Time        `json:"published_at"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     *time.Time        `json:"updated_at"`
}

type NewsFilter struct {
	Type  string
	Limit int
}

type JobPostingRequest struct {
	Title          string          `json:"title" validate:"required,max=255"`
	Slug           string          `json:"slug" validate:"omitempty,slug"`
	Department     string          `json:"department"`
	Location       string          `json:"location"`
	EmploymentType string          `json:"employment_type" validate:"omitempty,oneof=Full-time Part-time Contract Internship"`
	Description    json.RawMessage `json:"description"`
	Requirements   json.RawMessage `json:"requirements"`
	SalaryRange    string          `json:"salary_range"`
	Published      bool            `json:"published"`
	ExpiresAt      *time.Time      `json:"expires_at"`
}

type JobPostingResponse struct {
	Id               uuid.UUID          `json:"id"`
	Title            string             `json:"title"`
	Slug             string             `json:"slug"`
	Department       string             `json:"department"`
	Location         string             `json:"location"`
	EmploymentType   string             `json:"employment_type"`
	Description      richtext.Document  `json:"description"`
	DescriptionHTML  string             `json:"description_html"`
	Requirements     *richtext.Document `json:"requirements"`
	RequirementsHTML string             `json:"requirements_html,omitempty"`
	SalaryRange      string             `json:"salary_range"`
	Published        bool               `json:"published"`
	Active           bool               `json:"active"`
	PublishedAt      *time.Time         `json:"published_at"`
	ExpiresAt        *time.Time         `json:"expires_at"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        *time.Time         `json:"updated_at"`
}

type LocationRequest struct {
	Name           string   `json:"name" validate:"required,max=255"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	State          string   `json:"state"`
	Zip            string   `json:"zip"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email" validate:"omitempty,email"`
	IsHeadquarters bool     `json:"is_headquarters"`
	Lat            *float64 `json:"lat" validate:"omitempty,latitude"`
	Lng            *float64 `json:"lng" validate:"omitempty,longitude"`
	Published      bool     `json:"published"`
}

type LocationResponse struct {
	Id             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Address        string     `json:"address"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	Zip            string     `json:"zip"`
	Phone          string     `json:"phone"`
	Email          string     `json:"email"`
	IsHeadquarters bool       `json:"is_headquarters"`
	Lat            *float64   `json:"lat"`
	Lng            *float64   `json:"lng"`
	Published      bool       `json:"published"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

type TeamMemberRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	Title        string `json:"title"`
	Bio          string `json:"bio"`
	PhotoURL     string `json:"photo_url"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	DisplayOrder int    `json:"display_order"`
	Published    bool   `json:"published"`
}

type TeamMemberResponse struct {
	Id           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Title        string     `json:"title"`
	Bio          string     `json:"bio"`
	PhotoURL     string     `json:"photo_url"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	DisplayOrder int        `json:"display_order"`
	Published    bool       `json:"published"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

type HomeResponse struct {
	Services         []*ServiceResponse `json:"services"`
	FeaturedProjects []*ProjectResponse `json:"featured_projects"`
	Markets          []*MarketResponse  `json:"markets"`
	LatestNews       []*NewsResponse    `json:"latest_news"`
}
