package service

import (
	"time"

	"industrial-site-be/internal/dto"
	"industrial-site-be/internal/entity"
	"industrial-site-be/internal/pkg/metrics"
	"industrial-site-be/pkg/richtext"
)

// Presenter turns entities into responses, rendering every document field to HTML.
type Presenter struct {
	renderer *richtext.Renderer
	metrics  *metrics.Registry
}

func NewPresenter(renderer *richtext.Renderer, m *metrics.Registry) *Presenter {
	return &Presenter{renderer: renderer, metrics: m}
}

func (p *Presenter) HTML(doc richtext.Document) string {
	if p.metrics != nil {
		p.metrics.DocumentsRendered.Inc()
	}
	return string(p.renderer.Render(doc))
}

func (p *Presenter) Service(s *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		Id:              s.Id,
		Name:            s.Name,
		Slug:            s.Slug,
		Tagline:         s.Tagline,
		Description:     s.Description,
		DescriptionHTML: p.HTML(s.Description),
		Icon:            s.Icon,
		HeroImageURL:    s.HeroImageURL,
		DisplayOrder:    s.DisplayOrder,
		Published:       s.Published,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (p *Presenter) Services(services []*entity.Service) []*dto.ServiceResponse {
	res := make([]*dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		res = append(res, p.Service(s))
	}
	return res
}

func (p *Presenter) SubService(s *entity.SubService) *dto.SubServiceResponse {
	return &dto.SubServiceResponse{
		Id:              s.Id,
		ServiceId:       s.ServiceId,
		Name:            s.Name,
		Slug:            s.Slug,
		Description:     s.Description,
		DescriptionHTML: p.HTML(s.Description),
		Icon:            s.Icon,
		ImageURL:        s.ImageURL,
		DisplayOrder:    s.DisplayOrder,
		Published:       s.Published,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (p *Presenter) SubServices(subs []*entity.SubService) []*dto.SubServiceResponse {
	res := make([]*dto.SubServiceResponse, 0, len(subs))
	for _, s := range subs {
		res = append(res, p.SubService(s))
	}
	return res
}

func (p *Presenter) Market(m *entity.Market) *dto.MarketResponse {
	return &dto.MarketResponse{
		Id:              m.Id,
		Name:            m.Name,
		Slug:            m.Slug,
		Description:     m.Description,
		DescriptionHTML: p.HTML(m.Description),
		IconURL:         m.IconURL,
		HeroImageURL:    m.HeroImageURL,
		DisplayOrder:    m.DisplayOrder,
		Published:       m.Published,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (p *Presenter) Markets(markets []*entity.Market) []*dto.MarketResponse {
	res := make([]*dto.MarketResponse, 0, len(markets))
	for _, m := range markets {
		res = append(res, p.Market(m))
	}
	return res
}

func (p *Presenter) Project(pr *entity.Project) *dto.ProjectResponse {
	servicesUsed := pr.ServicesUsed
	if servicesUsed == nil {
		servicesUsed = []string{}
	}
	return &dto.ProjectResponse{
		Id:              pr.Id,
		Title:           pr.Title,
		Slug:            pr.Slug,
		Client:          pr.Client,
		Location:        pr.Location,
		Description:     pr.Description,
		DescriptionHTML: p.HTML(pr.Description),
		Excerpt:         pr.Excerpt,
		FeaturedImage:   pr.FeaturedImage,
		ServicesUsed:    servicesUsed,
		Market:          pr.Market,
		Featured:        pr.Featured,
		Published:       pr.Published,
		PublishedAt:     pr.PublishedAt,
		CreatedAt:       pr.CreatedAt,
		UpdatedAt:       pr.UpdatedAt,
	}
}

func (p *Presenter) Projects(projects []*entity.Project) []*dto.ProjectResponse {
	res := make([]*dto.ProjectResponse, 0, len(projects))
	for _, pr := range projects {
		res = append(res, p.Project(pr))
	}
	return res
}

func (p *Presenter) ProjectImages(images []*entity.ProjectImage) []*dto.ProjectImageResponse {
	res := make([]*dto.ProjectImageResponse, 0, len(images))
	for _, img := range images {
		res = append(res, &dto.ProjectImageResponse{
			Id:           img.Id,
			ProjectId:    img.ProjectId,
			ImageURL:     img.ImageURL,
			Caption:      img.Caption,
			DisplayOrder: img.DisplayOrder,
		})
	}
	return res
}

func (p *Presenter) News(n *entity.NewsArticle) *dto.NewsResponse {
	return &dto.NewsResponse{
		Id:            n.Id,
		Title:         n.Title,
		Slug:          n.Slug,
		Type:          string(n.Type),
		Excerpt:       n.Excerpt,
		Content:       n.Content,
		ContentHTML:   p.HTML(n.Content),
		FeaturedImage: n.FeaturedImage,
		EventDate:     n.EventDate,
		EventLocation: n.EventLocation,
		Published:     n.Published,
		PublishedAt:   n.PublishedAt,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

func (p *Presenter) NewsList(articles []*entity.NewsArticle) []*dto.NewsResponse {
	res := make([]*dto.NewsResponse, 0, len(articles))
	for _, n := range articles {
		res = append(res, p.News(n))
	}
	return res
}

func (p *Presenter) JobPosting(j *entity.JobPosting, at time.Time) *dto.JobPostingResponse {
	res := &dto.JobPostingResponse{
		Id:              j.Id,
		Title:           j.Title,
		Slug:            j.Slug,
		Department:      j.Department,
		Location:        j.Location,
		EmploymentType:  string(j.EmploymentType),
		Description:     j.Description,
		DescriptionHTML: p.HTML(j.Description),
		Requirements:    j.Requirements,
		SalaryRange:     j.SalaryRange,
		Published:       j.Published,
		Active:          j.Active(at),
		PublishedAt:     j.PublishedAt,
		ExpiresAt:       j.ExpiresAt,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
	if j.Requirements != nil {
		res.RequirementsHTML = p.HTML(*j.Requirements)
	}
	return res
}

func (p *Presenter) JobPostings(jobs []*entity.JobPosting, at time.Time) []*dto.JobPostingResponse {
	res := make([]*dto.JobPostingResponse, 0, len(jobs))
	for _, j := range jobs {
		res = append(res, p.JobPosting(j, at))
	}
	return res
}

func (p *Presenter) Location(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		Id:             l.Id,
		Name:           l.Name,
		Address:        l.Address,
		City:           l.City,
		State:          l.State,
		Zip:            l.Zip,
		Phone:          l.Phone,
		Email:          l.Email,
		IsHeadquarters: l.IsHeadquarters,
		Lat:            l.Lat,
		Lng:            l.Lng,
		Published:      l.Published,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func (p *Presenter) Locations(locations []*entity.Location) []*dto.LocationResponse {
	res := make([]*dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		res = append(res, p.Location(l))
	}
	return res
}

func (p *Presenter) TeamMember(m *entity.TeamMember) *dto.TeamMemberResponse {
	return &dto.TeamMemberResponse{
		Id:           m.Id,
		Name:         m.Name,
		Title:        m.Title,
		Bio:          m.Bio,
		PhotoURL:     m.PhotoURL,
		Email:        m.Email,
		Phone:        m.Phone,
		DisplayOrder: m.DisplayOrder,
		Published:    m.Published,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (p *Presenter) TeamMembers(members []*entity.TeamMember) []*dto.TeamMemberResponse {
	res := make([]*dto.TeamMemberResponse, 0, len(members))
	for _, m := range members {
		res = append(res, p.TeamMember(m))
	}
	return res
}
