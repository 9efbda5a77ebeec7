package mapper

import (
	"industrial-site-be/internal/entity"
	"industrial-site-be/internal/model"
)

type JobPostingMapper struct {
	codec *DocumentCodec
}

func NewJobPostingMapper(codec *DocumentCodec) *JobPostingMapper {
	return &JobPostingMapper{codec: codec}
}

func (m *JobPostingMapper) ToEntity(j *model.JobPosting) *entity.JobPosting {
	if j == nil {
		return nil
	}
	return &entity.JobPosting{
		Id:             j.Id,
		Title:          j.Title,
		Slug:           j.Slug,
		Department:     j.Department,
		Location:       j.Location,
		EmploymentType: entity.EmploymentType(j.EmploymentType),
		Description:    m.codec.Decode(j.Description, "job_posting", j.Id, "description"),
		Requirements:   m.codec.DecodeOptional(j.Requirements, "job_posting", j.Id, "requirements"),
		SalaryRange:    j.SalaryRange,
		Published:      j.Published,
		PublishedAt:    j.PublishedAt,
		ExpiresAt:      j.ExpiresAt,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      optionalTime(j.UpdatedAt),
	}
}

func (m *JobPostingMapper) ToModel(j *entity.JobPosting) *model.JobPosting {
	if j == nil {
		return nil
	}
	return &model.JobPosting{
		Id:             j.Id,
		Title:          j.Title,
		Slug:           j.Slug,
		Department:     j.Department,
		Location:       j.Location,
		EmploymentType: string(j.EmploymentType),
		Description:    m.codec.Encode(j.Description),
		Requirements:   m.codec.EncodeOptional(j.Requirements),
		SalaryRange:    j.SalaryRange,
		Published:      j.Published,
		PublishedAt:    j.PublishedAt,
		ExpiresAt:      j.ExpiresAt,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      timeValue(j.UpdatedAt),
	}
}

func (m *JobPostingMapper) ToEntities(jobs []*model.JobPosting) []*entity.JobPosting {
	entities := make([]*entity.JobPosting, len(jobs))
	for i, j := range jobs {
		entities[i] = m.ToEntity(j)
	}
	return entities
}
