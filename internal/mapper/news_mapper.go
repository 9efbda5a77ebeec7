package mapper

import (
	"industrial-site-be/internal/entity"
	"industrial-site-be/internal/model"
)

type NewsMapper struct {
	codec *DocumentCodec
}

func NewNewsMapper(codec *DocumentCodec) *NewsMapper {
	return &NewsMapper{codec: codec}
}

func (m *NewsMapper) ToEntity(n *model.NewsArticle) *entity.NewsArticle {
	if n == nil {
		return nil
	}
	return &entity.NewsArticle{
		Id:            n.Id,
		Title:         n.Title,
		Slug:          n.Slug,
		Type:          entity.NewsType(n.Type),
		Excerpt:       n.Excerpt,
		Content:       m.codec.Decode(n.Content, "news", n.Id, "content"),
		FeaturedImage: n.FeaturedImage,
		EventDate:     n.EventDate,
		EventLocation: n.EventLocation,
		Published:     n.Published,
		PublishedAt:   n.PublishedAt,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     optionalTime(n.UpdatedAt),
	}
}

func (m *NewsMapper) ToModel(n *entity.NewsArticle) *model.NewsArticle {
	if n == nil {
		return nil
	}
	return &model.NewsArticle{
		Id:            n.Id,
		Title:         n.Title,
		Slug:          n.Slug,
		Type:          string(n.Type),
		Excerpt:       n.Excerpt,
		Content:       m.codec.Encode(n.Content),
		FeaturedImage: n.FeaturedImage,
		EventDate:     n.EventDate,
		EventLocation: n.EventLocation,
		Published:     n.Published,
		PublishedAt:   n.PublishedAt,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     timeValue(n.UpdatedAt),
	}
}

func (m *NewsMapper) ToEntities(articles []*model.NewsArticle) []*entity.NewsArticle {
	entities := make([]*entity.NewsArticle, len(articles))
	for i, n := range articles {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
