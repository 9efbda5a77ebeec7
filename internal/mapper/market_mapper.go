package mapper

import (
	"industrial-site-be/internal/entity"
	"industrial-site-be/internal/model"
)

type MarketMapper struct {
	codec *DocumentCodec
}

func NewMarketMapper(codec *DocumentCodec) *MarketMapper {
	return &MarketMapper{codec: codec}
}

func (m *MarketMapper) ToEntity(mk *model.Market) *entity.Market {
	if mk == nil {
		return nil
	}
	return &entity.Market{
		Id:           mk.Id,
		Name:         mk.Name,
		Slug:         mk.Slug,
		Description:  m.codec.Decode(mk.Description, "market", mk.Id, "description"),
		IconURL:      mk.IconURL,
		HeroImageURL: mk.HeroImageURL,
		DisplayOrder: mk.DisplayOrder,
		Published:    mk.Published,
		CreatedAt:    mk.CreatedAt,
		UpdatedAt:    optionalTime(mk.UpdatedAt),
	}
}

func (m *MarketMapper) ToModel(mk *entity.Market) *model.Market {
	if mk == nil {
		return nil
	}
	return &model.Market{
		Id:           mk.Id,
		Name:         mk.Name,
		Slug:         mk.Slug,
		Description:  m.codec.Encode(mk.Description),
		IconURL:      mk.IconURL,
		HeroImageURL: mk.HeroImageURL,
		DisplayOrder: mk.DisplayOrder,
		Published:    mk.Published,
		CreatedAt:    mk.CreatedAt,
		UpdatedAt:    timeValue(mk.UpdatedAt),
	}
}

func (m *MarketMapper) ToEntities(markets []*model.Market) []*entity.Market {
	entities := make([]*entity.Market, len(markets))
	for i, mk := range markets {
		entities[i] = m.ToEntity(mk)
	}
	return entities
}
