package scope

import "gorm.io/gorm"

func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

func OrderByDisplayOrder(db *gorm.DB) *gorm.DB {
	return db.Order("display_order ASC").Order("created_at ASC")
}

// NewestPublishedFirst orders by publication time, falling back to creation time.
func NewestPublishedFirst(db *gorm.DB) *gorm.DB {
	return db.Order("published_at DESC").Order("created_at DESC")
}

func HeadquartersFirst(db *gorm.DB) *gorm.DB {
	return db.Order("is_headquarters DESC").Order("name ASC")
}
