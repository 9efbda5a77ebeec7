package specification

import (
	"strings"

	"gorm.io/gorm"
)

// ByEmail matches case-insensitively; stored emails are lower-cased on write.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", strings.ToLower(strings.TrimSpace(s.Email)))
}
