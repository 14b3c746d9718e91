package db

import (
	"gorm.io/gorm"
)

// NotDeleted is a GORM scope that filters out soft-deleted records.
// Use this scope when querying with Model().Where().Count() or similar patterns
// that may not automatically apply soft delete filtering.
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("deleted_at IS NULL")
	}
}

// ActiveUsers filters for users that are active and not soft-deleted.
func ActiveUsers() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true).Where("deleted_at IS NULL")
	}
}
