package dbutil

import (
	"github.com/Aidin1998/rosterhub/pkg/errors"
	"gorm.io/gorm"
)

// FindOne loads the first row matched by db into a T. No match is errors.NotFound.
func FindOne[T any](db *gorm.DB) (*T, error) {
	var item T
	result := db.Limit(1).Find(&item)
	if result.Error != nil {
		return nil, WrapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errors.NotFound
	}
	return &item, nil
}

// RequireAffected turns a write that touched no rows into errors.NotFound.
func RequireAffected(result *gorm.DB) error {
	if result.Error != nil {
		return WrapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound
	}
	return nil
}
