package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means a referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate means a unique constraint (name or slug) was violated.
	ErrDuplicate = errors.New("duplicate record")
)

// translate maps gorm's sentinel errors onto the repository taxonomy.
// Requires TranslateError to be enabled on the gorm config.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
