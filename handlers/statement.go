package handlers

import (
	"errors"

	"gorm.io/gorm"
)

// requireRows reports notFound when a write matched nothing, so WithTx rolls it back.
func requireRows(result *gorm.DB, notFound error) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound
	}
	return nil
}

func foundOr(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
