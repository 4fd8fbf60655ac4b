package service

import (
	"errors"

	"gorm.io/gorm"
)

// translate maps store errors to domain errors: a missing row becomes notFound
// and a unique-key violation becomes conflict.
func translate(err, notFound, conflict error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case conflict != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return conflict
	default:
		return err
	}
}
