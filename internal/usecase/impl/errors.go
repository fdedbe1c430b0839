// Package impl contains the implementation of the application's business logic.
package impl

import (
	domainerrors "hobbyexplorer/internal/domain/errors"
	"hobbyexplorer/internal/domain/repository"
	"hobbyexplorer/internal/errors"
)

// toDomainError maps repository sentinels onto the errors the delivery layer renders.
// Anything else is returned unchanged.
func toDomainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrHobbyNotFound):
		return domainerrors.ErrHobbyNotFound
	case errors.Is(err, repository.ErrUserHobbyNotFound):
		return domainerrors.ErrUserHobbyNotFound
	default:
		return err
	}
}
