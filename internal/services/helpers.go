package services

import (
	"errors"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
)

// mapRepoError translates storage sentinel errors into their service
// counterparts so handlers only need to know about this package.
func mapRepoError(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, storage.ErrDuplicateEmail):
		return ErrConflict
	case errors.Is(err, storage.ErrDuplicateApplication):
		return ErrAlreadyApplied
	case errors.Is(err, storage.ErrConflict):
		return ErrConflict
	default:
		return err
	}
}

// isValidApplicationTransition reports whether an application may move
// from one status to another. Rejection is terminal.
func isValidApplicationTransition(from, to models.ApplicationStatus) bool {
	switch from {
	case models.ApplicationStatusPending:
		return to == models.ApplicationStatusShortlisted || to == models.ApplicationStatusRejected
	case models.ApplicationStatusShortlisted:
		return to == models.ApplicationStatusRejected
	default:
		return false
	}
}
