package services

import (
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"task-manager/backend/repositories"
)

// classify turns repository sentinels into service errors; message is used for
// not-found and conflict cases.
func classify(err error, notFound, conflict string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return NewError(ErrorCodeNotFound, notFound)
	case errors.Is(err, repositories.ErrAlreadyExists):
		return NewError(ErrorCodeConflict, conflict)
	default:
		return err
	}
}

// exists reports whether a lookup found a document, treating not-found as false.
func exists(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, repositories.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

func uniqueIDs(groups ...[]primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{})
	var ids []primitive.ObjectID
	for _, group := range groups {
		for _, id := range group {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
