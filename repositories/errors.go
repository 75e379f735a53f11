package repositories

import (
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// translate maps driver errors onto repository sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return errors.Wrap(ErrAlreadyExists, err.Error())
	default:
		return err
	}
}
