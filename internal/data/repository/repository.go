package repository

import (
	"errors"
	"net/http"

	"artliving/pkg/restapi"
	"artliving/pkg/storage"

	"go.uber.org/zap"
)

// PageSize is the fixed _limit of every paginated product query.
const PageSize = 20

type Repository struct {
	Product ProductRepository
	User    UserRepository
	Review  ReviewRepository
	Session SessionRepository
}

func NewRepository(client restapi.ClientIface, store storage.KeyValueStore, log *zap.Logger) *Repository {
	return &Repository{
		Product: NewProductRepository(client, log),
		User:    NewUserRepository(client, log),
		Review:  NewReviewRepository(client, log),
		Session: NewSessionRepository(store, log),
	}
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var statusErr *restapi.StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}
