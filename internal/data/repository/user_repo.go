package repository

import (
	"context"
	"fmt"
	"net/url"

	"artliving/internal/data/entity"
	"artliving/pkg/restapi"

	"go.uber.org/zap"
)

type UserRepository interface {
	// FindByCredentials returns every user matching email and password.
	// The backend compares the plaintext password; an empty list means no match.
	FindByCredentials(ctx context.Context, email, password string) ([]entity.User, error)
	FindByEmail(ctx context.Context, email string) ([]entity.User, error)
	FindByID(ctx context.Context, id entity.ID) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	// Update replaces the whole record.
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
}

type userRepository struct {
	api restapi.ClientIface
	log *zap.Logger
}

func NewUserRepository(api restapi.ClientIface, log *zap.Logger) UserRepository {
	return &userRepository{
		api: api,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) FindByCredentials(ctx context.Context, email, password string) ([]entity.User, error) {
	query := url.Values{}
	query.Set("email", email)
	query.Set("password", password)

	var users []entity.User
	if err := r.api.Get(ctx, "/users", query, &users); err != nil {
		r.log.Error("Failed to match credentials", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find user by credentials: %w", err)
	}

	return users, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) ([]entity.User, error) {
	query := url.Values{}
	query.Set("email", email)

	var users []entity.User
	if err := r.api.Get(ctx, "/users", query, &users); err != nil {
		r.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id entity.ID) (*entity.User, error) {
	var user entity.User
	if err := r.api.Get(ctx, "/users/"+url.PathEscape(id.String()), nil, &user); err != nil {
		r.log.Error("Failed to find user by ID", zap.Error(err), zap.String("user_id", id.String()))
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}

	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	var created entity.User
	if err := r.api.Post(ctx, "/users", user, &created); err != nil {
		r.log.Error("Failed to create user", zap.Error(err), zap.String("email", user.Email))
		return nil, fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return &created, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	var updated entity.User
	if err := r.api.Put(ctx, "/users/"+url.PathEscape(user.ID.String()), user, &updated); err != nil {
		r.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("update user %s: %w", user.ID, err)
	}

	return &updated, nil
}
