package usecase

import (
	"context"
	"fmt"

	"artliving/internal/data/repository"
	"artliving/internal/dto/request"
	"artliving/internal/dto/response"
	"artliving/internal/session"
	"artliving/pkg/utils"

	"go.uber.org/zap"
)

type ProfileService interface {
	GetProfile(sess *session.Context) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, sess *session.Context, req *request.ProfileRequest) (*response.UserResponse, error)
	ValidateProfile(req *request.ProfileRequest, field string) map[string]string
}

type profileService struct {
	userRepo repository.UserRepository
	config   *utils.Config
	log      *zap.Logger
}

func NewProfileService(userRepo repository.UserRepository, config *utils.Config, log *zap.Logger) ProfileService {
	return &profileService{
		userRepo: userRepo,
		config:   config,
		log:      log.With(zap.String("service", "profile")),
	}
}

func (s *profileService) GetProfile(sess *session.Context) (*response.UserResponse, error) {
	user := sess.Current()
	if user == nil {
		return nil, ErrLoginRequired
	}
	return response.UserToResponse(user), nil
}

// UpdateProfile writes the whole record back and pushes it through the
// session so every view of the tab sees the change.
func (s *profileService) UpdateProfile(ctx context.Context, sess *session.Context, req *request.ProfileRequest) (*response.UserResponse, error) {
	user := sess.Current()
	if user == nil {
		return nil, ErrLoginRequired
	}

	if err := validateForm(req, request.ProfileMessages); err != nil {
		return nil, err
	}

	password := req.Password
	if s.config.Auth.HashPasswords {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("failed to process password: %w", err)
		}
		password = hashed
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	user.Phone = req.Phone
	user.Password = password
	user.Address.Street = req.Street
	user.Address.City = req.City
	if req.Zip != "" {
		user.Address.Zip = req.Zip
	}

	updated, err := s.userRepo.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	if err := sess.Update(ctx, updated); err != nil {
		s.log.Error("Failed to refresh session user", zap.Error(err), zap.String("user_id", updated.ID.String()))
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.log.Info("Profile updated", zap.String("user_id", updated.ID.String()))
	return response.UserToResponse(updated), nil
}

func (s *profileService) ValidateProfile(req *request.ProfileRequest, field string) map[string]string {
	return utils.ValidateField(req, field, request.ProfileMessages)
}
