package usecase

import (
	"context"
	"fmt"

	"artliving/internal/data/entity"
	"artliving/internal/data/repository"
	"artliving/internal/dto/request"
	"artliving/internal/dto/response"
	"artliving/internal/session"
	"artliving/pkg/utils"

	"go.uber.org/zap"
)

const (
	signUpState = "Israel"
	signUpZip   = "0000000"
)

type AuthService interface {
	Login(ctx context.Context, sess *session.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	SignUp(ctx context.Context, req *request.SignUpRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, sess *session.Context) error

	// Blur validation of a single field.
	ValidateLogin(req *request.LoginRequest, field string) map[string]string
	ValidateSignUp(req *request.SignUpRequest, field string) map[string]string
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, sess *session.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if err := validateForm(req, request.LoginMessages); err != nil {
		s.log.Debug("Login validation failed", zap.Error(err))
		return nil, err
	}

	// 2. Match credentials
	user, err := s.matchCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.log.Warn("Invalid credentials", zap.String("email", req.Email))
		return nil, fieldError("password", response.MsgLoginFailed, ErrInvalidCredentials)
	}

	// 3. Start the session
	if err := sess.Login(ctx, user); err != nil {
		s.log.Error("Failed to store session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("login: %w", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &response.AuthResponse{
		User:     response.UserToResponse(user),
		Redirect: "/home",
	}, nil
}

func (s *authService) SignUp(ctx context.Context, req *request.SignUpRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if err := validateForm(req, request.SignUpMessages); err != nil {
		s.log.Debug("Sign-up validation failed", zap.Error(err))
		return nil, err
	}

	// 2. Check email is free
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	if len(existing) > 0 {
		s.log.Info("Sign-up with registered email", zap.String("email", req.Email))
		return nil, fieldError("email", response.MsgEmailExists, ErrEmailExists)
	}

	// 3. Build the user
	password, err := s.storedPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  password,
		UserName:  utils.UserNameFromEmail(req.Email),
		Address: entity.Address{
			City:  req.City,
			State: signUpState,
			Zip:   signUpZip,
		},
	}

	// 4. Save
	created, err := s.repo.User.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", created.ID.String()),
		zap.String("email", created.Email))

	return &response.AuthResponse{
		User:     response.UserToResponse(created),
		Redirect: "/login",
	}, nil
}

func (s *authService) Logout(ctx context.Context, sess *session.Context) error {
	if err := sess.Logout(ctx); err != nil {
		s.log.Error("Failed to clear session", zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) ValidateLogin(req *request.LoginRequest, field string) map[string]string {
	return utils.ValidateField(req, field, request.LoginMessages)
}

func (s *authService) ValidateSignUp(req *request.SignUpRequest, field string) map[string]string {
	return utils.ValidateField(req, field, request.SignUpMessages)
}

// ==================== HELPER METHODS ====================

// matchCredentials returns nil, nil when nobody matches.
func (s *authService) matchCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	if !s.config.Auth.HashPasswords {
		users, err := s.repo.User.FindByCredentials(ctx, email, password)
		if err != nil {
			return nil, fmt.Errorf("login: %w", err)
		}
		if len(users) == 0 {
			return nil, nil
		}
		return &users[0], nil
	}

	users, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	for i := range users {
		if utils.CheckPasswordHash(password, users[i].Password) {
			return &users[i], nil
		}
	}
	return nil, nil
}

// storedPassword is the value written to the backend's password field.
func (s *authService) storedPassword(password string) (string, error) {
	if !s.config.Auth.HashPasswords {
		return password, nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return "", fmt.Errorf("failed to process password: %w", err)
	}
	return hashed, nil
}
