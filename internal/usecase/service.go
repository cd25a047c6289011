package usecase

import (
	"artliving/internal/data/repository"
	"artliving/pkg/utils"

	"go.uber.org/zap"
)

// Service groups the stateless services. Feed and search controllers hold
// per-tab state and are created with each tab.
type Service struct {
	Auth    AuthService
	Profile ProfileService
	Product ProductService
	Review  ReviewService
}

func NewService(repo *repository.Repository, invalidator Invalidator, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Profile: NewProfileService(repo.User, config, log),
		Product: NewProductService(repo, invalidator, log),
		Review:  NewReviewService(repo, log),
	}
}
