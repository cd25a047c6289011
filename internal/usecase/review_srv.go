package usecase

import (
	"context"
	"fmt"
	"time"

	"artliving/internal/data/entity"
	"artliving/internal/data/repository"
	"artliving/internal/dto/request"
	"artliving/internal/dto/response"
	"artliving/internal/view"
	"artliving/pkg/utils"

	"go.uber.org/zap"
)

type ReviewService interface {
	// AddReview posts the review and returns the product page with the
	// freshly fetched review list.
	AddReview(ctx context.Context, productID entity.ID, viewer *entity.User, req *request.CreateReviewRequest) (*response.ProductDetail, error)
	DeleteReview(ctx context.Context, productID, reviewID entity.ID, viewer *entity.User) (*response.ProductDetail, error)
	ValidateReview(req *request.CreateReviewRequest, field string) map[string]string
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
		now:  time.Now,
	}
}

func (s *reviewService) AddReview(ctx context.Context, productID entity.ID, viewer *entity.User, req *request.CreateReviewRequest) (*response.ProductDetail, error) {
	// Admins see reviews but never write them.
	if viewer == nil {
		return nil, ErrLoginRequired
	}
	if !view.CanAddReview(viewer) {
		return nil, ErrForbidden
	}

	if err := validateForm(req, request.ReviewMessages); err != nil {
		return nil, err
	}

	userName := viewer.UserName
	if userName == "" {
		userName = viewer.FirstName
	}

	review := &entity.Review{
		ProductID: productID,
		UserID:    viewer.ID,
		UserName:  userName,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Date:      utils.Today(s.now()),
	}

	created, err := s.repo.Review.Create(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("add review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", created.ID.String()),
		zap.String("product_id", productID.String()),
		zap.String("user_id", viewer.ID.String()))

	return loadProductDetail(ctx, s.repo, productID, viewer)
}

func (s *reviewService) DeleteReview(ctx context.Context, productID, reviewID entity.ID, viewer *entity.User) (*response.ProductDetail, error) {
	if viewer == nil {
		return nil, ErrLoginRequired
	}

	reviews, err := s.repo.Review.FindByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("delete review: %w", err)
	}

	var target *entity.Review
	for i := range reviews {
		if reviews[i].ID == reviewID {
			target = &reviews[i]
			break
		}
	}
	if target == nil {
		return nil, ErrNotFound
	}

	if !view.CanDeleteReview(viewer, *target) {
		s.log.Warn("Review delete denied",
			zap.String("review_id", reviewID.String()),
			zap.String("user_id", viewer.ID.String()))
		return nil, ErrForbidden
	}

	if err := s.repo.Review.Delete(ctx, reviewID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("delete review: %w", err)
	}

	return loadProductDetail(ctx, s.repo, productID, viewer)
}

func (s *reviewService) ValidateReview(req *request.CreateReviewRequest, field string) map[string]string {
	return utils.ValidateField(req, field, request.ReviewMessages)
}
