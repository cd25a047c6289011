package repository

import (
	"context"
	"fmt"
	"net/url"

	"artliving/internal/data/entity"
	"artliving/pkg/restapi"

	"go.uber.org/zap"
)

type ReviewRepository interface {
	FindAll(ctx context.Context) ([]entity.Review, error)
	FindByProductID(ctx context.Context, productID entity.ID) ([]entity.Review, error)
	Create(ctx context.Context, review *entity.Review) (*entity.Review, error)
	Delete(ctx context.Context, id entity.ID) error
}

type reviewRepository struct {
	api restapi.ClientIface
	log *zap.Logger
}

func NewReviewRepository(api restapi.ClientIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		api: api,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]entity.Review, error) {
	var reviews []entity.Review
	if err := r.api.Get(ctx, "/reviews", nil, &reviews); err != nil {
		r.log.Error("Failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) FindByProductID(ctx context.Context, productID entity.ID) ([]entity.Review, error) {
	query := url.Values{}
	query.Set("productId", productID.String())

	var reviews []entity.Review
	if err := r.api.Get(ctx, "/reviews", query, &reviews); err != nil {
		r.log.Error("Failed to find reviews by product ID",
			zap.Error(err),
			zap.String("product_id", productID.String()),
		)
		return nil, fmt.Errorf("find reviews for product %s: %w", productID, err)
	}

	return reviews, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	var created entity.Review
	if err := r.api.Post(ctx, "/reviews", review, &created); err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("product_id", review.ProductID.String()),
		)
		return nil, fmt.Errorf("create review for product %s by user %s: %w",
			review.ProductID, review.UserID, err)
	}

	return &created, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id entity.ID) error {
	if err := r.api.Delete(ctx, "/reviews/"+url.PathEscape(id.String())); err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id, err)
	}

	r.log.Info("Review deleted", zap.String("review_id", id.String()))
	return nil
}
