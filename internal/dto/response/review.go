package response

import (
	"artliving/internal/data/entity"
	"artliving/internal/view"
)

type ReviewItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Date      string `json:"date"`
	CanDelete bool   `json:"canDelete"`
}

// Helper converter
func ReviewToItem(review entity.Review, viewer *entity.User) ReviewItem {
	return ReviewItem{
		ID:        review.ID.String(),
		ProductID: review.ProductID.String(),
		UserID:    review.UserID.String(),
		UserName:  review.UserName,
		Rating:    review.Rating,
		Comment:   review.Comment,
		Date:      review.Date,
		CanDelete: view.CanDeleteReview(viewer, review),
	}
}

func ReviewsToItems(reviews []entity.Review, viewer *entity.User) []ReviewItem {
	items := make([]ReviewItem, len(reviews))
	for i, r := range reviews {
		items[i] = ReviewToItem(r, viewer)
	}
	return items
}
