package response

import (
	"artliving/internal/data/entity"
	"artliving/internal/view"
)

type ProductCard struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	SalesCount  int     `json:"salesCount"`
	BestSeller  bool    `json:"bestSeller"`
}

type ProductDetail struct {
	Product       ProductCard  `json:"product"`
	Reviews       []ReviewItem `json:"reviews"`
	ReviewCount   int          `json:"reviewCount"`
	AverageRating float64      `json:"averageRating"`
	Stars         []bool       `json:"stars"`
	CanAddReview  bool         `json:"canAddReview"`
	EmptyMessage  string       `json:"emptyMessage,omitempty"`
}

type ImportRowError struct {
	Row    int               `json:"row"`
	Errors map[string]string `json:"errors"`
}

type ImportResult struct {
	Created int              `json:"created"`
	Skipped []ImportRowError `json:"skipped"`
}

func ProductToCard(product entity.Product) ProductCard {
	return ProductCard{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		ImageURL:    product.ImageURL,
		SalesCount:  product.SalesCount,
		BestSeller:  view.IsBestSeller(product),
	}
}

func ProductsToCards(products []entity.Product) []ProductCard {
	cards := make([]ProductCard, len(products))
	for i, p := range products {
		cards[i] = ProductToCard(p)
	}
	return cards
}

// NewProductDetail derives the detail page from the product, its freshly
// fetched reviews and the viewer.
func NewProductDetail(product entity.Product, reviews []entity.Review, viewer *entity.User) *ProductDetail {
	avg := view.AverageRating(reviews)
	detail := &ProductDetail{
		Product:       ProductToCard(product),
		Reviews:       ReviewsToItems(reviews, viewer),
		ReviewCount:   len(reviews),
		AverageRating: avg,
		Stars:         view.Stars(avg),
		CanAddReview:  view.CanAddReview(viewer),
	}

	if len(reviews) == 0 {
		detail.EmptyMessage = MsgNoReviews
		if viewer == nil || !viewer.IsAdmin {
			detail.EmptyMessage += MsgBeFirstToReview
		}
	}

	return detail
}
