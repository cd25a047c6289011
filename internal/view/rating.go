package view

import "artliving/internal/data/entity"

// MaxStars is the length of the star row.
const MaxStars = 5

// AverageRating is the mean rating of reviews, 0 when there are none.
func AverageRating(reviews []entity.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// Stars reports which of the five stars are filled for an average:
// star i (1-based) is filled when i <= average, so fractions truncate.
func Stars(average float64) []bool {
	stars := make([]bool, MaxStars)
	for i := 1; i <= MaxStars; i++ {
		stars[i-1] = float64(i) <= average
	}
	return stars
}

// IsBestSeller applies the single best-seller rule used by every view.
func IsBestSeller(product entity.Product) bool {
	return product.SalesCount > entity.BestSellerThreshold
}
