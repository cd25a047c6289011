package entity

const (
	// MaxProductPrice caps the price accepted by the add-product form.
	MaxProductPrice = 100000
	// BestSellerThreshold is exceeded (strictly) by best-selling products.
	BestSellerThreshold = 50
)

type Product struct {
	ID          ID      `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	SalesCount  int     `json:"salesCount"`
}
