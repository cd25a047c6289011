package entity

// CategoryAll is the feed's pseudo-category meaning "no category filter".
const CategoryAll = "הכל"

const (
	CategoryLivingRoom = "סלון"
	CategoryBedroom    = "חדר שינה"
	CategoryDining     = "פינת אוכל"
	CategoryStorage    = "אחסון"
	CategoryAccessory  = "אביזרים"
	CategoryStudy      = "חדר עבודה"
)

// Categories lists the product categories in display order.
var Categories = []string{
	CategoryLivingRoom,
	CategoryBedroom,
	CategoryDining,
	CategoryStorage,
	CategoryAccessory,
	CategoryStudy,
}

func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
