package entity

// ReviewDateLayout is the ISO date format stored in Review.Date.
const ReviewDateLayout = "2006-01-02"

type Review struct {
	ID        ID     `json:"id,omitempty"`
	ProductID ID     `json:"productId"`
	UserID    ID     `json:"userId"`
	UserName  string `json:"userName"`
	Rating    int    `json:"rating"` // 1-5
	Comment   string `json:"comment"`
	Date      string `json:"date"`
}
