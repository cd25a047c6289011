package request

import "artliving/pkg/utils"

type ProductRequest struct {
	Name        string  `json:"name" validate:"required,min=3"`
	Description string  `json:"description" validate:"required,min=10"`
	Price       float64 `json:"price" validate:"required,gt=0,max=100000"`
	Category    string  `json:"category" validate:"required,product_category"`
	ImageURL    string  `json:"imageUrl" validate:"required,url"`
}

var ProductMessages = utils.Messages{
	"name":        {"required": msgRequired, "min": "שם המוצר חייב להיות לפחות 3 תווים"},
	"description": {"required": msgRequired, "min": "תיאור המוצר חייב להיות לפחות 10 תווים"},
	"price": {
		"required": msgRequired,
		"gt":       "מחיר חייב להיות חיובי",
		"max":      "מחיר לא יכול להיות גבוה מ-100,000",
	},
	"category": {"required": msgRequired, "product_category": "קטגוריה לא תקינה"},
	"imageUrl": {"required": msgRequired, "url": "כתובת URL לא תקינה"},
}
