package request

import "artliving/pkg/utils"

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

var ReviewMessages = utils.Messages{
	"rating":  {"required": "חובה לבחור דירוג", "min": "חובה לבחור דירוג", "max": "חובה לבחור דירוג"},
	"comment": {"required": "חובה לכתוב תגובה"},
}
