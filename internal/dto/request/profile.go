package request

import "artliving/pkg/utils"

// ProfileRequest is the profile edit form. The address is flattened the
// way the form lays it out.
type ProfileRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,il_phone"`
	Street    string `json:"street"`
	City      string `json:"city" validate:"required"`
	Zip       string `json:"zip" validate:"omitempty,numeric,max=7"`
	Password  string `json:"password" validate:"required,min=8"`
}

var ProfileMessages = utils.Messages{
	"firstName": {"required": msgRequired},
	"lastName":  {"required": msgRequired},
	"email":     {"required": msgRequired, "email": msgInvalidEmail},
	"phone":     {"required": msgRequired, "il_phone": msgInvalidPhone},
	"city":      {"required": msgRequired},
	"zip":       {"numeric": msgInvalidZip, "max": msgInvalidZip},
	"password":  {"required": msgRequired, "min": msgPasswordMin8},
}
