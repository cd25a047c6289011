package request

import "artliving/pkg/utils"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

var LoginMessages = utils.Messages{
	"email":    {"required": msgRequired, "email": msgInvalidEmail},
	"password": {"required": msgRequired, "min": msgPasswordMin6},
}

type SignUpRequest struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	City            string `json:"city" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

var SignUpMessages = utils.Messages{
	"firstName":       {"required": msgRequired},
	"lastName":        {"required": msgRequired},
	"email":           {"required": msgRequired, "email": msgInvalidEmail},
	"phone":           {"required": msgRequired},
	"city":            {"required": msgRequired},
	"password":        {"required": msgRequired, "min": msgPasswordMin8},
	"confirmPassword": {"required": msgRequired, "eqfield": msgPasswordMatch},
}

// Cities offered by the sign-up form.
var Cities = []string{
	"ירושלים",
	"תל אביב",
	"חיפה",
	"ראשון לציון",
	"פתח תקווה",
	"אשדוד",
	"נתניה",
	"באר שבע",
	"בני ברק",
	"חולון",
	"רמת גן",
	"אשקלון",
	"רחובות",
	"בת ים",
}
