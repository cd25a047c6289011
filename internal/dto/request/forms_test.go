package request

import (
	"testing"

	"artliving/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestLoginForm(t *testing.T) {
	errs := utils.ValidateStruct(&LoginRequest{Email: "x", Password: "123"}, LoginMessages)
	assert.Equal(t, msgInvalidEmail, errs["email"])
	assert.Equal(t, msgPasswordMin6, errs["password"])

	assert.Empty(t, utils.ValidateStruct(&LoginRequest{Email: "a@b.co", Password: "123456"}, LoginMessages))
}

func TestSignUpPasswordsMustMatch(t *testing.T) {
	req := &SignUpRequest{
		FirstName:       "דנה",
		LastName:        "לוי",
		Email:           "dana@example.com",
		Phone:           "0501234567",
		City:            "חיפה",
		Password:        "12345678",
		ConfirmPassword: "12345679",
	}

	errs := utils.ValidateStruct(req, SignUpMessages)
	assert.Equal(t, map[string]string{"confirmPassword": msgPasswordMatch}, errs)

	req.ConfirmPassword = req.Password
	assert.Empty(t, utils.ValidateStruct(req, SignUpMessages))
}

func TestSignUpBlurValidation(t *testing.T) {
	errs := utils.ValidateField(&SignUpRequest{}, "firstName", SignUpMessages)
	assert.Equal(t, map[string]string{"firstName": msgRequired}, errs)
}

func TestProductForm(t *testing.T) {
	req := &ProductRequest{
		Name:        "כס",
		Description: "קצר",
		Price:       100001,
		Category:    "גינה",
		ImageURL:    "not a url",
	}

	errs := utils.ValidateStruct(req, ProductMessages)
	assert.Len(t, errs, 5)
	assert.Equal(t, ProductMessages["price"]["max"], errs["price"])

	req = &ProductRequest{
		Name:        "כורסה",
		Description: "כורסה נוחה לסלון",
		Price:       1200,
		Category:    "סלון",
		ImageURL:    "https://img.example.com/a.jpg",
	}
	assert.Empty(t, utils.ValidateStruct(req, ProductMessages))
}

func TestProfileForm(t *testing.T) {
	req := &ProfileRequest{
		FirstName: "דנה",
		LastName:  "לוי",
		Email:     "dana@example.com",
		Phone:     "03-1234567",
		City:      "תל אביב",
		Zip:       "12a",
		Password:  "12345678",
	}

	errs := utils.ValidateStruct(req, ProfileMessages)
	assert.Equal(t, map[string]string{"zip": msgInvalidZip}, errs)

	req.Zip = ""
	assert.Empty(t, utils.ValidateStruct(req, ProfileMessages))
}

func TestReviewForm(t *testing.T) {
	errs := utils.ValidateStruct(&CreateReviewRequest{Rating: 0}, ReviewMessages)
	assert.Contains(t, errs, "rating")
	assert.Contains(t, errs, "comment")

	assert.Empty(t, utils.ValidateStruct(&CreateReviewRequest{Rating: 5, Comment: "מעולה"}, ReviewMessages))
}
