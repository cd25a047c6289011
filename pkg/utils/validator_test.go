package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleForm struct {
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,il_phone"`
	Category string `json:"category" validate:"required,product_category"`
	Password string `json:"password" validate:"required,min=8"`
	Confirm  string `json:"confirm" validate:"eqfield=Password"`
}

var sampleMessages = Messages{
	"email": {"required": "req", "email": "bad email"},
}

func TestValidateStructUsesJSONNamesAndMessages(t *testing.T) {
	errs := ValidateStruct(&sampleForm{Email: "nope"}, sampleMessages)

	assert.Equal(t, "bad email", errs["email"])
	assert.Equal(t, "This field is required", errs["phone"])
	assert.Contains(t, errs, "category")
	assert.Contains(t, errs, "password")
}

func TestValidateStructPasses(t *testing.T) {
	form := &sampleForm{
		Email:    "a@b.co",
		Phone:    "050-1234567",
		Category: "סלון",
		Password: "12345678",
		Confirm:  "12345678",
	}
	assert.Empty(t, ValidateStruct(form, nil))
}

func TestPhoneAndCategoryRules(t *testing.T) {
	form := &sampleForm{Phone: "0501234567", Category: "חדר עבודה"}
	assert.Empty(t, ValidateField(form, "phone", nil))
	assert.Empty(t, ValidateField(form, "category", nil))

	form = &sampleForm{Phone: "12345", Category: "garden"}
	assert.Contains(t, ValidateField(form, "phone", nil), "phone")
	assert.Contains(t, ValidateField(form, "category", nil), "category")
}

func TestValidateFieldOnlyChecksOneField(t *testing.T) {
	errs := ValidateField(&sampleForm{}, "email", sampleMessages)
	assert.Equal(t, map[string]string{"email": "req"}, errs)

	assert.Empty(t, ValidateField(&sampleForm{}, "unknown", sampleMessages))
}

func TestFormatValidationErrorsIsSorted(t *testing.T) {
	out := FormatValidationErrors(map[string]string{"b": "2", "a": "1"})
	assert.Equal(t, "a: 1; b: 2", out)
}
