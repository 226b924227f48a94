package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) ValidationErrors {
	t.Helper()
	if err == nil {
		return nil
	}
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	return verrs
}

func TestLoginFormValidate(t *testing.T) {
	tests := []struct {
		name   string
		form   LoginForm
		fields []string
	}{
		{name: "valid", form: LoginForm{Email: "ana@example.com", Password: "x"}},
		{name: "missingEverything", form: LoginForm{}, fields: []string{"email", "password"}},
		{name: "badEmail", form: LoginForm{Email: "ana.example.com", Password: "x"}, fields: []string{"email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verrs := fieldErrors(t, tt.form.Validate())
			assert.Len(t, verrs, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, verrs, f)
			}
		})
	}
}

func TestRegisterFormValidate(t *testing.T) {
	valid := RegisterForm{Name: "Ana", Email: "ana@example.com", Password: "secret1", ConfirmPassword: "secret1"}
	assert.NoError(t, valid.Validate())

	short := valid
	short.Password, short.ConfirmPassword = "abc", "abc"
	verrs := fieldErrors(t, short.Validate())
	assert.Equal(t, "Password must be at least 6 characters", verrs["password"])

	mismatch := valid
	mismatch.ConfirmPassword = "secret2"
	verrs = fieldErrors(t, mismatch.Validate())
	assert.Equal(t, "Passwords do not match", verrs["confirm_password"])

	blank := RegisterForm{Name: "   "}
	verrs = fieldErrors(t, blank.Validate())
	assert.Contains(t, verrs, "name")
	assert.Contains(t, verrs, "email")
	assert.Contains(t, verrs, "password")
}

func TestProfileFormValidate(t *testing.T) {
	form := ProfileForm{Name: "Ana", Email: "ana@example.com"}
	assert.NoError(t, form.Validate(), "phone is optional")

	form.Phone = "+1 555-010-2030"
	assert.NoError(t, form.Validate())

	form.Phone = "12345"
	verrs := fieldErrors(t, form.Validate())
	assert.Equal(t, "Invalid phone number", verrs["phone"])
}

func TestDeliveryFormValidate(t *testing.T) {
	form := DeliveryForm{Address: "456 Park Ave", Phone: "5550102030", PaymentMethod: "card"}
	assert.NoError(t, form.Validate())

	verrs := fieldErrors(t, DeliveryForm{PaymentMethod: "crypto"}.Validate())
	assert.Contains(t, verrs, "address")
	assert.Contains(t, verrs, "phone")
	assert.Contains(t, verrs, "payment_method")
}

func TestValidationErrorsMessageIsSorted(t *testing.T) {
	err := ValidationErrors{"phone": "bad", "address": "missing"}
	assert.Equal(t, "validation failed: address: missing; phone: bad", err.Error())
}
