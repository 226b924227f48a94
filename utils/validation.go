package utils

import (
	"regexp"
	"sort"
	"strings"

	"github.com/VortexWanderer9/food-delivery-app/models"
)

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)
)

const minPasswordLength = 6

// ValidationErrors maps a form field to its message
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + v[f]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v ValidationErrors) checkEmail(email string) {
	switch {
	case strings.TrimSpace(email) == "":
		v["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		v["email"] = "Invalid email address"
	}
}

// LoginForm is the sign-in form
type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (f LoginForm) Validate() error {
	errs := ValidationErrors{}
	errs.checkEmail(f.Email)
	if f.Password == "" {
		errs["password"] = "Password is required"
	}
	return errs.orNil()
}

// RegisterForm is the sign-up form
type RegisterForm struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (f RegisterForm) Validate() error {
	errs := ValidationErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Name is required"
	}
	errs.checkEmail(f.Email)
	switch {
	case f.Password == "":
		errs["password"] = "Password is required"
	case len(f.Password) < minPasswordLength:
		errs["password"] = "Password must be at least 6 characters"
	}
	if f.Password != f.ConfirmPassword {
		errs["confirm_password"] = "Passwords do not match"
	}
	return errs.orNil()
}

// ProfileForm is the profile edit form
type ProfileForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (f ProfileForm) Validate() error {
	errs := ValidationErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Name is required"
	}
	errs.checkEmail(f.Email)
	if f.Phone != "" && !phonePattern.MatchString(f.Phone) {
		errs["phone"] = "Invalid phone number"
	}
	return errs.orNil()
}

// DeliveryForm is the checkout delivery form
type DeliveryForm struct {
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Instructions  string `json:"instructions"`
	PaymentMethod string `json:"payment_method"`
}

func (f DeliveryForm) Validate() error {
	errs := ValidationErrors{}
	if strings.TrimSpace(f.Address) == "" {
		errs["address"] = "Delivery address is required"
	}
	if strings.TrimSpace(f.Phone) == "" {
		errs["phone"] = "Phone number is required"
	}
	if !models.ValidPaymentMethod(f.PaymentMethod) {
		errs["payment_method"] = "Invalid payment method"
	}
	return errs.orNil()
}
