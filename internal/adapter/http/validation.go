package http

import (
	"math"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var (
	// 0x-prefixed wallet shorthand; demo ledgers use abbreviated addresses,
	// so this is looser than a checksummed eth address.
	reWallet = regexp.MustCompile(`^0x[0-9a-zA-Z.]{3,62}$`)
	reCcy    = regexp.MustCompile(`^[A-Z]{3}$`)
	reGrade  = regexp.MustCompile(`^(A\+|A|B|C|D|F)$`)
)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// wallet address = 0x-prefixed shorthand
	_ = v.RegisterValidation("walletaddr", func(fl validator.FieldLevel) bool {
		return reWallet.MatchString(fl.Field().String())
	})
	// ISO-like 3-letter currency code
	_ = v.RegisterValidation("ccy", func(fl validator.FieldLevel) bool {
		return reCcy.MatchString(fl.Field().String())
	})
	// risk letter grade
	_ = v.RegisterValidation("grade", func(fl validator.FieldLevel) bool {
		return reGrade.MatchString(fl.Field().String())
	})
	// max 2 decimal places
	_ = v.RegisterValidation("dec2", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Abs(f-(math.Round(f*100)/100)) < 1e-9
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "walletaddr":
			out = append(out, FieldError{Field: field, Message: "must be a 0x-prefixed wallet address"})
		case "ccy":
			out = append(out, FieldError{Field: field, Message: "must be a 3-letter currency code"})
		case "grade":
			out = append(out, FieldError{Field: field, Message: "must be one of A+, A, B, C, D, F"})
		case "dec2":
			out = append(out, FieldError{Field: field, Message: "must have at most 2 decimal places"})
		case "datetime":
			out = append(out, FieldError{Field: field, Message: "must be a date in YYYY-MM-DD form"})
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
