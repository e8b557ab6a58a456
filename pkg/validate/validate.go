package validate

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	TagHasAlpha     = "hasalpha"
	TagContactEmail = "contactemail"
	TagContactPhone = "contactphone"
)

var (
	emailRe = regexp.MustCompile(`^[A-Za-z0-9._-]+@[A-Za-z0-9]+\.[A-Za-z0-9]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]{11,13}$`)
	alphaRe = regexp.MustCompile(`[A-Za-z]`)
)

type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator returns a validator reporting fields by their json names
// and aware of the contact tags used by the reservation models.
func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation(TagHasAlpha, hasAlpha)
	_ = v.RegisterValidation(TagContactEmail, contactEmail)
	_ = v.RegisterValidation(TagContactPhone, contactPhone)
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Var validates a single value against a tag list.
func (cv *CustomValidator) Var(field interface{}, tag string) error {
	return cv.validator.Var(field, tag)
}

func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}

func IsPhone(s string) bool {
	return phoneRe.MatchString(s)
}

func hasAlpha(fl validator.FieldLevel) bool {
	return alphaRe.MatchString(fl.Field().String())
}

func contactEmail(fl validator.FieldLevel) bool {
	return IsEmail(fl.Field().String())
}

func contactPhone(fl validator.FieldLevel) bool {
	return IsPhone(fl.Field().String())
}
