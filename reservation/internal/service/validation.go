package service

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/Astemirdum/restaurant-reservation/pkg/validate"
	"github.com/Astemirdum/restaurant-reservation/reservation/internal/errs"
	"github.com/Astemirdum/restaurant-reservation/reservation/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeReservation(req model.CreateReservationRequest) model.CreateReservationRequest {
	req.FirstName = normalizeName(req.FirstName)
	req.LastName = normalizeName(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	req.Status = model.ParseStatus(string(req.Status))
	if req.Status == "" {
		req.Status = model.StatusRequiresApproval
	}
	return req
}

func normalizeBlacklist(req model.CreateBlacklistRequest) model.CreateBlacklistRequest {
	req.Email = strings.TrimSpace(req.Email)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	return req
}

func (s *Service) validate(v interface{}) error {
	return validationError("", s.validator.Validate(v))
}

func (s *Service) validateVar(field string, v interface{}, tag string) error {
	return validationError(field, s.validator.Var(v, tag))
}

// validationError turns the first validator failure into an errs.ValidationError.
// field is used when the validator has no struct field to report (Var checks).
func validationError(field string, err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errs.NewValidationError(field, err.Error())
	}
	fe := verrs[0]
	name := fe.Field()
	if name == "" {
		name = field
	}
	return errs.NewValidationError(name, message(fe))
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_without":
		return "or phoneNumber is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("should be at least %s characters in length", fe.Param())
		}
		return "cannot be a negative number"
	case "max":
		return fmt.Sprintf("should be a maximum of %s characters in length", fe.Param())
	case validate.TagHasAlpha:
		return "should contain at least one letter"
	case validate.TagContactEmail:
		return "is not a valid email address"
	case validate.TagContactPhone:
		return "should be 11 to 13 digits"
	case "oneof":
		return "should be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}
