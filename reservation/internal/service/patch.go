package service

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/Astemirdum/restaurant-reservation/reservation/internal/errs"
	"github.com/Astemirdum/restaurant-reservation/reservation/internal/model"
)

// fieldDecoder decodes and validates a raw patch value into what gets stored.
type fieldDecoder func(s *Service, field string, raw json.RawMessage) (interface{}, error)

var reservationFields = map[string]fieldDecoder{
	model.FieldFirstName:   nameField("min=3,hasalpha"),
	model.FieldLastName:    nameField("required,min=3,hasalpha"),
	model.FieldEmail:       stringField("required,min=3,max=320,contactemail"),
	model.FieldPhoneNumber: stringField("required,contactphone"),
	model.FieldDate:        timeField,
	model.FieldTableID:     intField("min=0"),
	model.FieldSeats:       intField("min=0"),
	model.FieldNotes:       stringField("max=255"),
	model.FieldStatus:      statusField,
}

var blacklistFields = map[string]fieldDecoder{
	model.FieldEmail:           stringField("required,min=3,max=320,contactemail"),
	model.FieldPhoneNumber:     stringField("required,contactphone"),
	model.FieldDateBlacklisted: timeField,
}

func (s *Service) decodeField(fields map[string]fieldDecoder, field string, raw json.RawMessage) (interface{}, error) {
	decode, ok := fields[field]
	if !ok {
		return nil, errs.NewValidationError(field, "is not an updatable field")
	}
	if isNull(raw) {
		return nil, errs.NewValidationError("value", "is required")
	}
	return decode(s, field, raw)
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func invalidType(field string) error {
	return errs.NewValidationError(field, "has an invalid type")
}

func stringField(tag string) fieldDecoder {
	return func(s *Service, field string, raw json.RawMessage) (interface{}, error) {
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, invalidType(field)
		}
		v = strings.TrimSpace(v)
		if err := s.validateVar(field, v, tag); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func nameField(tag string) fieldDecoder {
	str := stringField(tag)
	return func(s *Service, field string, raw json.RawMessage) (interface{}, error) {
		v, err := str(s, field, raw)
		if err != nil {
			return nil, err
		}
		return strings.ToLower(v.(string)), nil
	}
}

func intField(tag string) fieldDecoder {
	return func(s *Service, field string, raw json.RawMessage) (interface{}, error) {
		var v int
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, invalidType(field)
		}
		if err := s.validateVar(field, v, tag); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// timeField accepts an RFC 3339 string or epoch milliseconds.
// Values are kept at the millisecond precision of BSON dates.
func timeField(_ *Service, field string, raw json.RawMessage) (interface{}, error) {
	var ms int64
	if err := json.Unmarshal(raw, &ms); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	var t time.Time
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, invalidType(field)
	}
	return t.UTC().Truncate(time.Millisecond), nil
}

func statusField(_ *Service, field string, raw json.RawMessage) (interface{}, error) {
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, invalidType(field)
	}
	st := model.ParseStatus(v)
	if !st.Valid() {
		return nil, errs.NewValidationError(field, "should be one of: requires-approval, reserved, deleted")
	}
	return st, nil
}
