package model

import (
	"encoding/json"
	"strings"
	"time"
)

type Status string

const (
	StatusRequiresApproval Status = "requires-approval"
	StatusReserved         Status = "reserved"
	StatusDeleted          Status = "deleted"
)

func ParseStatus(raw string) Status {
	return Status(strings.ToLower(strings.TrimSpace(raw)))
}

func (s Status) Valid() bool {
	switch s {
	case StatusRequiresApproval, StatusReserved, StatusDeleted:
		return true
	}
	return false
}

const (
	FieldID              = "_id"
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldPhoneNumber     = "phoneNumber"
	FieldDate            = "date"
	FieldTableID         = "tableId"
	FieldSeats           = "seats"
	FieldNotes           = "notes"
	FieldStatus          = "status"
	FieldDateBlacklisted = "dateBlacklisted"
)

type Reservation struct {
	ID          string    `json:"id" bson:"_id"`
	FirstName   string    `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName    string    `json:"lastName" bson:"lastName"`
	Email       string    `json:"email,omitempty" bson:"email,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	Date        time.Time `json:"date" bson:"date"`
	TableID     *int      `json:"tableId,omitempty" bson:"tableId,omitempty"`
	Seats       int       `json:"seats" bson:"seats"`
	Notes       string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Status      Status    `json:"status" bson:"status"`
}

type CreateReservationRequest struct {
	FirstName   string     `json:"firstName" validate:"omitempty,min=3,hasalpha"`
	LastName    string     `json:"lastName" validate:"required,min=3,hasalpha"`
	Email       string     `json:"email" validate:"required_without=PhoneNumber,omitempty,min=3,max=320,contactemail"`
	PhoneNumber string     `json:"phoneNumber" validate:"omitempty,contactphone"`
	Date        *time.Time `json:"date" validate:"required"`
	TableID     *int       `json:"tableId" validate:"omitempty,min=0"`
	Seats       *int       `json:"seats" validate:"required,min=0"`
	Notes       string     `json:"notes" validate:"max=255"`
	Status      Status     `json:"status" validate:"omitempty,oneof=requires-approval reserved deleted"`
}

// ReservationQuery carries the raw listing parameters.
type ReservationQuery struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	Status    string `query:"status"`
}

// ReservationFilter is the parsed form of ReservationQuery. From/To are inclusive.
type ReservationFilter struct {
	Status Status
	From   *time.Time
	To     *time.Time
}

type ListReservations struct {
	Count int           `json:"count"`
	Items []Reservation `json:"reservations"`
}

type BlacklistEntry struct {
	ID              string    `json:"id" bson:"_id"`
	Email           string    `json:"email,omitempty" bson:"email,omitempty"`
	PhoneNumber     string    `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	DateBlacklisted time.Time `json:"dateBlacklisted" bson:"dateBlacklisted"`
}

type CreateBlacklistRequest struct {
	Email           string     `json:"email" validate:"required_without=PhoneNumber,omitempty,min=3,max=320,contactemail"`
	PhoneNumber     string     `json:"phoneNumber" validate:"omitempty,contactphone"`
	DateBlacklisted *time.Time `json:"dateBlacklisted"`
}

type BlacklistQuery struct {
	Email           string `query:"email"`
	PhoneNumber     string `query:"phoneNumber"`
	DateBlacklisted string `query:"dateBlacklisted"`
}

// BlacklistFilter matches exactly on every non-empty member.
type BlacklistFilter struct {
	Email           string
	PhoneNumber     string
	DateBlacklisted *time.Time
}

type ListBlacklist struct {
	Count int              `json:"count"`
	Items []BlacklistEntry `json:"blacklist"`
}

// PatchFieldRequest is the body of a single-field update.
type PatchFieldRequest struct {
	Value json.RawMessage `json:"value"`
}
