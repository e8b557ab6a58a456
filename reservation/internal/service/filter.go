package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/Astemirdum/restaurant-reservation/reservation/internal/errs"
	"github.com/Astemirdum/restaurant-reservation/reservation/internal/model"
)

// BuildReservationFilter turns listing parameters into a filter.
// The status defaults to reserved; endDate is only read when startDate is set.
func BuildReservationFilter(q model.ReservationQuery) (*model.ReservationFilter, error) {
	f := &model.ReservationFilter{Status: model.StatusReserved}
	if st := model.ParseStatus(q.Status); st != "" {
		f.Status = st
	}
	if strings.TrimSpace(q.StartDate) == "" {
		return f, nil
	}
	from, err := parseEpochMillis("startDate", q.StartDate)
	if err != nil {
		return nil, err
	}
	f.From = &from
	if strings.TrimSpace(q.EndDate) != "" {
		to, err := parseEpochMillis("endDate", q.EndDate)
		if err != nil {
			return nil, err
		}
		f.To = &to
	}
	return f, nil
}

func BuildBlacklistFilter(q model.BlacklistQuery) (*model.BlacklistFilter, error) {
	f := &model.BlacklistFilter{
		Email:       strings.TrimSpace(q.Email),
		PhoneNumber: strings.TrimSpace(q.PhoneNumber),
	}
	if strings.TrimSpace(q.DateBlacklisted) != "" {
		t, err := parseEpochMillis("dateBlacklisted", q.DateBlacklisted)
		if err != nil {
			return nil, err
		}
		f.DateBlacklisted = &t
	}
	return f, nil
}

func parseEpochMillis(param, raw string) (time.Time, error) {
	ms, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return time.Time{}, errs.NewValidationError(param, "is not a valid epoch timestamp")
	}
	return time.UnixMilli(ms).UTC(), nil
}
