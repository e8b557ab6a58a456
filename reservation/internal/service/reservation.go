package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/Astemirdum/restaurant-reservation/pkg/kafka"
	"github.com/Astemirdum/restaurant-reservation/reservation/internal/errs"
	"github.com/Astemirdum/restaurant-reservation/reservation/internal/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (s *Service) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	return s.repo.ListReservations(ctx, nil)
}

func (s *Service) ListFilteredReservations(ctx context.Context, q model.ReservationQuery) (model.ListReservations, error) {
	filter, err := BuildReservationFilter(q)
	if err != nil {
		return model.ListReservations{}, err
	}
	items, err := s.repo.ListReservations(ctx, filter)
	if err != nil {
		return model.ListReservations{}, err
	}
	return model.ListReservations{Count: len(items), Items: items}, nil
}

func (s *Service) GetReservation(ctx context.Context, id string) (model.Reservation, error) {
	if strings.TrimSpace(id) == "" {
		return model.Reservation{}, errs.NewValidationError("id", "is required")
	}
	return s.repo.GetReservation(ctx, id)
}

// CreateReservation stores a reservation with the status from the payload,
// refusing contacts found on the blacklist.
func (s *Service) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	req = normalizeReservation(req)
	if err := s.validate(req); err != nil {
		return model.Reservation{}, err
	}

	release, err := s.lockContacts(ctx, req.Email, req.PhoneNumber)
	if err != nil {
		return model.Reservation{}, err
	}
	defer release()

	blocked, err := s.isBlacklisted(ctx, req.Email, req.PhoneNumber)
	if err != nil {
		return model.Reservation{}, err
	}
	if blocked {
		s.log.Info("reservation refused", zap.String("email", req.Email), zap.String("phoneNumber", req.PhoneNumber))
		return model.Reservation{}, errs.ErrBlacklisted
	}

	return s.insertReservation(ctx, req, kafka.EventCreated)
}

// RequestReservation stores a reservation awaiting approval whatever status was sent.
func (s *Service) RequestReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	req.Status = model.StatusRequiresApproval
	req = normalizeReservation(req)
	if err := s.validate(req); err != nil {
		return model.Reservation{}, err
	}
	return s.insertReservation(ctx, req, kafka.EventRequested)
}

func (s *Service) insertReservation(ctx context.Context, req model.CreateReservationRequest, event kafka.EventType) (model.Reservation, error) {
	rsv := model.Reservation{
		ID:          uuid.NewString(),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Date:        req.Date.UTC().Truncate(time.Millisecond),
		TableID:     req.TableID,
		Seats:       *req.Seats,
		Notes:       req.Notes,
		Status:      req.Status,
	}
	if err := s.repo.CreateReservation(ctx, rsv); err != nil {
		return model.Reservation{}, err
	}
	s.publish(ctx, event, rsv, "")
	return rsv, nil
}

func (s *Service) PatchReservationField(ctx context.Context, id, field string, raw json.RawMessage) (model.Reservation, error) {
	if strings.TrimSpace(id) == "" {
		return model.Reservation{}, errs.NewValidationError("id", "is required")
	}
	value, err := s.decodeField(reservationFields, field, raw)
	if err != nil {
		return model.Reservation{}, err
	}
	rsv, err := s.repo.UpdateReservationField(ctx, id, field, value)
	if err != nil {
		return model.Reservation{}, err
	}
	s.publish(ctx, kafka.EventUpdated, rsv, field)
	return rsv, nil
}

// DeleteReservation marks a live reservation as deleted.
func (s *Service) DeleteReservation(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValidationError("id", "is required")
	}
	if err := s.repo.SoftDeleteReservation(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, kafka.EventDeleted, model.Reservation{ID: id, Status: model.StatusDeleted}, "")
	return nil
}

// isBlacklisted looks the contact up by every supplied identifier and combines
// the verdicts according to the configured policy.
func (s *Service) isBlacklisted(ctx context.Context, email, phone string) (bool, error) {
	var blocked bool
	if email != "" {
		hit, err := s.lookupBlacklist(ctx, model.FieldEmail, email)
		if err != nil {
			return false, err
		}
		blocked = hit
	}
	if phone != "" {
		hit, err := s.lookupBlacklist(ctx, model.FieldPhoneNumber, phone)
		if err != nil {
			return false, err
		}
		if s.policy == PolicyLast {
			blocked = hit
		} else {
			blocked = blocked || hit
		}
	}
	return blocked, nil
}

func (s *Service) lookupBlacklist(ctx context.Context, field, value string) (bool, error) {
	_, err := s.repo.FindBlacklistEntry(ctx, field, value)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errs.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (s *Service) publish(ctx context.Context, typ kafka.EventType, rsv model.Reservation, field string) {
	s.publisher.Publish(ctx, kafka.EventReservation{
		Type:          typ,
		ReservationID: rsv.ID,
		Status:        string(rsv.Status),
		Field:         field,
		Timestamp:     s.now().UTC(),
	})
}
