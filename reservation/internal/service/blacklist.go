package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/Astemirdum/restaurant-reservation/reservation/internal/errs"
	"github.com/Astemirdum/restaurant-reservation/reservation/internal/model"
	"github.com/google/uuid"
)

func (s *Service) ListBlacklist(ctx context.Context) ([]model.BlacklistEntry, error) {
	return s.repo.ListBlacklist(ctx, nil)
}

func (s *Service) ListFilteredBlacklist(ctx context.Context, q model.BlacklistQuery) (model.ListBlacklist, error) {
	filter, err := BuildBlacklistFilter(q)
	if err != nil {
		return model.ListBlacklist{}, err
	}
	items, err := s.repo.ListBlacklist(ctx, filter)
	if err != nil {
		return model.ListBlacklist{}, err
	}
	return model.ListBlacklist{Count: len(items), Items: items}, nil
}

func (s *Service) GetBlacklistEntry(ctx context.Context, id string) (model.BlacklistEntry, error) {
	if strings.TrimSpace(id) == "" {
		return model.BlacklistEntry{}, errs.NewValidationError("id", "is required")
	}
	return s.repo.GetBlacklistEntry(ctx, id)
}

// CreateBlacklistEntry bars a contact. An email or phone already on the list is a duplicate.
func (s *Service) CreateBlacklistEntry(ctx context.Context, req model.CreateBlacklistRequest) (model.BlacklistEntry, error) {
	req = normalizeBlacklist(req)
	if err := s.validate(req); err != nil {
		return model.BlacklistEntry{}, err
	}

	release, err := s.lockContacts(ctx, req.Email, req.PhoneNumber)
	if err != nil {
		return model.BlacklistEntry{}, err
	}
	defer release()

	for _, c := range []struct{ field, value string }{
		{model.FieldEmail, req.Email},
		{model.FieldPhoneNumber, req.PhoneNumber},
	} {
		if c.value == "" {
			continue
		}
		found, err := s.lookupBlacklist(ctx, c.field, c.value)
		if err != nil {
			return model.BlacklistEntry{}, err
		}
		if found {
			return model.BlacklistEntry{}, errs.ErrDuplicate
		}
	}

	entry := model.BlacklistEntry{
		ID:              uuid.NewString(),
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		DateBlacklisted: s.now().UTC().Truncate(time.Millisecond),
	}
	if req.DateBlacklisted != nil {
		entry.DateBlacklisted = req.DateBlacklisted.UTC().Truncate(time.Millisecond)
	}
	if err := s.repo.CreateBlacklistEntry(ctx, entry); err != nil {
		return model.BlacklistEntry{}, err
	}
	return entry, nil
}

func (s *Service) PatchBlacklistField(ctx context.Context, id, field string, raw json.RawMessage) (model.BlacklistEntry, error) {
	if strings.TrimSpace(id) == "" {
		return model.BlacklistEntry{}, errs.NewValidationError("id", "is required")
	}
	value, err := s.decodeField(blacklistFields, field, raw)
	if err != nil {
		return model.BlacklistEntry{}, err
	}
	return s.repo.UpdateBlacklistField(ctx, id, field, value)
}

// DeleteBlacklistEntry removes the entry for good.
func (s *Service) DeleteBlacklistEntry(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValidationError("id", "is required")
	}
	return s.repo.DeleteBlacklistEntry(ctx, id)
}
