package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Astemirdum/restaurant-reservation/pkg/kafka"
	"github.com/Astemirdum/restaurant-reservation/pkg/lock"
	"github.com/Astemirdum/restaurant-reservation/pkg/validate"
	"github.com/Astemirdum/restaurant-reservation/reservation/internal/errs"
	"github.com/Astemirdum/restaurant-reservation/reservation/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// BlacklistPolicy decides how the email and phone lookups combine
// when a reservation carries both.
type BlacklistPolicy string

const (
	// PolicyAny blocks when any supplied identifier is blacklisted.
	PolicyAny BlacklistPolicy = "any"
	// PolicyLast lets the phone lookup, when a phone is given, overwrite the email verdict.
	PolicyLast BlacklistPolicy = "last"
)

func ParseBlacklistPolicy(raw string) (BlacklistPolicy, error) {
	switch p := BlacklistPolicy(strings.ToLower(strings.TrimSpace(raw))); p {
	case "":
		return PolicyAny, nil
	case PolicyAny, PolicyLast:
		return p, nil
	default:
		return "", fmt.Errorf("unknown blacklist policy %q", raw)
	}
}

type EventPublisher interface {
	Publish(ctx context.Context, event kafka.EventReservation)
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, kafka.EventReservation) {}

type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	validator *validate.CustomValidator
	publisher EventPublisher
	locker    lock.Locker
	policy    BlacklistPolicy
	now       func() time.Time
}

type Option func(*Service)

func WithPublisher(p EventPublisher) Option {
	return func(s *Service) { s.publisher = p }
}

func WithLocker(l lock.Locker) Option {
	return func(s *Service) { s.locker = l }
}

func WithBlacklistPolicy(p BlacklistPolicy) Option {
	return func(s *Service) { s.policy = p }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:       log.Named("service"),
		repo:      repo,
		validator: validate.NewCustomValidator(),
		publisher: noopPublisher{},
		locker:    lock.NewNoop(),
		policy:    PolicyAny,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// lockContacts guards a check-then-write on the given contact identifiers.
func (s *Service) lockContacts(ctx context.Context, email, phone string) (func(), error) {
	var keys []string
	if email != "" {
		keys = append(keys, "email:"+email)
	}
	if phone != "" {
		keys = append(keys, "phone:"+phone)
	}
	release, err := s.locker.Lock(ctx, keys...)
	if err != nil {
		if errors.Is(err, lock.ErrBusy) {
			return nil, errs.ErrLocked
		}
		return nil, errors.Wrap(err, "lock contact")
	}
	return release, nil
}
