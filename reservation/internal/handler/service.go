package handler

import (
	"context"
	"encoding/json"

	"github.com/Astemirdum/restaurant-reservation/reservation/internal/model"
	"github.com/Astemirdum/restaurant-reservation/reservation/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type ReservationService interface {
	ListReservations(ctx context.Context) ([]model.Reservation, error)
	ListFilteredReservations(ctx context.Context, q model.ReservationQuery) (model.ListReservations, error)
	GetReservation(ctx context.Context, id string) (model.Reservation, error)
	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	RequestReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	PatchReservationField(ctx context.Context, id, field string, raw json.RawMessage) (model.Reservation, error)
	DeleteReservation(ctx context.Context, id string) error
}

type BlacklistService interface {
	ListBlacklist(ctx context.Context) ([]model.BlacklistEntry, error)
	ListFilteredBlacklist(ctx context.Context, q model.BlacklistQuery) (model.ListBlacklist, error)
	GetBlacklistEntry(ctx context.Context, id string) (model.BlacklistEntry, error)
	CreateBlacklistEntry(ctx context.Context, req model.CreateBlacklistRequest) (model.BlacklistEntry, error)
	PatchBlacklistField(ctx context.Context, id, field string, raw json.RawMessage) (model.BlacklistEntry, error)
	DeleteBlacklistEntry(ctx context.Context, id string) error
}

var (
	_ ReservationService = (*service.Service)(nil)
	_ BlacklistService   = (*service.Service)(nil)
)
