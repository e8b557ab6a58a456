package repository

import (
	"context"

	"github.com/Astemirdum/restaurant-reservation/pkg/mongodb"
	"github.com/Astemirdum/restaurant-reservation/reservation/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	ListReservations(ctx context.Context, filter *model.ReservationFilter) ([]model.Reservation, error)
	GetReservation(ctx context.Context, id string) (model.Reservation, error)
	CreateReservation(ctx context.Context, rsv model.Reservation) error
	UpdateReservationField(ctx context.Context, id, field string, value interface{}) (model.Reservation, error)
	SoftDeleteReservation(ctx context.Context, id string) error

	ListBlacklist(ctx context.Context, filter *model.BlacklistFilter) ([]model.BlacklistEntry, error)
	GetBlacklistEntry(ctx context.Context, id string) (model.BlacklistEntry, error)
	FindBlacklistEntry(ctx context.Context, field, value string) (model.BlacklistEntry, error)
	CreateBlacklistEntry(ctx context.Context, entry model.BlacklistEntry) error
	UpdateBlacklistField(ctx context.Context, id, field string, value interface{}) (model.BlacklistEntry, error)
	DeleteBlacklistEntry(ctx context.Context, id string) error
}

type repository struct {
	reservations *mongo.Collection
	blacklist    *mongo.Collection
	log          *zap.Logger
}

func NewRepository(db *mongo.Database, log *zap.Logger) (*repository, error) {
	return &repository{
		reservations: db.Collection(reservationCollection),
		blacklist:    db.Collection(blacklistCollection),
		log:          log.Named("repo"),
	}, nil
}

const (
	reservationCollection = `reservations`
	blacklistCollection   = `blacklist`
)

// Indexes backs the date range listing and the blacklist point lookups.
// Contacts are not unique on purpose: duplicates are rejected by the service.
func Indexes() mongodb.Indexes {
	return mongodb.Indexes{
		reservationCollection: {
			{Keys: bson.D{{Key: model.FieldDate, Value: 1}, {Key: model.FieldStatus, Value: 1}}},
		},
		blacklistCollection: {
			{Keys: bson.D{{Key: model.FieldEmail, Value: 1}}},
			{Keys: bson.D{{Key: model.FieldPhoneNumber, Value: 1}}},
		},
	}
}

// ReservationFilterBSON translates a parsed listing filter. A nil filter matches everything.
func ReservationFilterBSON(f *model.ReservationFilter) bson.M {
	if f == nil {
		return bson.M{}
	}
	filter := bson.M{model.FieldStatus: f.Status}
	if f.From != nil {
		date := bson.M{"$gte": *f.From}
		if f.To != nil {
			date["$lte"] = *f.To
		}
		filter[model.FieldDate] = date
	}
	return filter
}

func BlacklistFilterBSON(f *model.BlacklistFilter) bson.M {
	filter := bson.M{}
	if f == nil {
		return filter
	}
	if f.Email != "" {
		filter[model.FieldEmail] = f.Email
	}
	if f.PhoneNumber != "" {
		filter[model.FieldPhoneNumber] = f.PhoneNumber
	}
	if f.DateBlacklisted != nil {
		filter[model.FieldDateBlacklisted] = *f.DateBlacklisted
	}
	return filter
}
