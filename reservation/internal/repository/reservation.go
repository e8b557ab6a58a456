package repository

import (
	"context"

	"github.com/Astemirdum/restaurant-reservation/reservation/internal/errs"
	"github.com/Astemirdum/restaurant-reservation/reservation/internal/model"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func (r *repository) ListReservations(ctx context.Context, filter *model.ReservationFilter) ([]model.Reservation, error) {
	q := ReservationFilterBSON(filter)
	r.log.Debug("ListReservations", zap.Any("filter", q))

	cur, err := r.reservations.Find(ctx, q, options.Find().SetSort(bson.D{{Key: model.FieldDate, Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "find reservations")
	}
	items := make([]model.Reservation, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, errors.Wrap(err, "decode reservations")
	}
	return items, nil
}

func (r *repository) GetReservation(ctx context.Context, id string) (model.Reservation, error) {
	var rsv model.Reservation
	if err := r.reservations.FindOne(ctx, bson.M{model.FieldID: id}).Decode(&rsv); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Reservation{}, errs.ErrNotFound
		}
		return model.Reservation{}, errors.Wrap(err, "find reservation")
	}
	return rsv, nil
}

func (r *repository) CreateReservation(ctx context.Context, rsv model.Reservation) error {
	if _, err := r.reservations.InsertOne(ctx, rsv); err != nil {
		r.log.Error("CreateReservation", zap.String("id", rsv.ID), zap.Error(err))
		return errors.Wrap(err, "insert reservation")
	}
	return nil
}

func (r *repository) UpdateReservationField(ctx context.Context, id, field string, value interface{}) (model.Reservation, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{field: value}}

	var rsv model.Reservation
	err := r.reservations.FindOneAndUpdate(ctx, bson.M{model.FieldID: id}, update, opts).Decode(&rsv)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Reservation{}, errs.ErrNotFound
		}
		return model.Reservation{}, errors.Wrapf(err, "update reservation %s", field)
	}
	return rsv, nil
}

// SoftDeleteReservation flips a live reservation to deleted. An id that does not
// resolve, or resolves to an already deleted record, is reported as ErrNotFound.
func (r *repository) SoftDeleteReservation(ctx context.Context, id string) error {
	filter := bson.M{
		model.FieldID:     id,
		model.FieldStatus: bson.M{"$ne": model.StatusDeleted},
	}
	update := bson.M{"$set": bson.M{model.FieldStatus: model.StatusDeleted}}

	res, err := r.reservations.UpdateOne(ctx, filter, update)
	if err != nil {
		return errors.Wrap(err, "soft delete reservation")
	}
	if res.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}
