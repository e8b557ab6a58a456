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

func (r *repository) ListBlacklist(ctx context.Context, filter *model.BlacklistFilter) ([]model.BlacklistEntry, error) {
	q := BlacklistFilterBSON(filter)
	r.log.Debug("ListBlacklist", zap.Any("filter", q))

	cur, err := r.blacklist.Find(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "find blacklist")
	}
	items := make([]model.BlacklistEntry, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, errors.Wrap(err, "decode blacklist")
	}
	return items, nil
}

func (r *repository) GetBlacklistEntry(ctx context.Context, id string) (model.BlacklistEntry, error) {
	return r.findBlacklist(ctx, bson.M{model.FieldID: id})
}

// FindBlacklistEntry returns the first entry whose field equals value.
func (r *repository) FindBlacklistEntry(ctx context.Context, field, value string) (model.BlacklistEntry, error) {
	return r.findBlacklist(ctx, bson.M{field: value})
}

func (r *repository) findBlacklist(ctx context.Context, filter bson.M) (model.BlacklistEntry, error) {
	var entry model.BlacklistEntry
	if err := r.blacklist.FindOne(ctx, filter).Decode(&entry); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.BlacklistEntry{}, errs.ErrNotFound
		}
		return model.BlacklistEntry{}, errors.Wrap(err, "find blacklist entry")
	}
	return entry, nil
}

func (r *repository) CreateBlacklistEntry(ctx context.Context, entry model.BlacklistEntry) error {
	if _, err := r.blacklist.InsertOne(ctx, entry); err != nil {
		r.log.Error("CreateBlacklistEntry", zap.String("id", entry.ID), zap.Error(err))
		return errors.Wrap(err, "insert blacklist entry")
	}
	return nil
}

func (r *repository) UpdateBlacklistField(ctx context.Context, id, field string, value interface{}) (model.BlacklistEntry, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{field: value}}

	var entry model.BlacklistEntry
	err := r.blacklist.FindOneAndUpdate(ctx, bson.M{model.FieldID: id}, update, opts).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.BlacklistEntry{}, errs.ErrNotFound
		}
		return model.BlacklistEntry{}, errors.Wrapf(err, "update blacklist %s", field)
	}
	return entry, nil
}

// DeleteBlacklistEntry removes the document for good.
func (r *repository) DeleteBlacklistEntry(ctx context.Context, id string) error {
	res, err := r.blacklist.DeleteOne(ctx, bson.M{model.FieldID: id})
	if err != nil {
		return errors.Wrap(err, "delete blacklist entry")
	}
	if res.DeletedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}
