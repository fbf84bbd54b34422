package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"estate-app/internal/models"
)

type OfferRepository struct {
	col *mongo.Collection
}

func NewOfferRepository(db *mongo.Database) *OfferRepository {
	return &OfferRepository{col: db.Collection("offers")}
}

func (r *OfferRepository) FindByFilter(ctx context.Context, filter bson.M) ([]models.Offer, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var offers []models.Offer
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, err
	}
	if offers == nil {
		offers = []models.Offer{}
	}

	return offers, nil
}

func (r *OfferRepository) Insert(ctx context.Context, offer *models.Offer) (primitive.ObjectID, error) {
	offer.ID = primitive.NewObjectID()
	_, err := r.col.InsertOne(ctx, offer)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return offer.ID, nil
}

func (r *OfferRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, models.ErrNotFound
	}
	return res, nil
}
