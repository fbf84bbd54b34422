package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"estate-app/internal/models"
)

type PropertyRepository struct {
	col *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{col: db.Collection("properties")}
}

// FindByFilter runs the supplied filter document unmodified. An empty
// filter lists every property; there is no pagination.
func (r *PropertyRepository) FindByFilter(ctx context.Context, filter bson.M) ([]models.Property, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	if properties == nil {
		properties = []models.Property{}
	}

	return properties, nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	var property models.Property
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepository) Insert(ctx context.Context, property *models.Property) (primitive.ObjectID, error) {
	property.ID = primitive.NewObjectID()
	_, err := r.col.InsertOne(ctx, property)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return property.ID, nil
}

// UpdateFields applies a $set of only the named fields, leaving the
// rest of the document untouched.
func (r *PropertyRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, models.ErrNotFound
	}
	return res, nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
