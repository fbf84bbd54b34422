package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"estate-app/internal/models"
)

type WishlistRepository struct {
	col *mongo.Collection
}

func NewWishlistRepository(db *mongo.Database) *WishlistRepository {
	return &WishlistRepository{col: db.Collection("wishlist")}
}

func (r *WishlistRepository) FindByUser(ctx context.Context, userEmail string) ([]models.WishlistEntry, error) {
	cursor, err := r.col.Find(ctx, bson.M{"userEmail": userEmail})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.WishlistEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.WishlistEntry{}
	}

	return entries, nil
}

func (r *WishlistRepository) Insert(ctx context.Context, entry *models.WishlistEntry) (primitive.ObjectID, error) {
	entry.ID = primitive.NewObjectID()
	_, err := r.col.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return entry.ID, nil
}

// Delete removes an entry only when it belongs to the given user, so a
// forged id cannot touch another user's wishlist.
func (r *WishlistRepository) Delete(ctx context.Context, userEmail string, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "userEmail": userEmail})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
