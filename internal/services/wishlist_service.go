package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"estate-app/internal/models"
)

type WishlistRepository interface {
	FindByUser(ctx context.Context, userEmail string) ([]models.WishlistEntry, error)
	Insert(ctx context.Context, entry *models.WishlistEntry) (primitive.ObjectID, error)
	Delete(ctx context.Context, userEmail string, id primitive.ObjectID) (int64, error)
}

type WishlistService struct {
	repo WishlistRepository
}

func NewWishlistService(repo WishlistRepository) *WishlistService {
	return &WishlistService{repo: repo}
}

func (s *WishlistService) GetWishlist(ctx context.Context, userEmail string) ([]models.WishlistEntry, error) {
	return s.repo.FindByUser(ctx, userEmail)
}

func (s *WishlistService) AddEntry(ctx context.Context, entry *models.WishlistEntry) (primitive.ObjectID, error) {
	if err := entry.Validate(); err != nil {
		return primitive.NilObjectID, err
	}
	return s.repo.Insert(ctx, entry)
}

func (s *WishlistService) RemoveEntry(ctx context.Context, userEmail string, id primitive.ObjectID) (int64, error) {
	return s.repo.Delete(ctx, userEmail, id)
}
