package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"estate-app/internal/models"
)

type OfferRepository interface {
	FindByFilter(ctx context.Context, filter bson.M) ([]models.Offer, error)
	Insert(ctx context.Context, offer *models.Offer) (primitive.ObjectID, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error)
}

type OfferService struct {
	repo OfferRepository
}

func NewOfferService(repo OfferRepository) *OfferService {
	return &OfferService{repo: repo}
}

func (s *OfferService) GetOffers(ctx context.Context, filter OfferFilter) ([]models.Offer, error) {
	return s.repo.FindByFilter(ctx, filter.Document())
}

// CreateOffer inserts a buyer's bid. Every offer starts Pending; the
// transaction id stays empty until payment completes.
func (s *OfferService) CreateOffer(ctx context.Context, offer *models.Offer) (primitive.ObjectID, error) {
	offer.Status = models.OfferPending
	offer.TransactionID = ""
	if err := offer.Validate(); err != nil {
		return primitive.NilObjectID, err
	}

	return s.repo.Insert(ctx, offer)
}

// UpdateOffer sets the status and, for completed payments, the
// transaction id. Offers support no other mutation and no deletion.
func (s *OfferService) UpdateOffer(ctx context.Context, id primitive.ObjectID, update models.OfferUpdate) (*mongo.UpdateResult, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	fields := bson.M{}
	if update.Status != "" {
		fields["status"] = update.Status
	}
	if update.TransactionID != "" {
		fields["transactionId"] = update.TransactionID
	}
	if len(fields) == 0 {
		return &mongo.UpdateResult{}, nil
	}

	return s.repo.UpdateFields(ctx, id, fields)
}
