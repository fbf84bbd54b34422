package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estate-app/internal/models"
)

type ReviewRepository interface {
	FindByFilter(ctx context.Context, filter bson.M) ([]models.Review, error)
	Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type ReviewService struct {
	repo ReviewRepository
	now  func() time.Time
}

func NewReviewService(repo ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo, now: time.Now}
}

// GetReviews lists every review, narrowed to one property when an id
// is given.
func (s *ReviewService) GetReviews(ctx context.Context, propertyID *primitive.ObjectID) ([]models.Review, error) {
	filter := bson.M{}
	if propertyID != nil {
		filter["propertyId"] = *propertyID
	}
	return s.repo.FindByFilter(ctx, filter)
}

func (s *ReviewService) GetReviewsByReviewer(ctx context.Context, email string) ([]models.Review, error) {
	return s.repo.FindByFilter(ctx, bson.M{"reviewerEmail": email})
}

func (s *ReviewService) CreateReview(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	review.ReviewTime = s.now()
	if err := review.Validate(); err != nil {
		return primitive.NilObjectID, err
	}
	return s.repo.Insert(ctx, review)
}

func (s *ReviewService) DeleteReview(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.repo.Delete(ctx, id)
}
