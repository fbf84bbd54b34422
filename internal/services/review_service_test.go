package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estate-app/internal/models"
)

type fakeReviewRepo struct {
	reviews []models.Review
}

func (f *fakeReviewRepo) FindByFilter(ctx context.Context, filter bson.M) ([]models.Review, error) {
	matched := []models.Review{}
	for _, r := range f.reviews {
		if v, ok := filter["reviewerEmail"]; ok && r.ReviewerEmail != v {
			continue
		}
		if v, ok := filter["propertyId"]; ok && r.PropertyID != v {
			continue
		}
		matched = append(matched, r)
	}
	return matched, nil
}

func (f *fakeReviewRepo) Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	review.ID = primitive.NewObjectID()
	f.reviews = append(f.reviews, *review)
	return review.ID, nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func TestCreateReview_StampsTime(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc := NewReviewService(repo)
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	_, err := svc.CreateReview(context.Background(), &models.Review{
		ReviewerEmail: "r@x.com",
		Description:   "lovely place",
	})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}

	if !repo.reviews[0].ReviewTime.Equal(fixed) {
		t.Errorf("reviewTime = %v, want %v", repo.reviews[0].ReviewTime, fixed)
	}
}

func TestCreateReview_RequiresDescription(t *testing.T) {
	svc := NewReviewService(&fakeReviewRepo{})

	_, err := svc.CreateReview(context.Background(), &models.Review{ReviewerEmail: "r@x.com"})
	if !errors.Is(err, models.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestGetReviewsByReviewer(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc := NewReviewService(repo)
	ctx := context.Background()

	for _, email := range []string{"a@x.com", "a@x.com", "b@x.com"} {
		if _, err := svc.CreateReview(ctx, &models.Review{ReviewerEmail: email, Description: "ok"}); err != nil {
			t.Fatalf("CreateReview: %v", err)
		}
	}

	reviews, err := svc.GetReviewsByReviewer(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("GetReviewsByReviewer: %v", err)
	}
	if len(reviews) != 2 {
		t.Errorf("review count = %d, want 2", len(reviews))
	}
}
