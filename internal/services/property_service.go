package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"estate-app/internal/models"
)

type PropertyRepository interface {
	FindByFilter(ctx context.Context, filter bson.M) ([]models.Property, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
	Insert(ctx context.Context, property *models.Property) (primitive.ObjectID, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type PropertyService struct {
	repo PropertyRepository
}

func NewPropertyService(repo PropertyRepository) *PropertyService {
	return &PropertyService{repo: repo}
}

func (s *PropertyService) GetProperties(ctx context.Context, filter PropertyFilter) ([]models.Property, error) {
	return s.repo.FindByFilter(ctx, filter.Document())
}

// GetVerifiedProperties is the public listing: only listings an admin
// has marked verified.
func (s *PropertyService) GetVerifiedProperties(ctx context.Context) ([]models.Property, error) {
	return s.repo.FindByFilter(ctx, bson.M{"status": models.PropertyVerified})
}

func (s *PropertyService) GetProperty(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateProperty inserts a new listing. A fresh listing always starts
// pending regardless of what the client sent.
func (s *PropertyService) CreateProperty(ctx context.Context, property *models.Property) (primitive.ObjectID, error) {
	property.Status = models.PropertyPending
	property.Advertised = false
	if err := property.Validate(); err != nil {
		return primitive.NilObjectID, err
	}

	return s.repo.Insert(ctx, property)
}

// UpdateProperty merge-patches the descriptive fields; status is not
// reachable through this path.
func (s *PropertyService) UpdateProperty(ctx context.Context, id primitive.ObjectID, update models.PropertyUpdate) (*mongo.UpdateResult, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	fields := bson.M{}
	if update.Title != "" {
		fields["title"] = update.Title
	}
	if update.Location != "" {
		fields["location"] = update.Location
	}
	if update.Price > 0 {
		fields["price"] = update.Price
	}
	if update.PropertyImage != "" {
		fields["propertyImage"] = update.PropertyImage
	}
	if update.Description != "" {
		fields["description"] = update.Description
	}
	if len(fields) == 0 {
		return &mongo.UpdateResult{}, nil
	}

	return s.repo.UpdateFields(ctx, id, fields)
}

// UpdateStatus is the admin verification path: status and/or the
// advertised flag.
func (s *PropertyService) UpdateStatus(ctx context.Context, id primitive.ObjectID, update models.PropertyStatusUpdate) (*mongo.UpdateResult, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	fields := bson.M{}
	if update.Status != "" {
		fields["status"] = update.Status
	}
	if update.Advertised != nil {
		fields["advertised"] = *update.Advertised
	}
	if len(fields) == 0 {
		return &mongo.UpdateResult{}, nil
	}

	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *PropertyService) DeleteProperty(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.repo.Delete(ctx, id)
}
