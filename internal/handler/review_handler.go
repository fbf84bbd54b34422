package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estate-app/internal/models"
)

type ReviewService interface {
	GetReviews(ctx context.Context, propertyID *primitive.ObjectID) ([]models.Review, error)
	GetReviewsByReviewer(ctx context.Context, email string) ([]models.Review, error)
	CreateReview(ctx context.Context, review *models.Review) (primitive.ObjectID, error)
	DeleteReview(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type ReviewHandler struct {
	service ReviewService
}

func NewReviewHandler(service ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// GET /reviews returns all reviews, or one property's with ?propertyId=.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	var propertyID *primitive.ObjectID
	if hex := c.Query("propertyId"); hex != "" {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property ID"})
			return
		}
		propertyID = &id
	}

	reviews, err := h.service.GetReviews(c.Request.Context(), propertyID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GET /reviews/:email
func (h *ReviewHandler) ListReviewsByReviewer(c *gin.Context) {
	reviews, err := h.service.GetReviewsByReviewer(c.Request.Context(), c.Param("email"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// POST /reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	id, err := h.service.CreateReview(c.Request.Context(), &review)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// DELETE /reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review ID"})
		return
	}

	deleted, err := h.service.DeleteReview(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
