package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"estate-app/internal/models"
	"estate-app/internal/services"
)

type PropertyService interface {
	GetProperties(ctx context.Context, filter services.PropertyFilter) ([]models.Property, error)
	GetVerifiedProperties(ctx context.Context) ([]models.Property, error)
	GetProperty(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
	CreateProperty(ctx context.Context, property *models.Property) (primitive.ObjectID, error)
	UpdateProperty(ctx context.Context, id primitive.ObjectID, update models.PropertyUpdate) (*mongo.UpdateResult, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, update models.PropertyStatusUpdate) (*mongo.UpdateResult, error)
	DeleteProperty(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type PropertyHandler struct {
	service PropertyService
}

func NewPropertyHandler(service PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// GET /allProperty
// Recognized query parameters (email, status) are ANDed; with none
// present the whole collection comes back.
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	filter := services.PropertyFilter{
		Email:  c.Query("email"),
		Status: c.Query("status"),
	}

	properties, err := h.service.GetProperties(c.Request.Context(), filter)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

// GET /allProperty/status is the public, verified-only listing.
func (h *PropertyHandler) ListVerifiedProperties(c *gin.Context) {
	properties, err := h.service.GetVerifiedProperties(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

// GET /allProperty/:id
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property ID"})
		return
	}

	property, err := h.service.GetProperty(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// POST /allProperty
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	id, err := h.service.CreateProperty(c.Request.Context(), &property)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// PUT /allProperty/:id updates descriptive fields only.
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property ID"})
		return
	}

	var update models.PropertyUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	res, err := h.service.UpdateProperty(c.Request.Context(), id, update)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updateCounts(res))
}

// PATCH /allProperty/:id (admin only) sets the verification status and
// the advertised flag.
func (h *PropertyHandler) UpdatePropertyStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property ID"})
		return
	}

	var update models.PropertyStatusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	res, err := h.service.UpdateStatus(c.Request.Context(), id, update)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updateCounts(res))
}

// DELETE /allProperty/:id
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property ID"})
		return
	}

	deleted, err := h.service.DeleteProperty(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
