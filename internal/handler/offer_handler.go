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

type OfferService interface {
	GetOffers(ctx context.Context, filter services.OfferFilter) ([]models.Offer, error)
	CreateOffer(ctx context.Context, offer *models.Offer) (primitive.ObjectID, error)
	UpdateOffer(ctx context.Context, id primitive.ObjectID, update models.OfferUpdate) (*mongo.UpdateResult, error)
}

type OfferHandler struct {
	service OfferService
}

func NewOfferHandler(service OfferService) *OfferHandler {
	return &OfferHandler{service: service}
}

// GET /offeredProperty
// Compound filter over agentEmail, buyerEmail and status, e.g.
// ?agentEmail=a@x.com&status=Bought for an agent's sold listings.
func (h *OfferHandler) ListOffers(c *gin.Context) {
	filter := services.OfferFilter{
		AgentEmail: c.Query("agentEmail"),
		BuyerEmail: c.Query("buyerEmail"),
		Status:     c.Query("status"),
	}

	offers, err := h.service.GetOffers(c.Request.Context(), filter)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

// POST /offeredProperty
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var offer models.Offer
	if err := c.ShouldBindJSON(&offer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	id, err := h.service.CreateOffer(c.Request.Context(), &offer)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// PATCH /offeredProperty/:id records an agent decision or payment completion.
func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offer ID"})
		return
	}

	var update models.OfferUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	res, err := h.service.UpdateOffer(c.Request.Context(), id, update)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updateCounts(res))
}
