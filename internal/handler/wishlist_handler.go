package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estate-app/internal/models"
	"estate-app/internal/utils"
)

type WishlistService interface {
	GetWishlist(ctx context.Context, userEmail string) ([]models.WishlistEntry, error)
	AddEntry(ctx context.Context, entry *models.WishlistEntry) (primitive.ObjectID, error)
	RemoveEntry(ctx context.Context, userEmail string, id primitive.ObjectID) (int64, error)
}

type WishlistHandler struct {
	service WishlistService
}

func NewWishlistHandler(service WishlistService) *WishlistHandler {
	return &WishlistHandler{service: service}
}

// GET /wishlist/:email, with RequireSelf guarding the email parameter.
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	entries, err := h.service.GetWishlist(c.Request.Context(), c.Param("email"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// POST /wishlist
// The entry is always stored under the authenticated email, whatever
// the body claims.
func (h *WishlistHandler) AddEntry(c *gin.Context) {
	var entry models.WishlistEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	entry.UserEmail = c.GetString(utils.CtxEmail)

	id, err := h.service.AddEntry(c.Request.Context(), &entry)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// DELETE /wishlist/:email/:id
func (h *WishlistHandler) RemoveEntry(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wishlist ID"})
		return
	}

	deleted, err := h.service.RemoveEntry(c.Request.Context(), c.Param("email"), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
