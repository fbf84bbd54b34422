package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, price float64) (string, error)
}

type PaymentHandler struct {
	service PaymentService
}

func NewPaymentHandler(service PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// POST /create-payment-intent
// {price} in → {clientSecret} out; the frontend confirms the card
// payment against Stripe directly with that secret.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	clientSecret, err := h.service.CreatePaymentIntent(c.Request.Context(), body.Price)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
