package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type TokenIssuer interface {
	IssueToken(identity map[string]interface{}) (string, error)
}

type AuthHandler struct {
	tokens TokenIssuer
}

func NewAuthHandler(tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// POST /jwt
// The client posts its identity claims and gets a signed bearer token
// back. An email claim is the minimum; the rest is carried verbatim.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var claims map[string]interface{}
	if err := c.ShouldBindJSON(&claims); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	email, _ := claims["email"].(string)
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email claim is required"})
		return
	}

	token, err := h.tokens.IssueToken(claims)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
