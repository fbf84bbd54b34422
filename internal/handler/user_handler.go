package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"estate-app/internal/models"
)

type UserService interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	RegisterUser(ctx context.Context, user *models.User) (primitive.ObjectID, bool, error)
	ChangeRole(ctx context.Context, id primitive.ObjectID, update models.RoleUpdate) (*mongo.UpdateResult, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type UserHandler struct {
	service UserService
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

// GET /users (admin only)
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.service.GetAllUsers(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /users/admin/:email
// RequireSelf has already matched :email against the token, so this
// only ever reveals the caller's own record and admin flag.
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	user, err := h.service.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "admin": user.Role == models.RoleAdmin})
}

// POST /users
// Registration is idempotent per email: a repeat post answers with a
// message and a null insertedId instead of creating a second document.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	id, inserted, err := h.service.RegisterUser(c.Request.Context(), &user)
	if err != nil {
		serviceError(c, err)
		return
	}

	if !inserted {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// PATCH /users/admin/:id (admin only)
func (h *UserHandler) ChangeRole(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	var update models.RoleUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	res, err := h.service.ChangeRole(c.Request.Context(), id, update)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, updateCounts(res))
}

// DELETE /users/:id (admin only)
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	deleted, err := h.service.DeleteUser(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
