package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"estate-app/internal/models"
)

// serviceError maps the sentinel errors every service returns onto the
// HTTP taxonomy: invalid ids and payloads are the client's fault,
// missing documents are 404, duplicates are 409, anything else is an
// upstream failure.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidID), errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// updateCounts shapes a mongo update result as {matchedCount, modifiedCount},
// the form clients expect from update endpoints.
func updateCounts(res *mongo.UpdateResult) gin.H {
	return gin.H{"matchedCount": res.MatchedCount, "modifiedCount": res.ModifiedCount}
}
