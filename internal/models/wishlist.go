package models

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"estate-app/internal/utils"
)

// WishlistEntry is a user's saved property. Display fields are
// denormalized from the property at save time; the entry has no
// lifecycle beyond create/list/delete.
type WishlistEntry struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserEmail     string             `json:"userEmail" bson:"userEmail" validate:"required,email"`
	PropertyID    primitive.ObjectID `json:"propertyId" bson:"propertyId" validate:"required"`
	Title         string             `json:"title,omitempty" bson:"title,omitempty"`
	Location      string             `json:"location,omitempty" bson:"location,omitempty"`
	Price         float64            `json:"price,omitempty" bson:"price,omitempty"`
	PropertyImage string             `json:"propertyImage,omitempty" bson:"propertyImage,omitempty"`
	AgentName     string             `json:"agentName,omitempty" bson:"agentName,omitempty"`
	Status        string             `json:"status,omitempty" bson:"status,omitempty"`
}

func (w WishlistEntry) Validate() error {
	err := utils.GetValidator().Struct(w)
	if err != nil {
		errs := utils.ParseErrors(err)
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, " // "))
	}

	return nil
}
