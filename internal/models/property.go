package models

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"estate-app/internal/utils"
)

const (
	PropertyPending  = "pending"
	PropertyVerified = "verified"
	PropertyRejected = "rejected"
)

// Property is a listing posted by an agent. Status starts at "pending"
// and only an admin moves it to "verified" or "rejected".
type Property struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email" validate:"required,email"`
	AgentName     string             `json:"agentName,omitempty" bson:"agentName,omitempty"`
	Title         string             `json:"title" bson:"title" validate:"required"`
	Location      string             `json:"location,omitempty" bson:"location,omitempty"`
	Price         float64            `json:"price" bson:"price" validate:"required,gt=0"`
	PropertyImage string             `json:"propertyImage,omitempty" bson:"propertyImage,omitempty"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	Status        string             `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=pending verified rejected"`
	Advertised    bool               `json:"advertised" bson:"advertised"`
}

func (p Property) Validate() error {
	err := utils.GetValidator().Struct(p)
	if err != nil {
		errs := utils.ParseErrors(err)
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, " // "))
	}

	return nil
}

// PropertyUpdate carries the descriptive fields an agent may change.
// Zero-valued fields are left out of the update document.
type PropertyUpdate struct {
	Title         string  `json:"title,omitempty" bson:"title,omitempty"`
	Location      string  `json:"location,omitempty" bson:"location,omitempty"`
	Price         float64 `json:"price,omitempty" bson:"price,omitempty" validate:"omitempty,gt=0"`
	PropertyImage string  `json:"propertyImage,omitempty" bson:"propertyImage,omitempty"`
	Description   string  `json:"description,omitempty" bson:"description,omitempty"`
}

func (p PropertyUpdate) Validate() error {
	err := utils.GetValidator().Struct(p)
	if err != nil {
		errs := utils.ParseErrors(err)
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, " // "))
	}

	return nil
}

// PropertyStatusUpdate is the admin-side verification mutation.
type PropertyStatusUpdate struct {
	Status     string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=pending verified rejected"`
	Advertised *bool  `json:"advertised,omitempty" bson:"advertised,omitempty"`
}

func (p PropertyStatusUpdate) Validate() error {
	err := utils.GetValidator().Struct(p)
	if err != nil {
		errs := utils.ParseErrors(err)
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, " // "))
	}

	return nil
}
