package models

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"estate-app/internal/utils"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is created once per email on first registration; only its role
// is ever mutated afterwards.
type User struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email    string             `json:"email" bson:"email" validate:"required,email"`
	Name     string             `json:"name,omitempty" bson:"name,omitempty"`
	PhotoURL string             `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	Role     string             `json:"role" bson:"role" validate:"omitempty,oneof=user admin"`
}

func (u User) Validate() error {
	err := utils.GetValidator().Struct(u)
	if err != nil {
		errs := utils.ParseErrors(err)
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, " // "))
	}

	return nil
}

// RoleUpdate is the body of the role-promotion endpoint.
type RoleUpdate struct {
	Role string `json:"role" bson:"role" validate:"required,oneof=user admin"`
}

func (r RoleUpdate) Validate() error {
	err := utils.GetValidator().Struct(r)
	if err != nil {
		errs := utils.ParseErrors(err)
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, " // "))
	}

	return nil
}
