package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"estate-app/internal/utils"
)

// Review is free-text feedback left on a property. Create/list/delete
// only; reviewTime is stamped server-side on insert.
type Review struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	PropertyID    primitive.ObjectID `json:"propertyId,omitempty" bson:"propertyId,omitempty"`
	ReviewerEmail string             `json:"reviewerEmail" bson:"reviewerEmail" validate:"required,email"`
	ReviewerName  string             `json:"reviewerName,omitempty" bson:"reviewerName,omitempty"`
	Description   string             `json:"description" bson:"description" validate:"required"`
	ReviewTime    time.Time          `json:"reviewTime,omitempty" bson:"reviewTime,omitempty"`
}

func (r Review) Validate() error {
	err := utils.GetValidator().Struct(r)
	if err != nil {
		errs := utils.ParseErrors(err)
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, " // "))
	}

	return nil
}
