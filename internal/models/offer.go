package models

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"estate-app/internal/utils"
)

const (
	OfferPending  = "Pending"
	OfferAccepted = "Accepted"
	OfferRejected = "Rejected"
	OfferBought   = "Bought"
)

// Offer is a buyer's bid on a property. Status moves from "Pending"
// through the agent's decision; "Bought" plus a transactionId is set
// once payment completes. Offers are never deleted.
type Offer struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	PropertyID    primitive.ObjectID `json:"propertyId,omitempty" bson:"propertyId,omitempty"`
	AgentEmail    string             `json:"agentEmail" bson:"agentEmail" validate:"required,email"`
	BuyerEmail    string             `json:"buyerEmail" bson:"buyerEmail" validate:"required,email"`
	BuyerName     string             `json:"buyerName,omitempty" bson:"buyerName,omitempty"`
	Title         string             `json:"title,omitempty" bson:"title,omitempty"`
	Location      string             `json:"location,omitempty" bson:"location,omitempty"`
	OfferAmount   float64            `json:"offerAmount,omitempty" bson:"offerAmount,omitempty" validate:"omitempty,gt=0"`
	Status        string             `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=Pending Accepted Rejected Bought"`
	TransactionID string             `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
}

func (o Offer) Validate() error {
	err := utils.GetValidator().Struct(o)
	if err != nil {
		errs := utils.ParseErrors(err)
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, " // "))
	}

	return nil
}

// OfferUpdate sets the offer outcome. Both fields are optional so the
// agent decision (status only) and the payment completion (status plus
// transactionId) go through the same endpoint.
type OfferUpdate struct {
	Status        string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=Pending Accepted Rejected Bought"`
	TransactionID string `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
}

func (o OfferUpdate) Validate() error {
	err := utils.GetValidator().Struct(o)
	if err != nil {
		errs := utils.ParseErrors(err)
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, " // "))
	}

	return nil
}
