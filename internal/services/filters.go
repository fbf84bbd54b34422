package services

import "go.mongodb.org/mongo-driver/bson"

// PropertyFilter is the typed form of the listing query parameters.
// Only recognized fields ever reach the store; anything else in the
// query string is dropped at the handler.
type PropertyFilter struct {
	Email  string
	Status string
}

// Document ANDs every present field. An empty filter matches all
// properties.
func (f PropertyFilter) Document() bson.M {
	filter := bson.M{}
	if f.Email != "" {
		filter["email"] = f.Email
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}

// OfferFilter is the typed form of the offer query parameters.
type OfferFilter struct {
	AgentEmail string
	BuyerEmail string
	Status     string
}

// Document ANDs the present email fields; status only applies when
// paired with an email, so a bare ?status= falls back to the wider
// listing instead of a cross-user status scan.
func (f OfferFilter) Document() bson.M {
	filter := bson.M{}
	if f.AgentEmail != "" {
		filter["agentEmail"] = f.AgentEmail
	}
	if f.BuyerEmail != "" {
		filter["buyerEmail"] = f.BuyerEmail
	}
	if f.Status != "" && (f.AgentEmail != "" || f.BuyerEmail != "") {
		filter["status"] = f.Status
	}
	return filter
}
