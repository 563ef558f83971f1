package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lead statuses.
const (
	LeadStatusNew      = "new"
	LeadStatusFollowUp = "follow_up"
)

// Lead is a contact record ingested through the webhook endpoint.
// Deduplicated by phone number on ingestion.
type Lead struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Phone  string             `bson:"phone" json:"phone"`
	Email  string             `bson:"email,omitempty" json:"email,omitempty"`
	Source string             `bson:"source,omitempty" json:"source,omitempty"`
	Status string             `bson:"status" json:"status"`
	Notes  string             `bson:"notes,omitempty" json:"notes,omitempty"`

	DateAdded  time.Time `bson:"dateAdded" json:"dateAdded"`
	FollowUpAt time.Time `bson:"followUpAt" json:"followUpAt"`
}
