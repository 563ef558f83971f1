package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactInfo is the best-effort name/email/phone extracted from a completed
// answer set.
type ContactInfo struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Submission is the finalized record of one completed form session. It is
// immutable once persisted.
type Submission struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FormID      primitive.ObjectID `bson:"formId" json:"formId"`
	Answers     AnswerMap          `bson:"answers" json:"answers"`
	Contact     ContactInfo        `bson:"contact,omitempty" json:"contact,omitempty"`
	LeadScore   int                `bson:"leadScore" json:"leadScore"`
	SubmittedAt time.Time          `bson:"submittedAt" json:"submittedAt"`
}
