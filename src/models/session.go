package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FormSession is one respondent's in-progress fill of a form. The session
// exclusively owns its navigation position and answer snapshot; there are no
// concurrent writers.
type FormSession struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Token  string             `bson:"token" json:"token"`
	FormID primitive.ObjectID `bson:"formId" json:"formId"`

	BlockIndex int       `bson:"blockIndex" json:"blockIndex"`
	Answers    AnswerMap `bson:"answers" json:"answers"`

	Completed    bool                `bson:"completed" json:"completed"`
	SubmissionID *primitive.ObjectID `bson:"submissionId,omitempty" json:"submissionId,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
