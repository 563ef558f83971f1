package sessions

import (
	"testing"

	"leadform-backend/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// A retried completing advance must map to the same submission document: the
// submission id is derived from the session, not freshly generated, so a
// second insert attempt hits the unique _id instead of creating a duplicate.
func TestFinalizeSubmissionIDStableAcrossRetries(t *testing.T) {
	block := models.Block{ID: primitive.NewObjectID(), Title: "Contact"}
	question := models.Question{
		ID:      primitive.NewObjectID(),
		BlockID: block.ID,
		Title:   "Your email",
		Type:    models.Email,
	}
	form := &models.Form{
		ID:        primitive.NewObjectID(),
		Title:     "Property Inquiry",
		Blocks:    []models.Block{block},
		Questions: []models.Question{question},
	}
	session := &models.FormSession{
		ID:     primitive.NewObjectID(),
		FormID: form.ID,
		Answers: models.AnswerMap{
			question.ID.Hex(): models.ScalarAnswer("jane@example.com"),
		},
	}

	first := finalizeSubmission(form, session)
	second := finalizeSubmission(form, session)

	assert.Equal(t, session.ID, first.ID)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, form.ID, first.FormID)
	assert.Equal(t, first.Contact, second.Contact)
	assert.Equal(t, first.LeadScore, second.LeadScore)
	assert.Equal(t, first.Answers, second.Answers)
}
