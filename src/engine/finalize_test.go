package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"leadform-backend/src/models"
)

func TestExtractContactInfo(t *testing.T) {
	t.Run("ClassifiesAllThreeFields", func(t *testing.T) {
		answers := models.AnswerMap{
			"q1": models.ScalarAnswer("jane@example.com"),
			"q2": models.ScalarAnswer("+15551234567"),
			"q3": models.ScalarAnswer("Jane Doe"),
		}
		info := ExtractContactInfo(answers)
		assert.Equal(t, "jane@example.com", info.Email)
		assert.Equal(t, "+15551234567", info.Phone)
		assert.Equal(t, "Jane Doe", info.Name)
	})

	t.Run("LastEmailWins", func(t *testing.T) {
		answers := models.AnswerMap{
			"a": models.ScalarAnswer("first@example.com"),
			"b": models.ScalarAnswer("second@example.com"),
		}
		info := ExtractContactInfo(answers)
		assert.Equal(t, "second@example.com", info.Email)
	})

	t.Run("SkipsMultiAndEmptyValues", func(t *testing.T) {
		answers := models.AnswerMap{
			"q1": models.MultiAnswer("jane@example.com"),
			"q2": models.ScalarAnswer(""),
		}
		info := ExtractContactInfo(answers)
		assert.Empty(t, info.Email)
		assert.Empty(t, info.Phone)
		assert.Empty(t, info.Name)
	})

	t.Run("NameLengthBounds", func(t *testing.T) {
		short := ExtractContactInfo(models.AnswerMap{"q": models.ScalarAnswer("Jo")})
		assert.Empty(t, short.Name)

		long := ExtractContactInfo(models.AnswerMap{"q": models.ScalarAnswer(strings.Repeat("x", 50))})
		assert.Empty(t, long.Name)

		ok := ExtractContactInfo(models.AnswerMap{"q": models.ScalarAnswer("Joe")})
		assert.Equal(t, "Joe", ok.Name)
	})

	t.Run("PhonePattern", func(t *testing.T) {
		assert.Equal(t, "15551234567", ExtractContactInfo(models.AnswerMap{"q": models.ScalarAnswer("15551234567")}).Phone)
		// Leading zero is not a phone; at three characters it classifies as a name.
		noLead := ExtractContactInfo(models.AnswerMap{"q": models.ScalarAnswer("055")})
		assert.Empty(t, noLead.Phone)
	})

	t.Run("EmptySnapshot", func(t *testing.T) {
		assert.Equal(t, models.ContactInfo{}, ExtractContactInfo(models.AnswerMap{}))
	})
}

func TestCalculateLeadScore(t *testing.T) {
	t.Run("EmptyInputScoresZero", func(t *testing.T) {
		assert.Equal(t, 0, CalculateLeadScore(models.AnswerMap{}, models.ContactInfo{}))
	})

	t.Run("ContactFieldWeights", func(t *testing.T) {
		assert.Equal(t, 20, CalculateLeadScore(models.AnswerMap{}, models.ContactInfo{Email: "a@b.c"}))
		assert.Equal(t, 15, CalculateLeadScore(models.AnswerMap{}, models.ContactInfo{Phone: "123"}))
		assert.Equal(t, 10, CalculateLeadScore(models.AnswerMap{}, models.ContactInfo{Name: "Jane"}))
	})

	t.Run("MonotonicInContactFields", func(t *testing.T) {
		answers := models.AnswerMap{"q": models.ScalarAnswer("x")}
		none := CalculateLeadScore(answers, models.ContactInfo{})
		one := CalculateLeadScore(answers, models.ContactInfo{Email: "a@b.c"})
		two := CalculateLeadScore(answers, models.ContactInfo{Email: "a@b.c", Phone: "123"})
		three := CalculateLeadScore(answers, models.ContactInfo{Email: "a@b.c", Phone: "123", Name: "Jane"})
		assert.LessOrEqual(t, none, one)
		assert.LessOrEqual(t, one, two)
		assert.LessOrEqual(t, two, three)
	})

	t.Run("CompletenessBonusTiers", func(t *testing.T) {
		build := func(n int) models.AnswerMap {
			m := models.AnswerMap{}
			for i := 0; i < n; i++ {
				m[primitive.NewObjectID().Hex()] = models.ScalarAnswer("v")
			}
			return m
		}
		assert.Equal(t, 0, CalculateLeadScore(build(1), models.ContactInfo{}))
		assert.Equal(t, 10, CalculateLeadScore(build(2), models.ContactInfo{}))
		assert.Equal(t, 15, CalculateLeadScore(build(4), models.ContactInfo{}))
		assert.Equal(t, 20, CalculateLeadScore(build(6), models.ContactInfo{}))
	})

	t.Run("RichnessBonuses", func(t *testing.T) {
		longText := models.AnswerMap{
			"q": models.ScalarAnswer(strings.Repeat("a", 21)),
		}
		assert.Equal(t, 5, CalculateLeadScore(longText, models.ContactInfo{}))

		bigSet := models.AnswerMap{
			"q": models.MultiAnswer("a", "b", "c"),
		}
		assert.Equal(t, 10, CalculateLeadScore(bigSet, models.ContactInfo{}))
	})

	t.Run("ClampedToHundred", func(t *testing.T) {
		answers := models.AnswerMap{}
		for i := 0; i < 20; i++ {
			answers[primitive.NewObjectID().Hex()] = models.ScalarAnswer(strings.Repeat("a", 30))
		}
		contact := models.ContactInfo{Email: "a@b.c", Phone: "123", Name: "Jane"}
		score := CalculateLeadScore(answers, contact)
		assert.Equal(t, 100, score)
	})
}

func TestFinalize(t *testing.T) {
	form := &models.Form{ID: primitive.NewObjectID(), Title: "t"}
	answers := models.AnswerMap{
		"q1": models.ScalarAnswer("jane@example.com"),
		"q2": models.ScalarAnswer("Jane Doe"),
	}

	sub := Finalize(form, answers)

	assert.False(t, sub.ID.IsZero())
	assert.Equal(t, form.ID, sub.FormID)
	assert.False(t, sub.SubmittedAt.IsZero())
	assert.Equal(t, "jane@example.com", sub.Contact.Email)
	assert.Equal(t, "Jane Doe", sub.Contact.Name)
	assert.Equal(t, CalculateLeadScore(answers, sub.Contact), sub.LeadScore)

	// The submission holds a snapshot; later answer edits must not leak in.
	answers["q1"] = models.ScalarAnswer("other@example.com")
	assert.Equal(t, "jane@example.com", sub.Answers["q1"].Text)
}
