package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"leadform-backend/src/models"
)

func TestApplyAnswerScalar(t *testing.T) {
	answers := ApplyAnswer(models.AnswerMap{}, "q1", "hello", models.ShortText)
	assert.Equal(t, "hello", answers["q1"].Text)

	// Scalar values are replaced outright.
	answers = ApplyAnswer(answers, "q1", "goodbye", models.ShortText)
	assert.Equal(t, "goodbye", answers["q1"].Text)
}

func TestApplyAnswerCheckboxToggle(t *testing.T) {
	answers := ApplyAnswer(models.AnswerMap{}, "q1", "a", models.Checkbox)
	answers = ApplyAnswer(answers, "q1", "b", models.Checkbox)
	assert.Equal(t, []string{"a", "b"}, answers["q1"].Selections)

	// Toggling an existing option removes it, preserving order.
	answers = ApplyAnswer(answers, "q1", "a", models.Checkbox)
	assert.Equal(t, []string{"b"}, answers["q1"].Selections)
}

func TestApplyAnswerDoubleToggleIsIdempotent(t *testing.T) {
	original := ApplyAnswer(models.AnswerMap{}, "q1", "a", models.Checkbox)

	twice := ApplyAnswer(original, "q1", "b", models.Checkbox)
	twice = ApplyAnswer(twice, "q1", "b", models.Checkbox)
	assert.Equal(t, original["q1"].Selections, twice["q1"].Selections)
}

func TestApplyAnswerDoesNotMutateInput(t *testing.T) {
	original := models.AnswerMap{"q1": models.ScalarAnswer("keep")}
	updated := ApplyAnswer(original, "q1", "changed", models.ShortText)

	assert.Equal(t, "keep", original["q1"].Text)
	assert.Equal(t, "changed", updated["q1"].Text)
}

func TestApplyAnswerUnknownQuestionTolerated(t *testing.T) {
	// The engine does not validate question ids against the form.
	answers := ApplyAnswer(models.AnswerMap{}, "not-a-real-id", "x", models.ShortText)
	assert.Equal(t, "x", answers["not-a-real-id"].Text)
}
