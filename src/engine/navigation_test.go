package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"leadform-backend/src/models"
)

// threeBlockForm builds Block A (radio "interest" with a Rent→C jump rule),
// Block B, Block C. This is the canonical branching fixture.
func threeBlockForm() (*models.Form, models.Question) {
	blockA := models.Block{ID: primitive.NewObjectID(), Title: "Intent"}
	blockB := models.Block{ID: primitive.NewObjectID(), Title: "Buying"}
	blockC := models.Block{ID: primitive.NewObjectID(), Title: "Renting"}

	interest := models.Question{
		ID:       primitive.NewObjectID(),
		BlockID:  blockA.ID,
		Title:    "interest",
		Type:     models.Radio,
		Required: true,
		Options:  []string{"Buy", "Rent"},
		Rules: []models.ConditionalRule{
			{OptionValue: "Rent", TargetBlockID: blockC.ID, Action: models.ActionJump},
		},
	}

	form := &models.Form{
		ID:     primitive.NewObjectID(),
		Title:  "Housing intake",
		Blocks: []models.Block{blockA, blockB, blockC},
		Questions: []models.Question{
			interest,
			{ID: primitive.NewObjectID(), BlockID: blockB.ID, Title: "budget", Type: models.NumberInput},
			{ID: primitive.NewObjectID(), BlockID: blockC.ID, Title: "move-in", Type: models.DateInput},
		},
	}
	return form, interest
}

// linearForm builds n blocks with one optional question each and no rules.
func linearForm(n int) *models.Form {
	form := &models.Form{ID: primitive.NewObjectID(), Title: "linear"}
	for i := 0; i < n; i++ {
		block := models.Block{ID: primitive.NewObjectID()}
		form.Blocks = append(form.Blocks, block)
		form.Questions = append(form.Questions, models.Question{
			ID:      primitive.NewObjectID(),
			BlockID: block.ID,
			Type:    models.ShortText,
		})
	}
	return form
}

func TestValidateForm(t *testing.T) {
	t.Run("ValidFormPasses", func(t *testing.T) {
		form, _ := threeBlockForm()
		assert.NoError(t, ValidateForm(form))
	})

	t.Run("NoBlocks", func(t *testing.T) {
		form := &models.Form{Questions: []models.Question{{ID: primitive.NewObjectID()}}}
		assert.ErrorIs(t, ValidateForm(form), ErrInvalidForm)
	})

	t.Run("NoQuestions", func(t *testing.T) {
		form := &models.Form{Blocks: []models.Block{{ID: primitive.NewObjectID()}}}
		assert.ErrorIs(t, ValidateForm(form), ErrInvalidForm)
	})

	t.Run("DanglingBlockReference", func(t *testing.T) {
		form, _ := threeBlockForm()
		form.Questions[0].BlockID = primitive.NewObjectID()
		assert.ErrorIs(t, ValidateForm(form), ErrInvalidForm)
	})

	t.Run("RuleTargetsUnknownBlock", func(t *testing.T) {
		form, _ := threeBlockForm()
		form.Questions[0].Rules[0].TargetBlockID = primitive.NewObjectID()
		assert.ErrorIs(t, ValidateForm(form), ErrInvalidForm)
	})

	t.Run("RuleTargetsOwnBlock", func(t *testing.T) {
		form, _ := threeBlockForm()
		form.Questions[0].Rules[0].TargetBlockID = form.Blocks[0].ID
		assert.ErrorIs(t, ValidateForm(form), ErrInvalidForm)
	})
}

func TestValidateForPublish(t *testing.T) {
	form, _ := threeBlockForm()
	assert.NoError(t, ValidateForPublish(form))

	form.Questions[0].Options = []string{"Buy"}
	assert.ErrorIs(t, ValidateForPublish(form), ErrInvalidForm)
}

func TestQuestionsForState(t *testing.T) {
	form, interest := threeBlockForm()

	questions, err := QuestionsForState(form, NavigationState{BlockIndex: 0})
	assert.NoError(t, err)
	assert.Len(t, questions, 1)
	assert.Equal(t, interest.ID, questions[0].ID)

	_, err = QuestionsForState(form, NavigationState{BlockIndex: 3})
	assert.ErrorIs(t, err, ErrStateOutOfRange)

	_, err = QuestionsForState(form, NavigationState{BlockIndex: -1})
	assert.ErrorIs(t, err, ErrStateOutOfRange)
}

func TestCanAdvance(t *testing.T) {
	form, interest := threeBlockForm()
	questions := form.QuestionsForBlock(form.Blocks[0].ID)

	t.Run("RequiredUnanswered", func(t *testing.T) {
		assert.False(t, CanAdvance(questions, models.AnswerMap{}))
	})

	t.Run("RequiredEmptyScalar", func(t *testing.T) {
		answers := models.AnswerMap{interest.ID.Hex(): models.ScalarAnswer("")}
		assert.False(t, CanAdvance(questions, answers))
	})

	t.Run("RequiredAnswered", func(t *testing.T) {
		answers := models.AnswerMap{interest.ID.Hex(): models.ScalarAnswer("Buy")}
		assert.True(t, CanAdvance(questions, answers))
	})

	t.Run("RequiredEmptyMultiSet", func(t *testing.T) {
		q := []models.Question{{ID: interest.ID, Type: models.Checkbox, Required: true}}
		answers := models.AnswerMap{interest.ID.Hex(): models.MultiAnswer()}
		assert.False(t, CanAdvance(q, answers))

		answers = models.AnswerMap{interest.ID.Hex(): models.MultiAnswer("Rent")}
		assert.True(t, CanAdvance(q, answers))
	})

	t.Run("OptionalNeverBlocks", func(t *testing.T) {
		q := []models.Question{{ID: primitive.NewObjectID(), Type: models.ShortText}}
		assert.True(t, CanAdvance(q, models.AnswerMap{}))
	})
}

func TestAdvanceLinear(t *testing.T) {
	form := linearForm(4)

	state := NavigationState{}
	for i := 0; i < 3; i++ {
		next, complete, err := Advance(form, state, models.AnswerMap{})
		assert.NoError(t, err)
		assert.False(t, complete)
		assert.Equal(t, i+1, next.BlockIndex)
		state = next
	}

	// Advancing from the last block completes the flow.
	_, complete, err := Advance(form, state, models.AnswerMap{})
	assert.NoError(t, err)
	assert.True(t, complete)
}

func TestAdvanceConditionalJump(t *testing.T) {
	form, interest := threeBlockForm()

	t.Run("RentJumpsToBlockC", func(t *testing.T) {
		answers := ApplyAnswer(models.AnswerMap{}, interest.ID.Hex(), "Rent", models.Radio)
		next, complete, err := Advance(form, NavigationState{}, answers)
		assert.NoError(t, err)
		assert.False(t, complete)
		assert.Equal(t, 2, next.BlockIndex) // skipped Block B
	})

	t.Run("BuyFallsThroughToBlockB", func(t *testing.T) {
		answers := ApplyAnswer(models.AnswerMap{}, interest.ID.Hex(), "Buy", models.Radio)
		next, complete, err := Advance(form, NavigationState{}, answers)
		assert.NoError(t, err)
		assert.False(t, complete)
		assert.Equal(t, 1, next.BlockIndex)
	})

	t.Run("ChangedAnswerChangesRoute", func(t *testing.T) {
		answers := ApplyAnswer(models.AnswerMap{}, interest.ID.Hex(), "Rent", models.Radio)
		answers = ApplyAnswer(answers, interest.ID.Hex(), "Buy", models.Radio)
		next, _, err := Advance(form, NavigationState{}, answers)
		assert.NoError(t, err)
		assert.Equal(t, 1, next.BlockIndex)
	})

	t.Run("RequiredUnansweredFails", func(t *testing.T) {
		_, _, err := Advance(form, NavigationState{}, models.AnswerMap{})
		assert.ErrorIs(t, err, ErrBlockIncomplete)
	})
}

func TestAdvanceFirstMatchWins(t *testing.T) {
	// Two rule-bearing radio questions in one block; only the first fires.
	blockA := models.Block{ID: primitive.NewObjectID()}
	blockB := models.Block{ID: primitive.NewObjectID()}
	blockC := models.Block{ID: primitive.NewObjectID()}
	blockD := models.Block{ID: primitive.NewObjectID()}

	first := models.Question{
		ID: primitive.NewObjectID(), BlockID: blockA.ID, Type: models.Radio,
		Options: []string{"yes", "no"},
		Rules:   []models.ConditionalRule{{OptionValue: "yes", TargetBlockID: blockC.ID, Action: models.ActionJump}},
	}
	second := models.Question{
		ID: primitive.NewObjectID(), BlockID: blockA.ID, Type: models.Radio,
		Options: []string{"yes", "no"},
		Rules:   []models.ConditionalRule{{OptionValue: "yes", TargetBlockID: blockD.ID, Action: models.ActionJump}},
	}

	form := &models.Form{
		ID:        primitive.NewObjectID(),
		Blocks:    []models.Block{blockA, blockB, blockC, blockD},
		Questions: []models.Question{first, second},
	}

	answers := models.AnswerMap{
		first.ID.Hex():  models.ScalarAnswer("yes"),
		second.ID.Hex(): models.ScalarAnswer("yes"),
	}
	next, _, err := Advance(form, NavigationState{}, answers)
	assert.NoError(t, err)
	assert.Equal(t, 2, next.BlockIndex, "first question's rule should win")

	// When only the second question matches, its rule fires instead.
	answers[first.ID.Hex()] = models.ScalarAnswer("no")
	next, _, err = Advance(form, NavigationState{}, answers)
	assert.NoError(t, err)
	assert.Equal(t, 3, next.BlockIndex)
}

func TestAdvanceCheckboxNeverJumps(t *testing.T) {
	blockA := models.Block{ID: primitive.NewObjectID()}
	blockB := models.Block{ID: primitive.NewObjectID()}
	blockC := models.Block{ID: primitive.NewObjectID()}

	boxes := models.Question{
		ID: primitive.NewObjectID(), BlockID: blockA.ID, Type: models.Checkbox,
		Options: []string{"a", "b"},
		Rules:   []models.ConditionalRule{{OptionValue: "a", TargetBlockID: blockC.ID, Action: models.ActionJump}},
	}
	form := &models.Form{
		ID:        primitive.NewObjectID(),
		Blocks:    []models.Block{blockA, blockB, blockC},
		Questions: []models.Question{boxes},
	}

	answers := ApplyAnswer(models.AnswerMap{}, boxes.ID.Hex(), "a", models.Checkbox)
	next, _, err := Advance(form, NavigationState{}, answers)
	assert.NoError(t, err)
	assert.Equal(t, 1, next.BlockIndex, "checkbox rules must not trigger jumps")
}

func TestAdvanceBackwardJump(t *testing.T) {
	// A rule may also send the respondent to an earlier block.
	form, _ := threeBlockForm()

	q := models.Question{
		ID: primitive.NewObjectID(), BlockID: form.Blocks[2].ID, Type: models.Select,
		Options: []string{"restart", "done"},
		Rules:   []models.ConditionalRule{{OptionValue: "restart", TargetBlockID: form.Blocks[0].ID, Action: models.ActionJump}},
	}
	form.Questions = append(form.Questions, q)

	answers := models.AnswerMap{q.ID.Hex(): models.ScalarAnswer("restart")}
	next, complete, err := Advance(form, NavigationState{BlockIndex: 2}, answers)
	assert.NoError(t, err)
	assert.False(t, complete)
	assert.Equal(t, 0, next.BlockIndex)
}

func TestRetreat(t *testing.T) {
	t.Run("StepsBackOneBlock", func(t *testing.T) {
		assert.Equal(t, 1, Retreat(NavigationState{BlockIndex: 2}).BlockIndex)
	})

	t.Run("NoOpAtFirstBlock", func(t *testing.T) {
		assert.Equal(t, 0, Retreat(NavigationState{BlockIndex: 0}).BlockIndex)
	})

	t.Run("DoesNotReverseJump", func(t *testing.T) {
		// Land on Block C via the Rent jump, then retreat: the result is
		// Block B, not the Block A the jump came from.
		form, interest := threeBlockForm()
		answers := models.AnswerMap{interest.ID.Hex(): models.ScalarAnswer("Rent")}
		landed, _, err := Advance(form, NavigationState{}, answers)
		assert.NoError(t, err)
		assert.Equal(t, 2, landed.BlockIndex)

		back := Retreat(landed)
		assert.Equal(t, 1, back.BlockIndex)
	})
}
