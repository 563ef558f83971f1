// Package engine is the pure navigation and finalization core of the form
// runtime. It computes which questions a respondent sees, whether they may
// proceed, and where the flow goes next, as plain functions over immutable
// form definitions and answer snapshots. All I/O lives in the services layer.
package engine

import (
	"errors"
	"fmt"

	"leadform-backend/src/models"
)

var (
	// ErrInvalidForm marks a malformed form definition. Navigation must not
	// be attempted over a form that fails ValidateForm.
	ErrInvalidForm = errors.New("invalid form")

	// ErrBlockIncomplete is returned by Advance when a required question in
	// the active block is still unanswered.
	ErrBlockIncomplete = errors.New("required questions in the current block are unanswered")

	// ErrStateOutOfRange is returned when a navigation state does not point
	// at an existing block.
	ErrStateOutOfRange = errors.New("navigation state outside block sequence")
)

// NavigationState is a respondent's position in the block sequence.
// QuestionIndex is used only by clients that paginate per question.
type NavigationState struct {
	BlockIndex    int `json:"blockIndex"`
	QuestionIndex int `json:"questionIndex"`
}

// ValidateForm fails fast on definitions that cannot be navigated: no blocks,
// no questions, a question owned by a missing block, or a conditional rule
// whose target is missing or is the rule's own block.
func ValidateForm(form *models.Form) error {
	if len(form.Blocks) == 0 {
		return fmt.Errorf("%w: form has no blocks", ErrInvalidForm)
	}
	if len(form.Questions) == 0 {
		return fmt.Errorf("%w: form has no questions", ErrInvalidForm)
	}

	for _, q := range form.Questions {
		if form.BlockIndex(q.BlockID) < 0 {
			return fmt.Errorf("%w: question %s references unknown block %s",
				ErrInvalidForm, q.ID.Hex(), q.BlockID.Hex())
		}
		for _, r := range q.Rules {
			if form.BlockIndex(r.TargetBlockID) < 0 {
				return fmt.Errorf("%w: rule on question %s targets unknown block %s",
					ErrInvalidForm, q.ID.Hex(), r.TargetBlockID.Hex())
			}
			if r.TargetBlockID == q.BlockID {
				return fmt.Errorf("%w: rule on question %s targets its own block",
					ErrInvalidForm, q.ID.Hex())
			}
		}
	}
	return nil
}

// ValidateForPublish runs ValidateForm and additionally requires choice
// questions to carry at least two options. Enforced at authoring time only;
// runtime navigation does not re-check option counts.
func ValidateForPublish(form *models.Form) error {
	if err := ValidateForm(form); err != nil {
		return err
	}
	for _, q := range form.Questions {
		if q.Type.IsChoice() && len(q.Options) < 2 {
			return fmt.Errorf("%w: question %s needs at least two options to publish",
				ErrInvalidForm, q.ID.Hex())
		}
	}
	return nil
}

// QuestionsForState returns the active block's questions in form order.
func QuestionsForState(form *models.Form, state NavigationState) ([]models.Question, error) {
	if state.BlockIndex < 0 || state.BlockIndex >= len(form.Blocks) {
		return nil, ErrStateOutOfRange
	}
	return form.QuestionsForBlock(form.Blocks[state.BlockIndex].ID), nil
}

// CanAdvance reports whether every required question in the given list has a
// non-empty answer. Non-required questions never block advancement.
func CanAdvance(questions []models.Question, answers models.AnswerMap) bool {
	for _, q := range questions {
		if !q.Required {
			continue
		}
		v, ok := answers[q.ID.Hex()]
		if !ok || v.IsEmpty() {
			return false
		}
	}
	return true
}

// Advance resolves the next position from the current block and answers.
//
// Jump resolution scans the block's questions in form order for the first
// single-select question with a non-empty answer whose rule list contains a
// rule matching that exact value. Only that first match is honored; later
// rule-bearing questions in the same block are ignored even if they also
// match. Checkbox answers never participate. If the matched rule's target
// does not resolve, or no question matches, the next block is simply
// index+1.
//
// The returned complete flag is true when the flow has moved past the last
// block; the state is unchanged in that case and the caller should finalize.
func Advance(form *models.Form, state NavigationState, answers models.AnswerMap) (NavigationState, bool, error) {
	questions, err := QuestionsForState(form, state)
	if err != nil {
		return state, false, err
	}
	if !CanAdvance(questions, answers) {
		return state, false, ErrBlockIncomplete
	}

	next := state.BlockIndex + 1
	for _, q := range questions {
		if !q.Type.IsSingleChoice() || len(q.Rules) == 0 {
			continue
		}
		v, ok := answers[q.ID.Hex()]
		if !ok || v.Multi || v.Text == "" {
			continue
		}
		rule := matchRule(q.Rules, v.Text)
		if rule == nil {
			continue
		}
		if idx := form.BlockIndex(rule.TargetBlockID); idx >= 0 {
			next = idx
		}
		// First qualifying match wins, resolved or not.
		break
	}

	if next >= len(form.Blocks) {
		return state, true, nil
	}
	return NavigationState{BlockIndex: next}, false, nil
}

// Retreat steps back to the strictly previous block. It never reverses a
// conditional jump: after jumping forward, retreating lands on target-1, not
// on the block the jump came from. At block 0 it is a no-op.
func Retreat(state NavigationState) NavigationState {
	if state.BlockIndex > 0 {
		return NavigationState{BlockIndex: state.BlockIndex - 1}
	}
	return NavigationState{BlockIndex: 0}
}

func matchRule(rules []models.ConditionalRule, value string) *models.ConditionalRule {
	for i := range rules {
		if rules[i].OptionValue == value {
			return &rules[i]
		}
	}
	return nil
}
