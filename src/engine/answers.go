package engine

import "leadform-backend/src/models"

// ApplyAnswer returns a new answer snapshot with the given value applied.
//
// For multi-select questions the value is a single option being toggled:
// present options are removed, absent options appended, so a double toggle
// restores the original set. For all other types the value replaces the
// stored scalar outright. The input map is never mutated.
//
// Unknown question ids are stored as-is; validating ids against the form's
// question set is the caller's concern.
func ApplyAnswer(answers models.AnswerMap, questionID, value string, questionType models.QuestionType) models.AnswerMap {
	out := answers.Clone()

	if !questionType.IsMulti() {
		out[questionID] = models.ScalarAnswer(value)
		return out
	}

	current := out[questionID].Selections
	toggled := make([]string, 0, len(current)+1)
	removed := false
	for _, opt := range current {
		if opt == value {
			removed = true
			continue
		}
		toggled = append(toggled, opt)
	}
	if !removed {
		toggled = append(toggled, value)
	}
	out[questionID] = models.MultiAnswer(toggled...)
	return out
}
