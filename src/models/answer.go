package models

// AnswerValue is the tagged value stored for one answered question: either a
// scalar (text/number/date rendered as string) or an ordered option set for
// multi-select questions.
type AnswerValue struct {
	Text       string   `bson:"text,omitempty" json:"text,omitempty"`
	Selections []string `bson:"selections,omitempty" json:"selections,omitempty"`
	Multi      bool     `bson:"multi,omitempty" json:"multi,omitempty"`
}

// ScalarAnswer wraps a scalar value.
func ScalarAnswer(text string) AnswerValue {
	return AnswerValue{Text: text}
}

// MultiAnswer wraps an ordered option set.
func MultiAnswer(selections ...string) AnswerValue {
	return AnswerValue{Selections: selections, Multi: true}
}

// IsEmpty reports whether the value counts as unanswered: an empty scalar, or
// a multi-select with no members.
func (v AnswerValue) IsEmpty() bool {
	if v.Multi {
		return len(v.Selections) == 0
	}
	return v.Text == ""
}

// AnswerMap is one session's answer snapshot, keyed by question-id hex.
type AnswerMap map[string]AnswerValue

// Clone returns a deep copy of the snapshot.
func (a AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(a))
	for id, v := range a {
		if v.Multi {
			sel := make([]string, len(v.Selections))
			copy(sel, v.Selections)
			v.Selections = sel
		}
		out[id] = v
	}
	return out
}
