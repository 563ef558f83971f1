package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionType enumerates the input kinds a question can carry.
type QuestionType string

const (
	ShortText   QuestionType = "short-text"
	Email       QuestionType = "email"
	Phone       QuestionType = "phone"
	LongText    QuestionType = "long-text"
	Select      QuestionType = "single-select"
	Checkbox    QuestionType = "multi-select-checkbox"
	Radio       QuestionType = "radio"
	DateInput   QuestionType = "date"
	NumberInput QuestionType = "number"
	URLInput    QuestionType = "url"
	Rating      QuestionType = "rating"
	FileUpload  QuestionType = "file"
)

// IsChoice reports whether the type carries an option list that must be
// populated before the form can be published.
func (t QuestionType) IsChoice() bool {
	return t == Select || t == Radio || t == Checkbox
}

// IsSingleChoice reports whether the type is eligible for conditional-jump
// resolution. Checkbox answers never participate in jumps.
func (t QuestionType) IsSingleChoice() bool {
	return t == Select || t == Radio
}

// IsMulti reports whether answers are stored as a toggled option set.
func (t QuestionType) IsMulti() bool {
	return t == Checkbox
}

// RuleAction is what a conditional rule does when its option is selected.
type RuleAction string

const (
	ActionShow RuleAction = "show"
	ActionHide RuleAction = "hide"
	ActionJump RuleAction = "jump"
)

// --- Form ---
type Form struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Published   bool               `bson:"published" json:"published"`

	Blocks    []Block    `bson:"blocks,omitempty" json:"blocks,omitempty"`
	Questions []Question `bson:"questions,omitempty" json:"questions,omitempty"`
	Media     *Media     `bson:"media,omitempty" json:"media,omitempty"`

	// Denormalized counter, incremented by the storage layer on finalize.
	ResponsesCount int64 `bson:"responsesCount" json:"responsesCount"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// --- Block ---
// A block is a page of questions shown together. Block order in Form.Blocks
// defines the default linear progression.
type Block struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title string             `bson:"title" json:"title"`
}

// --- Question ---
type Question struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BlockID  primitive.ObjectID `bson:"blockId" json:"blockId"`
	Title    string             `bson:"title" json:"title"`
	Type     QuestionType       `bson:"type" json:"type"`
	Required bool               `bson:"required" json:"required"`
	Sequence int                `bson:"sequence" json:"sequence"`

	// Options are meaningful for select/radio/checkbox/rating/file types.
	Options []string          `bson:"options,omitempty" json:"options,omitempty"`
	Rules   []ConditionalRule `bson:"rules,omitempty" json:"rules,omitempty"`
}

// --- ConditionalRule ---
// Binds one option value of the owning question to a target block.
type ConditionalRule struct {
	OptionValue   string             `bson:"optionValue" json:"optionValue"`
	TargetBlockID primitive.ObjectID `bson:"targetBlockId" json:"targetBlockId"`
	Action        RuleAction         `bson:"action" json:"action"`
}

// --- Media ---
type Media struct {
	Kind string `bson:"kind" json:"kind"` // image | video
	URL  string `bson:"url" json:"url"`
}

// QuestionsForBlock returns the form's questions owned by blockID, in
// form-defined order.
func (f *Form) QuestionsForBlock(blockID primitive.ObjectID) []Question {
	var out []Question
	for _, q := range f.Questions {
		if q.BlockID == blockID {
			out = append(out, q)
		}
	}
	return out
}

// BlockIndex returns the position of blockID in the block sequence, or -1.
func (f *Form) BlockIndex(blockID primitive.ObjectID) int {
	for i, b := range f.Blocks {
		if b.ID == blockID {
			return i
		}
	}
	return -1
}
