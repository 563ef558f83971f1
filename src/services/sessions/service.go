package sessions

import (
	"context"
	"errors"
	"log"
	"time"

	DB "leadform-backend/src/database"
	"leadform-backend/src/engine"
	"leadform-backend/src/models"
	"leadform-backend/src/services/forms"
	"leadform-backend/src/services/notify"
	"leadform-backend/src/services/submissions"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionCompleted = errors.New("session already completed")
	ErrFormUnpublished  = errors.New("form is not published")
)

// SessionView is what the respondent client sees after every operation: the
// current position, the active block and its questions, and the answers
// collected so far.
type SessionView struct {
	Token      string            `json:"token"`
	FormID     string            `json:"formId"`
	BlockIndex int               `json:"blockIndex"`
	BlockCount int               `json:"blockCount"`
	Block      *models.Block     `json:"block,omitempty"`
	Questions  []models.Question `json:"questions,omitempty"`
	CanAdvance bool              `json:"canAdvance"`
	Completed  bool              `json:"completed"`
	Answers    models.AnswerMap  `json:"answers"`

	// Set only on the completing advance.
	SubmissionID string `json:"submissionId,omitempty"`
}

// StartSession opens a respondent session on a published form. The form is
// validated once here; navigation afterwards trusts the definition.
func StartSession(ctx context.Context, formID primitive.ObjectID) (*SessionView, error) {
	form, err := forms.GetFormByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if !form.Published {
		return nil, ErrFormUnpublished
	}
	if err := engine.ValidateForm(form); err != nil {
		return nil, err
	}

	now := time.Now()
	session := &models.FormSession{
		ID:         primitive.NewObjectID(),
		Token:      uuid.NewString(),
		FormID:     form.ID,
		BlockIndex: 0,
		Answers:    models.AnswerMap{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := DB.SessionCollection.InsertOne(ctx, session); err != nil {
		return nil, err
	}

	return buildView(form, session), nil
}

// GetSession returns the current view for a session token.
func GetSession(ctx context.Context, token string) (*SessionView, error) {
	session, form, err := loadSession(ctx, token)
	if err != nil {
		return nil, err
	}
	return buildView(form, session), nil
}

// ApplyAnswer records one respondent input and returns the refreshed view.
// Checkbox questions toggle the given option; other types overwrite.
func ApplyAnswer(ctx context.Context, token, questionID, value string) (*SessionView, error) {
	session, form, err := loadSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.Completed {
		return nil, ErrSessionCompleted
	}

	questionType := models.ShortText
	for _, q := range form.Questions {
		if q.ID.Hex() == questionID {
			questionType = q.Type
			break
		}
	}

	session.Answers = engine.ApplyAnswer(session.Answers, questionID, value, questionType)
	if err := saveSession(ctx, session); err != nil {
		return nil, err
	}
	return buildView(form, session), nil
}

// Advance moves the session to the next block, or finalizes the flow when it
// runs past the last block. On completion the submission is persisted and
// the form's response counter incremented before the session is marked done.
func Advance(ctx context.Context, token string) (*SessionView, error) {
	session, form, err := loadSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.Completed {
		return nil, ErrSessionCompleted
	}

	state := engine.NavigationState{BlockIndex: session.BlockIndex}
	next, complete, err := engine.Advance(form, state, session.Answers)
	if err != nil {
		return nil, err
	}

	if !complete {
		session.BlockIndex = next.BlockIndex
		if err := saveSession(ctx, session); err != nil {
			return nil, err
		}
		return buildView(form, session), nil
	}

	submission := finalizeSubmission(form, session)
	switch err := submissions.SaveSubmission(ctx, submission); {
	case err == nil:
		if err := forms.IncrementResponsesCount(ctx, form.ID); err != nil {
			log.Println("failed to increment response counter:", err)
		}
		if submission.LeadScore >= submissions.HotScore {
			notify.EnqueueHotLead(submission.ID.Hex())
		}
	case mongo.IsDuplicateKeyError(err):
		// An earlier completing advance inserted this submission but died
		// before the session update. Finish marking the session; counter
		// and alert already ran on that attempt.
	default:
		return nil, err
	}

	session.Completed = true
	session.SubmissionID = &submission.ID
	if err := saveSession(ctx, session); err != nil {
		return nil, err
	}

	view := buildView(form, session)
	view.SubmissionID = submission.ID.Hex()
	return view, nil
}

// Retreat steps back one block. Always permitted; a no-op on the first
// block. It does not reverse conditional jumps.
func Retreat(ctx context.Context, token string) (*SessionView, error) {
	session, form, err := loadSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.Completed {
		return nil, ErrSessionCompleted
	}

	state := engine.Retreat(engine.NavigationState{BlockIndex: session.BlockIndex})
	session.BlockIndex = state.BlockIndex
	if err := saveSession(ctx, session); err != nil {
		return nil, err
	}
	return buildView(form, session), nil
}

// finalizeSubmission builds the submission for a completing session. It
// reuses the session id as the submission id so a retried completing advance
// maps to the same document and can never insert a second one.
func finalizeSubmission(form *models.Form, session *models.FormSession) *models.Submission {
	submission := engine.Finalize(form, session.Answers)
	submission.ID = session.ID
	return submission
}

func loadSession(ctx context.Context, token string) (*models.FormSession, *models.Form, error) {
	var session models.FormSession
	err := DB.SessionCollection.FindOne(ctx, bson.M{"token": token}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil, ErrSessionNotFound
		}
		return nil, nil, err
	}

	form, err := forms.GetFormByID(ctx, session.FormID)
	if err != nil {
		return nil, nil, err
	}
	return &session, form, nil
}

func saveSession(ctx context.Context, session *models.FormSession) error {
	session.UpdatedAt = time.Now()
	_, err := DB.SessionCollection.ReplaceOne(ctx, bson.M{"_id": session.ID}, session)
	return err
}

func buildView(form *models.Form, session *models.FormSession) *SessionView {
	view := &SessionView{
		Token:      session.Token,
		FormID:     session.FormID.Hex(),
		BlockIndex: session.BlockIndex,
		BlockCount: len(form.Blocks),
		Completed:  session.Completed,
		Answers:    session.Answers,
	}

	if !session.Completed && session.BlockIndex < len(form.Blocks) {
		block := form.Blocks[session.BlockIndex]
		questions := form.QuestionsForBlock(block.ID)
		view.Block = &block
		view.Questions = questions
		view.CanAdvance = engine.CanAdvance(questions, session.Answers)
	}
	return view
}
