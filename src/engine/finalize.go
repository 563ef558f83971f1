package engine

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"leadform-backend/src/models"
)

// Optional leading +, first digit 1-9, then up to 15 more digits.
var phonePattern = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)

// ExtractContactInfo classifies scalar answer values into email, phone and
// name in a single pass. A value containing both "@" and "." is an email; a
// value matching the phone pattern is a phone; any other value whose length
// is strictly between 2 and 50 characters is a name. Later matches overwrite
// earlier ones within each category.
//
// The heuristic is best-effort and order-dependent: with several free-text
// fields the last qualifying value wins. Answers are walked in sorted
// question-id order so the result is deterministic for a given snapshot.
func ExtractContactInfo(answers models.AnswerMap) models.ContactInfo {
	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var info models.ContactInfo
	for _, id := range ids {
		v := answers[id]
		if v.Multi || v.Text == "" {
			continue
		}
		value := v.Text
		switch {
		case strings.Contains(value, "@") && strings.Contains(value, "."):
			info.Email = value
		case phonePattern.MatchString(value):
			info.Phone = value
		case len(value) > 2 && len(value) < 50:
			info.Name = value
		}
	}
	return info
}

// CalculateLeadScore derives a 0-100 quality estimate from contact-field
// presence and answer richness. Deterministic and pure for a given snapshot.
func CalculateLeadScore(answers models.AnswerMap, contact models.ContactInfo) int {
	score := 0
	if contact.Email != "" {
		score += 20
	}
	if contact.Phone != "" {
		score += 15
	}
	if contact.Name != "" {
		score += 10
	}

	answered := 0
	for _, v := range answers {
		if !v.IsEmpty() {
			answered++
		}
	}
	switch {
	case answered > 5:
		score += 20
	case answered > 3:
		score += 15
	case answered > 1:
		score += 10
	}

	for _, v := range answers {
		if !v.Multi && len(v.Text) > 20 {
			score += 5
		}
		if v.Multi && len(v.Selections) > 2 {
			score += 10
		}
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// Finalize converts a completed answer snapshot into a Submission value
// object. It performs no I/O; persisting the record and bumping the form's
// response counter is the caller's job.
func Finalize(form *models.Form, answers models.AnswerMap) *models.Submission {
	snapshot := answers.Clone()
	contact := ExtractContactInfo(snapshot)

	return &models.Submission{
		ID:          primitive.NewObjectID(),
		FormID:      form.ID,
		Answers:     snapshot,
		Contact:     contact,
		LeadScore:   CalculateLeadScore(snapshot, contact),
		SubmittedAt: time.Now(),
	}
}
