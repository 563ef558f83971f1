package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHotLeadEmailHTML(t *testing.T) {
	html, err := RenderHotLeadEmailHTML(HotLeadEmailData{
		FormTitle:   "Property Inquiry",
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "+15551234567",
		LeadScore:   85,
		SubmittedAt: "30 Aug 2026 14:05",
		DetailLink:  "http://localhost:3000/submissions/abc123",
	})

	assert.NoError(t, err)
	assert.Contains(t, html, "Property Inquiry")
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "jane@example.com")
	assert.Contains(t, html, "score 85/100")
	assert.Contains(t, html, "http://localhost:3000/submissions/abc123")
}

func TestRenderHotLeadEmailHTMLOmitsEmptyContactRows(t *testing.T) {
	html, err := RenderHotLeadEmailHTML(HotLeadEmailData{
		FormTitle:   "Property Inquiry",
		Email:       "jane@example.com",
		LeadScore:   70,
		SubmittedAt: "30 Aug 2026 14:05",
		DetailLink:  "http://localhost:3000/submissions/abc123",
	})

	assert.NoError(t, err)
	assert.NotContains(t, html, ">Name<")
	assert.NotContains(t, html, ">Phone<")
	assert.Contains(t, html, ">Email<")
}

func TestRenderHotLeadEmailHTMLEscapesInput(t *testing.T) {
	html, err := RenderHotLeadEmailHTML(HotLeadEmailData{
		FormTitle:   "<script>alert(1)</script>",
		Name:        "Jane",
		LeadScore:   90,
		SubmittedAt: "30 Aug 2026 14:05",
		DetailLink:  "http://localhost:3000/submissions/abc123",
	})

	assert.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
