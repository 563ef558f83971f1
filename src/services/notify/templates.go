package notify

import (
	"bytes"
	_ "embed"
	"html/template"
)

type HotLeadEmailData struct {
	FormTitle   string
	Name        string
	Email       string
	Phone       string
	LeadScore   int
	SubmittedAt string
	DetailLink  string
}

//go:embed hot_lead_email.html
var hotLeadEmailHTML string

var hotLeadTmpl = template.Must(template.New("hot-lead").Parse(hotLeadEmailHTML))

func RenderHotLeadEmailHTML(data HotLeadEmailData) (string, error) {
	var buf bytes.Buffer
	if err := hotLeadTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
