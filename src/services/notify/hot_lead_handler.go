package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	DB "leadform-backend/src/database"
	"leadform-backend/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleHotLead emails the sales inbox about one high-scoring submission.
// A submission deleted before the task runs is not an error.
func HandleHotLead(sender MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p NotifyHotLeadPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}

		id, err := primitive.ObjectIDFromHex(p.SubmissionID)
		if err != nil {
			return fmt.Errorf("bad submission id %q: %w", p.SubmissionID, err)
		}

		var sub models.Submission
		if err := DB.SubmissionCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&sub); err != nil {
			if err == mongo.ErrNoDocuments {
				log.Println("hot-lead: submission gone, skipping:", p.SubmissionID)
				return nil
			}
			return err
		}

		to := os.Getenv("SALES_EMAIL")
		if to == "" {
			log.Println("hot-lead: SALES_EMAIL not set, skipping")
			return nil
		}

		formTitle := "a form"
		var form models.Form
		if err := DB.FormCollection.FindOne(ctx, bson.M{"_id": sub.FormID}).Decode(&form); err == nil {
			formTitle = form.Title
		}

		base := strings.TrimRight(os.Getenv("FRONTEND_URL"), "/")
		if base == "" {
			base = "http://localhost:3000"
		}

		html, err := RenderHotLeadEmailHTML(HotLeadEmailData{
			FormTitle:   formTitle,
			Name:        sub.Contact.Name,
			Email:       sub.Contact.Email,
			Phone:       sub.Contact.Phone,
			LeadScore:   sub.LeadScore,
			SubmittedAt: sub.SubmittedAt.Format("02 Jan 2006 15:04"),
			DetailLink:  base + "/submissions/" + sub.ID.Hex(),
		})
		if err != nil {
			return err
		}

		who := sub.Contact.Name
		if who == "" {
			who = sub.Contact.Email
		}
		if who == "" {
			who = sub.Contact.Phone
		}
		subject := fmt.Sprintf("Hot lead (score %d): %s", sub.LeadScore, who)
		return sender.Send(to, subject, html)
	}
}
