package seeder

import (
	"context"
	"log"

	"leadform-backend/src/models"
	"leadform-backend/src/services/forms"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SeedSampleForm creates one demo lead-capture form with a conditional jump,
// for local development. Gated behind SEED_DEMO_FORM=true.
func SeedSampleForm() error {
	ctx := context.Background()

	intent := models.Block{ID: primitive.NewObjectID(), Title: "Your plans"}
	buying := models.Block{ID: primitive.NewObjectID(), Title: "Buying details"}
	renting := models.Block{ID: primitive.NewObjectID(), Title: "Renting details"}
	contact := models.Block{ID: primitive.NewObjectID(), Title: "Contact"}

	form := &models.Form{
		Title:       "Property Inquiry",
		Description: "Tell us what you are looking for and how to reach you",
		Blocks:      []models.Block{intent, buying, renting, contact},
		Questions: []models.Question{
			{
				BlockID:  intent.ID,
				Title:    "Are you looking to buy or rent?",
				Type:     models.Radio,
				Required: true,
				Options:  []string{"Buy", "Rent"},
				Rules: []models.ConditionalRule{
					{OptionValue: "Rent", TargetBlockID: renting.ID, Action: models.ActionJump},
				},
			},
			{
				BlockID:  buying.ID,
				Title:    "What is your budget?",
				Type:     models.NumberInput,
				Required: true,
			},
			{
				BlockID: buying.ID,
				Title:   "Which features matter most? (select all that apply)",
				Type:    models.Checkbox,
				Options: []string{"Garden", "Garage", "Balcony", "Home office"},
			},
			{
				BlockID:  renting.ID,
				Title:    "When do you want to move in?",
				Type:     models.DateInput,
				Required: true,
			},
			{
				BlockID:  contact.ID,
				Title:    "Your name",
				Type:     models.ShortText,
				Required: true,
			},
			{
				BlockID:  contact.ID,
				Title:    "Your email",
				Type:     models.Email,
				Required: true,
			},
			{
				BlockID: contact.ID,
				Title:   "Your phone number",
				Type:    models.Phone,
			},
		},
	}

	created, err := forms.CreateForm(ctx, form)
	if err != nil {
		return err
	}
	if _, err := forms.PublishForm(ctx, created.ID); err != nil {
		return err
	}

	log.Println("Seeded demo form:", created.ID.Hex())
	return nil
}
