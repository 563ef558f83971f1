package jobs

import (
	"context"
	"encoding/json"
	"log"

	"leadform-backend/src/database"
	"leadform-backend/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleLeadFollowUpTask moves a lead that is still untouched at its
// follow-up time from "new" to "follow_up" so it surfaces in the dashboard
// follow-up queue.
func HandleLeadFollowUpTask(ctx context.Context, t *asynq.Task) error {
	var payload LeadPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("follow-up payload decode error:", err)
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.LeadID)
	if err != nil {
		return err
	}

	var lead models.Lead
	err = database.LeadCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&lead)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// Lead deleted in the meantime; nothing to do.
			log.Println("lead not found, skipping follow-up:", id.Hex())
			return nil
		}
		return err
	}

	if lead.Status != models.LeadStatusNew {
		// Someone already worked the lead.
		return nil
	}

	_, err = database.LeadCollection.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.LeadStatusNew},
		bson.M{"$set": bson.M{"status": models.LeadStatusFollowUp}},
	)
	if err != nil {
		log.Println("failed to flag lead for follow-up:", err)
		return err
	}

	log.Println("lead flagged for follow-up:", id.Hex())
	return nil
}
