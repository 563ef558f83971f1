package leads

import (
	"context"
	"log"
	"time"

	DB "leadform-backend/src/database"
	"leadform-backend/src/jobs"
	"leadform-backend/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Follow-up is due one day after ingestion unless the payload overrides it.
const defaultFollowUpDelay = 24 * time.Hour

// IngestLead deduplicates by phone number and returns the existing record
// when one matches; otherwise it creates the lead with server-assigned id,
// dateAdded, status "new" and a follow-up timestamp, and schedules the
// follow-up task. The bool result is true when a new record was created.
//
// Dedupe is a soft guard: phone equality only, and absence of a match always
// proceeds to creation.
func IngestLead(ctx context.Context, lead *models.Lead) (*models.Lead, bool, error) {
	var existing models.Lead
	err := DB.LeadCollection.FindOne(ctx, bson.M{"phone": lead.Phone}).Decode(&existing)
	if err == nil {
		return &existing, false, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, false, err
	}

	now := time.Now()
	lead.ID = primitive.NewObjectID()
	lead.Status = models.LeadStatusNew
	lead.DateAdded = now
	if lead.FollowUpAt.IsZero() {
		lead.FollowUpAt = now.Add(defaultFollowUpDelay)
	}

	if _, err := DB.LeadCollection.InsertOne(ctx, lead); err != nil {
		return nil, false, err
	}

	scheduleFollowUp(lead)
	return lead, true, nil
}

// GetLeads lists leads with pagination and optional status filter.
func GetLeads(ctx context.Context, params models.PaginationParams, status string) (*models.PaginatedResponse, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	if params.Search != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": params.Search, "$options": "i"}},
			{"phone": bson.M{"$regex": params.Search, "$options": "i"}},
		}
	}

	total, err := DB.LeadCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: "dateAdded", Value: -1}})

	cursor, err := DB.LeadCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var leads []models.Lead
	if err = cursor.All(ctx, &leads); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(leads, total, params), nil
}

// scheduleFollowUp enqueues the follow-up task at the lead's follow-up time.
// Skipped silently when the queue is not available (dev mode without Redis).
func scheduleFollowUp(lead *models.Lead) {
	if DB.AsynqClient == nil {
		return
	}

	task, err := jobs.NewLeadFollowUpTask(lead.ID.Hex())
	if err != nil {
		log.Println("failed to build follow-up task:", err)
		return
	}

	_, err = DB.AsynqClient.Enqueue(task,
		asynq.ProcessAt(lead.FollowUpAt),
		asynq.TaskID("lead-followup-"+lead.ID.Hex()),
		asynq.MaxRetry(3),
	)
	if err != nil {
		log.Println("failed to enqueue follow-up task:", err)
		return
	}
	log.Println("enqueued follow-up task for lead:", lead.ID.Hex())
}
