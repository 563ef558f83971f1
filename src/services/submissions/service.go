package submissions

import (
	"context"
	"errors"

	DB "leadform-backend/src/database"
	"leadform-backend/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrSubmissionNotFound = errors.New("submission not found")

// Lead-score cut-offs shared by the quality breakdown and the sales alert.
const (
	HotScore  = 70
	WarmScore = 40
)

// LeadQualityItem is one bucket of the per-form lead-quality aggregation.
type LeadQualityItem struct {
	Bucket string `json:"bucket" bson:"bucket"`
	Count  int64  `json:"count" bson:"count"`
}

// SaveSubmission persists a finalized submission. The value object comes
// from the engine; this is the storage collaborator side of the contract.
func SaveSubmission(ctx context.Context, submission *models.Submission) error {
	if submission.FormID.IsZero() {
		return errors.New("form ID is required")
	}
	if submission.ID.IsZero() {
		submission.ID = primitive.NewObjectID()
	}

	_, err := DB.SubmissionCollection.InsertOne(ctx, submission)
	return err
}

// GetSubmissionByID retrieves a submission by its ID.
func GetSubmissionByID(ctx context.Context, id primitive.ObjectID) (*models.Submission, error) {
	var submission models.Submission
	err := DB.SubmissionCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&submission)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &submission, nil
}

// GetSubmissionsByFormID lists a form's submissions, newest first, with
// pagination.
func GetSubmissionsByFormID(ctx context.Context, formID primitive.ObjectID, params models.PaginationParams) (*models.PaginatedResponse, error) {
	filter := bson.M{"formId": formID}

	total, err := DB.SubmissionCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: "submittedAt", Value: -1}})

	cursor, err := DB.SubmissionCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var submissions []models.Submission
	if err = cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(submissions, total, params), nil
}

// GetLeadQualityBreakdown groups a form's submissions into cold/warm/hot
// lead-score buckets for the dashboard chart.
func GetLeadQualityBreakdown(ctx context.Context, formID primitive.ObjectID) ([]LeadQualityItem, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"formId": formID}},
		{"$group": bson.M{
			"_id": bson.M{
				"$switch": bson.M{
					"branches": []bson.M{
						{"case": bson.M{"$gte": []interface{}{"$leadScore", HotScore}}, "then": "hot"},
						{"case": bson.M{"$gte": []interface{}{"$leadScore", WarmScore}}, "then": "warm"},
					},
					"default": "cold",
				},
			},
			"count": bson.M{"$sum": 1},
		}},
		{"$project": bson.M{
			"_id":    0,
			"bucket": "$_id",
			"count":  1,
		}},
	}

	cur, err := DB.SubmissionCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []LeadQualityItem
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
