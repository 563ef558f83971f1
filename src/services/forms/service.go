package forms

import (
	"context"
	"errors"
	"log"
	"time"

	DB "leadform-backend/src/database"
	"leadform-backend/src/engine"
	"leadform-backend/src/models"
	"leadform-backend/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrFormNotFound = errors.New("form not found")

// CreateForm validates and stores a new form definition. Blocks and
// questions without ids get server-assigned ones; rules must reference block
// ids the client already knows (re-submitted forms or client-generated ids).
func CreateForm(ctx context.Context, form *models.Form) (*models.Form, error) {
	now := time.Now()
	form.ID = primitive.NewObjectID()
	form.CreatedAt = now
	form.UpdatedAt = now
	form.ResponsesCount = 0
	form.Published = false

	assignIDs(form)

	if err := engine.ValidateForm(form); err != nil {
		return nil, err
	}

	if _, err := DB.FormCollection.InsertOne(ctx, form); err != nil {
		return nil, err
	}
	return form, nil
}

// GetForms lists forms with pagination, title search and sorting.
func GetForms(ctx context.Context, params models.PaginationParams) (*models.PaginatedResponse, error) {
	filter := bson.M{}
	if params.Search != "" {
		filter["title"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := DB.FormCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	sortOrder := params.GetSortOrder()
	sort := bson.D{}
	for field, order := range sortOrder {
		sort = append(sort, bson.E{Key: field, Value: order})
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(sort)

	cursor, err := DB.FormCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var forms []models.Form
	if err = cursor.All(ctx, &forms); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(forms, total, params), nil
}

// GetFormByID loads a form, preferring the Redis cache. The cache is only a
// read accelerator; Mongo stays the source of truth.
func GetFormByID(ctx context.Context, formID primitive.ObjectID) (*models.Form, error) {
	if cached, err := utils.GetCachedForm(formID.Hex()); err != nil {
		log.Println("form cache read failed:", err)
	} else if cached != nil {
		return cached, nil
	}

	var form models.Form
	err := DB.FormCollection.FindOne(ctx, bson.M{"_id": formID}).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	if err := utils.CacheForm(&form); err != nil {
		log.Println("form cache write failed:", err)
	}
	return &form, nil
}

// UpdateForm replaces the definition of an existing form. The stored
// response counter and creation time are preserved.
func UpdateForm(ctx context.Context, formID primitive.ObjectID, form *models.Form) (*models.Form, error) {
	var existing models.Form
	err := DB.FormCollection.FindOne(ctx, bson.M{"_id": formID}).Decode(&existing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	form.ID = formID
	form.CreatedAt = existing.CreatedAt
	form.ResponsesCount = existing.ResponsesCount
	form.Published = existing.Published
	form.UpdatedAt = time.Now()

	assignIDs(form)

	if err := engine.ValidateForm(form); err != nil {
		return nil, err
	}
	if form.Published {
		if err := engine.ValidateForPublish(form); err != nil {
			return nil, err
		}
	}

	if _, err := DB.FormCollection.ReplaceOne(ctx, bson.M{"_id": formID}, form); err != nil {
		return nil, err
	}

	if err := utils.InvalidateForm(formID.Hex()); err != nil {
		log.Println("form cache invalidation failed:", err)
	}
	return form, nil
}

// PublishForm marks a form live after the stricter authoring checks pass.
func PublishForm(ctx context.Context, formID primitive.ObjectID) (*models.Form, error) {
	form, err := GetFormByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	if err := engine.ValidateForPublish(form); err != nil {
		return nil, err
	}

	_, err = DB.FormCollection.UpdateOne(ctx,
		bson.M{"_id": formID},
		bson.M{"$set": bson.M{"published": true, "updatedAt": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	if err := utils.InvalidateForm(formID.Hex()); err != nil {
		log.Println("form cache invalidation failed:", err)
	}

	form.Published = true
	return form, nil
}

// DeleteForm removes a form and its submissions and sessions.
func DeleteForm(ctx context.Context, formID primitive.ObjectID) error {
	result, err := DB.FormCollection.DeleteOne(ctx, bson.M{"_id": formID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrFormNotFound
	}

	if _, err := DB.SubmissionCollection.DeleteMany(ctx, bson.M{"formId": formID}); err != nil {
		log.Println("failed to delete submissions for form:", err)
	}
	if _, err := DB.SessionCollection.DeleteMany(ctx, bson.M{"formId": formID}); err != nil {
		log.Println("failed to delete sessions for form:", err)
	}

	if err := utils.InvalidateForm(formID.Hex()); err != nil {
		log.Println("form cache invalidation failed:", err)
	}
	return nil
}

// IncrementResponsesCount bumps the denormalized counter after a submission
// is persisted.
func IncrementResponsesCount(ctx context.Context, formID primitive.ObjectID) error {
	_, err := DB.FormCollection.UpdateOne(ctx,
		bson.M{"_id": formID},
		bson.M{"$inc": bson.M{"responsesCount": 1}},
	)
	if err != nil {
		return err
	}

	// The cached copy now carries a stale counter.
	if err := utils.InvalidateForm(formID.Hex()); err != nil {
		log.Println("form cache invalidation failed:", err)
	}
	return nil
}

// assignIDs gives server ids to blocks and questions that arrived without
// one, and keeps question sequence numbers aligned with form order.
func assignIDs(form *models.Form) {
	for i := range form.Blocks {
		if form.Blocks[i].ID.IsZero() {
			form.Blocks[i].ID = primitive.NewObjectID()
		}
	}
	for i := range form.Questions {
		if form.Questions[i].ID.IsZero() {
			form.Questions[i].ID = primitive.NewObjectID()
		}
		form.Questions[i].Sequence = i + 1
	}
}
