package notify

import (
	"encoding/json"
	"log"

	"leadform-backend/src/database"

	"github.com/hibiken/asynq"
)

const TypeNotifyHotLead = "email:notify-hot-lead"

type NotifyHotLeadPayload struct {
	SubmissionID string `json:"submissionId"`
}

func NewNotifyHotLeadTask(submissionID string) (*asynq.Task, error) {
	b, err := json.Marshal(NotifyHotLeadPayload{SubmissionID: submissionID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotifyHotLead, b), nil
}

// EnqueueHotLead schedules the sales alert for one submission. Best-effort:
// without Redis the alert is simply skipped, finalization must not fail
// because of it.
func EnqueueHotLead(submissionID string) {
	if database.AsynqClient == nil {
		return
	}
	task, err := NewNotifyHotLeadTask(submissionID)
	if err != nil {
		log.Println("hot-lead task build failed:", err)
		return
	}
	if _, err := database.AsynqClient.Enqueue(task,
		asynq.TaskID("hot-lead-"+submissionID),
		asynq.MaxRetry(3),
	); err != nil {
		log.Println("hot-lead task enqueue failed:", err)
	}
}
