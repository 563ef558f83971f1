package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeLeadFollowUp = "lead:followup"

type LeadPayload struct {
	LeadID string `json:"lead_id"`
}

func NewLeadFollowUpTask(leadID string) (*asynq.Task, error) {
	payload, err := json.Marshal(LeadPayload{LeadID: leadID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeLeadFollowUp, payload), nil
}
