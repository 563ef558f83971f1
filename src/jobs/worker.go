package jobs

import (
	"log"

	"leadform-backend/src/database"
	"leadform-backend/src/services/notify"

	"github.com/hibiken/asynq"
)

// StartWorker runs the asynq worker loop in a goroutine. No-op when Redis is
// not configured; the webhook path still works, only scheduled follow-ups
// are skipped.
func StartWorker() {
	if database.RedisURI == "" || database.RedisClient == nil {
		log.Println("Redis not available. Follow-up worker not started.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeLeadFollowUp, HandleLeadFollowUpTask)

	if sender, err := notify.NewSMTPSenderFromEnv(); err != nil {
		log.Println("SMTP not configured. Hot-lead emails disabled:", err)
	} else {
		mux.HandleFunc(notify.TypeNotifyHotLead, notify.HandleHotLead(sender))
	}

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("asynq worker stopped:", err)
		}
	}()
	log.Println("Follow-up worker started")
}
