package jobs

import (
	"context"
	"encoding/json"
	"log"

	"Backend-Curadoria-AF/src/database"
	"Backend-Curadoria-AF/src/models"
	"Backend-Curadoria-AF/src/services/analytics"

	"github.com/hibiken/asynq"
)

const TypeConversionEvent = "analytics:conversion"

type ConversionEventPayload struct {
	LeadID string             `json:"lead_id"`
	Lead   models.LeadPayload `json:"lead"`
}

func NewConversionEventTask(leadID string, lead models.LeadPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(ConversionEventPayload{LeadID: leadID, Lead: lead})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeConversionEvent, payload), nil
}

// EnqueueConversionEvent hands the event to the queue. Without Redis it
// fires the event directly in a goroutine so the conversion is not lost,
// only the retry guarantee.
func EnqueueConversionEvent(leadID string, lead models.LeadPayload) error {
	if database.AsynqClient == nil {
		go func() {
			if err := analytics.SendLeadEvent(context.Background(), leadID, lead); err != nil {
				log.Println("⚠️ Direct conversion event failed:", err)
			}
		}()
		return nil
	}

	task, err := NewConversionEventTask(leadID, lead)
	if err != nil {
		return err
	}
	_, err = database.AsynqClient.Enqueue(task, asynq.MaxRetry(5))
	return err
}
