package jobs

import (
	"context"
	"encoding/json"
	"log"

	"Backend-Curadoria-AF/src/services/analytics"

	"github.com/hibiken/asynq"
)

func HandleConversionEventTask(ctx context.Context, t *asynq.Task) error {
	var payload ConversionEventPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	if err := analytics.SendLeadEvent(ctx, payload.LeadID, payload.Lead); err != nil {
		log.Println("❌ Conversion event failed, will retry:", payload.LeadID, err)
		return err
	}
	return nil
}
