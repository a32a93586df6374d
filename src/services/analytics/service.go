package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"Backend-Curadoria-AF/src/models"
	"Backend-Curadoria-AF/src/utils"
)

const graphAPIVersion = "v18.0"

var httpClient = &http.Client{Timeout: 10 * time.Second}

// ConversionEvent is one server-side pixel event. The event id doubles as
// the dedup key against the matching browser event.
type ConversionEvent struct {
	EventName      string
	EventID        string
	Email          string
	Phone          string
	FirstName      string
	LastName       string
	ExternalID     string
	EventSourceURL string
	Value          float64
	Currency       string
}

// SendLeadEvent reports a completed submission to the ad platform. PII is
// hashed before it leaves the process. Errors are returned so the queue
// can retry, but a missing configuration is a silent skip.
func SendLeadEvent(ctx context.Context, leadID string, lead models.LeadPayload) error {
	firstName, lastName := splitName(lead.Name)
	return send(ctx, ConversionEvent{
		EventName:      "Lead",
		EventID:        leadID,
		Email:          lead.Email,
		Phone:          lead.Whatsapp,
		FirstName:      firstName,
		LastName:       lastName,
		ExternalID:     leadID,
		EventSourceURL: lead.PageURL,
		Currency:       "BRL",
	})
}

func send(ctx context.Context, ev ConversionEvent) error {
	pixelID := os.Getenv("META_PIXEL_ID")
	accessToken := os.Getenv("META_ACCESS_TOKEN")
	if pixelID == "" || accessToken == "" {
		log.Println("⚠️ Meta pixel not configured, skipping conversion event")
		return nil
	}

	userData := map[string]string{}
	if ev.Email != "" {
		userData["em"] = utils.HashPII(ev.Email)
	}
	if ev.Phone != "" {
		userData["ph"] = utils.HashPII(digitsOnly(ev.Phone))
	}
	if ev.FirstName != "" {
		userData["fn"] = utils.HashPII(ev.FirstName)
	}
	if ev.LastName != "" {
		userData["ln"] = utils.HashPII(ev.LastName)
	}
	if ev.ExternalID != "" {
		userData["external_id"] = utils.HashPII(ev.ExternalID)
	}

	eventData := map[string]interface{}{
		"event_name":    ev.EventName,
		"event_time":    time.Now().Unix(),
		"event_id":      ev.EventID,
		"action_source": "website",
		"user_data":     userData,
	}
	if ev.EventSourceURL != "" {
		eventData["event_source_url"] = ev.EventSourceURL
	}
	if ev.EventName == "Lead" {
		eventData["custom_data"] = map[string]interface{}{
			"value":    ev.Value,
			"currency": ev.Currency,
		}
	}

	body, err := json.Marshal(map[string]interface{}{
		"data":         []interface{}{eventData},
		"access_token": accessToken,
	})
	if err != nil {
		return err
	}

	apiURL := fmt.Sprintf("https://graph.facebook.com/%s/%s/events", graphAPIVersion, pixelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Println("❌ Conversion API error:", resp.StatusCode, string(detail))
		return errors.New("conversion api rejected the event")
	}

	log.Println("✅ Conversion event sent:", ev.EventName, ev.EventID)
	return nil
}

func splitName(full string) (string, string) {
	parts := strings.Fields(strings.TrimSpace(full))
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
