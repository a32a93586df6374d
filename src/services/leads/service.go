package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"Backend-Curadoria-AF/src/database"
	"Backend-Curadoria-AF/src/jobs"
	"Backend-Curadoria-AF/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var webhookClient = &http.Client{Timeout: 10 * time.Second}

// Assemble folds the diagnostic answers, the funnel state and the capture
// form into the normalized submission record. Option ids become labels
// here; everything downstream reads plain text.
func Assemble(session models.Session, form *models.LeadForm) models.LeadPayload {
	answers := session.Answers

	categories := []string{}
	if a, ok := answers[8]; ok {
		ids := a.Options
		if len(ids) == 0 && a.Value != "" {
			ids = strings.Split(a.Value, ",")
		}
		for _, id := range ids {
			categories = append(categories, label(categoryLabels, id))
		}
	}

	color := answers.ColorOf(9)
	selectedColors := []string{}
	for _, id := range color.Selected {
		selectedColors = append(selectedColors, label(colorLabels, id))
	}

	stateRegistration := ""
	if form.DocumentType == "cnpj" && form.HasStateRegistration != nil {
		if *form.HasStateRegistration {
			stateRegistration = "Sim"
		} else {
			stateRegistration = "Não"
		}
	}

	fileURLs := session.PendingFileURLs
	if fileURLs == nil {
		fileURLs = []string{}
	}
	// Submitted products carry name and sku only.
	selectedProducts := make([]models.SelectedProduct, 0, len(session.SelectedProducts))
	for _, p := range session.SelectedProducts {
		selectedProducts = append(selectedProducts, models.SelectedProduct{Name: p.Name, SKU: p.SKU})
	}

	return models.LeadPayload{
		Name:     strings.TrimSpace(form.Name),
		Whatsapp: strings.TrimSpace(form.Whatsapp),
		Email:    strings.TrimSpace(form.Email),
		Company:  strings.TrimSpace(form.Company),

		Goal:          label(goalLabels, answers.ValueOf(1, "")),
		Occasion:      label(occasionLabels, answers.ValueOf(2, "")),
		Audience:      label(audienceLabels, answers.ValueOf(3, "")),
		Niche:         answers.ValueOf(4, ""),
		QuantityRange: label(quantityLabels, answers.ValueOf(5, "")),
		BudgetRange:   label(budgetLabels, answers.ValueOf(6, "")),
		DeadlineRange: label(deadlineLabels, answers.ValueOf(7, "")),
		Categories:    categories,
		PathChosen:    session.SelectedPath,

		Colors: models.ColorsPayload{
			BrandColors: color.BrandColors,
			Selected:    selectedColors,
			Codes:       color.Codes,
		},
		FileURLs:         fileURLs,
		SelectedProducts: selectedProducts,
		MustHave:         strings.TrimSpace(form.Extra),

		DocumentType:           form.DocumentType,
		DocumentNumber:         strings.TrimSpace(form.DocumentNumber),
		StateRegistration:      stateRegistration,
		PresentationPreference: form.PresentationPreference,
		ScheduledDate:          form.ScheduledDate,
		ScheduledTime:          form.ScheduledTime,

		UTM:      form.UTM,
		Referrer: form.Referrer,
		PageURL:  form.PageURL,
	}
}

// Submit persists the lead and forwards it to the intake webhook in the
// same request. The webhook is best effort: a delivery failure still
// counts as a successful submission, only webhook_sent stays false.
func Submit(ctx context.Context, payload models.LeadPayload) models.SubmitResult {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	lead := models.Lead{
		LeadPayload: payload,
		CreatedAt:   time.Now(),
	}

	res, err := database.LeadCollection.InsertOne(ctx, lead)
	if err != nil {
		log.Println("❌ Failed to save lead:", err)
		return models.SubmitResult{Success: false, Error: "Erro ao salvar. Tente novamente."}
	}

	leadID := res.InsertedID.(primitive.ObjectID)
	log.Println("✅ Lead saved with ID:", leadID.Hex())

	webhookSent := forwardToWebhook(ctx, payload, leadID.Hex(), lead.CreatedAt)
	if webhookSent {
		now := time.Now()
		_, err := database.LeadCollection.UpdateOne(ctx,
			bson.M{"_id": leadID},
			bson.M{"$set": bson.M{"webhook_sent": true, "webhook_sent_at": now}},
		)
		if err != nil {
			log.Println("⚠️ Failed to record webhook delivery:", err)
		}
	}

	// Server-side conversion event goes through the queue; the lead id is
	// the dedup key shared with the browser pixel.
	if err := jobs.EnqueueConversionEvent(leadID.Hex(), payload); err != nil {
		log.Println("⚠️ Failed to enqueue conversion event:", err)
	}

	return models.SubmitResult{
		Success:     true,
		LeadID:      leadID.Hex(),
		WebhookSent: webhookSent,
	}
}

// forwardToWebhook posts the lead to the automation webhook. Returns true
// only on a 2xx response.
func forwardToWebhook(ctx context.Context, payload models.LeadPayload, leadID string, createdAt time.Time) bool {
	webhookURL := os.Getenv("N8N_WEBHOOK_URL")
	if webhookURL == "" {
		log.Println("⚠️ N8N_WEBHOOK_URL not configured, skipping webhook")
		return false
	}

	body := struct {
		models.LeadPayload
		LeadID    string `json:"lead_id"`
		Timestamp string `json:"timestamp"`
		Source    string `json:"source"`
	}{
		LeadPayload: payload,
		LeadID:      leadID,
		Timestamp:   createdAt.Format(time.RFC3339),
		Source:      "curadoria-af",
	}

	raw, err := json.Marshal(body)
	if err != nil {
		log.Println("❌ Failed to encode webhook payload:", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(raw))
	if err != nil {
		log.Println("❌ Failed to build webhook request:", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := webhookClient.Do(req)
	if err != nil {
		log.Println("❌ Webhook error (lead still saved):", err)
		return false
	}
	defer resp.Body.Close()

	log.Println("📤 Webhook response status:", resp.StatusCode)
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
