package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- LeadForm ---
// Contact fields captured on the final step. Validation messages come from
// the ordered checks in the leads service; tags catch shape problems early.
type LeadForm struct {
	Name     string `json:"name" validate:"required,max=100"`
	Whatsapp string `json:"whatsapp" validate:"required,max=20"`
	Email    string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Company  string `json:"company,omitempty" validate:"max=200"`
	Extra    string `json:"extra,omitempty" validate:"max=1000"`

	DocumentType         string `json:"documentType,omitempty" validate:"omitempty,oneof=cpf cnpj"`
	DocumentNumber       string `json:"documentNumber,omitempty" validate:"max=20"`
	HasStateRegistration *bool  `json:"hasStateRegistration,omitempty"`

	PresentationPreference string `json:"presentationPreference,omitempty" validate:"omitempty,oneof=whatsapp call"`
	ScheduledDate          string `json:"scheduledDate,omitempty" validate:"max=20"`
	ScheduledTime          string `json:"scheduledTime,omitempty" validate:"max=10"`

	UTM      UTMParams `json:"utm"`
	Referrer string    `json:"referrer,omitempty" validate:"max=500"`
	PageURL  string    `json:"pageUrl,omitempty" validate:"max=500"`
}

// --- UTMParams ---
type UTMParams struct {
	Source   string `bson:"source" json:"source"`
	Medium   string `bson:"medium" json:"medium"`
	Campaign string `bson:"campaign" json:"campaign"`
	Content  string `bson:"content" json:"content"`
	Term     string `bson:"term" json:"term"`
}

// --- ColorsPayload ---
type ColorsPayload struct {
	BrandColors bool     `bson:"brand_colors" json:"brand_colors"`
	Selected    []string `bson:"selected" json:"selected"`
	Codes       string   `bson:"codes" json:"codes"`
}

// --- LeadPayload ---
// Normalized record handed to the intake webhook. Question ids are already
// translated into human-readable labels at this point.
type LeadPayload struct {
	Name     string `bson:"name" json:"name"`
	Whatsapp string `bson:"whatsapp" json:"whatsapp"`
	Email    string `bson:"email,omitempty" json:"email,omitempty"`
	Company  string `bson:"company,omitempty" json:"company,omitempty"`

	Goal          string   `bson:"goal,omitempty" json:"goal,omitempty"`
	Occasion      string   `bson:"occasion,omitempty" json:"occasion,omitempty"`
	Audience      string   `bson:"audience,omitempty" json:"audience,omitempty"`
	Niche         string   `bson:"niche,omitempty" json:"niche,omitempty"`
	QuantityRange string   `bson:"quantity_range,omitempty" json:"quantity_range,omitempty"`
	BudgetRange   string   `bson:"budget_range,omitempty" json:"budget_range,omitempty"`
	DeadlineRange string   `bson:"deadline_range,omitempty" json:"deadline_range,omitempty"`
	Categories    []string `bson:"categories" json:"categories"`
	PathChosen    string   `bson:"path_chosen,omitempty" json:"path_chosen,omitempty"`

	Colors           ColorsPayload     `bson:"colors" json:"colors"`
	FileURLs         []string          `bson:"file_urls" json:"file_urls"`
	SelectedProducts []SelectedProduct `bson:"selected_products" json:"selected_products"`
	MustHave         string            `bson:"must_have,omitempty" json:"must_have,omitempty"`

	DocumentType           string `bson:"document_type,omitempty" json:"document_type,omitempty"`
	DocumentNumber         string `bson:"document_number,omitempty" json:"document_number,omitempty"`
	StateRegistration      string `bson:"state_registration,omitempty" json:"state_registration,omitempty"`
	PresentationPreference string `bson:"presentation_preference,omitempty" json:"presentation_preference,omitempty"`
	ScheduledDate          string `bson:"scheduled_date,omitempty" json:"scheduled_date,omitempty"`
	ScheduledTime          string `bson:"scheduled_time,omitempty" json:"scheduled_time,omitempty"`

	UTM      UTMParams `bson:"utm" json:"utm"`
	Referrer string    `bson:"referrer,omitempty" json:"referrer,omitempty"`
	PageURL  string    `bson:"page_url,omitempty" json:"page_url,omitempty"`
}

// --- Lead ---
// Persisted lead row. The Mongo id doubles as the correlation id handed to
// the analytics sinks so browser and server events deduplicate.
type Lead struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	LeadPayload   `bson:",inline"`
	WebhookSent   bool       `bson:"webhook_sent" json:"webhook_sent"`
	WebhookSentAt *time.Time `bson:"webhook_sent_at,omitempty" json:"webhook_sent_at,omitempty"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
}

// --- SubmitResult ---
type SubmitResult struct {
	Success     bool   `json:"success"`
	LeadID      string `json:"lead_id,omitempty"`
	WebhookSent bool   `json:"webhook_sent"`
	Error       string `json:"error,omitempty"`
}
