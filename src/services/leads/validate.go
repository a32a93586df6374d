package leads

import (
	"strings"
	"time"

	"Backend-Curadoria-AF/src/models"
)

// TimeSlots a visitor can book for a presentation call, half-hour marks
// across the commercial day.
var TimeSlots = []string{
	"08:00", "08:30", "09:00", "09:30", "10:00", "10:30",
	"11:00", "11:30", "12:00", "12:30", "13:00", "13:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
	"17:00", "17:30",
}

// ValidationError carries the field that failed and the message shown to
// the visitor, in Portuguese like the rest of the funnel copy.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateForm runs the capture checks in presentation order and stops at
// the first failure, mirroring how the form surfaces one error at a time.
func ValidateForm(form *models.LeadForm) *ValidationError {
	if strings.TrimSpace(form.Name) == "" {
		return &ValidationError{Field: "name", Message: "Por favor, preencha seu nome."}
	}

	if strings.TrimSpace(form.Whatsapp) == "" {
		return &ValidationError{Field: "whatsapp", Message: "WhatsApp é obrigatório."}
	}
	digits := digitsOnly(form.Whatsapp)
	if len(digits) < 10 {
		return &ValidationError{Field: "whatsapp", Message: "WhatsApp inválido. Informe DDD + número."}
	}
	if len(digits) > 15 {
		return &ValidationError{Field: "whatsapp", Message: "WhatsApp inválido. Número muito longo."}
	}

	if form.DocumentType == "cnpj" {
		if strings.TrimSpace(form.DocumentNumber) == "" {
			return &ValidationError{Field: "documentNumber", Message: "Por favor, preencha seu CNPJ."}
		}
		if form.HasStateRegistration == nil {
			return &ValidationError{Field: "hasStateRegistration", Message: "Por favor, informe se possui Inscrição Estadual."}
		}
	}

	if form.PresentationPreference == "" {
		return &ValidationError{Field: "presentationPreference", Message: "Por favor, escolha como deseja receber sua curadoria."}
	}

	if form.PresentationPreference == "call" {
		if form.ScheduledDate == "" || form.ScheduledTime == "" {
			return &ValidationError{Field: "schedule", Message: "Por favor, selecione a data e horário da reunião."}
		}
		if err := validateSchedule(form.ScheduledDate, form.ScheduledTime); err != nil {
			return err
		}
	}

	return nil
}

func validateSchedule(date, slot string) *ValidationError {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return &ValidationError{Field: "scheduledDate", Message: "Data inválida."}
	}

	today := time.Now()
	startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
	if day.Before(startOfToday) {
		return &ValidationError{Field: "scheduledDate", Message: "A data da reunião não pode estar no passado."}
	}
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return &ValidationError{Field: "scheduledDate", Message: "Escolha um dia útil para a reunião."}
	}

	for _, s := range TimeSlots {
		if s == slot {
			return nil
		}
	}
	return &ValidationError{Field: "scheduledTime", Message: "Horário fora da agenda disponível."}
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
