package leads

import (
	"testing"
	"time"

	"Backend-Curadoria-AF/src/models"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func validForm() *models.LeadForm {
	return &models.LeadForm{
		Name:                   "Maria Silva",
		Whatsapp:               "(11) 98765-4321",
		PresentationPreference: "whatsapp",
	}
}

// nextWeekday returns the next Monday-Friday at least one day ahead.
func nextWeekday() string {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func nextWeekendDay() string {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() != time.Saturday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func TestValidateFormAcceptsCompleteForm(t *testing.T) {
	assert.Nil(t, ValidateForm(validForm()))
}

func TestValidateFormChecksInOrder(t *testing.T) {
	// Everything is missing; the name error must surface first.
	err := ValidateForm(&models.LeadForm{})
	assert.NotNil(t, err)
	assert.Equal(t, "name", err.Field)

	// With a name, the whatsapp error comes next.
	err = ValidateForm(&models.LeadForm{Name: "Maria"})
	assert.NotNil(t, err)
	assert.Equal(t, "whatsapp", err.Field)
}

func TestValidateFormWhatsappDigits(t *testing.T) {
	t.Run("NineDigitsRejected", func(t *testing.T) {
		form := validForm()
		form.Whatsapp = "119876543"
		err := ValidateForm(form)
		assert.NotNil(t, err)
		assert.Equal(t, "whatsapp", err.Field)
	})

	t.Run("TenDigitsAccepted", func(t *testing.T) {
		form := validForm()
		form.Whatsapp = "1187654321"
		assert.Nil(t, ValidateForm(form))
	})

	t.Run("FifteenDigitsAccepted", func(t *testing.T) {
		form := validForm()
		form.Whatsapp = "551198765432112"
		assert.Nil(t, ValidateForm(form))
	})

	t.Run("SixteenDigitsRejected", func(t *testing.T) {
		form := validForm()
		form.Whatsapp = "5511987654321123"
		err := ValidateForm(form)
		assert.NotNil(t, err)
		assert.Equal(t, "whatsapp", err.Field)
	})

	t.Run("FormattingIsStripped", func(t *testing.T) {
		form := validForm()
		form.Whatsapp = "+55 (11) 98765-4321"
		assert.Nil(t, ValidateForm(form))
	})
}

func TestValidateFormCNPJRules(t *testing.T) {
	t.Run("CNPJRequiresNumber", func(t *testing.T) {
		form := validForm()
		form.DocumentType = "cnpj"
		err := ValidateForm(form)
		assert.NotNil(t, err)
		assert.Equal(t, "documentNumber", err.Field)
	})

	t.Run("CNPJRequiresStateRegistrationAnswer", func(t *testing.T) {
		form := validForm()
		form.DocumentType = "cnpj"
		form.DocumentNumber = "12.345.678/0001-90"
		err := ValidateForm(form)
		assert.NotNil(t, err)
		assert.Equal(t, "hasStateRegistration", err.Field)
	})

	t.Run("CNPJCompleteIsAccepted", func(t *testing.T) {
		form := validForm()
		form.DocumentType = "cnpj"
		form.DocumentNumber = "12.345.678/0001-90"
		form.HasStateRegistration = boolPtr(false)
		assert.Nil(t, ValidateForm(form))
	})

	t.Run("CPFSkipsCNPJChecks", func(t *testing.T) {
		form := validForm()
		form.DocumentType = "cpf"
		assert.Nil(t, ValidateForm(form))
	})
}

func TestValidateFormPresentationPreference(t *testing.T) {
	form := validForm()
	form.PresentationPreference = ""
	err := ValidateForm(form)
	assert.NotNil(t, err)
	assert.Equal(t, "presentationPreference", err.Field)
}

func TestValidateFormCallScheduling(t *testing.T) {
	t.Run("CallRequiresDateAndTime", func(t *testing.T) {
		form := validForm()
		form.PresentationPreference = "call"
		err := ValidateForm(form)
		assert.NotNil(t, err)
		assert.Equal(t, "schedule", err.Field)
	})

	t.Run("WeekendRejected", func(t *testing.T) {
		form := validForm()
		form.PresentationPreference = "call"
		form.ScheduledDate = nextWeekendDay()
		form.ScheduledTime = "10:00"
		err := ValidateForm(form)
		assert.NotNil(t, err)
		assert.Equal(t, "scheduledDate", err.Field)
	})

	t.Run("PastDateRejected", func(t *testing.T) {
		form := validForm()
		form.PresentationPreference = "call"
		form.ScheduledDate = "2020-03-02" // a Monday, long gone
		form.ScheduledTime = "10:00"
		err := ValidateForm(form)
		assert.NotNil(t, err)
		assert.Equal(t, "scheduledDate", err.Field)
	})

	t.Run("SlotOutsideAgendaRejected", func(t *testing.T) {
		form := validForm()
		form.PresentationPreference = "call"
		form.ScheduledDate = nextWeekday()
		form.ScheduledTime = "07:30"
		err := ValidateForm(form)
		assert.NotNil(t, err)
		assert.Equal(t, "scheduledTime", err.Field)
	})

	t.Run("ValidBookingAccepted", func(t *testing.T) {
		form := validForm()
		form.PresentationPreference = "call"
		form.ScheduledDate = nextWeekday()
		form.ScheduledTime = "14:30"
		assert.Nil(t, ValidateForm(form))
	})
}

func TestTimeSlots(t *testing.T) {
	assert.Len(t, TimeSlots, 20)
	assert.Equal(t, "08:00", TimeSlots[0])
	assert.Equal(t, "17:30", TimeSlots[len(TimeSlots)-1])
}
