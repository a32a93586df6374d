package leads

import (
	"testing"

	"Backend-Curadoria-AF/src/models"

	"github.com/stretchr/testify/assert"
)

func sessionFixture() models.Session {
	return models.Session{
		ID:   "test-session",
		Step: models.StepCapture,
		Answers: models.AnswerStore{
			1: {Kind: models.AnswerChoice, Value: "encantar"},
			2: {Kind: models.AnswerChoice, Value: "corp"},
			3: {Kind: models.AnswerChoice, Value: "exec"},
			4: {Kind: models.AnswerText, Value: "Agro"},
			5: {Kind: models.AnswerChoice, Value: "q2"},
			6: {Kind: models.AnswerChoice, Value: "b3"},
			7: {Kind: models.AnswerChoice, Value: "u1"},
			8: {Kind: models.AnswerMulti, Options: []string{"kits", "churrasco"}},
			9: {Kind: models.AnswerColor, Color: &models.ColorAnswer{
				Selected:    []string{"black", "gold"},
				BrandColors: true,
				Codes:       "#101010, #D4AF37",
			}},
		},
		PendingFileURLs: []string{"http://localhost:9000/uploads/logo.png"},
		SelectedProducts: []models.SelectedProduct{
			{ID: "kit-corporativo", Name: "Kit Corporativo", SKU: "kits-corporativos"},
		},
		SelectedPath: "Caminho Ousado / Premium Impacto",
	}
}

func formFixture() *models.LeadForm {
	return &models.LeadForm{
		Name:                   "  Maria Silva  ",
		Whatsapp:               " (11) 98765-4321 ",
		Email:                  " maria@empresa.com.br ",
		Company:                "Empresa LTDA",
		Extra:                  "Entrega em duas cidades",
		DocumentType:           "cnpj",
		DocumentNumber:         " 12.345.678/0001-90 ",
		HasStateRegistration:   boolPtr(true),
		PresentationPreference: "whatsapp",
		UTM:                    models.UTMParams{Source: "meta", Campaign: "af-curadoria"},
		Referrer:               "https://instagram.com",
		PageURL:                "https://artfacas.com/diagnostico",
	}
}

func TestAssembleTranslatesIDsToLabels(t *testing.T) {
	payload := Assemble(sessionFixture(), formFixture())

	assert.Equal(t, "Encantar e surpreender", payload.Goal)
	assert.Equal(t, "Evento corporativo", payload.Occasion)
	assert.Equal(t, "Executivos / Alto Padrão", payload.Audience)
	assert.Equal(t, "Agro", payload.Niche)
	assert.Equal(t, "31 a 100", payload.QuantityRange)
	assert.Equal(t, "De R$ 15.000 a R$ 30.000", payload.BudgetRange)
	assert.Equal(t, "Até 7 dias (Urgente)", payload.DeadlineRange)
	assert.Equal(t, []string{"Kits / Kits Corporativos", "Kit Churrasco"}, payload.Categories)
	assert.Equal(t, []string{"Preto", "Dourado"}, payload.Colors.Selected)
	assert.True(t, payload.Colors.BrandColors)
	assert.Equal(t, "#101010, #D4AF37", payload.Colors.Codes)
}

func TestAssembleTrimsContactFields(t *testing.T) {
	payload := Assemble(sessionFixture(), formFixture())

	assert.Equal(t, "Maria Silva", payload.Name)
	assert.Equal(t, "(11) 98765-4321", payload.Whatsapp)
	assert.Equal(t, "maria@empresa.com.br", payload.Email)
	assert.Equal(t, "12.345.678/0001-90", payload.DocumentNumber)
}

func TestAssembleStateRegistrationTriState(t *testing.T) {
	form := formFixture()
	form.HasStateRegistration = boolPtr(true)
	assert.Equal(t, "Sim", Assemble(sessionFixture(), form).StateRegistration)

	form.HasStateRegistration = boolPtr(false)
	assert.Equal(t, "Não", Assemble(sessionFixture(), form).StateRegistration)

	// Not a CNPJ: the answer is dropped entirely.
	form.DocumentType = "cpf"
	form.HasStateRegistration = boolPtr(true)
	assert.Empty(t, Assemble(sessionFixture(), form).StateRegistration)
}

func TestAssembleCarriesFunnelState(t *testing.T) {
	payload := Assemble(sessionFixture(), formFixture())

	assert.Equal(t, "Caminho Ousado / Premium Impacto", payload.PathChosen)
	assert.Equal(t, []string{"http://localhost:9000/uploads/logo.png"}, payload.FileURLs)
	assert.Len(t, payload.SelectedProducts, 1)
	assert.Equal(t, "kits-corporativos", payload.SelectedProducts[0].SKU)
	assert.Equal(t, "Kit Corporativo", payload.SelectedProducts[0].Name)
	assert.Empty(t, payload.SelectedProducts[0].ID, "submitted products carry name and sku only")
	assert.Equal(t, "meta", payload.UTM.Source)
	assert.Equal(t, "https://artfacas.com/diagnostico", payload.PageURL)
}

func TestAssembleUnknownIDsPassThrough(t *testing.T) {
	session := sessionFixture()
	session.Answers[1] = models.Answer{Kind: models.AnswerChoice, Value: "custom-goal"}
	session.Answers[8] = models.Answer{Kind: models.AnswerMulti, Options: []string{"nova-categoria"}}

	payload := Assemble(session, formFixture())
	assert.Equal(t, "custom-goal", payload.Goal)
	assert.Equal(t, []string{"nova-categoria"}, payload.Categories)
}

func TestAssembleEmptySessionGivesEmptyFields(t *testing.T) {
	session := models.Session{ID: "empty", Answers: models.AnswerStore{}}
	form := &models.LeadForm{Name: "A", Whatsapp: "1187654321", PresentationPreference: "whatsapp"}

	payload := Assemble(session, form)
	assert.Empty(t, payload.Goal)
	assert.Empty(t, payload.Categories)
	assert.Empty(t, payload.Colors.Selected)
	assert.NotNil(t, payload.FileURLs)
	assert.NotNil(t, payload.SelectedProducts)
}

// A retried submission must produce an identical payload so the webhook
// receives the same record byte for byte.
func TestAssembleIsDeterministic(t *testing.T) {
	first := Assemble(sessionFixture(), formFixture())
	second := Assemble(sessionFixture(), formFixture())
	assert.Equal(t, first, second)
}
