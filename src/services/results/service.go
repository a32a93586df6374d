package results

import (
	"fmt"

	"Backend-Curadoria-AF/src/models"
)

// Direction classifications attached to a completed diagnostic.
const (
	DirectionPremiumImpacto   = "Premium Impacto"
	DirectionInstitucional    = "Institucional"
	DirectionPremiumFuncional = "Premium Funcional"
)

var objectiveLabels = map[string]string{
	"encantar":    "Encantar e Surpreender",
	"fidelizar":   "Fidelizar Clientes",
	"valorizar":   "Valorizar a Marca",
	"promocional": "Ação Promocional",
	"interno":     "Reconhecimento Interno",
}

var audienceLabels = map[string]string{
	"exec":    "Executivos / Alto Padrão",
	"cliente": "Clientes",
	"colab":   "Colaboradores",
	"influ":   "Influenciadores",
	"misto":   "Público Misto",
}

var scaleLabels = map[string]string{
	"q1": "Até 30",
	"q2": "31 a 100",
	"q3": "101 a 300",
	"q4": "300+",
}

// Category inventory backing the three curation paths.
var champions = []models.CategoryRecommendation{
	{Name: "Chapéu de Bambu AF", Why: "Nosso campeão absoluto de vendas. Estilo único e conexão com a natureza."},
	{Name: "Kit Corporativo AF", Why: "O grande campeão para eventos. Versatilidade e sofisticação garantida."},
}

var leather = []models.CategoryRecommendation{
	{Name: "Mala de Viagem em Couro", Why: "O ápice do luxo corporativo para executivos de alto escalão."},
	{Name: "Mochila Premium em Couro", Why: "Durabilidade e elegância para o dia a dia executivo."},
	{Name: "Necessaire & Carteira AF", Why: "Acessórios refinados em couro legítimo que exalam exclusividade."},
}

var craft = []models.CategoryRecommendation{
	{Name: "Facas Artesanais Artfacas", Why: "Peças exclusivas feitas à mão. Um presente para a vida toda."},
	{Name: "Canivetes de Precisão", Why: "Funcionalidade tática com acabamento de joalheria."},
	{Name: "Kit Artfacas Premium", Why: "Seleção rigorosa das nossas melhores lâminas e acessórios."},
}

var standard = []models.CategoryRecommendation{
	{Name: "Garrafas / Squeezes", Why: "Combina utilidade e exposição diária da marca."},
	{Name: "Cadernos Premium", Why: "Elegância e funcionalidade no dia a dia."},
	{Name: "Copos / Canecas", Why: "Versátil para celebrações e ações rápidas."},
}

// Derive maps a completed answer store to the diagnostic result. Pure and
// deterministic: every lookup has a default, so it never fails for a
// well-formed store. The three paths are fixed templates; only the header
// labels, direction and urgency vary with the answers.
func Derive(answers models.AnswerStore) models.DiagnosticResult {
	objectiveID := answers.ValueOf(1, "valorizar")
	audienceID := answers.ValueOf(3, "misto")
	quantityID := answers.ValueOf(5, "q2")
	budgetID := answers.ValueOf(6, "b3")
	urgencyID := answers.ValueOf(7, "u3")

	objectiveLabel := labelOr(objectiveLabels, objectiveID, objectiveLabels["valorizar"])
	audienceLabel := labelOr(audienceLabels, audienceID, audienceLabels["misto"])
	scaleLabel := labelOr(scaleLabels, quantityID, scaleLabels["q2"])

	// Direction rules, first match wins.
	direction := DirectionPremiumFuncional
	if audienceID == "exec" || objectiveID == "valorizar" || objectiveID == "encantar" {
		direction = DirectionPremiumImpacto
	} else if quantityID == "q4" && (budgetID == "b1" || budgetID == "b2") {
		direction = DirectionInstitucional
	}

	urgency := "Planejado"
	if urgencyID == "u1" {
		urgency = "Urgente (Prioridade AF)"
	}

	paths := []models.PathRecommendation{
		{
			Title:       "Caminho Conservador",
			Description: "Melhor para quem quer padronização e eficiência, mantendo bom valor percebido.",
			Categories:  []models.CategoryRecommendation{champions[1], standard[0], standard[1]},
			Focus:       "Consistência, clareza, execução objetiva.",
		},
		{
			Title:       "Caminho Moderado",
			Description: "Melhor para equilibrar impacto e orçamento com escolhas seguras e premium.",
			Categories:  []models.CategoryRecommendation{champions[0], craft[1], leather[1]},
			Focus:       "Equilíbrio entre custo e percepção de valor.",
			Upgrade:     "Gravação a laser personalizada em cada item.",
		},
		{
			Title:       "Caminho Ousado / Premium Impacto",
			Description: "Melhor para impressionar e criar experiência: presente que vira lembrança.",
			Categories:  []models.CategoryRecommendation{leather[0], craft[0], craft[2]},
			Focus:       "Memorabilidade e sofisticação em cada detalhe.",
			Upgrade:     "Embalagem em caixa de madeira reflorestada ou couro.",
		},
	}

	return models.DiagnosticResult{
		Objective: objectiveLabel,
		Audience:  audienceLabel,
		Scale:     scaleLabel,
		Direction: direction,
		Summary:   fmt.Sprintf("Curadoria estratégica alinhada ao objetivo de %s.", objectiveLabel),
		Urgency:   urgency,
		Paths:     paths,
	}
}

func labelOr(table map[string]string, id, fallback string) string {
	if label, ok := table[id]; ok {
		return label
	}
	return fallback
}
