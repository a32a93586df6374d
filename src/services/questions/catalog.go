package questions

import "Backend-Curadoria-AF/src/models"

// SuggestionOption is the "let the curators choose" option id. It is
// mutually exclusive with every other category option and short-circuits
// product filtering to "show everything".
const SuggestionOption = "sugestao"

// PhaseNames maps phase number to its display name.
var PhaseNames = map[int]string{
	1: "Contexto",
	2: "Público",
	3: "Investimento",
	4: "Cronograma",
	5: "Curadoria",
}

// ColorOptions offered by the color-picker question.
var ColorOptions = []models.ColorOption{
	{ID: "black", Label: "Preto", Hex: "#000000"},
	{ID: "white", Label: "Branco", Hex: "#FFFFFF"},
	{ID: "gray", Label: "Cinza", Hex: "#808080"},
	{ID: "blue", Label: "Azul", Hex: "#0000FF"},
	{ID: "red", Label: "Vermelho", Hex: "#FF0000"},
	{ID: "green", Label: "Verde", Hex: "#008000"},
	{ID: "yellow", Label: "Amarelo", Hex: "#FFFF00"},
	{ID: "orange", Label: "Laranja", Hex: "#FFA500"},
	{ID: "purple", Label: "Roxo", Hex: "#800080"},
	{ID: "pink", Label: "Rosa", Hex: "#FFC0CB"},
	{ID: "brown", Label: "Marrom", Hex: "#A52A2A"},
	{ID: "gold", Label: "Dourado", Hex: "#D4AF37"},
	{ID: "silver", Label: "Prata", Hex: "#C0C0C0"},
}

// All is the full diagnostic questionnaire in presentation order.
// Loaded once at process start, never mutated.
var All = []models.Question{
	{
		ID:       1,
		Phase:    1,
		Type:     models.QuestionTiles,
		Title:    "Qual é o objetivo principal do brinde?",
		Subtitle: "Direciona a estratégia de impacto da marca.",
		Options: []models.QuestionOption{
			{ID: "encantar", Label: "Encantar e surpreender"},
			{ID: "fidelizar", Label: "Fidelizar clientes"},
			{ID: "valorizar", Label: "Valorizar a marca"},
			{ID: "promocional", Label: "Ação promocional"},
			{ID: "interno", Label: "Reconhecimento interno"},
		},
	},
	{
		ID:       2,
		Phase:    1,
		Type:     models.QuestionSingle,
		Title:    "Onde será usado?",
		Subtitle: "Define o contexto de entrega do brinde.",
		Options: []models.QuestionOption{
			{ID: "corp", Label: "Evento corporativo"},
			{ID: "social", Label: "Evento social"},
			{ID: "clientes", Label: "Ação com clientes/parceiros"},
			{ID: "interno_uso", Label: "Ação interna"},
			{ID: "ativacao", Label: "Lançamento/ativação"},
		},
	},
	{
		ID:       3,
		Phase:    2,
		Type:     models.QuestionTiles,
		Title:    "Quem vai receber?",
		Subtitle: "O perfil define o nível de sofisticação do item.",
		Options: []models.QuestionOption{
			{ID: "exec", Label: "Executivos / Alto Padrão"},
			{ID: "cliente", Label: "Clientes"},
			{ID: "colab", Label: "Colaboradores"},
			{ID: "influ", Label: "Influenciadores"},
			{ID: "misto", Label: "Público misto"},
		},
	},
	{
		ID:          4,
		Phase:       2,
		Type:        models.QuestionText,
		Title:       "Qual o nicho/segmento?",
		Subtitle:    "Nos ajuda a personalizar ainda mais a curadoria.",
		Placeholder: "Ex: Agro, Tecnologia, Imobiliário...",
	},
	{
		ID:       5,
		Phase:    3,
		Type:     models.QuestionSingle,
		Title:    "Quantas pessoas serão presenteadas?",
		Subtitle: "Escala influencia o custo unitário e logística.",
		Options: []models.QuestionOption{
			{ID: "q1", Label: "Até 30"},
			{ID: "q2", Label: "31 a 100"},
			{ID: "q3", Label: "101 a 300"},
			{ID: "q4", Label: "300 a 500"},
			{ID: "q5", Label: "500 a 1000"},
			{ID: "q6", Label: "1000+"},
		},
	},
	{
		ID:       6,
		Phase:    3,
		Type:     models.QuestionSingle,
		Title:    "Qual a verba TOTAL disponível?",
		Subtitle: "Ajuda a calibrar as opções dentro do seu orçamento.",
		Options: []models.QuestionOption{
			{ID: "b0", Label: "De R$ 1.000 a R$ 3.000"},
			{ID: "b1", Label: "De R$ 3.000 a R$ 7.000"},
			{ID: "b2", Label: "De R$ 7.000 a R$ 15.000"},
			{ID: "b3", Label: "De R$ 15.000 a R$ 30.000"},
			{ID: "b4", Label: "De R$ 30.000 a R$ 100.000"},
			{ID: "b5", Label: "De R$ 100.000 a R$ 1.000.000"},
		},
	},
	{
		ID:       7,
		Phase:    4,
		Type:     models.QuestionSingle,
		Title:    "Pra quando você precisa receber?",
		Subtitle: "Urgência define a viabilidade de personalizações complexas.",
		Options: []models.QuestionOption{
			{ID: "u1", Label: "Até 7 dias (Urgente)"},
			{ID: "u2", Label: "8–15 dias"},
			{ID: "u3", Label: "16–30 dias"},
			{ID: "u4", Label: "30+ dias"},
			{ID: "u5", Label: "Sem data definida"},
		},
	},
	{
		ID:       8,
		Phase:    5,
		Type:     models.QuestionMulti,
		Title:    "Você já tem interesse em alguma categoria?",
		Subtitle: "Selecione uma ou mais categorias ou peça sugestões.",
		Options: []models.QuestionOption{
			{ID: "kits", Label: "Kits / Kits Corporativos"},
			{ID: "mais-vendidos", Label: "Mais Vendidos"},
			{ID: "garrafas", Label: "Garrafas / Squeezes"},
			{ID: "cadernos", Label: "Cadernos"},
			{ID: "facas", Label: "Facas / Canivetes"},
			{ID: "copos", Label: "Copos / Canecas"},
			{ID: "chapeus", Label: "Chapéus"},
			{ID: "mochilas", Label: "Mochilas"},
			{ID: "churrasco", Label: "Kit Churrasco"},
			{ID: SuggestionOption, Label: "Quero que vocês escolham por mim"},
		},
	},
	{
		ID:       9,
		Phase:    5,
		Type:     models.QuestionColorPicker,
		Title:    "Selecione as cores da campanha",
		Subtitle: "Escolha as cores do evento ou informe os códigos da sua marca.",
	},
	{
		ID:       10,
		Phase:    5,
		Type:     models.QuestionFileUpload,
		Title:    "Envie sua logo e arquivos da marca",
		Subtitle: "Anexe logo, manual de marca ou qualquer referência visual.",
	},
}

// Count returns the number of questions in the funnel.
func Count() int {
	return len(All)
}

// At returns the question at the given index (presentation order).
func At(index int) (models.Question, bool) {
	if index < 0 || index >= len(All) {
		return models.Question{}, false
	}
	return All[index], true
}

// ByID returns the question with the given id.
func ByID(id int) (models.Question, bool) {
	for _, q := range All {
		if q.ID == id {
			return q, true
		}
	}
	return models.Question{}, false
}
