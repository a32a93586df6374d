package leads

// Label tables translating diagnostic option ids into the human-readable
// text the sales team reads. Unknown ids fall through unchanged.

var goalLabels = map[string]string{
	"encantar":    "Encantar e surpreender",
	"fidelizar":   "Fidelizar clientes",
	"valorizar":   "Valorizar a marca",
	"promocional": "Ação promocional",
	"interno":     "Reconhecimento interno",
}

var occasionLabels = map[string]string{
	"corp":        "Evento corporativo",
	"social":      "Evento social",
	"clientes":    "Ação com clientes/parceiros",
	"interno_uso": "Ação interna",
	"ativacao":    "Lançamento/ativação",
}

var audienceLabels = map[string]string{
	"exec":    "Executivos / Alto Padrão",
	"cliente": "Clientes",
	"colab":   "Colaboradores",
	"influ":   "Influenciadores",
	"misto":   "Público misto",
}

var quantityLabels = map[string]string{
	"q1": "Até 30",
	"q2": "31 a 100",
	"q3": "101 a 300",
	"q4": "300 a 500",
	"q5": "500 a 1000",
	"q6": "1000+",
}

var budgetLabels = map[string]string{
	"b0": "De R$ 1.000 a R$ 3.000",
	"b1": "De R$ 3.000 a R$ 7.000",
	"b2": "De R$ 7.000 a R$ 15.000",
	"b3": "De R$ 15.000 a R$ 30.000",
	"b4": "De R$ 30.000 a R$ 100.000",
	"b5": "De R$ 100.000 a R$ 1.000.000",
}

var deadlineLabels = map[string]string{
	"u1": "Até 7 dias (Urgente)",
	"u2": "8–15 dias",
	"u3": "16–30 dias",
	"u4": "30+ dias",
	"u5": "Sem data definida",
}

var categoryLabels = map[string]string{
	"kits":      "Kits / Kits Corporativos",
	"garrafas":  "Garrafas / Squeezes",
	"cadernos":  "Cadernos",
	"facas":     "Facas / Canivetes",
	"churrasco": "Kit Churrasco",
	"copos":     "Copos / Canecas",
	"chapeus":   "Chapéus",
	"mochilas":  "Mochilas",
	"camping":   "Camping",
	"sugestao":  "Quero que vocês escolham por mim",
}

var colorLabels = map[string]string{
	"black":  "Preto",
	"white":  "Branco",
	"gray":   "Cinza",
	"blue":   "Azul",
	"red":    "Vermelho",
	"green":  "Verde",
	"yellow": "Amarelo",
	"orange": "Laranja",
	"purple": "Roxo",
	"pink":   "Rosa",
	"brown":  "Marrom",
	"gold":   "Dourado",
	"silver": "Prata",
}

func label(table map[string]string, id string) string {
	if v, ok := table[id]; ok {
		return v
	}
	return id
}
