package products

import "Backend-Curadoria-AF/src/models"

// StaticCatalog is the built-in fallback product list, used whenever the
// catalog store is unreachable or empty. Kept in funnel display order.
var StaticCatalog = []models.Product{
	// Cadernos
	{
		ID:         "caderneta-moleskine",
		Name:       "Caderneta Moleskine",
		SKU:        "caderneta-moleskine",
		ImageURL:   "https://artfacas.com/conteudo/uploads/2025/08/16-1-300x300.webp",
		PriceMin:   13.48,
		PriceMax:   13.48,
		Categories: []string{"cadernos"},
		Active:     true,
	},
	{
		ID:         "caderno-executive",
		Name:       "Caderno Executive",
		SKU:        "caderno-executive",
		ImageURL:   "https://artfacas.com/conteudo/uploads/2025/08/25-1-300x300.webp",
		PriceMin:   45.38,
		PriceMax:   45.38,
		Categories: []string{"cadernos"},
		Active:     true,
	},

	// Camping
	{
		ID:         "lampiao-led",
		Name:       "Lampião Led",
		SKU:        "10954",
		ImageURL:   "https://artfacas.com/conteudo/uploads/2025/10/LAMPIAO-LED-300x300.webp",
		PriceMin:   94.88,
		PriceMax:   94.88,
		Categories: []string{"camping"},
		Active:     true,
	},

	// Canivetes
	{
		ID:         "canivete-forest",
		Name:       "Canivete Forest",
		SKU:        "10334",
		ImageURL:   "https://artfacas.com/conteudo/uploads/2025/08/05-1-300x300.webp",
		PriceMin:   49.28,
		PriceMax:   49.28,
		Categories: []string{"canivetes"},
		Active:     true,
	},
	{
		ID:         "canivete-premium",
		Name:       "Canivete Premium",
		SKU:        "canivete-premium",
		ImageURL:   "https://artfacas.com/conteudo/uploads/2025/10/CANIVETE-PREMIUM-S-ABRIDOR-webp-300x300.webp",
		PriceMin:   54.56,
		PriceMax:   54.56,
		Categories: []string{"canivetes"},
		Active:     true,
	},

	// Chapéus
	{
		ID:         "chapeu-fibra-bambu",
		Name:       "Chapéu Fibra de Bambu",
		SKU:        "chapeu-fibra-de-bambu",
		ImageURL:   "https://artfacas.com/conteudo/uploads/2025/09/CHAPEU-AZUL-300x300.webp",
		PriceMin:   50.00,
		PriceMax:   50.00,
		Categories: []string{"chapeus"},
		Active:     true,
	},

	// Copos
	{
		ID:         "caneca-chopp-430ml",
		Name:       "Caneca de Chopp 430 ML",
		SKU:        "caneca-de-chopp-430-ml",
		ImageURL:   "https://artfacas.com/conteudo/uploads/2025/10/CANECA-DE-CHOPP-430ML-VERDE-300x300.webp",
		PriceMin:   69.30,
		PriceMax:   69.30,
		Categories: []string{"copos"},
		Active:     true,
	},
	{
		ID:         "copo-termico-abridor",
		Name:       "Copo Térmico C/ Abridor",
		SKU:        "copo-termico-c-abridor",
		ImageURL:   "https://artfacas.com/conteudo/uploads/2025/08/02-300x300.webp",
		PriceMin:   77.22,
		PriceMax:   77.22,
		Categories: []string{"copos"},
		Active:     true,
	},

	// Facas
	{
		ID:         "faca-08-anel",
		Name:       "Faca 08 C/ Anel",
		SKU:        "faca-08-c-anel",
		ImageURL:   "https://artfacas.com/conteudo/uploads/2025/08/14-1-300x300.webp",
		PriceMin:   195.00,
		PriceMax:   298.00,
		Categories: []string{"facas"},
		Active:     true,
	},
	{
		ID:         "facas-08-osso",
		Name:       "Facas 08 Osso",
		SKU:        "facas-08-osso",
		ImageURL:   "https://artfacas.com/conteudo/uploads/2025/10/FACA-08AG-OSSO-BAINHA-300x300.webp",
		PriceMin:   181.50,
		PriceMax:   410.00,
		Categories: []string{"facas"},
		Active:     true,
	},
	{
		ID:         "kit-churrasco-4pc",
		Name:       "Kit Churrasco 4 Pç.",
		SKU:        "kit-bambu-4pc",
		ImageURL:   "https://artfacas.com/conteudo/uploads/2025/11/KIT-BAMBU-4PC-300x300.webp",
		PriceMin:   235.00,
		PriceMax:   235.00,
		Categories: []string{"facas", "kits"},
		Active:     true,
	},

	// Garrafas
	{
		ID:         "garrafa-inox-wb-500ml",
		Name:       "Garrafa Inox WB 500ML",
		SKU:        "garrafa-inox-wb-500ml",
		ImageURL:   "https://artfacas.com/conteudo/uploads/2025/10/GARRAFA-TERMICA-WB-500ML-BRANCO-300x300.webp",
		PriceMin:   61.88,
		PriceMax:   61.88,
		Categories: []string{"garrafas"},
		Active:     true,
	},
	{
		ID:         "garrafa-termica-1l",
		Name:       "Garrafa Térmica 1L",
		SKU:        "garrafa-termica-1l",
		ImageURL:   "https://artfacas.com/conteudo/uploads/2025/10/GARRAFA-TERMICA-1L-VERMELHO-300x300.webp",
		PriceMin:   114.40,
		PriceMax:   114.40,
		Categories: []string{"garrafas"},
		Active:     true,
	},
	{
		ID:         "squeeze-aqua-500ml",
		Name:       "Squeeze Aqua 500ML",
		SKU:        "squeeze-aqua-500ml",
		ImageURL:   "https://artfacas.com/conteudo/uploads/2025/08/23-300x300.webp",
		PriceMin:   55.83,
		PriceMax:   55.83,
		Categories: []string{"garrafas"},
		Active:     true,
	},

	// Kits
	{
		ID:         "kit-churrasco-bbq-3119",
		Name:       "Kit Churrasco BBQ 3119",
		SKU:        "10933",
		ImageURL:   "https://artfacas.com/conteudo/uploads/2025/10/KIT-CHURRASCO-BBQ-3119-300x300.webp",
		PriceMin:   195.82,
		PriceMax:   195.82,
		Categories: []string{"kits"},
		Active:     true,
	},
	{
		ID:         "kit-corporativo",
		Name:       "Kit Corporativo",
		SKU:        "kits-corporativos",
		ImageURL:   "https://artfacas.com/conteudo/uploads/2025/10/KIT-CORPORATIVO-ROSA-300x300.webp",
		PriceMin:   160.15,
		PriceMax:   160.15,
		Categories: []string{"kits"},
		Active:     true,
	},

	// Mochilas
	{
		ID:         "mochila-de-lona",
		Name:       "Mochila De Lona",
		SKU:        "mochila-de-lona",
		ImageURL:   "https://artfacas.com/conteudo/uploads/2025/10/06-300x300.webp",
		PriceMin:   209.00,
		PriceMax:   209.00,
		Categories: []string{"mochilas"},
		Active:     true,
	},
	{
		ID:         "mochila-pag",
		Name:       "Mochila PAG",
		SKU:        "mochila-pag",
		ImageURL:   "https://artfacas.com/conteudo/uploads/2025/10/10-300x300.webp",
		PriceMin:   158.40,
		PriceMax:   158.40,
		Categories: []string{"mochilas"},
		Active:     true,
	},
}
