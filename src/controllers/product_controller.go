package controllers

import (
	"strings"

	"Backend-Curadoria-AF/src/models"
	"Backend-Curadoria-AF/src/services/products"

	"github.com/gofiber/fiber/v2"
)

// productView adds the widened display price band shown in the funnel.
type productView struct {
	models.Product
	DisplayPriceMin float64 `json:"display_price_min"`
	DisplayPriceMax float64 `json:"display_price_max"`
}

// GetFunnelProducts godoc
// @Summary      List the products offered on the selection step
// @Description  Filters the active catalog by the visitor's category picks. No filter, or "sugestao", returns everything.
// @Tags         products
// @Produce      json
// @Param        categories query string false "Comma-separated category ids"
// @Success      200  {array}  models.Product
// @Router       /products [get]
func GetFunnelProducts(c *fiber.Ctx) error {
	catalog := products.GetActiveProducts(c.Context())

	var selected []string
	if raw := strings.TrimSpace(c.Query("categories")); raw != "" {
		selected = strings.Split(raw, ",")
	}

	filtered := products.Filter(selected, catalog)

	views := make([]productView, 0, len(filtered))
	for _, p := range filtered {
		min, max := products.DisplayPriceRange(p.PriceMin, p.PriceMax)
		views = append(views, productView{Product: p, DisplayPriceMin: min, DisplayPriceMax: max})
	}
	return c.JSON(views)
}
