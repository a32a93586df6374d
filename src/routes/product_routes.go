package routes

import (
	"Backend-Curadoria-AF/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func ProductRoutes(api fiber.Router) {
	products := api.Group("/products")
	products.Get("/", controllers.GetFunnelProducts)
}
