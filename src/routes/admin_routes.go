package routes

import (
	"time"

	"Backend-Curadoria-AF/src/controllers"
	"Backend-Curadoria-AF/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(api fiber.Router) {
	admin := api.Group("/admin", middleware.RateLimit("admin", 30, time.Minute))
	admin.Post("/login", controllers.AdminLogin)

	adminProducts := admin.Group("/products", middleware.AuthJWT)
	adminProducts.Get("/", controllers.AdminListProducts)
	adminProducts.Post("/", controllers.AdminCreateProduct)
	adminProducts.Get("/:id", controllers.AdminGetProduct)
	adminProducts.Put("/:id", controllers.AdminUpdateProduct)
	adminProducts.Delete("/:id", controllers.AdminDeleteProduct)
}
