package routes

import (
	"time"

	"Backend-Curadoria-AF/src/controllers"
	"Backend-Curadoria-AF/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func DiagnosticRoutes(api fiber.Router) {
	diagnostic := api.Group("/diagnostic/sessions")
	diagnostic.Post("/", controllers.CreateSession)
	diagnostic.Get("/:id", controllers.GetSession)
	diagnostic.Post("/:id/start", controllers.StartSession)
	diagnostic.Post("/:id/answers", controllers.AnswerQuestion)
	diagnostic.Post("/:id/back", controllers.GoBack)
	diagnostic.Post("/:id/products", controllers.ConfirmProducts)
	diagnostic.Post("/:id/path", controllers.SelectPath)
	diagnostic.Post("/:id/submit",
		middleware.RateLimit("submit", 5, time.Minute),
		controllers.SubmitLead)
}
