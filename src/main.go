package main

import (
	_ "Backend-Curadoria-AF/docs"
	"Backend-Curadoria-AF/src/controllers"
	"Backend-Curadoria-AF/src/database"
	"Backend-Curadoria-AF/src/jobs"
	"Backend-Curadoria-AF/src/routes"
	"Backend-Curadoria-AF/src/seeder"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	database.InitRedis()
	database.InitAsynq()

	if err := seeder.SeedProducts(); err != nil {
		log.Println("⚠️ Product seeding failed:", err)
	}

	jobs.StartWorker()

	// Abandoned funnels are swept after two hours of inactivity.
	controllers.Sessions.StartSweeper(10*time.Minute, 2*time.Hour)

	app := fiber.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	// Uploaded brand files are served from disk under /uploads.
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	app.Static("/uploads", uploadDir)

	routes.InitRoutes(app)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "9000"
	}

	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}
