package main

import (
	"fmt"
	"log"
	"os"

	_ "leadform-backend/docs"
	"leadform-backend/src/database"
	"leadform-backend/src/jobs"
	"leadform-backend/src/routes"
	"leadform-backend/src/seeder"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title       Leadform API
// @version     1.0
// @description Lead-capture form builder: form authoring, respondent sessions with conditional branching, submissions and webhook lead ingestion.
func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis and asynq are optional in development; everything but the form
	// cache and scheduled follow-ups works without them.
	database.InitRedis()
	database.InitAsynq()
	jobs.StartWorker()

	if os.Getenv("SEED_DEMO_FORM") == "true" {
		if err := seeder.SeedSampleForm(); err != nil {
			log.Println("demo form seeding failed:", err)
		}
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Webhook-Secret",
		AllowCredentials: false, // must stay false with a wildcard origin
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8888"
	}

	log.Println("Server is running on port " + port)
	err = app.Listen(fmt.Sprintf(":%s", port))
	if err != nil {
		log.Fatal(err)
	}

}
