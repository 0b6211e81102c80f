package main

import (
	"log"

	"topclass/catalog"
	"topclass/config"
	controllers "topclass/controllers/course"
	"topclass/database"
	"topclass/routers/authRoutes"
	"topclass/routers/courseRoutes"
	"topclass/routers/purchaseRoutes"
	"topclass/storage"
	"topclass/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	storage.InitStorage()

	// Wire the catalog: fixtures always serve the known category labels;
	// the live branch comes from the store unless configured otherwise.
	fixtures := catalog.DefaultFixtures()
	var repo catalog.Repository
	if config.AppConfig.CatalogSource == "fixture" {
		repo = catalog.NewFixtureRepository(fixtures)
	} else {
		repo = catalog.NewStoreRepository(database.Database.Db)
	}
	controllers.InitCatalog(catalog.NewResolver(fixtures, repo), repo)

	utils.InitializeCounterScheduler()

	app := fiber.New(fiber.Config{
		// Leave headroom above the 10 MiB image ceiling so oversized
		// uploads reach the validator instead of a bare 413.
		BodyLimit: 12 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminRoutes(app)
	purchaseRoutes.SetupPurchaseRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
