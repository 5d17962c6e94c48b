package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shopora/shopora-admin-golang/internal/database"
	"github.com/shopora/shopora-admin-golang/internal/handlers"
	"github.com/shopora/shopora-admin-golang/internal/routes"
	"github.com/shopora/shopora-admin-golang/internal/store"
)

func main() {
	// --- Environment (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// --- Database ---
	db, err := database.OpenDB()
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	logger.Info("database connection pool established")

	// --- Application wiring ---
	app := &handlers.Handlers{
		Store: store.New(db),
		Log:   logger,
	}

	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("starting Shopora admin API", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
