package main

import (
	"context"
	"log"

	"restaurant-foh-api-server/config"
	"restaurant-foh-api-server/internal/api/routes"
	"restaurant-foh-api-server/internal/auth"
	"restaurant-foh-api-server/internal/database"
	"restaurant-foh-api-server/internal/engine"
	"restaurant-foh-api-server/internal/s3"
	"restaurant-foh-api-server/internal/session"
	"restaurant-foh-api-server/internal/socket"
	"restaurant-foh-api-server/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load configuration (.env first so viper sees the vars)
	_ = godotenv.Load()
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}
	if cfg.JWT.Secret != "" {
		auth.JwtSecret = []byte(cfg.JWT.Secret)
	}

	// 2. Connect to the shared document store
	db, err := database.Connect(cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// 3. Build the stores
	menuStore := store.NewMenuMongo(db)
	tableStore := store.NewTableMongo(db)
	staffStore := store.NewStaffMongo(db)
	orderStore := store.NewOrderMongo(db)
	feedbackStore := store.NewFeedbackMongo(db)
	managerStore := store.NewManagerMongo(db)

	// 4. Seed the starter menu and the configured manager profile
	ctx := context.Background()
	if err := database.SeedMenu(ctx, menuStore); err != nil {
		log.Fatalf("Failed to seed menu: %v", err)
	}
	if err := database.SeedManager(ctx, managerStore, cfg.Manager); err != nil {
		log.Fatalf("Failed to seed manager: %v", err)
	}

	// 5. Core services
	orderEngine := engine.New(orderStore)
	credentials := auth.NewCredentialService(staffStore)
	managerLock := session.NewMongoLock(db)

	s3Uploader, err := s3.NewUploader(cfg.S3)
	if err != nil {
		log.Fatalf("Failed to create S3 uploader: %v", err)
	}

	// 6. Real-time fan-out: change streams -> hub -> dashboards.
	// Order events are broadcast by the order handlers, so orders are
	// not watched here; each write reaches the dashboards once.
	wsHub := socket.NewHub()
	events := make(chan store.ChangeEvent, 64)
	go socket.Pump(ctx, wsHub, events)
	for _, coll := range []string{"menuItems", "tables", "feedbacks"} {
		coll := coll
		go func() {
			// Change streams need a replica set; without one these
			// collections fall back to read-on-refresh.
			if err := store.Watch(ctx, db.Collection(coll), events); err != nil {
				log.Printf("Change stream on %s stopped: %v", coll, err)
			}
		}()
	}

	// 7. Routes
	router := routes.SetupRouter(
		cfg,
		routes.Stores{Menu: menuStore, Tables: tableStore, Feedback: feedbackStore, Managers: managerStore},
		orderEngine,
		credentials,
		managerLock,
		s3Uploader,
		wsHub,
	)

	// 8. Start server
	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
