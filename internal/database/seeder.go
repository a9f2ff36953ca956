package database

import (
	"context"
	"log"

	"restaurant-foh-api-server/config"
	"restaurant-foh-api-server/internal/models"
	"restaurant-foh-api-server/internal/store"
)

// initialMenu is the starter menu a fresh deployment opens with.
var initialMenu = []models.MenuItem{
	{Name: "Masala Dosa", Price: 120, Category: "South Indian", Image: "https://images.unsplash.com/photo-1589301760014-d929f3979dbc?auto=format&fit=crop&w=400", Available: true, Benefits: "Fermented delight"},
	{Name: "Idli Vada", Price: 90, Category: "South Indian", Image: "https://images.unsplash.com/photo-1589301760014-d929f3979dbc?auto=format&fit=crop&w=400", Available: true, Benefits: "Steamed perfection"},
	{Name: "Schezwan Noodles", Price: 180, Category: "Chinese", Image: "https://images.unsplash.com/photo-1585032226651-759b368d7246?auto=format&fit=crop&w=400", Available: true, Benefits: "Spicy kick"},
	{Name: "Manchurian", Price: 160, Category: "Chinese", Image: "https://images.unsplash.com/photo-1525755662778-989d0524087e?auto=format&fit=crop&w=400", Available: true, Benefits: "Crunchy bites"},
	{Name: "Sushi Roll", Price: 350, Category: "Japanese", Image: "https://images.unsplash.com/photo-1579871494447-9811cf80d66c?auto=format&fit=crop&w=400", Available: true, Benefits: "Fresh catch"},
	{Name: "Butter Chicken", Price: 280, Category: "North Indian", Image: "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398?auto=format&fit=crop&w=400", Available: true, Benefits: "Creamy goodness"},
}

// SeedMenu inserts the starter menu when the catalog is empty.
func SeedMenu(ctx context.Context, menu store.MenuStore) error {
	count, err := menu.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Menu already populated. Seeding skipped.")
		return nil
	}

	log.Println("Menu empty. Seeding starter items...")
	for _, item := range initialMenu {
		if _, err := menu.Add(ctx, item); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d menu items.", len(initialMenu))
	return nil
}

// SeedManager writes the configured manager profile if it is missing.
// The login secret itself lives in config as a bcrypt hash, never in
// the store.
func SeedManager(ctx context.Context, managers store.ManagerStore, cfg config.ManagerConfig) error {
	if cfg.ID == "" {
		log.Println("No manager configured. Seeding skipped.")
		return nil
	}
	if _, err := managers.Get(ctx, cfg.ID); err == nil {
		log.Println("Manager already exists. Seeding skipped.")
		return nil
	}

	log.Printf("Seeding manager %s...", cfg.ID)
	return managers.Save(ctx, models.Manager{
		ManagerID: cfg.ID,
		Name:      cfg.Name,
		Email:     cfg.Email,
	})
}
