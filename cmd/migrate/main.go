package main

import (
	"log"

	"industrial-site-be/internal/config"
	"industrial-site-be/internal/model"
	"industrial-site-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	if cfg.Database.Driver != database.DriverSQLite && cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.Open(cfg.Database.Driver, cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting GORM migration (%s)...", cfg.Database.Driver)

	if cfg.Database.Driver != database.DriverSQLite {
		color.Yellow("Step 1: Setting up extensions...")
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
			color.Yellow("Warn: Failed to create pgcrypto extension: %v. Continuing...", err)
		}
	}

	models := model.All()
	color.Yellow("Step 2: Running AutoMigrate for %d tables...", len(models))

	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			color.Red("Failed to migrate %T: %v", m, err)
			log.Fatal("Migration aborted")
		}
		color.Green("  migrated %T", m)
	}

	color.Green("Migration complete")
}
