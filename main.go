package main

import (
	"log"
	"os"

	"event-marketplace/internal/app"
	"event-marketplace/internal/config"
	router "event-marketplace/pkg/app"

	_ "event-marketplace/migrations"

	"github.com/joho/godotenv"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	pb := pocketbase.New()

	// 1. Migrations
	migratecmd.MustRegister(pb, pb.RootCmd, migratecmd.Config{
		Automigrate: true,
	})

	// 2. Dependencies
	container, err := app.NewContainer(pb, cfg)
	if err != nil {
		log.Fatal("Error initializing container:", err)
	}

	// 3. Routes
	router.RegisterRoutes(pb, container)

	if err := pb.Start(); err != nil {
		log.Fatal(err)
	}
}
