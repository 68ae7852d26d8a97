// Command stubapi serves a DRF-like REST backend for local dashboard runs and e2e checks.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"otm_dashboard/internals/configs"
	database "otm_dashboard/internals/databases"
	"otm_dashboard/internals/middlewares"
	"otm_dashboard/internals/seeds"
	"otm_dashboard/internals/stubapi"
)

func main() {
	memory := flag.Bool("memory", false, "keep data in memory instead of STUB_DB_DSN")
	seed := flag.Bool("seed", true, "load demo data into empty collections")
	flag.Parse()

	configs.LoadEnv()

	var (
		store stubapi.Store
		users stubapi.UserStore
	)
	if *memory || configs.StubDSN == "" {
		log.Println("[INFO] stubapi: in-memory store")
		store, users = stubapi.NewMemoryStore(), stubapi.NewMemoryUsers()
	} else {
		db, err := database.ConnectDB(configs.StubDSN)
		if err != nil {
			log.Fatalf("❌ DB: %v", err)
		}
		database.TunePool(db)
		defer database.Close(db)

		gs := stubapi.NewGormStore(db)
		if err := gs.AutoMigrate(); err != nil {
			log.Fatalf("❌ migrate: %v", err)
		}
		store, users = gs, gs
	}

	if *seed {
		if err := seeds.RunAllSeeds(context.Background(), store, users); err != nil {
			log.Fatalf("❌ seed: %v", err)
		}
	}

	srv := stubapi.New(store, users, configs.StubJWTSecret)
	app := srv.App(middlewares.CorsMiddleware(), middlewares.GlobalRateLimiter())

	go func() {
		log.Printf("✅ stubapi listening on :%s", configs.StubPort)
		if err := app.Listen("0.0.0.0:" + configs.StubPort); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
}
