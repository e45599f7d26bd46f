package main

import (
	"context"
	"log"

	"companyexport/internal/app"
	"companyexport/internal/config"
	"companyexport/internal/exporter"
	"companyexport/internal/handlers"
	"companyexport/internal/logger"
	"companyexport/internal/services"
	"companyexport/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	c := config.NewConfig()
	if err := config.Init(c); err != nil {
		log.Fatalf("Failed to init config: %v", err)
	}

	sugar, err := logger.NewLogger()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	ctx := context.Background()

	s, err := storage.NewStorageDB(ctx, c)
	if err != nil {
		log.Fatalf("Failed to connect to storage: %v", err)
	}
	defer func() {
		if e := s.Close(ctx); e != nil {
			sugar.Errorf("storage close error: %s", e.Error())
		}
	}()

	exp, err := exporter.New(c.ExportDir)
	if err != nil {
		log.Fatalf("Failed to prepare export dir: %v", err)
	}

	companyService := services.NewCompanyService(c, s, exp)
	controller := handlers.NewController(c, companyService, exp, sugar)

	r := chi.NewRouter()
	app.InitMiddleware(r, c, controller)
	app.Routing(r, controller)

	srv := app.CreateServer(c, r, sugar)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
