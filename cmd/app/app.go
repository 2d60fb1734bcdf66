package app

import (
	"log"

	"firefly/internal/config"
	"firefly/internal/database"
	"firefly/internal/payment"
	"firefly/internal/repository"
	"firefly/internal/service"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// payment collaborator client
	stripeClient := payment.NewClient(cfg.StripeSecretKey)

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(cfg, stripeClient)

	return db, repo, services
}
