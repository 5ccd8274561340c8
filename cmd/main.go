// Package main is the entry point for the ztq-pricing-service application.
//
// @title           ZTQ Pricing Service API
// @version         1.0.0
// @description     API for configuring cordyceps retail packaging and deriving tiered prices.
//
//	The service normalizes container and packaging selections, derives totals and
//	Chinese order descriptions, keeps a working queue, and records submitted
//	batches in an append-only history with merge-import and export.
//
// @contact.name   API Support
// @contact.url    https://github.com/zangjing/ztq-pricing-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token. Optional on read paths; elevates price visibility per role.
//
// @tag.name        Pricing
// @tag.description Selection correction and price derivation
//
// @tag.name        Queue
// @tag.description Working queue operations
//
// @tag.name        Ledger
// @tag.description Batch history, import, and export
//
// @tag.name        Catalog
// @tag.description Product catalog operations
//
// @tag.name        Label
// @tag.description Compliance label rendering
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/zangjing/ztq-pricing-service/config"
	"github.com/zangjing/ztq-pricing-service/internal/app"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Initialization error")
	}

	server := app.NewServer(application.Router, cfg.Server.Port)
	err = server.Run()

	application.Close(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
