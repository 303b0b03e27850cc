package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/hive-corporation/cwp-forwarder/internal/adapter/handler"
	"github.com/hive-corporation/cwp-forwarder/internal/adapter/ingest"
	"github.com/hive-corporation/cwp-forwarder/internal/config"
	"github.com/hive-corporation/cwp-forwarder/internal/core/forwarder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	client := ingest.NewClient(cfg.CustomerID, cfg.SharedKey)
	fwd := forwarder.New(cfg.Filter(), client, cfg.LogType)
	snsHandler := handler.NewSNSHandler(fwd)

	log.Printf("🚀 CWP forwarder ready (workspace %s, %d allowed scores)", cfg.CustomerID, len(cfg.ScoreFilter))
	lambda.Start(snsHandler.Handle)
}
