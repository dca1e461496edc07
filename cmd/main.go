package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kabirajrana/phishing-website-detection/internal/broker"
	"github.com/kabirajrana/phishing-website-detection/internal/config"
	"github.com/kabirajrana/phishing-website-detection/internal/detector"
	"github.com/kabirajrana/phishing-website-detection/internal/ml"
	"github.com/kabirajrana/phishing-website-detection/internal/models"
	"github.com/kabirajrana/phishing-website-detection/internal/storage"
	"github.com/kabirajrana/phishing-website-detection/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	registry, err := ml.LoadRegistry(cfg.Artifacts.Dir)
	if err != nil {
		log.Fatalf("Failed to load model artifacts: %v", err)
	}
	for _, info := range registry.Infos() {
		log.Printf("Loaded %s model (%s, %d features) from %s",
			info.UseCase, info.Kind, info.NumFeatures, info.File)
	}

	store := storage.NewSubmissionStore(cfg.History.MaxEntries)
	events := broker.New[*models.Submission](64)
	det := detector.NewDetector(registry, store, events)

	server := web.NewServer(cfg, store, det, registry.Infos(), events.Subscribe(models.SubmissionTopic))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down")
		events.CloseTopic(models.SubmissionTopic)
		if err := server.Stop(); err != nil {
			log.Printf("Graceful shutdown failed: %v", err)
		}
	}()

	log.Printf("Dashboard and API listening on %s", cfg.Web.ListenAddr)
	log.Println("Available endpoints:")
	log.Println("   GET    /                     - Dashboard")
	log.Println("   POST   /api/analyze          - Run a URL through a model")
	log.Println("   POST   /api/manual           - Run a hand-built feature vector")
	log.Println("   GET    /api/models           - Loaded model descriptions")
	log.Println("   GET    /api/importance       - Feature importance ranking")
	log.Println("   GET    /api/submissions      - Submission history")
	log.Println("   GET    /api/submissions/{id} - One submission")
	log.Println("   DELETE /api/submissions/{id} - Drop one submission")
	log.Println("   WS     /ws                   - Live submission pushes")
	log.Println("   GET    /health               - Health check")

	if err := server.Start(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
