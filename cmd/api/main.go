package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arka-001/portfolio-edge/config"
	"github.com/arka-001/portfolio-edge/internal/bootstrap"
	"github.com/arka-001/portfolio-edge/internal/contact"
	"github.com/arka-001/portfolio-edge/internal/content"
	"github.com/arka-001/portfolio-edge/internal/upstream"
)

const serviceName = "portfolio-edge"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	client := content.NewClient(cfg.Content.BaseURL)
	submitter := contact.NewSubmitter(cfg.Content.BaseURL)

	probe := upstream.NewProbe(cfg.Content.BaseURL)
	if err := probe.Start(cfg.Probe.Spec); err != nil {
		log.Fatalf("Failed to start upstream probe: %v", err)
	}
	defer probe.Stop()

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:          serviceName,
		Version:              cfg.App.Version,
		AllowedOrigins:       cfg.Server.AllowedOrigins,
		Client:               client,
		Submitter:            submitter,
		Probe:                probe,
		ContactRatePerMinute: cfg.Contact.RatePerMinute,
		ContactBurst:         cfg.Contact.Burst,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	log.Printf("%s listening on :%s (content API: %s)", serviceName, cfg.Server.Port, cfg.Content.BaseURL)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}

	log.Println("Server stopped")
}
