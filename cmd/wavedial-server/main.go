package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wavedial/wavedial/internal/radiobrowser"
	"github.com/wavedial/wavedial/internal/server"
	"github.com/wavedial/wavedial/internal/store"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const ShutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	log.Printf("WaveDial server v%s starting...", version)

	cfg, err := server.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	favorites, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open favorites store: %v", err)
	}
	defer func() {
		if err := favorites.Close(); err != nil {
			log.Printf("Failed to close favorites store: %v", err)
		}
	}()

	directory := radiobrowser.NewService(cfg.UpstreamBaseURL)
	directory.SetTimeout(cfg.UpstreamTimeout())

	srv := server.New(directory, favorites)

	go func() {
		if err := srv.Start(cfg.ListenAddr); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	// Wait for an interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Failed to shut down cleanly: %v", err)
	}
}
