package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elitezone/internal/config"
	"elitezone/internal/handlers"
	"elitezone/internal/ledger"
	"elitezone/internal/session"
	"elitezone/internal/storage"
	"elitezone/internal/websocket"
)

func main() {
	cfg := config.Load()
	store, err := storage.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("failed to open data dir: %v", err)
	}

	hub := websocket.NewHub()
	service := ledger.NewService(store, hub)
	if err := service.Load(); err != nil {
		log.Fatalf("failed to load state: %v", err)
	}
	sessions := session.NewManager(cfg.JWTSecret, cfg.TokenTTL, service)

	handler := handlers.New(cfg, service, sessions, hub)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("elitezone API listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
