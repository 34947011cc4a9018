package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"homeboard/internal/chat"
	"homeboard/internal/commute"
	"homeboard/internal/config"
	"homeboard/internal/transcript"
	"homeboard/internal/web"
	"homeboard/internal/webhook"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	webhookURL, err := cfg.ResolveWebhookURL()
	if err != nil {
		log.Fatalf("%v", err)
	}

	var rec transcript.Recorder
	if cfg.ChatLogPath != "" {
		fr, err := transcript.NewFileRecorder(cfg.ChatLogPath)
		if err != nil {
			log.Printf("failed to init chat transcript recorder: %v", err)
		} else {
			rec = fr
		}
	}

	sessions := chat.NewManager()
	sender := webhook.New(webhookURL, nil)
	chatSvc := chat.NewService(sessions, sender, rec)

	store := commute.NewStore(cfg.CommuteDBPath)
	srv := web.NewServer(chatSvc, store, cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("web server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")
	if err := srv.Stop(); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
