package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"menulens/internal/config"
	"menulens/internal/llm"
	"menulens/internal/review"
	"menulens/internal/server"
	"menulens/internal/server/handler"
	"menulens/internal/store/result"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	gemini, err := llm.NewGeminiClient(ctx, cfg.LLM.APIKey, cfg.LLM.Model)
	if err != nil {
		log.Fatalf("init gemini client: %v", err)
	}
	cli := llm.Wrap(gemini,
		llm.WithLogging(nil),
		llm.Retry(cfg.LLM.MaxRetries, 2*time.Second),
		llm.RateLimitFromEnv("LLM", "GEMINI"),
	)
	defer cli.Close()

	index, err := review.NewIndex(0)
	if err != nil {
		log.Fatal(err)
	}

	store := result.NewFromEnv()
	h := handler.New(cli, store, index, cfg.LLM)
	srv := server.New(cfg.Port, server.NewMux(h))

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
