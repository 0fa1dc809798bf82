package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/gokatarajesh/kanaprac/internal/app"
	"github.com/gokatarajesh/kanaprac/internal/config"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		// a missing .env is the normal case for a terminal drill
		_ = godotenv.Load()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	fs := flag.NewFlagSet("kanaprac", flag.ExitOnError)
	fs.Usage = func() {
		fs.Output().Write([]byte("Practice recognizing the Japanese kana.\n\nUsage: kanaprac [flags]\n"))
		fs.PrintDefaults()
	}
	cfg.BindFlags(fs)
	_ = fs.Parse(os.Args[1:])

	instance, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	if err := instance.Run(context.Background()); err != nil {
		log.Fatalf("runtime error: %v", err)
	}
}
