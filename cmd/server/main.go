package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/ReactMentorship/travelblog-core/internal/config"
	"github.com/ReactMentorship/travelblog-core/internal/server"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg(".env not loaded, continuing with environment variables")
	}

	if m := os.Getenv("GIN_MODE"); m != "" {
		gin.SetMode(m)
	}

	cfg := config.Load()
	if len(cfg.AccessSecret) == 0 || len(cfg.RefreshSecret) == 0 {
		log.Warn().Msg("ACCESS_TOKEN_SECRET / REFRESH_TOKEN_SECRET not set")
	}

	r, err := server.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise server")
	}

	log.Info().Str("addr", cfg.Addr()).Msg("listening")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
