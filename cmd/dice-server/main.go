package main

import (
	"context"
	"net/http"
	"time"

	"github.com/apoorvrathore077/high-stake-dice-backend/internal/auth"
	"github.com/apoorvrathore077/high-stake-dice-backend/internal/config"
	"github.com/apoorvrathore077/high-stake-dice-backend/internal/logging"
	"github.com/apoorvrathore077/high-stake-dice-backend/internal/store"
	httptransport "github.com/apoorvrathore077/high-stake-dice-backend/internal/transport/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	cfg, err := config.LoadApp()
	if err != nil {
		log.Fatal().Err(err).Msg("load config failed")
	}
	logging.Init(cfg.Log)

	st, err := store.New(cfg.Server.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}
	if err := st.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("db ping failed")
	}

	// Optional seed from env
	seedUser(st, cfg.Server)

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	r := httptransport.NewRouter(st, cfg.Server, tokens)
	httptransport.LogRoutes(r)

	server := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.Server.HTTPAddr).Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}

func seedUser(st *store.Store, cfg config.ServerConfig) {
	if cfg.SeedUserName == "" || cfg.SeedUserEmail == "" || cfg.SeedUserPassword == "" {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedUserPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("seed user hash error")
		return
	}
	err = st.EnsureUser(context.Background(), store.CreateUserParams{
		Username:     cfg.SeedUserName,
		Email:        cfg.SeedUserEmail,
		PasswordHash: string(hash),
		Balance:      cfg.InitialBalance,
	})
	if err != nil {
		log.Error().Err(err).Msg("seed user error")
	}
}
