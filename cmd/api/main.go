package main

import (
	"github.com/gin-gonic/gin"

	"github.com/ultramind-solutions/agendepro/internal/cache"
	"github.com/ultramind-solutions/agendepro/internal/config"
	"github.com/ultramind-solutions/agendepro/internal/db"
	"github.com/ultramind-solutions/agendepro/internal/logging"
	"github.com/ultramind-solutions/agendepro/internal/middleware"
	"github.com/ultramind-solutions/agendepro/internal/routes"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.Env)

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	database := db.NewDB(cfg, log)
	pageCache := cache.New(cfg.RedisURL, log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(r, database, cfg, pageCache, log)

	log.Info().Str("addr", cfg.Addr()).Str("env", cfg.Env).Msg("agendepro api listening")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
