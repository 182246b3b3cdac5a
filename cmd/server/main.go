package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	zerologlog "github.com/rs/zerolog/log"

	"github.com/michael-helium/yoink/internal/config"
	"github.com/michael-helium/yoink/internal/dict"
	"github.com/michael-helium/yoink/internal/game"
)

func main() {
	// zerolog setup (human-friendly console)
	zerolog.TimeFieldFormat = time.RFC3339
	cw := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	zerologlog.Logger = zerologlog.Output(cw)

	cfg := config.FromEnv()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/ws") {
			return
		}
		zerologlog.Info().Str("path", path).Int("status", c.Writer.Status()).Dur("dur", time.Since(start)).Msg("http")
	})

	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowCredentials: true,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{
				"Content-Type",
				"Upgrade",
				"Connection",
				"Sec-WebSocket-Key",
				"Sec-WebSocket-Version",
				"Sec-WebSocket-Extensions",
				"Sec-WebSocket-Protocol",
			},
		}))
	}

	// Liveness
	r.GET("/", func(c *gin.Context) { c.String(200, "yoink server is running") })

	// The dictionary loads before any traffic is accepted.
	d := dict.Load(context.Background(), cfg.DictURLs)
	zerologlog.Info().Int("words", d.Len()).Msg("dictionary ready")

	lobby := game.NewLobby(d, game.TimeTickerCreator{})
	started := make(chan struct{})
	go lobby.LobbyActor(started)
	<-started

	h := game.NewHandler(lobby, cfg.AllowedOrigins)
	h.Register(r)

	zerologlog.Info().Str("port", cfg.Port).Msg("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		zerologlog.Fatal().Err(err).Msg("server exited")
	}
}
