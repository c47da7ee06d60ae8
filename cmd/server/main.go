package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/norcoord/internal/config"
	"github.com/woozymasta/norcoord/internal/geo"
	"github.com/woozymasta/norcoord/internal/logger"
	"github.com/woozymasta/norcoord/internal/server"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"   env:"CONFIG_FILE"         description:"Path to configuration file"                default:"config.yaml"`
	Addr       string `short:"a" long:"addr"     env:"LISTEN_ADDRESS"      description:"Address to listen on"                      default:"0.0.0.0"`
	Port       int    `short:"p" long:"port"     env:"LISTEN_PORT"         description:"Port to listen on"                         default:"8080"`
	Fallback   string `short:"f" long:"fallback" env:"FALLBACK_PROJECTION" description:"Projection for pairs without zone (EPSG code)"`
}

func main() {
	// .env is optional; real environment variables take precedence.
	envErr := godotenv.Load()

	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Setup Logging
	opts.Logger.Setup()
	if envErr != nil && !os.IsNotExist(envErr) {
		log.Warn().Err(envErr).Msg("Failed to read .env file")
	}

	// Load Config
	cfg, err := config.LoadOrDefault(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if opts.Fallback != "" {
		id, err := geo.ParseProjectionID(opts.Fallback)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid fallback projection")
		}
		cfg.FallbackProjection = id
	}

	srvCtx := server.NewServerContext(cfg)
	handler := server.RequestLogger(srvCtx.Routes())

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info().
		Str("addr", listenAddr).
		Stringer("fallback_projection", cfg.FallbackProjection).
		Msg("Web server started")

	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
