package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/woozymasta/norcoord/assets"
	"github.com/woozymasta/norcoord/internal/config"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config    *config.Config
	IndexHTML []byte
}

// NewServerContext initializes the context from a validated configuration.
func NewServerContext(cfg *config.Config) *ServerContext {
	log.Info().
		Stringer("fallback_projection", cfg.FallbackProjection).
		Int("decimals", cfg.Format.Decimals).
		Bool("thousands", cfg.Format.Thousands).
		Int("force_epsg", cfg.Format.ForceEPSG).
		Int("examples", len(cfg.Examples)).
		Msg("Server context initialized")

	return &ServerContext{
		Config:    cfg,
		IndexHTML: assets.Index,
	}
}

// Routes registers the handlers. Requests with other methods get 405 from the mux.
func (s *ServerContext) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/parse", s.HandleParse)
	mux.HandleFunc("GET /api/format", s.HandleFormat)
	mux.HandleFunc("GET /api/utm", s.HandleUTM)
	mux.HandleFunc("POST /api/batch", s.HandleBatch)
	mux.HandleFunc("GET /api/config", s.HandleConfig)
	mux.HandleFunc("GET /{$}", s.HandleIndex)
	return mux
}
