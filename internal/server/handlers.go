// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/woozymasta/norcoord"
	"github.com/woozymasta/norcoord/internal/format"
	"github.com/woozymasta/norcoord/internal/geo"
	"github.com/woozymasta/norcoord/internal/processor"
)

const (
	maxBatchBytes = 1 << 20
	maxBatchLines = 10000
)

// HandleParse interprets the q parameter as a coordinate and answers with a
// GeoJSON point feature in WGS84.
func (s *ServerContext) HandleParse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := q.Get("q")
	if input == "" {
		writeError(w, r, http.StatusBadRequest, "missing q parameter")
		return
	}

	fallback, err := s.fallbackParam(q.Get("fallback"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	c, ok := norcoord.ParseCoordinateInput(input, fallback)
	if !ok {
		writeError(w, r, http.StatusNotFound, "not a coordinate")
		return
	}

	lon, lat := c.WGS84()
	utm := norcoord.FormatToNorwegianUTM([2]float64{c.Lon, c.Lat}, c.Projection, s.Config.Format)

	f := geo.PointFeature(lon, lat, map[string]interface{}{
		"input_format": c.InputFormat.String(),
		"projection":   c.Projection.String(),
		"formatted":    c.FormattedString,
		"lat":          c.Lat,
		"lon":          c.Lon,
		"utm":          utm.Label,
	})

	data, err := f.MarshalJSON()
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	_, _ = w.Write(data)
}

// HandleFormat renders x/y in crs (default EPSG:4326, lon/lat) as a UTM label.
// decimals, thousands and force_epsg override the configured format options.
func (s *ServerContext) HandleFormat(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	x, err := floatParam(q.Get("x"), "x")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	y, err := floatParam(q.Get("y"), "y")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	crs := geo.EPSG4326
	if v := q.Get("crs"); v != "" {
		if crs, err = geo.ParseProjectionID(v); err != nil {
			writeError(w, r, http.StatusBadRequest, "crs: "+err.Error())
			return
		}
	}
	if crs.IsGeographic() && !inLonLatRange(x, y) {
		writeError(w, r, http.StatusBadRequest, "x/y outside longitude/latitude range")
		return
	}
	if !crs.IsGeographic() && !inProjectedRange(x, y) {
		writeError(w, r, http.StatusBadRequest, "x/y outside projected range")
		return
	}
	if lon, lat := geo.MustForEPSG(crs.Code()).ToWGS84(x, y); !inLonLatRange(lon, lat) {
		writeError(w, r, http.StatusBadRequest, "x/y do not map to a longitude/latitude in "+crs.String())
		return
	}

	opts, err := s.formatOptions(q.Get("decimals"), q.Get("thousands"), q.Get("force_epsg"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, norcoord.FormatToNorwegianUTM([2]float64{x, y}, crs, opts))
}

// HandleUTM reports zone, band, hemisphere and EPSG for lon/lat.
func (s *ServerContext) HandleUTM(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lon, err := floatParam(q.Get("lon"), "lon")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	lat, err := floatParam(q.Get("lat"), "lat")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if !inLonLatRange(lon, lat) {
		writeError(w, r, http.StatusBadRequest, "lon/lat out of range")
		return
	}

	writeJSON(w, r, http.StatusOK, norcoord.UTMInfo(lon, lat))
}

// HandleBatch parses the request body line by line and answers with a
// FeatureCollection of the recognized coordinates. The number of lines that
// were not coordinates is reported in the X-Skipped-Lines header.
func (s *ServerContext) HandleBatch(w http.ResponseWriter, r *http.Request) {
	fallback, err := s.fallbackParam(r.URL.Query().Get("fallback"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	jobs, err := processor.ReadLines(http.MaxBytesReader(w, r.Body, maxBatchBytes))
	if err != nil {
		writeError(w, r, http.StatusRequestEntityTooLarge, err.Error())
		return
	}
	if len(jobs) > maxBatchLines {
		writeError(w, r, http.StatusRequestEntityTooLarge, fmt.Sprintf("at most %d lines per request", maxBatchLines))
		return
	}

	results := processor.Process(jobs, processor.Settings{Fallback: fallback, Format: s.Config.Format})
	fc, skipped := processor.FeatureCollection(results)

	data, err := fc.MarshalJSON()
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.Header().Set("X-Skipped-Lines", strconv.Itoa(len(skipped)))
	_, _ = w.Write(data)
}

// HandleConfig serves the client-facing part of the configuration.
func (s *ServerContext) HandleConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.Config)
}

// HandleIndex serves the lookup page.
func (s *ServerContext) HandleIndex(w http.ResponseWriter, r *http.Request) {
	etag := fmt.Sprintf(`"%x"`, len(s.IndexHTML))

	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(s.IndexHTML)
}

func (s *ServerContext) fallbackParam(v string) (geo.ProjectionID, error) {
	if v == "" {
		return s.Config.FallbackProjection, nil
	}
	id, err := geo.ParseProjectionID(v)
	if err != nil {
		return 0, fmt.Errorf("fallback: %w", err)
	}
	return id, nil
}

func (s *ServerContext) formatOptions(decimals, thousands, forceEPSG string) (format.Options, error) {
	opts := s.Config.Format

	if decimals != "" {
		d, err := strconv.Atoi(decimals)
		if err != nil || d < 0 || d > format.MaxDecimals {
			return opts, fmt.Errorf("decimals must be 0..%d", format.MaxDecimals)
		}
		opts.Decimals = d
	}
	if thousands != "" {
		b, err := strconv.ParseBool(thousands)
		if err != nil {
			return opts, fmt.Errorf("thousands: %w", err)
		}
		opts.Thousands = b
	}
	if forceEPSG != "" {
		code, err := strconv.Atoi(forceEPSG)
		if err != nil || geo.ForEPSG(code) == nil {
			return opts, fmt.Errorf("force_epsg: unsupported EPSG code %q", forceEPSG)
		}
		opts.ForceEPSG = code
	}

	return opts, nil
}

func floatParam(v, name string) (float64, error) {
	if v == "" {
		return 0, fmt.Errorf("missing %s parameter", name)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s: invalid number %q", name, v)
	}
	return f, nil
}

// inLonLatRange is false for NaN.
func inLonLatRange(lon, lat float64) bool {
	return lon >= -180 && lon <= 180 && lat >= -90 && lat <= 90
}

// inProjectedRange bounds projected meters by the Web Mercator extent, which
// also contains every UTM easting and northing.
func inProjectedRange(x, y float64) bool {
	return math.Abs(x) <= geo.MercatorExtent && math.Abs(y) <= geo.MercatorExtent
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("Response encoding failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}
