package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/norcoord/internal/config"
	"github.com/woozymasta/norcoord/internal/geo"
	"github.com/woozymasta/norcoord/internal/logger"
	"github.com/woozymasta/norcoord/internal/processor"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input       string `short:"i" long:"input"       description:"Input file, one coordinate per line. Reads stdin if empty"`
	Output      string `short:"o" long:"out"         description:"Output file path. Writes to stdout if empty"`
	Format      string `short:"f" long:"format"      description:"Output format" choice:"json" choice:"yaml" default:"json"`
	ConfigFile  string `short:"c" long:"config"      description:"Configuration file with fallback projection and format options"`
	Fallback    string `short:"p" long:"fallback"    description:"Projection for pairs without zone (EPSG code), overrides config"`
	Decimals    int    `short:"d" long:"decimals"    description:"UTM label decimals (0-3), overrides config" default:"-1"`
	Thousands   bool   `short:"t" long:"thousands"   description:"Group UTM label digits"`
	ForceEPSG   int    `short:"e" long:"force-epsg"  description:"Render UTM labels in this EPSG instead of the position's zone"`
	Concurrency int    `short:"j" long:"concurrency" description:"Parser workers" default:"4"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := loadConfig(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Read Input
	var in io.Reader = os.Stdin
	if opts.Input != "" {
		f, err := os.Open(opts.Input)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open input file")
		}
		defer f.Close()
		in = f
	}

	jobs, err := processor.ReadLines(in)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read input")
	}

	results := processor.Process(jobs, processor.Settings{
		Fallback:    cfg.FallbackProjection,
		Format:      cfg.Format,
		Concurrency: opts.Concurrency,
	})
	fc, skipped := processor.FeatureCollection(results)
	for _, res := range skipped {
		log.Warn().Int("line", res.Line).Str("input", res.Input).Msg("Skipping line: not a coordinate")
	}

	outputData, err := marshal(fc, opts.Format)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal features")
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, outputData, 0644); err != nil {
			log.Fatal().Err(err).Msg("Failed to write output file")
		}
		log.Info().
			Int("features", len(fc.Features)).
			Int("skipped", len(skipped)).
			Str("path", opts.Output).
			Str("format", opts.Format).
			Msg("Coordinates converted")
	} else {
		fmt.Println(string(outputData))
	}
}

// loadConfig applies command line overrides on top of the optional config file.
func loadConfig(opts Options) (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigFile); err != nil {
			return nil, err
		}
	}

	if opts.Fallback != "" {
		id, err := geo.ParseProjectionID(opts.Fallback)
		if err != nil {
			return nil, err
		}
		cfg.FallbackProjection = id
	}
	if opts.Decimals >= 0 {
		cfg.Format.Decimals = opts.Decimals
	}
	if opts.Thousands {
		cfg.Format.Thousands = true
	}
	if opts.ForceEPSG != 0 {
		cfg.Format.ForceEPSG = opts.ForceEPSG
	}

	return cfg, cfg.Validate()
}

// marshal encodes the collection as indented JSON or as YAML. YAML goes
// through the JSON form so geometries keep their GeoJSON shape.
func marshal(fc *geojson.FeatureCollection, format string) ([]byte, error) {
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil || format != "yaml" {
		return data, err
	}

	var generic map[string]interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, err
	}
	return yaml.Marshal(generic)
}
