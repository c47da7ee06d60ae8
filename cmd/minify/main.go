package main

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"

	"github.com/woozymasta/norcoord/internal/logger"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Dir    string `short:"d" long:"dir"    description:"Directory with index.html.tpl, style.css and script.js" default:"assets"`
	Output string `short:"o" long:"output" description:"Output file, relative to --dir"                        default:"index.html"`
}

type PageData struct {
	CSS string
	JS  string
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

	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/javascript", js.Minify)

	cssMin, err := minifyFile(m, "text/css", filepath.Join(opts.Dir, "style.css"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to minify CSS")
	}

	jsMin, err := minifyFile(m, "text/javascript", filepath.Join(opts.Dir, "script.js"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to minify JS")
	}

	htmlRaw, err := os.ReadFile(filepath.Join(opts.Dir, "index.html.tpl"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read HTML template")
	}

	tmpl, err := template.New("index").Parse(string(htmlRaw))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse HTML template")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, PageData{CSS: cssMin, JS: jsMin}); err != nil {
		log.Fatal().Err(err).Msg("Failed to render HTML template")
	}

	finalHTML, err := m.String("text/html", buf.String())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to minify HTML")
	}

	out := filepath.Join(opts.Dir, opts.Output)
	if err := os.WriteFile(out, []byte(finalHTML), 0644); err != nil {
		log.Fatal().Err(err).Str("path", out).Msg("Failed to write page")
	}

	log.Info().
		Str("path", out).
		Int("css_bytes", len(cssMin)).
		Int("js_bytes", len(jsMin)).
		Int("html_bytes", len(finalHTML)).
		Msg("Minify done")
}

func minifyFile(m *minify.M, mediatype, path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return m.String(mediatype, string(raw))
}
