package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/norcoord/internal/geo"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
fallback_projection: 25832
format:
  decimals: 2
  thousands: true
  force_epsg: 32633
attribution: Kartverket
examples:
  - "59.9, 10.7"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, geo.EPSG25832, cfg.FallbackProjection)
	assert.Equal(t, 2, cfg.Format.Decimals)
	assert.True(t, cfg.Format.Thousands)
	assert.Equal(t, 32633, cfg.Format.ForceEPSG)
	assert.Equal(t, "Kartverket", cfg.Attribution)
	assert.Equal(t, []string{"59.9, 10.7"}, cfg.Examples)
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "attribution: test\n"))
	require.NoError(t, err)
	assert.Equal(t, geo.EPSG25833, cfg.FallbackProjection)
	assert.Equal(t, Default().Examples, cfg.Examples)
	assert.Zero(t, cfg.Format.Decimals)
}

func TestLoadProjectionForms(t *testing.T) {
	for _, v := range []string{"3857", `"EPSG:3857"`, "epsg:3857"} {
		cfg, err := Load(writeConfig(t, "fallback_projection: "+v+"\n"))
		require.NoError(t, err, v)
		assert.Equal(t, geo.EPSG3857, cfg.FallbackProjection, v)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"unknown fallback", "fallback_projection: 9999\n", "unsupported EPSG code 9999"},
		{"decimals", "format:\n  decimals: 4\n", "format.decimals"},
		{"negative decimals", "format:\n  decimals: -1\n", "format.decimals"},
		{"force epsg", "format:\n  force_epsg: 9999\n", "format.force_epsg"},
		{"syntax", "format: [\n", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = LoadOrDefault(writeConfig(t, "format:\n  decimals: 9\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
