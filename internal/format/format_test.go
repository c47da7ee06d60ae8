package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/norcoord/internal/geo"
)

func TestToUTMOslo(t *testing.T) {
	got := ToUTM(10.7461, 59.9127, geo.EPSG4326, Options{})

	assert.Equal(t, 32, got.Info.Zone)
	assert.Equal(t, "V", got.Info.BandString())
	assert.Equal(t, 32632, got.EPSG)
	assert.Equal(t, 597642.0, got.Easting)
	assert.Equal(t, 6642976.0, got.Northing)
	assert.Equal(t, "597642", got.EastingStr)
	assert.Equal(t, "6642976", got.NorthingStr)
	assert.Equal(t, "Sone 32V Ø 597642 N 6642976", got.Label)
}

func TestToUTMOptions(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		east   string
		north  string
		label  string
		eValue float64
	}{
		{
			name:   "two decimals grouped",
			opts:   Options{Decimals: 2, Thousands: true},
			east:   "597 642.38",
			north:  "6 642 976.37",
			label:  "Sone 32V Ø 597 642.38 N 6 642 976.37",
			eValue: 597642.38,
		},
		{
			name:   "one decimal",
			opts:   Options{Decimals: 1},
			east:   "597642.4",
			north:  "6642976.4",
			label:  "Sone 32V Ø 597642.4 N 6642976.4",
			eValue: 597642.4,
		},
		{
			name:   "decimals clamped",
			opts:   Options{Decimals: 7},
			east:   "597642.379",
			north:  "6642976.371",
			label:  "Sone 32V Ø 597642.379 N 6642976.371",
			eValue: 597642.379,
		},
		{
			name:   "forced zone 33",
			opts:   Options{ForceEPSG: 25833},
			east:   "262211",
			north:  "6649332",
			label:  "Sone 33V Ø 262211 N 6649332",
			eValue: 262211,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToUTM(10.7461, 59.9127, geo.EPSG4326, tt.opts)
			assert.Equal(t, tt.east, got.EastingStr)
			assert.Equal(t, tt.north, got.NorthingStr)
			assert.Equal(t, tt.label, got.Label)
			assert.InDelta(t, tt.eValue, got.Easting, 1e-9)
			assert.Equal(t, 32, got.Info.Zone, "info stays derived from position")
		})
	}
}

func TestToUTMSources(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		source geo.ProjectionID
		label  string
		epsg   int
	}{
		{"from UTM 32", 597642.379, 6642976.371, geo.EPSG25832, "Sone 32V Ø 597642 N 6642976", 32632},
		{"from UTM 33", 262211.233, 6649332.037, geo.EPSG25833, "Sone 32V Ø 597642 N 6642976", 32632},
		{"from web mercator", 1196250.38, 8380327.101, geo.EPSG3857, "Sone 32V Ø 597642 N 6642976", 32632},
		{"Svalbard", 15.6356, 78.2232, geo.EPSG4326, "Sone 33X Ø 514481 N 8683358", 32633},
		{"southern hemisphere", -58.38, -34.6, geo.EPSG4326, "Sone 21H Ø 373459 N 6170449", 32721},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToUTM(tt.x, tt.y, tt.source, Options{})
			assert.Equal(t, tt.label, got.Label)
			assert.Equal(t, tt.epsg, got.EPSG)
		})
	}
}

func TestToUTMPanicsOnUnknownProjection(t *testing.T) {
	assert.Panics(t, func() { ToUTM(0, 0, geo.ProjectionID(2056), Options{}) })
	assert.Panics(t, func() { ToUTM(10, 60, geo.EPSG4326, Options{ForceEPSG: 9999}) })
}

func TestToUTMNonFinite(t *testing.T) {
	for _, src := range []geo.ProjectionID{geo.EPSG4326, geo.EPSG25832, geo.EPSG3857} {
		var got FormattedUTM
		require.NotPanics(t, func() { got = ToUTM(math.NaN(), 6642976, src, Options{}) }, src.String())
		assert.False(t, got.Info.HasBand, src.String())
		assert.True(t, math.IsNaN(got.Easting), src.String())
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct{ in, want string }{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1 000"},
		{"597642", "597 642"},
		{"6642976.371", "6 642 976.371"},
		{"-1234567.5", "-1 234 567.5"},
		{"-123", "-123"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GroupThousands(tt.in), tt.in)
	}
}

func TestDecimalToDMS(t *testing.T) {
	tests := []struct {
		in   float64
		want DMS
	}{
		{59.9127, DMS{59, 54, 45.72, 1}},
		{-33.5, DMS{33, 30, 0, -1}},
		{0, DMS{0, 0, 0, 1}},
		{10.9999999, DMS{11, 0, 0, 1}},  // seconds carry into minutes then degrees
		{10.5166666, DMS{10, 31, 0, 1}}, // seconds carry into minutes only
	}
	for _, tt := range tests {
		got := DecimalToDMS(tt.in)
		assert.Equal(t, tt.want.Degrees, got.Degrees, "%v degrees", tt.in)
		assert.Equal(t, tt.want.Minutes, got.Minutes, "%v minutes", tt.in)
		assert.InDelta(t, tt.want.Seconds, got.Seconds, 1e-9, "%v seconds", tt.in)
		assert.Equal(t, tt.want.Sign, got.Sign, "%v sign", tt.in)
	}
}

func TestDecimalToDMSRoundTrip(t *testing.T) {
	for d := -89.0; d <= 89; d += 0.0137 {
		got := DecimalToDMS(d)
		if math.Abs(got.Decimal()-d) > 1e-4 {
			t.Fatalf("DecimalToDMS(%v).Decimal() = %v", d, got.Decimal())
		}
		if got.Minutes >= 60 || got.Seconds >= 60 {
			t.Fatalf("DecimalToDMS(%v) = %+v overflows", d, got)
		}
	}
}

func TestTextRenderings(t *testing.T) {
	assert.Equal(t, "59.91273° N, 10.74609° E", Decimal(59.91273, 10.74609))
	assert.Equal(t, "33.9° S, 18.4° W", Decimal(-33.9, -18.4))
	assert.Equal(t, `59°54'45.72" N, 10°44'45.9" E`, DMSPair(59.9127, 10+44.0/60+45.9/3600))
	assert.Equal(t, `33°30'0" S, 70°15'0" W`, DMSPair(-33.5, -70.25))
	assert.Equal(t, "Sone 33 Ø 425917 N 7730314", Projected(425917, 7730314, geo.EPSG25833))
	assert.Equal(t, "Sone 32 Ø 597000.5 N 6643000", Projected(597000.5, 6643000, geo.EPSG25832))
	assert.Equal(t, "Ø 1196250 N 8380327 @3857", Projected(1196250, 8380327, geo.EPSG3857))
}
