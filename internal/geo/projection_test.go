package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupEPSG(t *testing.T) {
	tests := []struct {
		code   int
		want   ProjectionID
		wantOK bool
	}{
		{4326, EPSG4326, true},
		{4258, EPSG4326, true},
		{3857, EPSG3857, true},
		{25832, EPSG25832, true},
		{25836, EPSG25836, true},
		{25831, 0, false},
		{32633, 0, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		got, label, ok := LookupEPSG(tt.code)
		assert.Equal(t, tt.wantOK, ok, "code %d", tt.code)
		assert.Equal(t, tt.want, got, "code %d", tt.code)
		if ok {
			assert.NotEmpty(t, label)
		}
	}
}

func TestParseProjectionID(t *testing.T) {
	for _, s := range []string{"25833", "EPSG:25833", "epsg:25833"} {
		id, err := ParseProjectionID(s)
		require.NoError(t, err, s)
		assert.Equal(t, EPSG25833, id)
	}

	_, err := ParseProjectionID("EPSG:9999")
	assert.Error(t, err)
	_, err = ParseProjectionID("utm33")
	assert.Error(t, err)
}

func TestProjectionIDHelpers(t *testing.T) {
	assert.Equal(t, "EPSG:25835", EPSG25835.String())
	assert.Equal(t, 35, EPSG25835.UTMZone())
	assert.Equal(t, 0, EPSG3857.UTMZone())
	assert.True(t, EPSG4326.IsGeographic())
	assert.False(t, EPSG3857.IsUTM())
	assert.False(t, ProjectionID(4258).Valid())

	id, ok := UTMProjectionForZone(33)
	assert.True(t, ok)
	assert.Equal(t, EPSG25833, id)
	_, ok = UTMProjectionForZone(31)
	assert.False(t, ok)

	text, err := EPSG3857.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "EPSG:3857", string(text))

	var p ProjectionID
	require.NoError(t, p.UnmarshalText([]byte("25834")))
	assert.Equal(t, EPSG25834, p)
}

func TestForEPSG(t *testing.T) {
	for _, code := range []int{4326, 4258, 3857, 25832, 25836, 32632, 32760} {
		p := ForEPSG(code)
		require.NotNil(t, p, "ForEPSG(%d)", code)
	}
	assert.Equal(t, 3857, ForEPSG(3857).EPSG())
	assert.Equal(t, 32633, ForEPSG(32633).EPSG())
	assert.Nil(t, ForEPSG(2056))
	assert.Panics(t, func() { MustForEPSG(2056) })
}

func TestUTMKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		epsg     int
		lon, lat float64
		e, n     float64
	}{
		{"central meridian equator", 32632, 9, 0, 500000, 0},
		{"central meridian 60N", 25833, 15, 60, 500000, 6651411.190},
		{"Oslo", 25832, 10.7461, 59.9127, 597642.379, 6642976.371},
		{"Tromso", 25834, 18.95, 69.65, 420450.982, 7728177.280},
		{"Buenos Aires", 32721, -58.38, -34.6, 373458.607, 6170448.511},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, n := MustForEPSG(tt.epsg).FromWGS84(tt.lon, tt.lat)
			assert.InDelta(t, tt.e, e, 0.01)
			assert.InDelta(t, tt.n, n, 0.01)
		})
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	points := [][2]float64{
		{10.7461, 59.9127}, // Oslo
		{5.3221, 60.3913},  // Bergen
		{18.9553, 69.6492}, // Tromso
		{15.6356, 78.2232}, // Longyearbyen
		{29.7, 70.1},       // Vadso
	}
	for _, code := range []int{4326, 3857} {
		proj := MustForEPSG(code)
		for _, pt := range points {
			x, y := proj.FromWGS84(pt[0], pt[1])
			lon, lat := proj.ToWGS84(x, y)
			assert.InDelta(t, pt[0], lon, 1e-7, "EPSG:%d lon", code)
			assert.InDelta(t, pt[1], lat, 1e-7, "EPSG:%d lat", code)
		}
	}

	// UTM is only exact near its central meridian, so each point goes
	// through the zone it belongs to.
	for _, pt := range points {
		code := 25800 + int(math.Floor((pt[0]+180)/6)) + 1
		if code < 25832 {
			code = 25832
		}
		proj := MustForEPSG(code)
		x, y := proj.FromWGS84(pt[0], pt[1])
		lon, lat := proj.ToWGS84(x, y)
		assert.InDelta(t, pt[0], lon, 1e-7, "EPSG:%d lon", code)
		assert.InDelta(t, pt[1], lat, 1e-7, "EPSG:%d lat", code)
	}
}

func TestUTMCached(t *testing.T) {
	assert.Same(t, MustForEPSG(25833), MustForEPSG(25833))
	assert.NotSame(t, MustForEPSG(25833), MustForEPSG(32633))

	_, err := NewUTM(61, false, GRS80, 25861)
	assert.Error(t, err)
}

func TestUTMNonFinite(t *testing.T) {
	p := MustForEPSG(25833)
	for _, v := range [][2]float64{{math.NaN(), 60}, {15, math.Inf(1)}} {
		x, y := p.FromWGS84(v[0], v[1])
		assert.True(t, math.IsNaN(x) && math.IsNaN(y), "FromWGS84(%v)", v)
		lon, lat := p.ToWGS84(v[0], v[1])
		assert.True(t, math.IsNaN(lon) && math.IsNaN(lat), "ToWGS84(%v)", v)
	}
}

func TestWebMercatorKnownValues(t *testing.T) {
	wm := WebMercator{}

	x, y := wm.FromWGS84(10.7461, 59.9127)
	assert.InDelta(t, 1196250.380, x, 0.01)
	assert.InDelta(t, 8380327.101, y, 0.01)

	x, _ = wm.FromWGS84(180, 0)
	assert.InDelta(t, MercatorExtent, x, 1)

	_, y = wm.FromWGS84(0, 90)
	assert.False(t, math.IsInf(y, 0))
	assert.InDelta(t, MercatorExtent, y, 1)
}

func TestPointFeature(t *testing.T) {
	f := PointFeature(10.5, 59.5, map[string]interface{}{"name": "x"})
	assert.Equal(t, "x", f.Properties["name"])

	p := ToWGS84Point(500000, 0, 32632)
	assert.InDelta(t, 9, p.Lon(), 1e-9)
	assert.InDelta(t, 0, p.Lat(), 1e-9)
}
