package processor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/norcoord"
	"github.com/woozymasta/norcoord/internal/geo"
)

const sampleInput = `59.91273, 10.74609

425917 7730314@25833
Oslo sentrum
59°54'45.8"N 10°44'45.9"E
597642 6642976
`

func TestReadLines(t *testing.T) {
	jobs, err := ReadLines(strings.NewReader(sampleInput))
	require.NoError(t, err)
	require.Len(t, jobs, 5)
	assert.Equal(t, Job{Line: 1, Input: "59.91273, 10.74609"}, jobs[0])
	assert.Equal(t, Job{Line: 3, Input: "425917 7730314@25833"}, jobs[1])
	assert.Equal(t, 6, jobs[4].Line)
}

func TestProcess(t *testing.T) {
	jobs, err := ReadLines(strings.NewReader(sampleInput))
	require.NoError(t, err)

	results := Process(jobs, Settings{Fallback: geo.EPSG25832, Concurrency: 3})
	require.Len(t, results, 5)

	for i, res := range results {
		assert.Equal(t, jobs[i], res.Job)
	}
	assert.True(t, results[0].OK)
	assert.Equal(t, norcoord.Decimal, results[0].Coordinate.InputFormat)
	assert.Equal(t, norcoord.UTM, results[1].Coordinate.InputFormat)
	assert.False(t, results[2].OK)
	assert.Equal(t, norcoord.DMSFormat, results[3].Coordinate.InputFormat)

	last := results[4]
	require.True(t, last.OK)
	assert.Equal(t, geo.EPSG25832, last.Coordinate.Projection)
	assert.Equal(t, "Sone 32V Ø 597642 N 6642976", last.UTM.Label)
}

func TestProcessKeepsOrder(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&b, "%d.5, 10.5\n", 50+i%30)
	}
	jobs, err := ReadLines(strings.NewReader(b.String()))
	require.NoError(t, err)

	results := Process(jobs, Settings{Concurrency: 8})
	require.Len(t, results, 200)
	for i, res := range results {
		assert.Equal(t, i+1, res.Line)
		assert.InDelta(t, float64(50+i%30)+0.5, res.Coordinate.Lat, 1e-9)
	}

	assert.Empty(t, Process(nil, Settings{}))
}

func TestFeatureCollection(t *testing.T) {
	jobs, err := ReadLines(strings.NewReader(sampleInput))
	require.NoError(t, err)

	fc, skipped := FeatureCollection(Process(jobs, Settings{}))
	require.Len(t, fc.Features, 4)
	require.Len(t, skipped, 1)
	assert.Equal(t, "Oslo sentrum", skipped[0].Input)
	assert.Equal(t, 4, skipped[0].Line)

	p, ok := fc.Features[0].Geometry.(orb.Point)
	require.True(t, ok)
	assert.Equal(t, orb.Point{10.74609, 59.91273}, p)
	assert.Equal(t, "decimal", fc.Features[0].Properties["input_format"])

	lofoten := fc.Features[1]
	assert.Equal(t, "EPSG:25833", lofoten.Properties["projection"])
	assert.Equal(t, "Sone 33 Ø 425917 N 7730314", lofoten.Properties["formatted"])
	assert.Equal(t, 3, lofoten.Properties["line"])
	p = lofoten.Geometry.(orb.Point)
	assert.InDelta(t, 13.089038, p.Lon(), 1e-5)
	assert.InDelta(t, 69.670738, p.Lat(), 1e-5)
}
