// Package processor parses batches of input lines concurrently.
package processor

import (
	"bufio"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/norcoord"
	"github.com/woozymasta/norcoord/internal/geo"
)

// DefaultConcurrency is used when Settings.Concurrency is not positive.
const DefaultConcurrency = 4

// Job is one non-blank input line.
type Job struct {
	Line  int // 1-based line number in the source
	Input string
}

// Result is the outcome of a Job. UTM is only set when OK.
type Result struct {
	Job
	Coordinate norcoord.ParsedCoordinate
	UTM        norcoord.FormattedUTM
	OK         bool
}

// Settings control parsing and label rendering for a batch.
type Settings struct {
	Fallback    geo.ProjectionID
	Format      norcoord.FormatOptions
	Concurrency int
}

// ReadLines splits r into jobs, skipping blank lines.
func ReadLines(r io.Reader) ([]Job, error) {
	var jobs []Job

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		jobs = append(jobs, Job{Line: line, Input: text})
	}

	return jobs, scanner.Err()
}

// Process parses all jobs with a pool of workers. Results keep the order of
// the input lines.
func Process(jobs []Job, s Settings) []Result {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	queue := make(chan Job, len(jobs))
	results := make(chan Result, len(jobs))

	go func() {
		for _, j := range jobs {
			queue <- j
		}
		close(queue)
	}()

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				results <- process(j, s)
			}
		}()
	}
	wg.Wait()
	close(results)

	out := make([]Result, 0, len(jobs))
	for res := range results {
		out = append(out, res)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].Line < out[k].Line })

	return out
}

func process(j Job, s Settings) Result {
	c, ok := norcoord.ParseCoordinateInput(j.Input, s.Fallback)
	if !ok {
		log.Trace().Int("line", j.Line).Str("input", j.Input).Msg("Line is not a coordinate")
		return Result{Job: j}
	}

	return Result{
		Job:        j,
		Coordinate: c,
		UTM:        norcoord.FormatToNorwegianUTM([2]float64{c.Lon, c.Lat}, c.Projection, s.Format),
		OK:         true,
	}
}

// FeatureCollection converts recognized results into WGS84 point features
// and returns the results that were not recognized.
func FeatureCollection(results []Result) (*geojson.FeatureCollection, []Result) {
	fc := geojson.NewFeatureCollection()
	var skipped []Result

	for _, res := range results {
		if !res.OK {
			skipped = append(skipped, res)
			continue
		}

		c := res.Coordinate
		lon, lat := c.WGS84()
		fc.Append(geo.PointFeature(lon, lat, map[string]interface{}{
			"input":        res.Input,
			"line":         res.Line,
			"input_format": c.InputFormat.String(),
			"projection":   c.Projection.String(),
			"formatted":    c.FormattedString,
			"utm":          res.UTM.Label,
			"utm_epsg":     res.UTM.EPSG,
		}))
	}

	return fc, skipped
}
