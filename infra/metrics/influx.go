package metrics

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/lmercadier/timetable/core/metrics"
	"github.com/lmercadier/timetable/infra/logger"
)

// InfluxSink writes placement events to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	client := influxdb2.NewClientWithOptions(url, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a
// NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) metrics.Sink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return metrics.NopSink{}
	}
	return sink
}

// RecordPlacements writes one point per placement.
func (s *InfluxSink) RecordPlacements(results []metrics.PlacementResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, r := range results {
		p := write.NewPointWithMeasurement("placement").
			AddTag("run_id", r.RunID).
			AddTag("task", r.TaskName).
			AddTag("category", r.Category).
			AddTag("difficulty", r.Difficulty).
			AddTag("fixed", strconv.FormatBool(r.Fixed)).
			AddField("minutes", r.Minutes).
			AddField("score", round3(r.Score)).
			AddField("energy_after", round3(r.EnergyAfter)).
			SetTime(r.Start)
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// RecordRunSummary writes a single run-level point.
func (s *InfluxSink) RecordRunSummary(sum metrics.RunSummary) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("run_summary").
		AddTag("run_id", sum.RunID).
		AddTag("date", sum.Date).
		AddField("scheduled", sum.Scheduled).
		AddField("unscheduled", sum.Unscheduled).
		AddField("rest_breaks", sum.RestBreaks).
		AddField("final_energy", round3(sum.FinalEnergy)).
		AddField("mean_utilization", round3(sum.MeanUtilization)).
		SetTime(time.Now())
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() { s.client.Close() }

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
