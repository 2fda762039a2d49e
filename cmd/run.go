package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lmercadier/timetable/config"
	coremetrics "github.com/lmercadier/timetable/core/metrics"
	"github.com/lmercadier/timetable/core/planner"
	infraforecast "github.com/lmercadier/timetable/infra/forecast"
	"github.com/lmercadier/timetable/infra/logger"
	inframetrics "github.com/lmercadier/timetable/infra/metrics"
	"github.com/lmercadier/timetable/infra/notify"
	infratravel "github.com/lmercadier/timetable/infra/travel"
	"github.com/lmercadier/timetable/internal/eventbus"
	"github.com/lmercadier/timetable/pkg/export"
	"github.com/lmercadier/timetable/report"
)

// runPipeline wires the capabilities, sinks and notifier around the
// optimizer, runs it for the date and renders the result.
func runPipeline(ctx context.Context, cfg *config.Config, store *planner.Store, date string, out io.Writer, jsonPath, csvPath string) error {
	log := logger.New("planner")
	if zl, ok := log.(*logger.ZerologLogger); ok {
		zl.SetLevel(cfg.Logging.Level)
	}

	adjust := planner.DurationAdjuster{
		Travel:  infratravel.NewRandomEstimator(0),
		Weather: infraforecast.NewStaticProvider(cfg.Weather.Conditions),
	}
	opt := planner.NewOptimizer(store, adjust, cfg.Planner, log)

	bus := eventbus.New()
	opt.SetEventBus(bus)

	var announcer *notify.Announcer
	if cfg.Notify.Enabled {
		a, err := notify.New(cfg.Notify)
		if err != nil {
			log.Errorf("notify: %v", err)
		} else {
			announcer = a
			defer announcer.Close()
		}
	}

	// The observer is the bus consumer: it logs allocation events as
	// they happen and hands the finalized result to the announcer.
	observer := planner.EventObserver{
		Log: log,
		OnRunCompleted: func(res *planner.Result) {
			if announcer == nil {
				return
			}
			if err := announcer.Announce(res); err != nil {
				log.Errorf("announce schedule: %v", err)
			}
		},
	}
	sub := bus.Subscribe()
	observed := make(chan struct{})
	go func() {
		defer close(observed)
		observer.Run(sub)
	}()
	drain := func() {
		bus.Close()
		<-observed
	}

	sink, err := buildSink(ctx, cfg.Metrics, log)
	if err != nil {
		drain()
		return err
	}
	opt.SetMetricsSink(sink)

	res, err := opt.Optimize(date)
	if err != nil {
		drain()
		return err
	}
	drain()
	report.Render(out, res)

	if jsonPath != "" {
		if err := writeExport(jsonPath, res, export.WriteJSON); err != nil {
			return err
		}
	}
	if csvPath != "" {
		if err := writeExport(csvPath, res, export.WriteCSV); err != nil {
			return err
		}
	}

	// With a metrics endpoint configured, keep serving scrapes until
	// interrupted.
	if cfg.Metrics.PromAddr != "" {
		fmt.Fprintf(out, "\nServing metrics on %s, Ctrl-C to exit.\n", cfg.Metrics.PromAddr)
		<-ctx.Done()
	}
	return nil
}

func buildSink(ctx context.Context, cfg config.MetricsConfig, log logger.Logger) (coremetrics.Sink, error) {
	var sinks []coremetrics.Sink
	if cfg.PromAddr != "" {
		prom, err := inframetrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, prom)
		go func() {
			if err := inframetrics.StartPromServer(ctx, cfg.PromAddr); err != nil {
				log.Errorf("prom server: %v", err)
			}
		}()
	}
	if cfg.InfluxURL != "" {
		sinks = append(sinks, inframetrics.NewInfluxSinkWithFallback(
			cfg.InfluxURL, cfg.InfluxToken, cfg.InfluxOrg, cfg.InfluxBucket))
	}
	switch len(sinks) {
	case 0:
		return coremetrics.NopSink{}, nil
	case 1:
		return sinks[0], nil
	default:
		return inframetrics.NewMultiSink(sinks...), nil
	}
}

func writeExport(path string, res *planner.Result, fn func(io.Writer, *planner.Result) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()
	if err := fn(f, res); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
