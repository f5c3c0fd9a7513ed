package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/analysis"
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/config"
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/data"
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/model"
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/simulate"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/config.yaml --out results/power.csv")
	fmt.Println("  cli simulate --place \"Delhi, India\" --date 2026-08-26 --days 7")
	fmt.Println("  cli rank --sites examples/sites.json --date 2026-08-26 --days 30")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate fetches hourly weather and writes a per-hour CSV ledger")
	fmt.Println("  - rank scores candidate sites by clear-sky yield (no weather needed)")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	place := fs.String("place", "", "Place name to geocode (overrides config)")
	lat := fs.Float64("lat", 0, "Latitude (used with --lon when --place is empty)")
	lon := fs.Float64("lon", 0, "Longitude")
	dateStr := fs.String("date", "", "Start date YYYY-MM-DD (default today)")
	days := fs.Int("days", 0, "Number of days (default 1)")
	outPath := fs.String("out", "results/power.csv", "Output CSV path")
	verbose := fs.Bool("v", false, "Verbose logging")
	_ = fs.Parse(args)

	log := newLogger(*verbose)

	cfg := &config.Config{}
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	if *place != "" {
		cfg.Site.Place = *place
	}
	if *lat != 0 || *lon != 0 {
		cfg.Site.Place = ""
		cfg.Site.Latitude = *lat
		cfg.Site.Longitude = *lon
	}
	if *dateStr != "" {
		cfg.Range.StartDate = *dateStr
	}
	if *days > 0 {
		cfg.Range.Days = *days
	}
	if cfg.Range.Days == 0 {
		cfg.Range.Days = 1
	}
	if cfg.Panel.AreaM2 == 0 {
		// Sensible default: a single 320 W residential module.
		cfg.Panel = config.PanelConfig{Name: "default-320w", AreaM2: 1.6, TiltDeg: 28, AzimuthDeg: 180, EfficiencyPct: 20}
	}

	panel, err := model.NewPanel(cfg.Panel.ToModelConfig())
	if err != nil {
		fatalf("panel config invalid: %v", err)
	}

	ctx := context.Background()

	var loc model.Location
	if cfg.Site.Place != "" {
		geocoder := data.NewNominatimClient("", 24*time.Hour, log)
		loc, err = geocoder.Geocode(ctx, cfg.Site.Place)
		if err != nil {
			fatalf("geocode: %v", err)
		}
	} else {
		loc, err = model.NewLocation(cfg.Site.Latitude, cfg.Site.Longitude)
		if err != nil {
			fatalf("location invalid: %v", err)
		}
		loc.ElevationM = cfg.Site.ElevationM
	}

	start := model.DateOf(time.Now())
	if cfg.Range.StartDate != "" {
		start, err = model.ParseDate(cfg.Range.StartDate)
		if err != nil {
			fatalf("%v", err)
		}
	}
	dates := model.DateRange(start, cfg.Range.Days)

	weather := data.NewOpenMeteoClient("", time.Hour, log)
	res, err := simulate.Range(ctx, weather, loc, dates, panel)
	if err != nil {
		fatalf("simulate: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fatalf("create output dir: %v", err)
	}
	if err := simulate.WriteLedgerCSV(*outPath, res.Days); err != nil {
		fatalf("write csv: %v", err)
	}

	fmt.Printf("Site: %s  Panel: %s (%.0f W rated)\n", loc, panel.Name, panel.RatedDCWatts())
	for _, day := range res.PerDay {
		fmt.Printf("  %s  %.2f kWh\n", day.Date, day.EnergyKWh)
	}
	for _, f := range res.Failed {
		fmt.Printf("  %s  FAILED: %s\n", f.Date, f.Reason)
	}
	fmt.Printf("Total over %d day(s): %.2f kWh (ledger: %s)\n", len(res.PerDay), res.TotalKWh, *outPath)
	if len(res.Failed) > 0 {
		os.Exit(1)
	}
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	sitesPath := fs.String("sites", "examples/sites.json", "Path to sites JSON file")
	dateStr := fs.String("date", "", "Start date YYYY-MM-DD (default today)")
	days := fs.Int("days", 30, "Number of days")
	_ = fs.Parse(args)

	list, err := data.LoadSites(*sitesPath)
	if err != nil {
		fatalf("load sites: %v", err)
	}

	start := model.DateOf(time.Now())
	if *dateStr != "" {
		start, err = model.ParseDate(*dateStr)
		if err != nil {
			fatalf("%v", err)
		}
	}

	ranked := analysis.RankByPotential(list.Sites, model.DateRange(start, *days))

	fmt.Printf("Clear-sky potential over %d days from %s (reference 320 W panel):\n", *days, start)
	for i, r := range ranked {
		fmt.Printf("%2d. %-30s total=%.1f kWh  mean/day=%.2f  peak GHI=%.0f W/m²\n",
			i+1, r.Site.String(), r.TotalKWh, r.MeanDailyKWh, r.PeakGHI)
	}
}

func newLogger(verbose bool) *zap.SugaredLogger {
	if !verbose {
		return zap.NewNop().Sugar()
	}
	zl, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return zl.Sugar()
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
