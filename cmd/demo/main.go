package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/model"
	"github.com/ZenithX9271/SolarPowerEvaluator/internal/simulate"
)

// Demo:
// - Build a synthetic hourly weather day (no network)
// - Run the full irradiance-to-energy pipeline over it
// - Print the hourly ledger and daily energy to show how the stages fit
func main() {
	latFlag := flag.Float64("lat", 28.61, "Latitude")
	lonFlag := flag.Float64("lon", 77.21, "Longitude")
	dateStr := flag.String("date", "", "Date YYYY-MM-DD (default today)")
	outCSV := flag.String("out", "", "Optional path to write the ledger CSV")
	flag.Parse()

	loc, err := model.NewLocation(*latFlag, *lonFlag)
	if err != nil {
		panic(err)
	}

	date := model.DateOf(time.Now())
	if *dateStr != "" {
		date, err = model.ParseDate(*dateStr)
		if err != nil {
			panic(err)
		}
	}

	panel, err := model.NewPanel(model.PanelConfiguration{
		Name:          "demo-320w",
		AreaM2:        1.6,
		TiltDeg:       28,
		AzimuthDeg:    180,
		EfficiencyPct: 20,
	})
	if err != nil {
		panic(err)
	}

	weather := syntheticDay(loc, date)

	day, err := simulate.Day(loc, weather, panel)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Synthetic day at %s on %s (%s, %.0f W rated)\n\n", loc, date, panel.Name, panel.RatedDCWatts())
	fmt.Println("hour  zenith   ghi    dni    dhi   cloud   ac_w")
	for i, t := range day.Times {
		fmt.Printf("%02d:00 %6.1f %6.0f %6.0f %6.0f %5.0f%% %6.0f\n",
			t.Hour(),
			day.Positions[i].ZenithDeg,
			day.Irradiance[i].GHI,
			day.Irradiance[i].DNI,
			day.Irradiance[i].DHI,
			day.Weather[i].CloudPct,
			day.Power[i].ACWatts,
		)
	}
	fmt.Printf("\nDaily energy: %.2f kWh\n", day.EnergyKWh)

	if *outCSV != "" {
		if err := os.MkdirAll(filepath.Dir(*outCSV), 0o755); err != nil {
			panic(err)
		}
		if err := simulate.WriteLedgerCSV(*outCSV, []*simulate.DayResult{day}); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote ledger to %s\n", *outCSV)
	}
}

// syntheticDay fabricates a plausible hourly weather series: mild morning
// cloud burning off by noon, temperature peaking mid-afternoon.
func syntheticDay(loc model.Location, date model.Date) *model.WeatherDay {
	zone := time.FixedZone("demo", int(math.Round(loc.Lon/15.0))*3600)
	obs := make([]model.WeatherObservation, 24)
	for h := 0; h < 24; h++ {
		cloud := 60.0 * math.Exp(-float64(h-7)*float64(h-7)/18.0)
		temp := 22.0 + 8.0*math.Sin(math.Pi*float64(h-6)/14.0)
		if temp < 18 {
			temp = 18
		}
		obs[h] = model.WeatherObservation{
			Time:     time.Date(date.Year, date.Month, date.Day, h, 0, 0, 0, zone),
			TempC:    temp,
			WindMS:   2.0 + math.Abs(math.Sin(float64(h)/4.0)),
			CloudPct: cloud,
		}
	}
	return &model.WeatherDay{Date: date, Observations: obs}
}
