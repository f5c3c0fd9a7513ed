package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/data"
)

// Resolve place names to coordinates and optionally append them to a sites
// JSON file for use with `cli rank` and the rank API.
func main() {
	sitesPath := flag.String("sites", "", "Optional sites JSON file to append to")
	flag.Parse()

	places := flag.Args()
	if len(places) == 0 {
		fmt.Println("usage: geocode [--sites examples/sites.json] \"Delhi, India\" [\"Reno, NV\" ...]")
		os.Exit(2)
	}

	client := data.NewNominatimClient("", 24*time.Hour, nil)
	ctx := context.Background()

	var list *data.SiteList
	if *sitesPath != "" {
		loaded, err := data.LoadSites(*sitesPath)
		if err == nil {
			list = loaded
		} else {
			list = &data.SiteList{}
		}
	}

	for _, place := range places {
		loc, err := client.Geocode(ctx, place)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", place, err)
			continue
		}
		fmt.Printf("%-30s lat=%.4f lon=%.4f\n", place, loc.Lat, loc.Lon)
		if list != nil {
			list.Sites = append(list.Sites, loc)
		}
	}

	if list != nil {
		list.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		if err := data.SaveSites(list, *sitesPath); err != nil {
			fmt.Fprintf(os.Stderr, "save sites: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved %d site(s) to %s\n", len(list.Sites), *sitesPath)
	}
}
