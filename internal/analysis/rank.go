package analysis

import (
	"sort"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/model"
)

type RankedPotential struct {
	SolarPotential
}

// RankByPotential computes clear-sky potentials per site and sorts
// descending by total yield.
func RankByPotential(sites []model.Location, dates []model.Date) []RankedPotential {
	out := make([]RankedPotential, 0, len(sites))
	for _, site := range sites {
		p := ComputePotential(site, dates)
		out = append(out, RankedPotential{SolarPotential: p})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TotalKWh > out[j].TotalKWh
	})
	return out
}
