package simulate

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

// WriteLedgerCSV writes the per-hour ledger for one or more simulated days.
func WriteLedgerCSV(path string, days []*DayResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"time",
		"zenith_deg",
		"azimuth_deg",
		"clearsky_ghi",
		"ghi",
		"dni",
		"dhi",
		"temperature_c",
		"wind_ms",
		"cloud_pct",
		"dc_w",
		"ac_w",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	idx := 0
	for _, d := range days {
		for i := range d.Times {
			row := []string{
				strconv.Itoa(idx),
				fmtTime(d.Times[i]),
				fmtFloat(d.Positions[i].ZenithDeg),
				fmtFloat(d.Positions[i].AzimuthDeg),
				fmtFloat(d.ClearSky[i].GHI),
				fmtFloat(d.Irradiance[i].GHI),
				fmtFloat(d.Irradiance[i].DNI),
				fmtFloat(d.Irradiance[i].DHI),
				fmtFloat(d.Weather[i].TempC),
				fmtFloat(d.Weather[i].WindMS),
				fmtFloat(d.Weather[i].CloudPct),
				fmtFloat(d.Power[i].DCWatts),
				fmtFloat(d.Power[i].ACWatts),
			}
			if err := w.Write(row); err != nil {
				return err
			}
			idx++
		}
	}

	return w.Error()
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 3, 64)
}
