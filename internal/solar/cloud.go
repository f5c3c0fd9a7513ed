package solar

// ApplyCloudCover scales clear-sky GHI by observed cloud fraction:
//
//	adjusted = clearSkyGhi × (1 − cloudPct/100)
//
// This is a deliberately simple linear attenuation, not a radiative
// cloud-optical-depth model. 100% cover forces 0 regardless of the
// clear-sky value; 0% passes the clear-sky value through unchanged.
// Inputs are assumed already domain-validated (cloudPct in [0, 100]).
func ApplyCloudCover(clearSkyGhi, cloudPct float64) float64 {
	return clearSkyGhi * (1 - cloudPct/100.0)
}
