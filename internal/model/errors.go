package model

import "fmt"

// LocationNotFoundError means the geocoder could not resolve a place name.
// Fatal: the pipeline halts before any computation.
type LocationNotFoundError struct {
	Place string
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("location not found: %q", e.Place)
}

// WeatherUnavailableError means the weather feed failed for one date. The
// whole pipeline for that date fails rather than substituting zeros, since
// silent zero-substitution would corrupt energy totals.
type WeatherUnavailableError struct {
	Date   Date
	Reason string
}

func (e *WeatherUnavailableError) Error() string {
	return fmt.Sprintf("weather unavailable for %s: %s", e.Date, e.Reason)
}

// AmbiguousTimeError means a timestamp lacks an unambiguous UTC offset.
// Fatal: solar geometry is meaningless without timezone context.
type AmbiguousTimeError struct {
	Value string
}

func (e *AmbiguousTimeError) Error() string {
	return fmt.Sprintf("timestamp %q has no unambiguous UTC offset", e.Value)
}

// NumericDomainError means an input violated its physical domain (negative
// irradiance, zenith outside [0, 180], cloud cover outside [0, 100]).
// This indicates an upstream contract violation, not a recoverable
// condition; inputs are never silently clamped.
type NumericDomainError struct {
	Quantity string
	Value    float64
}

func (e *NumericDomainError) Error() string {
	return fmt.Sprintf("%s = %g is outside its physical domain", e.Quantity, e.Value)
}
