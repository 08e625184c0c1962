package service

import "math"

// RoundingPrecision is the multiplier used to round monetary values to cents.
const RoundingPrecision = 100.0

// round rounds a float64 value to two decimal places using RoundingPrecision.
// Used throughout the service layer so amounts shown and compared are in cents.
//
// Example:
//
//	round(123.456789)  // returns 123.46
//	round(0.005)       // returns 0.01
//	round(1.994)       // returns 1.99
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}

// cents converts an amount to integer cents for exact comparison.
func cents(value float64) int64 {
	return int64(math.Round(value * RoundingPrecision))
}
