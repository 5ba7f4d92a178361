package services

import (
	"math"
	"strconv"
	"strings"
)

// Trunc drops every digit after the given number of decimal places, toward zero.
// It works on the shortest decimal form of x, so Trunc(0.29, 2) stays 0.29 even though
// 0.29*100 is 28.999999999999996 in binary floating point.
func Trunc(x float64, decimals int) float64 {
	if decimals < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	s := strconv.FormatFloat(x, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 || len(s)-dot-1 <= decimals {
		return x
	}

	if decimals == 0 {
		s = s[:dot]
	} else {
		s = s[:dot+1+decimals]
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// FormatFloat output always parses back
		return x
	}
	return v
}

// TruncAll applies Trunc element-wise. Submit does not use it: a tracker slot
// holds a single number, so exercises 4 to 6 reject sequences instead of
// truncating each element.
func TruncAll(xs []float64, decimals int) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = Trunc(x, decimals)
	}
	return out
}

// Round rounds half to even on the scaled value.
func Round(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.RoundToEven(x*p) / p
}

// PopulationStdDev divides by N. An empty input yields NaN.
func PopulationStdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}

	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))

	var sq float64
	for _, x := range xs {
		d := x - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(xs)))
}
