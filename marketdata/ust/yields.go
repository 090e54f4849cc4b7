package ust

// BenchmarkYields is a snapshot of the constant-maturity Treasury curve
// observed in November 2023. Rates are decimals (0.05333 == 5.333%).
// Labels follow the standard benchmark tenor vocabulary.
var BenchmarkYields = map[string]float64{
	"1M":  0.05333,
	"3M":  0.051728,
	"6M":  0.049086,
	"1Y":  0.04505,
	"2Y":  0.04004,
	"3Y":  0.038071,
	"5Y":  0.037039,
	"10Y": 0.038246,
	"20Y": 0.041854,
	"30Y": 0.040717,
}
