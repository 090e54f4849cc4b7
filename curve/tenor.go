package curve

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultTenorYears maps the standard benchmark tenor labels to year
// lengths (1M == one month, 30Y == thirty years).
var DefaultTenorYears = map[string]float64{
	"1M":  1.0 / 12.0,
	"3M":  0.25,
	"6M":  0.5,
	"1Y":  1,
	"2Y":  2,
	"3Y":  3,
	"5Y":  5,
	"10Y": 10,
	"20Y": 20,
	"30Y": 30,
}

// TenorYears resolves a tenor label to a year fraction. Overrides take
// precedence over the default vocabulary; labels absent from both are
// parsed by suffix.
func TenorYears(label string, overrides map[string]float64) (float64, error) {
	if y, ok := overrides[label]; ok {
		return y, nil
	}
	if y, ok := DefaultTenorYears[label]; ok {
		return y, nil
	}
	return parseTenor(label)
}

// parseTenor converts tenor strings like "2W", "18M", "10Y" to year fractions.
func parseTenor(tenor string) (float64, error) {
	t := strings.TrimSpace(strings.ToUpper(tenor))
	if len(t) > 1 {
		if n, err := strconv.Atoi(t[:len(t)-1]); err == nil {
			switch t[len(t)-1] {
			case 'W':
				return float64(n) * 7.0 / 365.0, nil
			case 'M':
				return float64(n) / 12.0, nil
			case 'Y':
				return float64(n), nil
			case 'D':
				return float64(n) / 365.0, nil
			}
		}
	}
	// plain numeric labels are read as years
	if v, err := strconv.ParseFloat(t, 64); err == nil {
		return v, nil
	}
	return 0, fmt.Errorf("TenorYears: unrecognized tenor %q", tenor)
}
