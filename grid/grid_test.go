package grid_test

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/fwdcurve/curve"
	"github.com/meenmo/fwdcurve/forward"
	"github.com/meenmo/fwdcurve/grid"
	"github.com/meenmo/fwdcurve/utils"
)

const tol = 1e-9

type gridFixture struct {
	CurveDate          string             `json:"curve_date"`
	NumMonths          int                `json:"num_months"`
	Yields             map[string]float64 `json:"yields"`
	ExpectedRows       int                `json:"expected_rows"`
	ExpectedRow0OneYLo float64            `json:"expected_row0_1y_low"`
	ExpectedRow0OneYHi float64            `json:"expected_row0_1y_high"`
}

var inputParamsPath = flag.String("input-params", "", "grid fixture JSON path")

func TestMain(m *testing.M) {
	flag.Parse()
	os.Exit(m.Run())
}

func fixturePaths(value string) ([]string, error) {
	if value != "" {
		return []string{value}, nil
	}

	entries, err := os.ReadDir("testdata")
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		name := ent.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".json") {
			continue
		}
		if !strings.HasPrefix(name, "input_forward_grid_") {
			continue
		}
		paths = append(paths, filepath.Join("testdata", name))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no fixtures found under testdata (expected input_forward_grid_*.json)")
	}
	sort.Strings(paths)
	return paths, nil
}

func loadFixture(t *testing.T, path string) gridFixture {
	t.Helper()

	raw, err := os.ReadFile(path)
	require.NoError(t, err, "read fixture")
	var fixture gridFixture
	require.NoError(t, json.Unmarshal(raw, &fixture), "parse fixture")
	return fixture
}

func TestBuildFromFixture(t *testing.T) {
	t.Parallel()

	paths, err := fixturePaths(*inputParamsPath)
	require.NoError(t, err)

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			t.Parallel()

			fixture := loadFixture(t, path)
			start, err := utils.ParseDate(fixture.CurveDate)
			require.NoError(t, err, "curve_date parse")

			c, err := curve.BuildYieldCurveFromTable(fixture.Yields, nil)
			require.NoError(t, err)

			table, err := grid.NewBuilder(nil).Build(grid.Input{
				Curve:     c,
				NumMonths: fixture.NumMonths,
				StartDate: start,
			})
			require.NoError(t, err)

			require.Equal(t, fixture.ExpectedRows, table.NumRows())
			require.Equal(t, len(fixture.Yields), table.NumCols())
			assert.Equal(t, c.Labels(), table.Tenors())

			dates := table.Dates()
			require.Len(t, dates, fixture.ExpectedRows)
			assert.True(t, dates[0].Equal(start))
			for i := 1; i < len(dates); i++ {
				assert.Equal(t, 720*time.Hour, dates[i].Sub(dates[i-1]), "row %d", i)
			}

			for i := 0; i < table.NumRows(); i++ {
				for j := 0; j < table.NumCols(); j++ {
					cell := table.At(i, j)
					require.False(t, math.IsNaN(cell) || math.IsInf(cell, 0), "cell %d/%d", i, j)
				}
			}

			// At i=0 the start leg drops out of the compounding ratio, so
			// the first row's 1Y forward is the 1Y spot itself.
			col1Y := -1
			for j, label := range table.Tenors() {
				if label == "1Y" {
					col1Y = j
				}
			}
			if col1Y >= 0 {
				got := table.At(0, col1Y)
				assert.InDelta(t, fixture.Yields["1Y"], got, tol)
				assert.GreaterOrEqual(t, got, fixture.ExpectedRow0OneYLo)
				assert.LessOrEqual(t, got, fixture.ExpectedRow0OneYHi)
			}
		})
	}
}

func TestBuildFlatCurve(t *testing.T) {
	t.Parallel()

	flat := map[string]float64{"1Y": 0.04, "2Y": 0.04, "3Y": 0.04, "5Y": 0.04}
	c, err := curve.BuildYieldCurveFromTable(flat, nil)
	require.NoError(t, err)

	start, _ := utils.ParseDate("2025-01-02")
	table, err := grid.NewBuilder(nil).Build(grid.Input{Curve: c, NumMonths: 1, StartDate: start})
	require.NoError(t, err)

	require.Equal(t, 1, table.NumRows())
	require.Equal(t, 4, table.NumCols())
	for j := 0; j < table.NumCols(); j++ {
		assert.InDelta(t, 0.04, table.At(0, j), tol, "tenor %s", table.Tenors()[j])
	}
}

func TestBuildFlatCurveLongHorizon(t *testing.T) {
	t.Parallel()

	// A flat curve stays flat through both interpolation passes, however
	// far the horizon extrapolates.
	flat := map[string]float64{"1Y": 0.035, "2Y": 0.035, "3Y": 0.035, "5Y": 0.035, "10Y": 0.035}
	c, err := curve.BuildYieldCurveFromTable(flat, nil)
	require.NoError(t, err)

	start, _ := utils.ParseDate("2024-06-15")
	table, err := grid.NewBuilder(nil).Build(grid.Input{Curve: c, NumMonths: 120, StartDate: start})
	require.NoError(t, err)

	require.Equal(t, 120, table.NumRows())
	for i := 0; i < table.NumRows(); i++ {
		for j := 0; j < table.NumCols(); j++ {
			assert.InDelta(t, 0.035, table.At(i, j), tol, "cell %d/%d", i, j)
		}
	}
}

func TestBuildDefaults(t *testing.T) {
	t.Parallel()

	fixture := loadFixture(t, filepath.Join("testdata", "input_forward_grid_benchmark.json"))
	c, err := curve.BuildYieldCurveFromTable(fixture.Yields, nil)
	require.NoError(t, err)

	before := utils.DateOnly(time.Now())
	table, err := grid.NewBuilder(nil).Build(grid.Input{Curve: c})
	require.NoError(t, err)
	after := utils.DateOnly(time.Now())

	assert.Equal(t, grid.DefaultNumMonths, table.NumRows())
	first := table.Dates()[0]
	assert.True(t, first.Equal(before) || first.Equal(after), "start %v not today", first)
}

func TestBuildInputErrors(t *testing.T) {
	t.Parallel()

	_, err := grid.NewBuilder(nil).Build(grid.Input{})
	require.ErrorIs(t, err, grid.ErrNilCurve)

	fixture := loadFixture(t, filepath.Join("testdata", "input_forward_grid_benchmark.json"))
	c, err := curve.BuildYieldCurveFromTable(fixture.Yields, nil)
	require.NoError(t, err)

	_, err = grid.NewBuilder(nil).Build(grid.Input{Curve: c, NumMonths: -5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "num months")
}

func TestBuildShortCurveCannotDensify(t *testing.T) {
	t.Parallel()

	// Four observed points, but the longest tenor spans only three whole
	// months, leaving too few dense samples for a second cubic.
	points := []curve.YieldPoint{
		{Label: "2W", Years: 14.0 / 365, Rate: 0.053},
		{Label: "1M", Years: 1.0 / 12, Rate: 0.0531},
		{Label: "2M", Years: 2.0 / 12, Rate: 0.0528},
		{Label: "3M", Years: 0.25, Rate: 0.0521},
	}
	c, err := curve.BuildYieldCurve(points)
	require.NoError(t, err)

	_, err = grid.NewBuilder(nil).Build(grid.Input{Curve: c, NumMonths: 12})
	var ipe *curve.InsufficientPointsError
	require.ErrorAs(t, err, &ipe)
	assert.Equal(t, 3, ipe.Count)
}

func TestBuildZeroYearTenorDegenerates(t *testing.T) {
	t.Parallel()

	// A tenor mapped to zero years collapses the first row's interval.
	points := []curve.YieldPoint{
		{Label: "0D", Years: 0, Rate: 0.05},
		{Label: "1Y", Years: 1, Rate: 0.045},
		{Label: "2Y", Years: 2, Rate: 0.04},
		{Label: "3Y", Years: 3, Rate: 0.038},
	}
	c, err := curve.BuildYieldCurve(points)
	require.NoError(t, err)

	table, err := grid.NewBuilder(nil).Build(grid.Input{Curve: c, NumMonths: 6})
	var die *forward.DegenerateIntervalError
	require.ErrorAs(t, err, &die)
	assert.Nil(t, table)
	assert.Equal(t, 0.0, die.T)
}

func TestBuildIsolation(t *testing.T) {
	t.Parallel()

	fixture := loadFixture(t, filepath.Join("testdata", "input_forward_grid_benchmark.json"))
	c, err := curve.BuildYieldCurveFromTable(fixture.Yields, nil)
	require.NoError(t, err)
	start, _ := utils.ParseDate(fixture.CurveDate)

	in := grid.Input{Curve: c, NumMonths: 12, StartDate: start}
	a, err := grid.NewBuilder(nil).Build(in)
	require.NoError(t, err)
	b, err := grid.NewBuilder(nil).Build(in)
	require.NoError(t, err)

	for i := 0; i < a.NumRows(); i++ {
		assert.Equal(t, a.Row(i), b.Row(i), "row %d", i)
	}

	// Each build allocates fresh storage.
	a.Row(0)[0] = 999
	assert.NotEqual(t, 999.0, b.At(0, 0))
}

func TestDenseCurveSamples(t *testing.T) {
	t.Parallel()

	fixture := loadFixture(t, filepath.Join("testdata", "input_forward_grid_benchmark.json"))
	c, err := curve.BuildYieldCurveFromTable(fixture.Yields, nil)
	require.NoError(t, err)

	dense, err := grid.BuildDenseCurve(c)
	require.NoError(t, err)

	assert.Equal(t, 360, dense.NumMonths())
	assert.Equal(t, 30.0, dense.MaxYears())

	// Every observed tenor lands on a whole month, so the dense samples
	// must carry the observed rates through unchanged.
	for _, p := range c.Points() {
		month := int(math.Round(p.Years * 12))
		assert.InDelta(t, p.Rate, dense.Rate(month), tol, "tenor %s", p.Label)
		assert.InDelta(t, p.Rate, dense.RateAt(p.Years), tol, "tenor %s re-read", p.Label)
	}

	_, err = grid.BuildDenseCurve(nil)
	require.ErrorIs(t, err, grid.ErrNilCurve)
}
