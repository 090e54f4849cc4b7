package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meenmo/fwdcurve/curve"
	"github.com/meenmo/fwdcurve/forward"
)

type rateInput struct {
	TaskID     string             `json:"task_id,omitempty"`
	Yields     map[string]float64 `json:"yields"`
	TenorYears map[string]float64 `json:"tenor_years,omitempty"`
	StartYears float64            `json:"start_years"`
	EndYears   float64            `json:"end_years"`
}

type rateOutput struct {
	TaskID      string  `json:"task_id,omitempty"`
	StartYears  float64 `json:"start_years"`
	EndYears    float64 `json:"end_years"`
	StartRate   float64 `json:"start_rate"`
	EndRate     float64 `json:"end_rate"`
	ForwardRate float64 `json:"forward_rate"`
	Error       string  `json:"error,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: fwdrate -input <path>")
		fmt.Fprintln(os.Stderr, "Compute the implied forward rate between two horizons on a spot yield curve.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: fwdrate -input <path>")
			os.Exit(2)
		}
	}

	raw, err := readInput(path)
	if err != nil {
		exitError(fmt.Sprintf("read input: %v", err))
	}

	inputs, isArray, err := parseInputs(raw)
	if err != nil {
		exitError(fmt.Sprintf("parse JSON: %v", err))
	}

	hadError := false
	outputs := make([]rateOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(in)
		if err != nil {
			hadError = true
			outputs = append(outputs, rateOutput{TaskID: in.TaskID, Error: err.Error()})
			continue
		}
		outputs = append(outputs, *out)
	}

	if isArray {
		b, _ := json.Marshal(outputs)
		fmt.Println(string(b))
	} else {
		b, _ := json.Marshal(outputs[0])
		fmt.Println(string(b))
	}

	if hadError {
		os.Exit(1)
	}
}

func process(in rateInput) (*rateOutput, error) {
	c, err := curve.BuildYieldCurveFromTable(in.Yields, in.TenorYears)
	if err != nil {
		return nil, err
	}

	r1 := c.RateAt(in.StartYears)
	r2 := c.RateAt(in.EndYears)
	fwd, err := forward.Rate(r1, r2, in.StartYears, in.EndYears)
	if err != nil {
		return nil, err
	}

	return &rateOutput{
		TaskID:      in.TaskID,
		StartYears:  in.StartYears,
		EndYears:    in.EndYears,
		StartRate:   r1,
		EndRate:     r2,
		ForwardRate: fwd,
	}, nil
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]rateInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []rateInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input rateInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []rateInput{input}, false, nil
}

func exitError(msg string) {
	b, _ := json.Marshal(rateOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
