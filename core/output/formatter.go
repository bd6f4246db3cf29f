// Package output provides output formatting for scenario reports.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"quantity-measurement/core/demo"
	"quantity-measurement/core/quantity"
	"quantity-measurement/core/ui"
	qerrors "quantity-measurement/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *demo.Report) error
}

// Options control rendering
type Options struct {
	// Precision is the number of decimal places shown for values
	Precision int32

	// NoColor disables ANSI colors
	NoColor bool

	// Verbose adds the unrounded value of every step to CLI output
	Verbose bool
}

// New returns the formatter for format
func New(format Format, opts Options) (Formatter, error) {
	switch Format(strings.ToLower(string(format))) {
	case FormatCLI:
		return &CLIFormatter{opts: opts}, nil
	case FormatJSON:
		return &JSONFormatter{opts: opts}, nil
	}
	return nil, qerrors.NotSupported("output format " + string(format))
}

// Round formats v with at most precision decimal places.
// Trailing zeros are dropped. Infinities are printed as is.
func Round(v float64, precision int32) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return quantity.FormatValue(v)
	}
	return decimal.NewFromFloat(v).Round(precision).String()
}

// CLIFormatter renders a report as a terminal table
type CLIFormatter struct {
	opts Options
}

// Format implements Formatter
func (f *CLIFormatter) Format() Format { return FormatCLI }

// Render implements Formatter
func (f *CLIFormatter) Render(w io.Writer, report *demo.Report) error {
	out := ui.NewWriter(w, f.opts.NoColor)
	if f.opts.Verbose {
		out.SetVerbosity(ui.Verbose)
	}
	out.Header("Scenario " + report.Scenario)

	table := out.NewTable("STEP", "OPERATION", "INPUT", "RESULT")
	rounded := false
	for _, r := range report.Results {
		table.AddRow(r.Name, string(r.Operation), strings.Join(r.Inputs, ", "), f.result(r))
		if r.Value != nil && Round(*r.Value, f.opts.Precision) != quantity.FormatValue(*r.Value) {
			rounded = true
		}
	}
	table.Render()
	out.Println("")

	for _, r := range report.Results {
		if r.Value != nil {
			out.Debug("%s = %s %s", r.Name, quantity.FormatValue(*r.Value), r.Unit)
		}
	}
	if rounded {
		out.Info("values rounded to %d decimal places", f.opts.Precision)
	}

	if report.Failures > 0 {
		for _, r := range report.Results {
			if r.Failed() {
				out.Error("%s: %v", r.Name, r.Error)
			}
		}
		out.Warning("%d of %d steps failed", report.Failures, len(report.Results))
		return nil
	}
	out.Success("%d steps completed", len(report.Results))
	return nil
}

func (f *CLIFormatter) result(r *demo.Result) string {
	switch {
	case r.Failed():
		return "error: " + string(qerrors.TypeOf(r.Error))
	case r.Equal != nil && *r.Equal:
		return "equal"
	case r.Equal != nil:
		return "not equal"
	case r.Value != nil:
		return Round(*r.Value, f.opts.Precision) + " " + r.Unit
	}
	return ""
}

// JSONFormatter renders a report as indented JSON
type JSONFormatter struct {
	opts Options
}

// Format implements Formatter
func (f *JSONFormatter) Format() Format { return FormatJSON }

type jsonResult struct {
	*demo.Result
	Value   *decimal.Decimal `json:"value,omitempty"`
	Display string           `json:"display,omitempty"`
	Error   *qerrors.Error   `json:"error,omitempty"`
}

type jsonReport struct {
	Scenario string       `json:"scenario"`
	Results  []jsonResult `json:"results"`
	Failures int          `json:"failures"`
}

// Render implements Formatter
func (f *JSONFormatter) Render(w io.Writer, report *demo.Report) error {
	out := jsonReport{
		Scenario: report.Scenario,
		Results:  make([]jsonResult, 0, len(report.Results)),
		Failures: report.Failures,
	}

	for _, r := range report.Results {
		jr := jsonResult{Result: r}
		if r.Value != nil {
			jr.Display = Round(*r.Value, f.opts.Precision) + " " + r.Unit
			if !math.IsInf(*r.Value, 0) {
				v := decimal.NewFromFloat(*r.Value).Round(f.opts.Precision)
				jr.Value = &v
			}
		}
		if r.Error != nil {
			jr.Error = asDomainError(r.Error)
		}
		out.Results = append(out.Results, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func asDomainError(err error) *qerrors.Error {
	var e *qerrors.Error
	if errors.As(err, &e) {
		return e
	}
	return qerrors.Internal(err.Error(), nil)
}
