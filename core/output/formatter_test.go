package output

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"quantity-measurement/core/demo"
	"quantity-measurement/core/scenario"
	qerrors "quantity-measurement/internal/errors"
)

func runReport(t *testing.T, steps ...scenario.Step) *demo.Report {
	t.Helper()
	file, err := scenario.NewFile("test", steps...)
	if err != nil {
		t.Fatal(err)
	}
	report, err := demo.NewRunner(nil).Run(context.Background(), file)
	if err != nil {
		t.Fatal(err)
	}
	return report
}

func TestNew(t *testing.T) {
	for _, format := range []Format{FormatCLI, FormatJSON, "JSON"} {
		f, err := New(format, Options{})
		if err != nil {
			t.Fatalf("New(%s): %v", format, err)
		}
		if !strings.EqualFold(string(f.Format()), string(format)) {
			t.Errorf("New(%s).Format() = %s", format, f.Format())
		}
	}

	if _, err := New("html", Options{}); !qerrors.IsType(err, qerrors.TypeNotSupported) {
		t.Errorf("New(html) error = %v", err)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		v         float64
		precision int32
		want      string
	}{
		{1.9999979950399998, 6, "1.999998"},
		{1.9999979950399998, 2, "2"},
		{3, 6, "3"},
		{0.393701, 3, "0.394"},
		{-2.4, 0, "-2"},
	}
	for _, tt := range tests {
		if got := Round(tt.v, tt.precision); got != tt.want {
			t.Errorf("Round(%v, %d) = %q, want %q", tt.v, tt.precision, got, tt.want)
		}
	}
}

func TestCLIRender(t *testing.T) {
	report := runReport(t,
		scenario.Step{Name: "weights", Operation: scenario.OpCompare, First: "1000 GRAM", Second: "1 KILOGRAM"},
		scenario.Step{Name: "sum", Operation: scenario.OpAdd, First: "1 KILOGRAM", Second: "2.20462 POUND"},
		scenario.Step{Name: "mixed", Operation: scenario.OpAdd, First: "1 KILOGRAM", Second: "1 FEET"},
	)

	f, _ := New(FormatCLI, Options{Precision: 4, NoColor: true})
	var buf bytes.Buffer
	if err := f.Render(&buf, report); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"━━━ Scenario test ━━━",
		"STEP    │ OPERATION │ INPUT",
		"weights │ compare   │ 1000 GRAM, 1 KILOGRAM",
		"│ equal",
		"│ 2 KILOGRAM",
		"error: KIND_MISMATCH",
		"✗ mixed:",
		"⚠ 1 of 3 steps failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("NoColor output contains escape codes")
	}
}

func TestCLIRenderSuccess(t *testing.T) {
	report := runReport(t,
		scenario.Step{Name: "to_kg", Operation: scenario.OpConvert, Value: 1000, From: "GRAM", To: "KILOGRAM"},
	)

	f, _ := New(FormatCLI, Options{Precision: 6, NoColor: true})
	var buf bytes.Buffer
	if err := f.Render(&buf, report); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "✓ 1 steps completed") {
		t.Errorf("missing success line:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "1 KILOGRAM") {
		t.Errorf("missing converted value:\n%s", buf.String())
	}
}

func TestCLIRenderVerbose(t *testing.T) {
	report := runReport(t,
		scenario.Step{Name: "to_kg", Operation: scenario.OpConvert, Value: 1, From: "POUND", To: "KILOGRAM"},
	)

	tests := []struct {
		verbose bool
		want    []string
		absent  []string
	}{
		{false, []string{"0.45 KILOGRAM", "ℹ values rounded to 2 decimal places"}, []string{"to_kg = 0.453592"}},
		{true, []string{"0.45 KILOGRAM", "ℹ values rounded to 2 decimal places", "  to_kg = 0.453592 KILOGRAM"}, nil},
	}

	for _, tt := range tests {
		f, _ := New(FormatCLI, Options{Precision: 2, NoColor: true, Verbose: tt.verbose})
		var buf bytes.Buffer
		if err := f.Render(&buf, report); err != nil {
			t.Fatalf("Render: %v", err)
		}
		out := buf.String()
		for _, want := range tt.want {
			if !strings.Contains(out, want) {
				t.Errorf("verbose=%v: output missing %q:\n%s", tt.verbose, want, out)
			}
		}
		for _, absent := range tt.absent {
			if strings.Contains(out, absent) {
				t.Errorf("verbose=%v: output contains %q:\n%s", tt.verbose, absent, out)
			}
		}
	}
}

func TestRoundKeepsInfinity(t *testing.T) {
	if got := Round(math.Inf(1), 2); got != "+Inf" {
		t.Errorf("Round(+Inf) = %q", got)
	}
}

func TestJSONRender(t *testing.T) {
	report := runReport(t,
		scenario.Step{Name: "weights", Operation: scenario.OpCompare, First: "1000 GRAM", Second: "1 KILOGRAM"},
		scenario.Step{Name: "sum", Operation: scenario.OpAdd, First: "1 KILOGRAM", Second: "2.20462 POUND", Target: "GRAM"},
		scenario.Step{Name: "bad", Operation: scenario.OpConvert, Value: 1, From: "GRAM", To: "FURLONG"},
	)

	f, _ := New(FormatJSON, Options{Precision: 3})
	var buf bytes.Buffer
	if err := f.Render(&buf, report); err != nil {
		t.Fatalf("Render: %v", err)
	}

	type result struct {
		Name      string   `json:"name"`
		Operation string   `json:"operation"`
		Inputs    []string `json:"inputs"`
		Equal     *bool    `json:"equal"`
		Value     string   `json:"value"`
		Display   string   `json:"display"`
		Unit      string   `json:"unit"`
		Error     *struct {
			Type string `json:"type"`
		} `json:"error"`
	}
	var got struct {
		Scenario string   `json:"scenario"`
		Results  []result `json:"results"`
		Failures int      `json:"failures"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	equal := true
	want := []result{
		{Name: "weights", Operation: "compare", Inputs: []string{"1000 GRAM", "1 KILOGRAM"}, Equal: &equal},
		{Name: "sum", Operation: "add", Inputs: []string{"1 KILOGRAM", "2.20462 POUND", "GRAM"}, Value: "1999.998", Display: "1999.998 GRAM", Unit: "GRAM"},
		{Name: "bad", Operation: "convert", Inputs: []string{"1", "GRAM", "FURLONG"}, Error: &struct {
			Type string `json:"type"`
		}{Type: "UNKNOWN_UNIT"}},
	}
	if diff := cmp.Diff(want, got.Results); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
	if got.Scenario != "test" || got.Failures != 1 {
		t.Errorf("unexpected header %q / %d", got.Scenario, got.Failures)
	}
}
