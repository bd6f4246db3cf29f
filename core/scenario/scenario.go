// Package scenario reads demonstration scripts written in HCL.
//
// A script is an ordered list of compare, convert and add blocks, each named
// by a single label. Quantities are written as "<value> <UNIT>" literals.
package scenario

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	qerrors "quantity-measurement/internal/errors"
)

// Operation is the kind of step
type Operation string

const (
	OpCompare Operation = "compare"
	OpConvert Operation = "convert"
	OpAdd     Operation = "add"
)

// Step is one operation of a script
type Step struct {
	// Name is the block label
	Name string `json:"name"`

	// Operation selects which fields are meaningful
	Operation Operation `json:"operation"`

	// First and Second are quantity literals for compare and add
	First  string `json:"first,omitempty"`
	Second string `json:"second,omitempty"`

	// Value, From and To describe a convert step
	Value float64 `json:"value,omitempty"`
	From  string  `json:"from,omitempty"`
	To    string  `json:"to,omitempty"`

	// Target is the optional result unit of an add step
	Target string `json:"target,omitempty"`

	// Line is the 1-based source line of the block, 0 when built in code
	Line int `json:"line,omitempty"`
}

// File is a parsed script
type File struct {
	Name  string
	steps []Step
}

// NewFile builds a script from steps. Step names must be unique.
func NewFile(name string, steps ...Step) (*File, error) {
	seen := make(map[string]bool, len(steps))
	for _, s := range steps {
		if s.Name == "" {
			return nil, qerrors.Input("step without a name")
		}
		if seen[s.Name] {
			return nil, qerrors.Newf(qerrors.TypeInput, "duplicate step name %q", s.Name).
				WithContext("file", name).
				WithContext("line", s.Line)
		}
		seen[s.Name] = true
	}
	return &File{Name: name, steps: append([]Step(nil), steps...)}, nil
}

// Steps returns the steps in source order
func (f *File) Steps() []Step {
	return append([]Step(nil), f.steps...)
}

type compareBody struct {
	First  string `hcl:"first"`
	Second string `hcl:"second"`
}

type convertBody struct {
	Value cty.Value `hcl:"value"`
	From  string  `hcl:"from"`
	To    string  `hcl:"to"`
}

type addBody struct {
	First  string `hcl:"first"`
	Second string `hcl:"second"`
	Target string `hcl:"target,optional"`
}

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: string(OpCompare), LabelNames: []string{"name"}},
		{Type: string(OpConvert), LabelNames: []string{"name"}},
		{Type: string(OpAdd), LabelNames: []string{"name"}},
	},
}

// Load reads and parses a script file
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, qerrors.Wrapf(qerrors.TypeInput, err, "failed to read scenario file %s", path)
	}
	return Parse(src, path)
}

// Parse parses script source. filename is used in diagnostics only.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	content, diags := hclFile.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	steps := make([]Step, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		step, diags := decodeBlock(block)
		if diags.HasErrors() {
			return nil, diagError(filename, diags)
		}
		steps = append(steps, step)
	}

	return NewFile(filename, steps...)
}

func decodeBlock(block *hcl.Block) (Step, hcl.Diagnostics) {
	step := Step{
		Name:      block.Labels[0],
		Operation: Operation(block.Type),
		Line:      block.DefRange.Start.Line,
	}

	var diags hcl.Diagnostics
	switch step.Operation {
	case OpCompare:
		var body compareBody
		diags = gohcl.DecodeBody(block.Body, nil, &body)
		step.First, step.Second = body.First, body.Second
	case OpConvert:
		var body convertBody
		diags = gohcl.DecodeBody(block.Body, nil, &body)
		if !diags.HasErrors() {
			step.Value, diags = numberValue(body.Value, block.DefRange)
		}
		step.From, step.To = body.From, body.To
	case OpAdd:
		var body addBody
		diags = gohcl.DecodeBody(block.Body, nil, &body)
		step.First, step.Second, step.Target = body.First, body.Second, body.Target
	}
	return step, diags
}

// numberValue converts a literal to float64. Literals beyond the float64
// range become infinities and are rejected when the step runs, like any
// other non-finite value.
func numberValue(v cty.Value, rng hcl.Range) (float64, hcl.Diagnostics) {
	n, err := convert.Convert(v, cty.Number)
	if err == nil && (n.IsNull() || !n.IsKnown()) {
		err = fmt.Errorf("value must not be null")
	}
	if err != nil {
		return 0, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid value",
			Detail:   "A number is required: " + err.Error(),
			Subject:  &rng,
		}}
	}
	f, _ := n.AsBigFloat().Float64()
	return f, nil
}

func diagError(filename string, diags hcl.Diagnostics) error {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		line := 0
		if diag.Subject != nil {
			line = diag.Subject.Start.Line
		}
		return qerrors.Parsing(fmt.Sprintf("%s:%d: %s", filename, line, diag.Summary), diags).
			WithContext("file", filename).
			WithContext("line", line)
	}
	return qerrors.Parsing(filename, diags)
}
