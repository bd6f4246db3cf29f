// Package demo executes scenario scripts against the quantity library.
package demo

import (
	"context"

	"go.uber.org/zap"

	"quantity-measurement/core/quantity"
	"quantity-measurement/core/scenario"
	"quantity-measurement/core/units"
	qerrors "quantity-measurement/internal/errors"
)

// Result is the outcome of one step
type Result struct {
	// Name is the step name
	Name string `json:"name"`

	// Operation is the step operation
	Operation scenario.Operation `json:"operation"`

	// Inputs are the operands as written in the script
	Inputs []string `json:"inputs"`

	// Output is the resulting quantity for convert and add steps
	Output quantity.Measure `json:"-"`

	// Equal is set for compare steps
	Equal *bool `json:"equal,omitempty"`

	// Value is the numeric result for convert and add steps
	Value *float64 `json:"value,omitempty"`

	// Unit is the unit of Value
	Unit string `json:"unit,omitempty"`

	// Error is set when the step failed
	Error error `json:"-"`
}

// Failed reports whether the step failed
func (r *Result) Failed() bool {
	return r.Error != nil
}

// Report is the outcome of a whole script
type Report struct {
	// Scenario is the script name
	Scenario string `json:"scenario"`

	// Results holds one entry per step in script order
	Results []*Result `json:"results"`

	// Failures counts failed steps
	Failures int `json:"failures"`
}

// Runner executes scripts
type Runner struct {
	logger *zap.Logger
}

// NewRunner creates a runner. A nil logger discards all output.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger.Named("demo")}
}

// Run executes every step in order. Step failures are recorded on the
// report; only context cancellation stops the run early.
func (r *Runner) Run(ctx context.Context, file *scenario.File) (*Report, error) {
	report := &Report{Scenario: file.Name}
	steps := file.Steps()

	r.logger.Debug("running scenario",
		zap.String("scenario", file.Name),
		zap.Int("steps", len(steps)))

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		result := r.RunStep(step)
		if result.Failed() {
			report.Failures++
			r.logger.Warn("step failed",
				zap.String("step", step.Name),
				zap.String("operation", string(step.Operation)),
				zap.Int("line", step.Line),
				zap.Error(result.Error))
		}
		report.Results = append(report.Results, result)
	}

	r.logger.Debug("scenario finished",
		zap.String("scenario", file.Name),
		zap.Int("failures", report.Failures))

	return report, nil
}

// RunStep executes a single step
func (r *Runner) RunStep(step scenario.Step) *Result {
	result := &Result{Name: step.Name, Operation: step.Operation}

	var err error
	switch step.Operation {
	case scenario.OpCompare:
		result.Inputs = []string{step.First, step.Second}
		err = r.compare(step, result)
	case scenario.OpConvert:
		result.Inputs = []string{quantity.FormatValue(step.Value), step.From, step.To}
		err = r.convert(step, result)
	case scenario.OpAdd:
		result.Inputs = []string{step.First, step.Second}
		if step.Target != "" {
			result.Inputs = append(result.Inputs, step.Target)
		}
		err = r.add(step, result)
	default:
		err = qerrors.NotSupported("operation " + string(step.Operation))
	}

	result.Error = err
	return result
}

func (r *Runner) compare(step scenario.Step, result *Result) error {
	first, second, err := parsePair(step)
	if err != nil {
		return err
	}
	equal := first.EqualsMeasure(second)
	result.Equal = &equal
	r.logger.Debug("compared",
		zap.Stringer("first", first),
		zap.Stringer("second", second),
		zap.Bool("equal", equal))
	return nil
}

func (r *Runner) convert(step scenario.Step, result *Result) error {
	from, err := units.Lookup(step.From)
	if err != nil {
		return err
	}
	to, err := units.Lookup(step.To)
	if err != nil {
		return err
	}

	m, err := quantity.NewMeasure(step.Value, from)
	if err != nil {
		return err
	}
	converted, err := m.ConvertToUnit(to)
	if err != nil {
		return err
	}

	setOutput(result, converted)
	r.logger.Debug("converted",
		zap.Stringer("from", m),
		zap.Stringer("to", converted))
	return nil
}

func (r *Runner) add(step scenario.Step, result *Result) error {
	first, second, err := parsePair(step)
	if err != nil {
		return err
	}

	var sum quantity.Measure
	if step.Target == "" {
		sum, err = first.AddMeasure(second)
	} else {
		target, lookupErr := units.Lookup(step.Target)
		if lookupErr != nil {
			return lookupErr
		}
		sum, err = first.AddMeasureIn(second, target)
	}
	if err != nil {
		return err
	}

	setOutput(result, sum)
	r.logger.Debug("added",
		zap.Stringer("first", first),
		zap.Stringer("second", second),
		zap.Stringer("sum", sum))
	return nil
}

func parsePair(step scenario.Step) (quantity.Measure, quantity.Measure, error) {
	first, err := quantity.ParseMeasure(step.First)
	if err != nil {
		return nil, nil, err
	}
	second, err := quantity.ParseMeasure(step.Second)
	if err != nil {
		return nil, nil, err
	}
	return first, second, nil
}

func setOutput(result *Result, m quantity.Measure) {
	value := m.Value()
	result.Output = m
	result.Value = &value
	result.Unit = m.UnitDescriptor().Name()
}
