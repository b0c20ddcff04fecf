package script

import (
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
)

// StepOutput is the JSON form of a Step.
type StepOutput struct {
	Op    Op     `json:"op" jsonschema:"enum=push,enum=pop,enum=peek,enum=size,enum=empty,enum=clear"`
	Arg   string `json:"arg,omitempty" jsonschema:"description=Value given to push."`
	Value string `json:"value,omitempty" jsonschema:"description=Value produced by the operation."`
	Error string `json:"error,omitempty" jsonschema:"description=Set when a pop or peek hit an empty stack."`
	Size  int    `json:"size" jsonschema:"description=Stack size after the operation."`
}

// Output is the JSON document printed by "stackq run --json".
type Output struct {
	Backend string       `json:"backend" jsonschema:"enum=queues,enum=slice"`
	Steps   []StepOutput `json:"steps"`
	Failed  int          `json:"failed" jsonschema:"description=Number of failed steps."`
	Values  []string     `json:"values" jsonschema:"description=Final stack contents, bottom to top."`
}

// NewOutput builds the JSON document for a finished run.
func NewOutput(backend string, steps []Step, values []string) *Output {
	out := &Output{
		Backend: backend,
		Steps:   make([]StepOutput, len(steps)),
		Values:  values,
	}

	for i, step := range steps {
		so := StepOutput{Op: step.Op, Arg: step.Arg, Size: step.Size}
		if err := step.Result.Error(); err != nil {
			so.Error = err.Error()
			out.Failed++
		} else {
			so.Value = step.Result.MustGet()
		}
		out.Steps[i] = so
	}

	if out.Values == nil {
		out.Values = []string{}
	}

	return out
}

// Schema returns the JSON schema of Output.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	return reflector.Reflect(&Output{})
}

// FailedSteps returns only the steps that produced an error.
func FailedSteps(steps []Step) []Step {
	return lo.Filter(steps, func(s Step, _ int) bool { return s.Failed() })
}
