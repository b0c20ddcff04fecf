package script

import (
	"strconv"

	"github.com/samber/mo"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stackq/stackq/key"
	"github.com/stackq/stackq/log"
	"github.com/stackq/stackq/stack"
)

// Step is the outcome of one executed instruction.
type Step struct {
	Instruction
	// Result holds the produced value, or the error of a failed pop or peek.
	Result mo.Result[string]
	// Size is the stack size after the instruction.
	Size int
}

// Failed reports whether the instruction produced an error.
func (s Step) Failed() bool {
	return s.Result.IsError()
}

// Exec applies a single instruction to s.
// A pop or peek on an empty stack yields a failed step and leaves s untouched.
func Exec(s stack.Interface[string], in Instruction) Step {
	traceQueues(s, in, "before")

	var result mo.Result[string]
	switch in.Op {
	case OpPush:
		s.Push(in.Arg)
		result = mo.Ok(in.Arg)
	case OpPop:
		result = mo.TupleToResult(s.Pop())
	case OpPeek:
		result = mo.TupleToResult(s.Peek())
	case OpSize:
		result = mo.Ok(strconv.Itoa(s.Len()))
	case OpEmpty:
		result = mo.Ok(strconv.FormatBool(s.IsEmpty()))
	case OpClear:
		s.Clear()
		result = mo.Ok("")
	default:
		result = mo.Errf[string]("unknown operation %q", in.Op)
	}

	step := Step{Instruction: in, Result: result, Size: s.Len()}
	entry := log.WithFields(logrus.Fields{"op": in.Op, "arg": in.Arg, "size": step.Size})
	if err := result.Error(); err != nil {
		entry.WithError(err).Debug("instruction failed")
	} else {
		entry.Debug("instruction executed")
	}

	traceQueues(s, in, "after")
	return step
}

// Run executes a program to completion. Failed steps do not stop execution.
func Run(s stack.Interface[string], program []Instruction) []Step {
	steps := make([]Step, 0, len(program))
	for _, in := range program {
		steps = append(steps, Exec(s, in))
	}
	return steps
}

// traceQueues logs the queue sizes of a two-queue stack when run.trace is set.
func traceQueues(s stack.Interface[string], in Instruction, when string) {
	if !viper.GetBool(key.RunTrace) {
		return
	}

	adapter, ok := s.(*stack.Stack[string])
	if !ok {
		return
	}

	primary, secondary := adapter.Queues()
	log.Tracef("%s %s: primary=%d secondary=%d", when, in.Op, len(primary), len(secondary))
}
