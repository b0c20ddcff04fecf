package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stackq/stackq/color"
	"github.com/stackq/stackq/icon"
	"github.com/stackq/stackq/script"
	"github.com/stackq/stackq/stack"
	"github.com/stackq/stackq/style"
)

// demoStep is one operation of the reference scenario with its expected outcome.
type demoStep struct {
	op      script.Op
	arg     int
	want    string
	wantErr bool
}

// demoScenario pushes and pops across a queue swap and hits the empty stack at both ends.
var demoScenario = []demoStep{
	{op: script.OpPop, wantErr: true},
	{op: script.OpPush, arg: 1},
	{op: script.OpPush, arg: 2},
	{op: script.OpPush, arg: 3},
	{op: script.OpPop, want: "3"},
	{op: script.OpPop, want: "2"},
	{op: script.OpPush, arg: 4},
	{op: script.OpPush, arg: 5},
	{op: script.OpEmpty, want: "false"},
	{op: script.OpPop, want: "5"},
	{op: script.OpPop, want: "4"},
	{op: script.OpPop, want: "1"},
	{op: script.OpPop, wantErr: true},
	{op: script.OpEmpty, want: "true"},
}

func (d demoStep) String() string {
	if d.op == script.OpPush {
		return fmt.Sprintf("%s %d", d.op, d.arg)
	}
	return string(d.op)
}

func (d demoStep) apply(s *stack.Stack[int]) (string, error) {
	switch d.op {
	case script.OpPush:
		s.Push(d.arg)
		return strconv.Itoa(d.arg), nil
	case script.OpPop:
		v, err := s.Pop()
		return strconv.Itoa(v), err
	case script.OpPeek:
		v, err := s.Peek()
		return strconv.Itoa(v), err
	case script.OpEmpty:
		return strconv.FormatBool(s.IsEmpty()), nil
	default:
		return "", fmt.Errorf("unsupported demo operation %q", d.op)
	}
}

// matches reports whether an outcome is the expected one. Push outcomes are not checked.
func (d demoStep) matches(got string, err error) bool {
	if d.wantErr {
		return err != nil
	}
	return err == nil && (d.op == script.OpPush || got == d.want)
}

// runDemo plays the scenario on a fresh two-queue stack and returns the number of unexpected outcomes.
func runDemo(out io.Writer, showQueues bool) int {
	s := stack.New[int]()
	var mismatches int

	for i, step := range demoScenario {
		got, err := step.apply(s)

		mark := style.Fg(color.Green)(icon.Get(icon.Success))
		if !step.matches(got, err) {
			mismatches++
			mark = style.Fg(color.Red)(icon.Get(icon.Fail))
		}

		outcome := got
		if err != nil {
			outcome = "error: " + err.Error()
		}
		fmt.Fprintf(out, "%s %-8s %s %s\n", style.Faint(fmt.Sprintf("%2d", i+1)), step, mark, outcome)

		if showQueues {
			primary, secondary := s.Queues()
			toStrings := func(values []int) []string {
				return lo.Map(values, func(v int, _ int) string { return strconv.Itoa(v) })
			}
			fmt.Fprintf(out, "   primary   %s\n", style.Cells(color.Primary, toStrings(primary)))
			fmt.Fprintf(out, "   secondary %s\n", style.Cells(color.Secondary, toStrings(secondary)))
		}
	}

	return mismatches
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().BoolP("queues", "q", false, "Show both queues after every step")
}

// demoCmd plays the reference scenario.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Play the reference push/pop scenario on a two-queue stack",
	Run: func(cmd *cobra.Command, args []string) {
		mismatches := runDemo(cmd.OutOrStdout(), lo.Must(cmd.Flags().GetBool("queues")))
		if mismatches > 0 {
			handleErr(fmt.Errorf("%d unexpected outcomes", mismatches))
		}
	},
}
