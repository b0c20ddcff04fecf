package cmd

import (
	"bytes"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
	"github.com/stackq/stackq/stack"
)

func newExecCommand(exec string) *cobra.Command {
	c := &cobra.Command{}
	c.Flags().StringP("exec", "e", "", "")
	_ = c.Flags().Set("exec", exec)
	return c
}

func TestRunProgram(t *testing.T) {
	Convey("Given a run command", t, func() {
		var out bytes.Buffer
		s := stack.New[string]()

		Convey("An empty --exec without a file is rejected", func() {
			c := newExecCommand("")
			So(c.Flags().Changed("exec"), ShouldBeTrue)

			var err error
			So(func() { _, err = runProgram(c, s, nil, &out) }, ShouldNotPanic)
			So(errors.Is(err, errNoProgram), ShouldBeTrue)
			So(s.IsEmpty(), ShouldBeTrue)
		})

		Convey("An inline program runs against the stack", func() {
			steps, err := runProgram(newExecCommand("push 1; push 2; pop"), s, nil, &out)
			So(err, ShouldBeNil)
			So(len(steps), ShouldEqual, 3)
			So(s.Values(), ShouldResemble, []string{"1"})

			Convey("And its steps are printed with a summary", func() {
				printSteps(&out, steps, s)
				So(out.String(), ShouldContainSubstring, "  1")
				So(out.String(), ShouldContainSubstring, "push 2")
				So(out.String(), ShouldContainSubstring, "3 steps, 0 failures")
			})
		})
	})
}
