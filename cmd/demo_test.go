package cmd

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stackq/stackq/script"
	"github.com/stackq/stackq/stack"
)

func TestDemo(t *testing.T) {
	Convey("The demo scenario", t, func() {
		Convey("Plays without unexpected outcomes", func() {
			var out bytes.Buffer
			So(runDemo(&out, false), ShouldEqual, 0)
			So(strings.Count(out.String(), "\n"), ShouldEqual, len(demoScenario))
			So(out.String(), ShouldContainSubstring, "stack is empty")
		})

		Convey("Shows both queues on request", func() {
			var out bytes.Buffer
			So(runDemo(&out, true), ShouldEqual, 0)
			So(out.String(), ShouldContainSubstring, "secondary")
		})

		Convey("Detects a wrong expectation", func() {
			step := demoStep{op: script.OpPop, want: "9"}
			s := stack.New[int]()
			s.Push(1)
			got, err := step.apply(s)
			So(step.matches(got, err), ShouldBeFalse)
		})
	})
}
