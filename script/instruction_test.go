package script

import (
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseLine(t *testing.T) {
	Convey("ParseLine", t, func() {
		Convey("Parses push with the rest of the line as value", func() {
			in, err := ParseLine("  PUSH   hello world ")
			So(err, ShouldBeNil)
			So(in, ShouldResemble, Instruction{Op: OpPush, Arg: "hello world"})
			So(in.String(), ShouldEqual, "push hello world")
		})

		Convey("Parses argument-less operations", func() {
			for _, op := range []Op{OpPop, OpPeek, OpSize, OpEmpty, OpClear} {
				in, err := ParseLine(string(op))
				So(err, ShouldBeNil)
				So(in.Op, ShouldEqual, op)
			}
		})

		Convey("Rejects malformed instructions", func() {
			var syntaxErr *SyntaxError

			_, err := ParseLine("push")
			So(errors.As(err, &syntaxErr), ShouldBeTrue)
			So(syntaxErr.Msg, ShouldEqual, "push requires a value")

			_, err = ParseLine("pop 3")
			So(err.Error(), ShouldContainSubstring, "pop takes no argument")

			_, err = ParseLine("")
			So(err, ShouldNotBeNil)
		})

		Convey("Suggests the closest operation for unknown ones", func() {
			_, err := ParseLine("popp")
			So(err.Error(), ShouldContainSubstring, "did you mean pop?")

			_, err = ParseLine("psh 1")
			So(err.Error(), ShouldContainSubstring, "did you mean push?")

			_, err = ParseLine("xyzzy")
			So(err.Error(), ShouldNotContainSubstring, "did you mean")
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Skips comments and blank lines and splits on semicolons", func() {
			program, err := ParseString("# setup\npush 1; push 2\n\npop\n")
			So(err, ShouldBeNil)
			So(program, ShouldResemble, []Instruction{
				{Op: OpPush, Arg: "1"},
				{Op: OpPush, Arg: "2"},
				{Op: OpPop},
			})
		})

		Convey("Accepts values longer than the default scanner buffer", func() {
			value := strings.Repeat("x", 100*1024)
			program, err := ParseString("push " + value + "\npop")
			So(err, ShouldBeNil)
			So(len(program), ShouldEqual, 2)
			So(program[0].Arg, ShouldEqual, value)
		})

		Convey("Reports the failing line", func() {
			_, err := ParseString("push 1\npeek\npush\n")
			var syntaxErr *SyntaxError
			So(errors.As(err, &syntaxErr), ShouldBeTrue)
			So(syntaxErr.Line, ShouldEqual, 3)
			So(err.Error(), ShouldStartWith, "line 3: ")
		})
	})
}

func TestSuggest(t *testing.T) {
	Convey("Suggest", t, func() {
		So(Suggest("sz").MustGet(), ShouldEqual, OpSize)
		So(Suggest("emty").MustGet(), ShouldEqual, OpEmpty)
		So(Suggest("").IsAbsent(), ShouldBeTrue)
		So(Suggest("qwerty").IsAbsent(), ShouldBeTrue)
	})
}
