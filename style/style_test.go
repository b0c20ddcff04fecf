package style

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stackq/stackq/color"
)

func TestCells(t *testing.T) {
	Convey("Cells", t, func() {
		Convey("Renders every value in order", func() {
			out := Cells(color.Primary, []string{"1", "2", "3"})
			first, second := strings.Index(out, "[1]"), strings.Index(out, "[2]")
			So(first, ShouldBeGreaterThanOrEqualTo, 0)
			So(second, ShouldBeGreaterThan, first)
			So(out, ShouldContainSubstring, "[3]")
		})

		Convey("Renders a placeholder for an empty row", func() {
			So(Cells(color.Primary, nil), ShouldContainSubstring, "(empty)")
		})
	})
}

func TestTag(t *testing.T) {
	Convey("Tag pads the text on both sides", t, func() {
		out := Tag(color.New("235"), color.Primary)("primary")
		So(out, ShouldContainSubstring, " primary ")
	})
}

func TestTextHelpers(t *testing.T) {
	Convey("Text helpers keep the text", t, func() {
		for _, render := range []func(string) string{Faint, Bold, Italic} {
			So(render("cleared"), ShouldContainSubstring, "cleared")
		}
	})
}
