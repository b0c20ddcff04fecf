package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/stackq/stackq/internal/ui"
	"github.com/stackq/stackq/key"
)

func enter(b *bubble, line string) tea.Cmd {
	b.inputC.SetValue(line)
	_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func press(b *bubble, t tea.KeyType) {
	b.Update(tea.KeyMsg{Type: t})
}

func TestBubble(t *testing.T) {
	Convey("Given a fresh interactive session", t, func() {
		viper.Set(key.ReplHistorySize, 10)
		viper.Set(key.ReplSuggest, true)
		viper.Set(key.ReplShowQueues, true)
		b := newBubble()

		Convey("Entered lines drive the stack", func() {
			enter(b, "pop")
			enter(b, "push 1")
			enter(b, "push 2")
			enter(b, "pop")

			So(b.stack.Values(), ShouldResemble, []string{"1"})
			So(len(b.entries), ShouldEqual, 4)
			So(b.entries[0].step.Failed(), ShouldBeTrue)
			So(b.entries[3].step.Result.MustGet(), ShouldEqual, "2")
			So(b.inputC.Value(), ShouldBeEmpty)
			So(b.View(), ShouldContainSubstring, "[1]")
			So(b.View(), ShouldContainSubstring, "secondary")
		})

		Convey("Only the configured number of entries is kept", func() {
			viper.Set(key.ReplHistorySize, 2)
			for _, line := range []string{"push a", "push b", "push c"} {
				enter(b, line)
			}
			So(len(b.entries), ShouldEqual, 2)
			So(b.entries[0].input, ShouldEqual, "push b")
		})

		Convey("Previous lines are recalled with up and down", func() {
			enter(b, "push a")
			enter(b, "push b")
			b.inputC.SetValue("dra")

			press(b, tea.KeyUp)
			So(b.inputC.Value(), ShouldEqual, "push b")
			press(b, tea.KeyUp)
			So(b.inputC.Value(), ShouldEqual, "push a")
			press(b, tea.KeyUp)
			So(b.inputC.Value(), ShouldEqual, "push a")

			press(b, tea.KeyDown)
			So(b.inputC.Value(), ShouldEqual, "push b")
			press(b, tea.KeyDown)
			So(b.inputC.Value(), ShouldEqual, "dra")

			Convey("Running a recalled line moves it to the end of the history", func() {
				press(b, tea.KeyUp)
				press(b, tea.KeyUp)
				_, _ = b.Update(tea.KeyMsg{Type: tea.KeyEnter})

				So(b.older.Values(), ShouldResemble, []string{"push b", "push a"})
				So(b.newer.IsEmpty(), ShouldBeTrue)
			})
		})

		Convey("A mistyped operation loads the suggestion", func() {
			cmd := enter(b, "psh 7")
			So(cmd, ShouldNotBeNil)
			So(cmd(), ShouldHaveSameTypeAs, ui.NotificationMsg(""))
			So(b.inputC.Value(), ShouldEqual, "push 7")
			So(b.entries[0].err, ShouldNotBeNil)
			So(b.stack.IsEmpty(), ShouldBeTrue)

			Convey("Unless suggestions are disabled", func() {
				viper.Set(key.ReplSuggest, false)
				So(enter(b, "psh 7"), ShouldBeNil)
				So(b.inputC.Value(), ShouldBeEmpty)
				So(b.entries[1].err.Error(), ShouldNotContainSubstring, "did you mean")
			})
		})

		Convey("Semicolons separate instructions on one line", func() {
			enter(b, "push 1; push 2; pop")

			So(b.stack.Values(), ShouldResemble, []string{"1"})
			So(len(b.entries), ShouldEqual, 3)
			So(b.entries[1].input, ShouldEqual, "push 2")
			So(b.entries[2].step.Result.MustGet(), ShouldEqual, "2")
			So(b.older.Values(), ShouldResemble, []string{"push 1; push 2; pop"})
		})

		Convey("A mistyped operation inside a line is corrected in place", func() {
			enter(b, "push 1; popp; peek")

			So(b.stack.IsEmpty(), ShouldBeTrue)
			So(b.entries[0].err.Error(), ShouldStartWith, "unknown operation")
			So(b.inputC.Value(), ShouldEqual, "push 1; pop; peek")
		})

		Convey("Clearing notifies and ctrl+l clears the results", func() {
			enter(b, "push 1")
			So(enter(b, "clear"), ShouldNotBeNil)
			So(b.stack.IsEmpty(), ShouldBeTrue)

			press(b, tea.KeyCtrlL)
			So(b.entries, ShouldBeEmpty)
		})

		Convey("Escape quits", func() {
			_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEsc})
			So(cmd, ShouldNotBeNil)
			So(cmd(), ShouldHaveSameTypeAs, tea.QuitMsg{})
		})
	})
}
