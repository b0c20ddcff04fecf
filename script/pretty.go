package script

import (
	"fmt"

	"github.com/stackq/stackq/color"
	"github.com/stackq/stackq/icon"
	"github.com/stackq/stackq/style"
)

// Pretty returns a colored one-line rendering of the step's outcome.
func (s Step) Pretty() string {
	if err := s.Result.Error(); err != nil {
		return fmt.Sprintf("%s %s", style.Fg(color.Red)(icon.Get(icon.Fail)), err)
	}

	value := s.Result.MustGet()
	switch s.Op {
	case OpPush:
		return fmt.Sprintf("%s %s", icon.Get(icon.Push), style.Fg(color.Yellow)(value))
	case OpPop:
		return fmt.Sprintf("%s %s", icon.Get(icon.Pop), style.Fg(color.Green)(value))
	case OpPeek:
		return fmt.Sprintf("%s %s", icon.Get(icon.Peek), style.Fg(color.Cyan)(value))
	case OpClear:
		return style.Fg(color.Green)(icon.Get(icon.Success)) + " " + style.Italic("cleared")
	default:
		return fmt.Sprintf("%s %s", style.Fg(color.Green)(icon.Get(icon.Success)), value)
	}
}
