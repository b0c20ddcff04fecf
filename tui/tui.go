// Package tui provides the interactive mode: a REPL over a two-queue stack.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stackq/stackq/script"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Program is executed before the first prompt.
	Program []script.Instruction
}

// Run initializes and executes the Bubble Tea application loop.
func Run(options *Options) error {
	bubble := newBubble()
	for _, in := range options.Program {
		bubble.record(in.String(), script.Exec(bubble.stack, in))
	}

	_, err := tea.NewProgram(bubble).Run()
	return err
}
