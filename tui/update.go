package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/stackq/stackq/internal/ui"
	keys "github.com/stackq/stackq/key"
	"github.com/stackq/stackq/log"
	"github.com/stackq/stackq/script"
)

func (b *bubble) Init() tea.Cmd {
	return nil
}

func (b *bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.helpC.Width = msg.Width
		return b, nil
	case ui.NotificationMsg:
		return b, b.notifier.Update(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case key.Matches(msg, b.keymap.run):
			return b, b.execute(b.inputC.Value())
		case key.Matches(msg, b.keymap.older):
			b.recall(&b.older, &b.newer)
			return b, nil
		case key.Matches(msg, b.keymap.newer):
			b.recall(&b.newer, &b.older)
			return b, nil
		case key.Matches(msg, b.keymap.clearScreen):
			b.entries = nil
			return b, nil
		}
	default:
		if cmd := b.notifier.Update(msg); cmd != nil {
			return b, cmd
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	return b, cmd
}

// execute runs one line typed at the prompt.
func (b *bubble) execute(line string) tea.Cmd {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	b.remember(line)
	b.inputC.Reset()

	program, err := script.ParseString(line)
	if err != nil {
		log.Debugf("repl: %v", err)
		return b.handleSyntaxError(line, err)
	}

	var cleared bool
	for _, in := range program {
		input := line
		if len(program) > 1 {
			input = in.String()
		}

		b.record(input, script.Exec(b.stack, in))
		cleared = cleared || in.Op == script.OpClear
	}

	if cleared {
		return ui.Notify("stack cleared")
	}
	return nil
}

// handleSyntaxError records the error and, when a close operation exists, loads the corrected line into the prompt.
func (b *bubble) handleSyntaxError(line string, err error) tea.Cmd {
	var syntaxErr *script.SyntaxError
	if !errors.As(err, &syntaxErr) {
		b.recordErr(line, err)
		return nil
	}

	// The prompt holds a single line.
	syntaxErr.Line = 0
	if !viper.GetBool(keys.ReplSuggest) {
		syntaxErr.Suggestion = mo.None[script.Op]()
	}
	b.recordErr(line, syntaxErr)

	op, ok := syntaxErr.Suggestion.Get()
	if !ok {
		return nil
	}

	fields := strings.Fields(syntaxErr.Text)
	fields[0] = string(op)
	b.inputC.SetValue(strings.Replace(line, syntaxErr.Text, strings.Join(fields, " "), 1))
	b.inputC.CursorEnd()
	return ui.Notify("suggestion loaded, press enter to run it")
}
