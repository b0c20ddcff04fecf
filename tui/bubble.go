package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/stackq/stackq/internal/ui"
	"github.com/stackq/stackq/key"
	"github.com/stackq/stackq/script"
	"github.com/stackq/stackq/stack"
)

// entry is a line entered at the prompt together with its outcome.
type entry struct {
	input string
	step  script.Step
	err   error
}

type bubble struct {
	keymap   *keymap
	inputC   textinput.Model
	helpC    help.Model
	notifier *ui.Model

	stack   *stack.Stack[string]
	entries []entry

	// older and newer hold previously entered lines around the one being edited.
	older, newer stack.Stack[string]

	width int
}

func newBubble() *bubble {
	input := textinput.New()
	input.Prompt = viper.GetString(key.ReplPrompt)
	input.Placeholder = "push <value> | pop | peek | size | empty | clear"
	input.Focus()

	return &bubble{
		keymap:   newKeymap(),
		inputC:   input,
		helpC:    help.New(),
		notifier: &ui.Model{},
		stack:    stack.New[string](),
	}
}

// record appends an entry, keeping at most repl.history_size of them.
func (b *bubble) record(input string, step script.Step) {
	b.push(entry{input: input, step: step})
}

func (b *bubble) recordErr(input string, err error) {
	b.push(entry{input: input, err: err})
}

func (b *bubble) push(e entry) {
	b.entries = append(b.entries, e)
	if limit := viper.GetInt(key.ReplHistorySize); len(b.entries) > limit {
		b.entries = b.entries[len(b.entries)-limit:]
	}
}

// remember stores an executed line for recall.
// Lines stepped over while recalling are restored in order; the unsent draft at the bottom is dropped.
func (b *bubble) remember(line string) {
	for b.newer.Len() > 1 {
		b.older.Push(lo.Must(b.newer.Pop()))
	}
	b.newer.Clear()
	b.older.Push(line)
}

// recall moves one line between the history stacks, showing it in the prompt.
func (b *bubble) recall(from, to *stack.Stack[string]) {
	line, err := from.Pop()
	if err != nil {
		return
	}
	to.Push(b.inputC.Value())
	b.inputC.SetValue(line)
	b.inputC.CursorEnd()
}
