package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
	"github.com/stackq/stackq/color"
	"github.com/stackq/stackq/constant"
	"github.com/stackq/stackq/icon"
	"github.com/stackq/stackq/key"
	"github.com/stackq/stackq/style"
	"github.com/stackq/stackq/util"
)

func (b *bubble) View() string {
	lines := []string{
		style.Title(constant.App) + " " + style.Faint(util.Quantify(b.stack.Len(), "element", "elements")),
		"",
	}

	if viper.GetBool(key.ReplShowQueues) {
		primary, secondary := b.stack.Queues()
		lines = append(lines,
			queueLabel("primary", color.Primary)+" "+style.Cells(color.Primary, primary),
			queueLabel("secondary", color.Secondary)+" "+style.Cells(color.Secondary, secondary),
			"",
		)
	}

	for _, e := range b.entries {
		lines = append(lines, b.wrap(renderEntry(e)))
	}
	if len(b.entries) > 0 {
		lines = append(lines, "")
	}

	lines = append(lines, b.inputC.View(), "", b.helpC.View(b.keymap))

	return b.notifier.View(strings.Join(lines, "\n"))
}

func (b *bubble) wrap(s string) string {
	if b.width <= 0 {
		return s
	}
	return wrap.String(s, b.width)
}

func renderEntry(e entry) string {
	prompt := style.Faint(viper.GetString(key.ReplPrompt) + e.input)

	if e.err != nil {
		return fmt.Sprintf("%s  %s %s", prompt, style.Fg(color.Red)(icon.Get(icon.Fail)), e.err)
	}
	return prompt + "  " + e.step.Pretty()
}

// queueLabel renders a queue name as a tag of fixed width so both rows line up.
func queueLabel(name string, bg lipgloss.Color) string {
	return style.Tag(color.New("235"), bg)(fmt.Sprintf("%-9s", name))
}
