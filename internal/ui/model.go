// Package ui provides ephemeral notifications for Bubble Tea views.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// notificationLifetime is how long a notification stays on screen.
const notificationLifetime = 3 * time.Second

// Model holds the notification currently on display.
type Model struct {
	notification string
	// generation discards clear messages scheduled for an older notification.
	generation int
}

// NotificationMsg carries a notification to display.
type NotificationMsg string

type clearNotificationMsg struct {
	generation int
}

// Notify returns a tea.Cmd that displays msg.
func Notify(msg string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg(msg)
	}
}

// Update processes incoming messages to modify the notification state.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.notification = string(msg)
		m.generation++
		generation := m.generation
		return tea.Tick(notificationLifetime, func(time.Time) tea.Msg {
			return clearNotificationMsg{generation: generation}
		})
	case clearNotificationMsg:
		if msg.generation == m.generation {
			m.notification = ""
		}
	}
	return nil
}

// Current returns the notification on display, empty if none.
func (m *Model) Current() string {
	return m.notification
}

// View appends the current notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == "" {
		return mainContent
	}

	lines := strings.Split(mainContent, "\n")
	lines[len(lines)-1] += "  \033[90m" + m.notification + "\033[0m"
	return strings.Join(lines, "\n")
}
