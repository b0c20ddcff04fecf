// Package icon provides a multi-variant rendering engine for UI symbols and feedback indicators.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/spf13/viper"
	"github.com/stackq/stackq/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Push
	Pop
	Peek
	Lua
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: "", plain: "✓", kaomoji: "(ᵔᴥᵔ)", squares: "🟩"},
	Fail:     {emoji: "💥", nerd: "", plain: "✗", kaomoji: "(╯°□°)╯", squares: "🟥"},
	Progress: {emoji: "⏳", nerd: "", plain: "…", kaomoji: "(・_・ヾ", squares: "🟨"},
	Push:     {emoji: "⬇️", nerd: "", plain: "↓", kaomoji: "(っ˘ڡ˘ς)", squares: "🟦"},
	Pop:      {emoji: "⬆️", nerd: "", plain: "↑", kaomoji: "ヽ(°〇°)ﾉ", squares: "🟪"},
	Peek:     {emoji: "👀", nerd: "", plain: "?", kaomoji: "(⊙_⊙)", squares: "⬜"},
	Lua:      {emoji: "🌙", nerd: "", plain: "lua", kaomoji: "(◕‿◕)", squares: "🟦"},
}

// Get retrieves the representation for the receiver based on the global icons variant configuration.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	return icons[i].Get()
}
