// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these keys govern output rendering.
const (
	CliColored   = "cli.colored"
	IconsVariant = "icons.variant"
)

// Script Runner - these keys configure non-interactive execution of stack programs.
const (
	RunBackend = "run.backend"
	RunJson    = "run.json"
	RunTrace   = "run.trace"
)

// Interactive Mode - these keys configure the REPL.
const (
	ReplPrompt      = "repl.prompt"
	ReplShowQueues  = "repl.show_queues"
	ReplSuggest     = "repl.suggest"
	ReplHistorySize = "repl.history_size"
)

// Lua Scripts
const (
	ScriptsLuaLibs = "scripts.lua_libs"
)
