package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stackq/stackq/color"
	"github.com/stackq/stackq/config"
	"github.com/stackq/stackq/constant"
	"github.com/stackq/stackq/filesystem"
	"github.com/stackq/stackq/icon"
	"github.com/stackq/stackq/key"
	"github.com/stackq/stackq/log"
	"github.com/stackq/stackq/script"
	"github.com/stackq/stackq/stack"
	"github.com/stackq/stackq/style"
	"github.com/stackq/stackq/util"
	"github.com/stackq/stackq/where"
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("exec", "e", "", "Run an inline program, instructions separated by ';'")
	runCmd.Flags().StringP("backend", "b", "", "Stack implementation to drive: queues or slice")
	lo.Must0(viper.BindPFlag(key.RunBackend, runCmd.Flags().Lookup("backend")))
	lo.Must0(runCmd.RegisterFlagCompletionFunc("backend", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return config.Backends, cobra.ShellCompDirectiveNoFileComp
	}))

	runCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	lo.Must0(viper.BindPFlag(key.RunJson, runCmd.Flags().Lookup("json")))

	runCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")
}

// runCmd executes a stack program non-interactively.
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Execute a stack program or a Lua script",
	Long: `Execute a stack program non-interactively and print the outcome of every instruction.

Instructions, one per line or separated by ';':
  push <value> - place value on top of the stack
  pop          - remove and print the top
  peek         - print the top without removing it
  size         - print the number of elements
  empty        - print whether the stack is empty
  clear        - remove every element

Files ending in .lua are executed as Lua scripts with require("stack").
Use "-" to read the program from stdin. Bare file names are also looked up in the scripts directory.
A pop or peek on an empty stack is reported as a failed step; execution continues.`,
	Example: `  stackq run -e "push 1; push 2; pop"
  stackq run program.txt --json
  stackq run rotate.lua --backend slice`,
	Args: cobra.MaximumNArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && lo.Must(cmd.Flags().GetString("exec")) == "" {
			handleErr(errNoProgram)
		}
		handleErr(config.Validate())
	},
	Run: func(cmd *cobra.Command, args []string) {
		var (
			backend = viper.GetString(key.RunBackend)
			s       = newStack(backend)
			out     = cmd.OutOrStdout()
		)

		if path := lo.Must(cmd.Flags().GetString("output")); path != "" {
			file, err := filesystem.API().Create(path)
			handleErr(err)
			defer util.Ignore(file.Close)
			out = file
		}

		steps, err := runProgram(cmd, s, args, out)
		handleErr(err)

		log.Infof("run finished: backend=%s steps=%d failed=%d", backend, len(steps), len(script.FailedSteps(steps)))

		if viper.GetBool(key.RunJson) {
			encoder := json.NewEncoder(out)
			handleErr(encoder.Encode(script.NewOutput(backend, steps, s.Values())))
			return
		}

		printSteps(out, steps, s)
	},
}

func newStack(backend string) stack.Interface[string] {
	if backend == "slice" {
		return stack.NewSlice[string]()
	}
	return stack.New[string]()
}

var errNoProgram = errors.New("either a file argument or a non-empty --exec must be given")

func runProgram(cmd *cobra.Command, s stack.Interface[string], args []string, out io.Writer) ([]script.Step, error) {
	if src := lo.Must(cmd.Flags().GetString("exec")); src != "" {
		program, err := script.ParseString(src)
		if err != nil {
			return nil, err
		}
		return script.Run(s, program), nil
	}

	if len(args) == 0 {
		return nil, errNoProgram
	}

	if args[0] == "-" {
		program, err := script.Parse(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		return script.Run(s, program), nil
	}

	path := resolveScript(args[0])

	if filepath.Ext(path) == ".lua" {
		// Keep stdout parseable when it carries JSON.
		printOut := out
		if viper.GetBool(key.RunJson) {
			printOut = cmd.ErrOrStderr()
		}
		return script.RunLua(s, path, printOut)
	}

	file, err := filesystem.API().Open(path)
	if err != nil {
		return nil, err
	}
	defer util.Ignore(file.Close)

	program, err := script.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return script.Run(s, program), nil
}

// resolveScript falls back to the scripts directory when path does not exist as given.
func resolveScript(path string) string {
	if exists, _ := filesystem.API().Exists(path); exists {
		return path
	}

	candidate := filepath.Join(where.Scripts(), path)
	if exists, _ := filesystem.API().Exists(candidate); exists {
		return candidate
	}
	return path
}

func printSteps(out io.Writer, steps []script.Step, s stack.Interface[string]) {
	var (
		width  = util.TerminalWidth(80)
		digits = util.Max(len(strconv.Itoa(len(steps))), 3)
	)
	for i, step := range steps {
		line := fmt.Sprintf("%s %s  %s", style.Faint(fmt.Sprintf("%*d", digits, i+1)), step.Instruction, step.Pretty())
		fmt.Fprintln(out, wrap.String(line, width))
	}

	failed := len(script.FailedSteps(steps))
	summary := fmt.Sprintf(
		"%s, %s, final stack %s",
		util.Quantify(len(steps), "step", "steps"),
		util.Quantify(failed, "failure", "failures"),
		style.Cells(color.Primary, s.Values()),
	)
	fmt.Fprintln(out)
	fmt.Fprintln(out, style.Faint(summary))
}

func init() {
	runCmd.AddCommand(runSchemaCmd)
}

// runSchemaCmd prints the JSON schema of the --json output.
var runSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the structured run output",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(json.NewEncoder(os.Stdout).Encode(script.Schema()))
	},
}

func init() {
	runCmd.AddCommand(runTemplateCmd)
	runTemplateCmd.Flags().StringP("name", "n", "example", "Name written in the script header")
	runTemplateCmd.Flags().BoolP("write", "w", false, "Write the script into the scripts directory instead of printing it")
}

// runTemplateCmd scaffolds a Lua script.
var runTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print a starter Lua script",
	Run: func(cmd *cobra.Command, args []string) {
		name := lo.Must(cmd.Flags().GetString("name"))

		tmpl, err := template.New("script").Parse(constant.ScriptTemplate)
		handleErr(err)

		var out io.Writer = cmd.OutOrStdout()
		if lo.Must(cmd.Flags().GetBool("write")) {
			path := filepath.Join(where.Scripts(), name+".lua")
			file, err := filesystem.API().Create(path)
			handleErr(err)
			defer util.Ignore(file.Close)
			out = file
			defer fmt.Printf("%s wrote %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
		}

		handleErr(tmpl.Execute(out, map[string]string{
			"Name":   name,
			"App":    constant.App,
			"Module": constant.LuaModule,
		}))
	},
}
