// pattern: Functional Core
package cli

import (
	"fmt"
	"io"
	"os"
)

// Command represents a single CLI command with its metadata and handler.
type Command struct {
	Name    string
	Summary string
	Usage   string
	Run     func(args []string) error
}

// App dispatches subcommands. With no subcommand the caller runs the
// default clean action.
type App struct {
	commands map[string]*Command
	order    []string
	version  string
	stdout   io.Writer
	stderr   io.Writer
	exit     func(int)
}

// NewApp creates a new CLI application with the given version.
func NewApp(version string) *App {
	return &App{
		commands: make(map[string]*Command),
		version:  version,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		exit:     os.Exit,
	}
}

// AddCommand registers a command. Help lists commands in registration order.
func (a *App) AddCommand(cmd *Command) {
	if _, ok := a.commands[cmd.Name]; !ok {
		a.order = append(a.order, cmd.Name)
	}
	a.commands[cmd.Name] = cmd
}

// Execute dispatches the CLI arguments to the appropriate command.
// Returns true if the default clean action should run.
func (a *App) Execute(args []string) bool {
	if len(args) == 0 {
		return true
	}

	cmdName := args[0]
	if cmdName == "help" {
		a.PrintHelp(a.stdout)
		return false
	}

	cmd, ok := a.commands[cmdName]
	if !ok {
		fmt.Fprintf(a.stderr, "unknown command %q\n\n", cmdName)
		a.PrintHelp(a.stderr)
		a.exit(1)
		return false
	}

	for _, arg := range args[1:] {
		if arg == "--help" || arg == "-h" {
			fmt.Fprintf(a.stderr, "%s\n", cmd.Usage)
			return false
		}
	}

	if err := cmd.Run(args[1:]); err != nil {
		fmt.Fprintf(a.stderr, "error: %v\n", err)
		a.exit(1)
	}
	return false
}

// PrintHelp prints the top-level help text.
func (a *App) PrintHelp(w io.Writer) {
	fmt.Fprintf(w, "clean-node-deps %s\n", a.version)
	fmt.Fprintf(w, "Remove node_modules from every project below the current directory.\n\n")
	fmt.Fprintf(w, "Usage: cleandeps [options] [command]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, name := range a.order {
		cmd := a.commands[name]
		fmt.Fprintf(w, "  %-10s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintf(w, "  %-10s %s\n", "(none)", "Scan and delete node_modules, asking first")
	fmt.Fprintf(w, "\nOptions:\n")
}
