// Package main is the entry point for the todo CLI.
// It loads configuration, initializes storage, and dispatches the command.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"todo/internal/cli"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/storage"
	"todo/internal/task"
	"todo/internal/ui"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Version information - set by GoReleaser during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const helpText = `todo - A colorful command-line task list

USAGE:
    todo [OPTIONS] <command> [ARGS]

COMMANDS:
    add <text>         Add a new task
    list               List all tasks
    complete <index>   Mark a task as complete
    remove <index>     Remove a task
    clear              Clear all completed tasks
    ui                 Open the interactive task list

OPTIONS:
    -h, --help         Show this help message
    -v, --version      Show version information
    --file PATH        Use PATH as the tasks file (overrides config)
    --no-color         Disable colored output

DESCRIPTION:
    Tasks are stored as a plain JSON file (default: ~/.todo/tasks.json).
    Indices for complete/remove are 1-based positions in the stored list.

CONFIGURATION:
    Optional config file: ~/.config/todo/config.yaml
    Supported keys: data_dir, no_color, theme (success/error/info/warning/
    accent/muted hex colors).

EXAMPLES:
    todo add "Buy groceries"
    todo list
    todo complete 1
    todo remove 1
    todo clear
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	showVersion := fs.Bool("version", false, "show version information")
	fs.BoolVar(showVersion, "v", false, "show version information (shorthand)")

	showHelp := fs.Bool("help", false, "show help message")
	fs.BoolVar(showHelp, "h", false, "show help message (shorthand)")

	filePath := fs.String("file", "", "tasks file path")
	noColor := fs.Bool("no-color", false, "disable colored output")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %v\n\n", err)
		fmt.Fprint(errOut, helpText)
		return exitcode.AppError
	}

	if *showVersion {
		fmt.Fprintf(out, "todo version %s\n", version)
		fmt.Fprintf(out, "  commit: %s\n", commit)
		fmt.Fprintf(out, "  built:  %s\n", date)
		return exitcode.Success
	}

	if *showHelp {
		fmt.Fprint(out, helpText)
		return exitcode.Success
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(errOut, "Error loading config: %v\n", err)
		return exitcode.AppError
	}

	if cfg.NoColor || *noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	path := cfg.TasksPath()
	if *filePath != "" {
		path = *filePath
	}

	store, err := storage.New(path)
	if err != nil {
		fmt.Fprintf(errOut, "Error initializing storage: %v\n", err)
		return exitcode.AppError
	}

	styles := output.NewStyles(&cfg.Theme)
	manager := task.NewManager(store, output.NewPrinter(out, styles))

	dispatcher := cli.New(manager, output.NewPrinter(errOut, styles), helpText, out, errOut)
	dispatcher.SetUIRunner(func() error {
		return ui.Run(store, styles)
	})

	return dispatcher.Run(fs.Args())
}
