// Package cli maps parsed command-line arguments onto manager operations.
// It owns the exit-code policy: soft operation failures exit zero, only a
// storage save failure (or a broken interactive session) is non-zero.
package cli

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/task"
)

// Dispatcher routes commands to the Manager and translates outcomes into
// exit codes.
type Dispatcher struct {
	manager    *task.Manager
	errPrinter *output.Printer
	usage      string
	out        io.Writer
	errOut     io.Writer
	runUI      func() error
}

// New creates a Dispatcher. errPrinter should write to errOut; it is used
// only for fatal save-failure reporting.
func New(manager *task.Manager, errPrinter *output.Printer, usage string, out, errOut io.Writer) *Dispatcher {
	return &Dispatcher{
		manager:    manager,
		errPrinter: errPrinter,
		usage:      usage,
		out:        out,
		errOut:     errOut,
	}
}

// SetUIRunner registers the interactive mode entry point. When unset, the
// "ui" command is reported as unknown.
func (d *Dispatcher) SetUIRunner(run func() error) {
	d.runUI = run
}

// Run dispatches args (without the program name) and returns the exit code.
func (d *Dispatcher) Run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(d.out, d.usage)
		return exitcode.Success
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "add":
		if len(rest) == 0 {
			fmt.Fprintln(d.errOut, "error: add requires a task description")
			return exitcode.Success
		}
		// Join so unquoted multi-word descriptions work.
		return d.finish(d.manager.Add(strings.Join(rest, " ")))

	case "list":
		d.manager.List()
		return exitcode.Success

	case "complete":
		if len(rest) != 1 {
			fmt.Fprintln(d.errOut, "error: complete requires a task number")
			return exitcode.Success
		}
		return d.finish(d.manager.Complete(rest[0]))

	case "remove":
		if len(rest) != 1 {
			fmt.Fprintln(d.errOut, "error: remove requires a task number")
			return exitcode.Success
		}
		return d.finish(d.manager.Remove(rest[0]))

	case "clear":
		return d.finish(d.manager.ClearCompleted())

	case "ui":
		if d.runUI == nil {
			break
		}
		if err := d.runUI(); err != nil {
			fmt.Fprintf(d.errOut, "error running interactive mode: %v\n", err)
			return exitcode.AppError
		}
		return exitcode.Success
	}

	fmt.Fprintf(d.errOut, "unknown command: %s\n\n", cmd)
	fmt.Fprint(d.errOut, d.usage)
	return exitcode.Success
}

// finish converts a manager outcome into an exit code. Soft failures (ok ==
// false, err == nil) still exit zero; only a save error is fatal.
func (d *Dispatcher) finish(ok bool, err error) int {
	if err != nil {
		d.errPrinter.Error("Error saving tasks: " + err.Error())
		return exitcode.SaveError
	}
	_ = ok
	return exitcode.Success
}
