// Package exitcode defines process exit codes for the CLI.
package exitcode

const (
	// Success indicates normal completion. Operations that report a
	// user-facing failure (bad index, empty text, nothing to clear) still
	// exit with Success.
	Success = 0

	// SaveError indicates a fatal storage write failure.
	SaveError = 1

	// AppError indicates a startup or interactive-mode failure
	// (config load, terminal init).
	AppError = 2
)
