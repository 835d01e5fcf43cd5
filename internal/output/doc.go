// Package output provides structured output handling for the deckhand CLI.
//
// This package handles both human-readable and JSON output formats, so every
// command works equally well for human users and for scripts or agents that
// consume --json output.
//
// # Printer
//
// The Printer is the primary interface for command output. It switches format
// based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Success(map[string]any{"message": "Export complete", "cards": 12})
//	printer.Error(err)
//	printer.Warn("error writing file %s: %v", filename, err)
//
// Warnings are the non-fatal path: a single record that fails to write is
// reported through Warn and the build continues.
//
// # Exit Codes
//
// The package defines exit codes and error constructors:
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad flags, broken docs tree)
//	output.ExitSystemError // 2: System error (I/O failure)
//
//	output.NewUserError("no toctree declared in index.md")
//	output.NewSystemError("creating output directory failed")
//
// These errors carry exit codes used for both JSON error output and the
// process exit status.
package output
