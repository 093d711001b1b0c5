// Package cmd implements the CLI commands for docx2md using Cobra.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/docx2md/internal/logging"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitFailures = 1
	ExitNoInput  = 2
)

// ExitError ends the process with Code. Err, when set, is printed first.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// globalOptions are the flags shared by every command.
type globalOptions struct {
	verbose   bool
	logFormat *enumValue
	logger    *slog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{logFormat: newEnumValue("text", "text", "json")}

	root := &cobra.Command{
		Use:   "docx2md",
		Short: "Convert Word documents into clean Markdown notes",
		Long: `docx2md converts .docx files into Markdown for note-taking tools.
Pandoc does the conversion when it is installed; otherwise a pure-Go
converter is used. The output is normalized: blank lines around headings
and lists, Word table-of-contents links pointing at real heading anchors,
and flattened "1." section numbers renumbered.

Usage:
  docx2md convert <inputs...> [flags]
  docx2md lint <files...> [--check]`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			format, err := logging.ParseFormat(opts.logFormat.String())
			if err != nil {
				return err
			}
			opts.logger = logging.New(cmd.ErrOrStderr(), logging.Verbosity(opts.verbose), format)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().Var(opts.logFormat, "log-format", "Log format: text or json")

	root.AddCommand(newConvertCmd(opts), newLintCmd(opts))
	return root
}

// Execute runs the root command and exits with the command's exit code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err, os.Stderr))
}

// exitCode prints err when it carries a message and maps it to an exit code.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return ExitOK
	}
	var exit *ExitError
	if errors.As(err, &exit) {
		if exit.Err != nil {
			fmt.Fprintln(stderr, "Error:", exit.Err)
		}
		return exit.Code
	}
	fmt.Fprintln(stderr, "Error:", err)
	return ExitFailures
}
