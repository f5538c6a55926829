package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/qbit-lang/qbit/errors"
	"github.com/qbit-lang/qbit/lsp"
	"github.com/qbit-lang/qbit/parser"
)

func (a *app) parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Check that qbit code parses",
		Long: `Parse qbit code and report the first syntax error, if any, along with
naming warnings for code that parses.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, name, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			format, err := a.outputFormat()
			if err != nil {
				return err
			}
			if format != "text" {
				res := lsp.New(
					lsp.WithLogger(a.log),
					lsp.WithParserOptions(a.parserOptions()...),
				).ParseCode(source)
				if err := a.writeStructured(cmd.OutOrStdout(), format, res); err != nil {
					return err
				}
				if !res.Success {
					return fmt.Errorf("%s: parse failed", name)
				}
				return nil
			}
			result, err := a.parse(cmd, source, name)
			if err != nil {
				return err
			}
			a.printWarnings(cmd.OutOrStdout(), result.Warnings, name)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d statements, %d warnings)\n",
				name, len(result.Statements), len(result.Warnings))
			return nil
		},
	}
	addInputFlags(cmd)
	return cmd
}

// parse parses source, printing a formatted error to stderr on failure.
func (a *app) parse(cmd *cobra.Command, source, name string) (*parser.Result, error) {
	start := time.Now()
	a.log.Debug().Str("file", name).Int("bytes", len(source)).Msg("parsing")
	result, err := parser.Parse(source, a.parserOptions()...)
	if err != nil {
		a.printError(cmd.ErrOrStderr(), err, name)
		return nil, fmt.Errorf("%s: parse failed", name)
	}
	a.log.Debug().
		Str("file", name).
		Int("statements", len(result.Statements)).
		Int("warnings", len(result.Warnings)).
		Dur("elapsed", time.Since(start)).
		Msg("parsed")
	return result, nil
}

func (a *app) printError(w io.Writer, err error, name string) {
	var perr *errors.Error
	if !stderrors.As(err, &perr) {
		fmt.Fprintln(w, err)
		return
	}
	f := errors.NewFormatter(a.useColor())
	fmt.Fprint(w, f.Format(perr.ToFormatted(name)))
}

func (a *app) printWarnings(w io.Writer, warnings []*errors.Warning, name string) {
	f := errors.NewFormatter(a.useColor())
	for _, warning := range warnings {
		fmt.Fprintln(w, f.Format(warning.ToFormatted(name)))
	}
}
