package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qbit-lang/qbit/errors"
	"github.com/qbit-lang/qbit/lsp"
)

func (a *app) lintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [file]",
		Short: "Check qbit code for naming issues",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, name, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			format, err := a.outputFormat()
			if err != nil {
				return err
			}
			strict, err := cmd.Flags().GetBool("strict")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			var warnings int
			if format != "text" {
				res := lsp.New(
					lsp.WithLogger(a.log),
					lsp.WithParserOptions(a.parserOptions()...),
				).ParseCode(source)
				if err := a.writeStructured(out, format, res); err != nil {
					return err
				}
				if !res.Success {
					return fmt.Errorf("%s: parse failed", name)
				}
				warnings = len(res.Warnings)
			} else {
				result, err := a.parse(cmd, source, name)
				if err != nil {
					return err
				}
				warnings = len(result.Warnings)
				if warnings == 0 {
					fmt.Fprintf(out, "%s: no problems found\n", name)
				} else {
					formatted := make([]*errors.FormattedError, 0, warnings)
					for _, w := range result.Warnings {
						formatted = append(formatted, w.ToFormatted(name))
					}
					fmt.Fprint(out, errors.NewFormatter(a.useColor()).FormatMultiple(formatted))
				}
			}
			if strict && warnings > 0 {
				return fmt.Errorf("%s: %d warnings", name, warnings)
			}
			return nil
		},
	}
	addInputFlags(cmd)
	cmd.Flags().Bool("strict", false, "exit with an error when there are warnings")
	return cmd
}
