package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qbit-lang/qbit/ast"
)

func (a *app) astCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ast [file]",
		Short: "Display the AST for qbit code",
		Long: `Parse qbit code and print its syntax tree. Text output prints the tree
back as canonical source; json and yaml output print every node.`,
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
			result, err := a.parse(cmd, source, name)
			if err != nil {
				return err
			}
			program := result.Program()
			if format == "text" {
				if len(program.Statements) > 0 {
					fmt.Fprintln(cmd.OutOrStdout(), program.String())
				}
				return nil
			}
			return a.writeStructured(cmd.OutOrStdout(), format, ast.Dump(program))
		},
	}
	addInputFlags(cmd)
	return cmd
}
