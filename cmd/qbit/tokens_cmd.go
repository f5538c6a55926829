package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qbit-lang/qbit/errors"
	"github.com/qbit-lang/qbit/internal/lexer"
)

type tokenEntry struct {
	Type    string `json:"type" yaml:"type"`
	Literal string `json:"literal,omitempty" yaml:"literal,omitempty"`
	Start   int    `json:"start" yaml:"start"`
	End     int    `json:"end" yaml:"end"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
}

func (a *app) tokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Display the tokens of qbit code",
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
			tokens, err := lexer.Tokenize(source)
			if err != nil {
				a.printError(cmd.ErrOrStderr(), err, name)
				return fmt.Errorf("%s: lexing failed", name)
			}
			entries := make([]tokenEntry, 0, len(tokens))
			for _, tok := range tokens {
				ctx := errors.NewContext(source, tok.Span)
				entries = append(entries, tokenEntry{
					Type:    string(tok.Type),
					Literal: tok.Literal,
					Start:   tok.Span.Start,
					End:     tok.Span.End,
					Line:    ctx.Line,
					Column:  ctx.ColumnStart,
				})
			}
			if format != "text" {
				return a.writeStructured(cmd.OutOrStdout(), format, entries)
			}
			for i, e := range entries {
				loc := fmt.Sprintf("%d:%d", e.Line, e.Column)
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-14s %s\n", loc, e.Type, tokens[i].Describe())
			}
			return nil
		},
	}
	addInputFlags(cmd)
	return cmd
}
