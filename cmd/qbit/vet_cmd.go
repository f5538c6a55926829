package main

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qbit-lang/qbit/syntax"
)

type violation struct {
	Message string `json:"message" yaml:"message"`
	Node    string `json:"node" yaml:"node"`
}

func (a *app) vetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet [file]",
		Short: "Report constructs that parse but are invalid",
		Long: `Parse qbit code and check it for statements out of place, such as break
outside a loop or return outside a function, and for assignments to
expressions that cannot be assigned. A preset further restricts which
language features may be used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.v.BindPFlag("preset", cmd.Flags().Lookup("preset")); err != nil {
				return err
			}
			source, name, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			format, err := a.outputFormat()
			if err != nil {
				return err
			}
			preset, err := syntax.LookupPreset(a.v.GetString("preset"))
			if err != nil {
				return err
			}
			result, err := a.parse(cmd, source, name)
			if err != nil {
				return err
			}

			verr := syntax.Validate(result.Program(),
				syntax.NewStructureValidator(),
				syntax.NewSyntaxValidator(preset))
			var errs []syntax.ValidationError
			var verrs *syntax.ValidationErrors
			if stderrors.As(verr, &verrs) {
				errs = verrs.Errors
			}
			a.log.Debug().Str("file", name).Int("violations", len(errs)).Msg("vetted")

			out := cmd.OutOrStdout()
			if format != "text" {
				report := make([]violation, 0, len(errs))
				for _, e := range errs {
					report = append(report, violation{Message: e.Message, Node: e.Node.String()})
				}
				if err := a.writeStructured(out, format, report); err != nil {
					return err
				}
			} else if len(errs) == 0 {
				fmt.Fprintf(out, "%s: ok\n", name)
			} else {
				for _, e := range errs {
					fmt.Fprintf(out, "%s: %s\n", name, e.Error())
				}
			}
			if len(errs) > 0 {
				return fmt.Errorf("%s: %d problems", name, len(errs))
			}
			return nil
		},
	}
	addInputFlags(cmd)
	cmd.Flags().String("preset", "full",
		"restrict language features ("+strings.Join(syntax.PresetNames, ", ")+")")
	_ = cmd.RegisterFlagCompletionFunc("preset", cobra.FixedCompletions(syntax.PresetNames, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}
