package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/qbit-lang/qbit/lsp"
	"github.com/qbit-lang/qbit/parser"
)

// fileReport is the structured outcome of checking one file.
type fileReport struct {
	File       string `json:"file" yaml:"file"`
	lsp.Result `yaml:",inline"`
}

type checked struct {
	result *parser.Result
	err    error
}

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check file...",
		Short: "Parse several qbit files concurrently",
		Long: `Parse every given file and report which ones fail. Files are parsed
concurrently; the command fails if any file does not parse.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat()
			if err != nil {
				return err
			}
			jobs, err := cmd.Flags().GetInt("jobs")
			if err != nil {
				return err
			}
			files, err := a.checkFiles(cmd.Context(), args, jobs)
			if err != nil {
				return err
			}

			adapter := lsp.New(lsp.WithLogger(a.log))
			var merr *multierror.Error
			reports := make([]fileReport, 0, len(args))
			for i, name := range args {
				file := files[i]
				report := fileReport{File: name, Result: lsp.Result{Success: file.err == nil, Errors: []lsp.Record{}, Warnings: []lsp.Record{}}}
				if file.err != nil {
					merr = multierror.Append(merr, fmt.Errorf("%s: %w", name, file.err))
					report.Errors = append(report.Errors, adapter.FromError(file.err))
				} else {
					for _, d := range file.result.Diagnostics {
						report.Warnings = append(report.Warnings, lsp.FromDiagnostic(d))
					}
				}
				reports = append(reports, report)

				if format != "text" {
					continue
				}
				if file.err != nil {
					a.printError(cmd.ErrOrStderr(), file.err, name)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d statements, %d warnings)\n",
					name, len(file.result.Statements), len(file.result.Warnings))
			}
			if format != "text" {
				if err := a.writeStructured(cmd.OutOrStdout(), format, reports); err != nil {
					return err
				}
			}
			if merr != nil {
				merr.ErrorFormat = func(errs []error) string {
					return fmt.Sprintf("%d of %d files failed to parse", len(errs), len(args))
				}
			}
			return merr.ErrorOrNil()
		},
	}
	cmd.Flags().IntP("jobs", "j", runtime.NumCPU(), "number of files parsed at once")
	return cmd
}

// checkFiles reads and parses every file. A file that cannot be read stops
// the whole check; parse failures are recorded per file.
func (a *app) checkFiles(ctx context.Context, names []string, jobs int) ([]checked, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	files := make([]checked, len(names))
	options := a.parserOptions()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(name)
			if err != nil {
				return err
			}
			result, err := parser.Parse(string(data), options...)
			files[i] = checked{result: result, err: err}
			a.log.Debug().Str("file", name).Bool("ok", err == nil).Msg("checked")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}
