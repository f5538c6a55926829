package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var red = color.New(color.FgRed).SprintFunc()

var outputFormats = []string{"text", "json", "yaml"}

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	printError(s)
	os.Exit(1)
}

func printError(msg string) {
	fmt.Fprintf(os.Stderr, "%s\n", red(msg))
}

// outputFormat returns the validated --output value.
func (a *app) outputFormat() (string, error) {
	format := strings.ToLower(a.v.GetString("output"))
	switch format {
	case "", "text":
		return "text", nil
	case "json", "yaml":
		return format, nil
	}
	return "", fmt.Errorf("unknown output format: %s", format)
}

// writeStructured writes value as JSON or YAML.
func (a *app) writeStructured(w io.Writer, format string, value any) error {
	switch format {
	case "json":
		output, err := a.marshalJSON(value)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(output))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format: %s", format)
}

func (a *app) marshalJSON(value any) ([]byte, error) {
	if !a.useColor() {
		return json.MarshalIndent(value, "", "  ")
	}
	return prettyjson.Marshal(value)
}

// readSource determines what code a command works on. There are three
// possibilities:
//  1. --code <code>
//  2. --stdin (read code from stdin)
//  3. path as args[0]
//
// The returned name is used in messages; it is "<code>" or "<stdin>" when
// no file is involved.
func readSource(cmd *cobra.Command, args []string) (source, name string, err error) {
	var codeFlagSet bool
	if f := cmd.Flags().Lookup("code"); f != nil && f.Changed {
		codeFlagSet = true
	}
	var stdinFlagSet bool
	if f := cmd.Flags().Lookup("stdin"); f != nil && f.Changed {
		stdinFlagSet = true
	}
	pathSupplied := len(args) > 0
	// Error if multiple input sources are specified
	if pathSupplied && (codeFlagSet || stdinFlagSet) {
		return "", "", errors.New("multiple input sources specified")
	} else if codeFlagSet && stdinFlagSet {
		return "", "", errors.New("multiple input sources specified")
	}
	switch {
	case stdinFlagSet:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", err
		}
		return string(data), "<stdin>", nil
	case pathSupplied:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return string(data), args[0], nil
	case codeFlagSet:
		code, err := cmd.Flags().GetString("code")
		return code, "<code>", err
	}
	return "", "", errors.New("no input provided")
}

// addInputFlags registers the --code and --stdin flags.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("code", "c", "", "code to process")
	cmd.Flags().Bool("stdin", false, "read code from stdin")
}
