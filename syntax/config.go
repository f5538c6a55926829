package syntax

import "fmt"

// SyntaxConfig restricts which language features a program may use. The
// zero value allows everything.
type SyntaxConfig struct {
	// Statements
	DisallowVariableDecl bool // let, const
	DisallowAssignment   bool // x = value, x += value, x++

	// Functions
	DisallowReturn   bool // return statements
	DisallowFuncDef  bool // fn declarations
	DisallowFuncCall bool // calling functions

	// Control flow
	DisallowIf    bool // if/else
	DisallowLoops bool // while, for, break, continue

	// Modules
	DisallowImport bool
	DisallowExport bool
}

// Presets for common use cases.
var (
	// ExpressionOnly restricts programs to expression statements without
	// assignment: literals, operators, variable access, indexing, member
	// access and calls.
	ExpressionOnly = SyntaxConfig{
		DisallowVariableDecl: true,
		DisallowAssignment:   true,
		DisallowReturn:       true,
		DisallowFuncDef:      true,
		DisallowIf:           true,
		DisallowLoops:        true,
		DisallowImport:       true,
		DisallowExport:       true,
	}

	// BasicScripting allows control flow and bindings but no reusable
	// functions or modules.
	BasicScripting = SyntaxConfig{
		DisallowReturn:  true,
		DisallowFuncDef: true,
		DisallowImport:  true,
		DisallowExport:  true,
	}

	// FullLanguage allows all features.
	FullLanguage = SyntaxConfig{}
)

// Presets maps preset names accepted on the command line to configurations.
var Presets = map[string]SyntaxConfig{
	"full":       FullLanguage,
	"scripting":  BasicScripting,
	"expression": ExpressionOnly,
}

// PresetNames lists the keys of Presets in a stable order.
var PresetNames = []string{"full", "scripting", "expression"}

// LookupPreset returns the named preset.
func LookupPreset(name string) (SyntaxConfig, error) {
	cfg, ok := Presets[name]
	if !ok {
		return SyntaxConfig{}, fmt.Errorf("unknown syntax preset: %s", name)
	}
	return cfg, nil
}
