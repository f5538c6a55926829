package syntax

import "github.com/qbit-lang/qbit/ast"

// SyntaxValidator validates an AST against a SyntaxConfig.
type SyntaxValidator struct {
	config SyntaxConfig
}

// NewSyntaxValidator creates a validator for the given configuration.
func NewSyntaxValidator(config SyntaxConfig) *SyntaxValidator {
	return &SyntaxValidator{config: config}
}

// Validate checks the AST against the syntax configuration.
func (v *SyntaxValidator) Validate(program *ast.Program) []ValidationError {
	var errors []ValidationError
	for node := range ast.Preorder(program) {
		if msg := v.check(node); msg != "" {
			errors = append(errors, ValidationError{Message: msg, Node: node})
		}
	}
	return errors
}

func (v *SyntaxValidator) check(node ast.Node) string {
	cfg := v.config
	switch node.(type) {
	case *ast.Let, *ast.Const:
		if cfg.DisallowVariableDecl {
			return "variable declarations are not allowed"
		}
	case *ast.Assignment, *ast.CompoundAssignment,
		*ast.PreIncrement, *ast.PostIncrement,
		*ast.PreDecrement, *ast.PostDecrement:
		if cfg.DisallowAssignment {
			return "assignment is not allowed"
		}
	case *ast.Return:
		if cfg.DisallowReturn {
			return "return statements are not allowed"
		}
	case *ast.Function:
		if cfg.DisallowFuncDef {
			return "function definitions are not allowed"
		}
	case *ast.Call:
		if cfg.DisallowFuncCall {
			return "function calls are not allowed"
		}
	case *ast.If:
		if cfg.DisallowIf {
			return "if statements are not allowed"
		}
	case *ast.While, *ast.For, *ast.Break, *ast.Continue:
		if cfg.DisallowLoops {
			return "loops are not allowed"
		}
	case *ast.Import:
		if cfg.DisallowImport {
			return "imports are not allowed"
		}
	case *ast.Export:
		if cfg.DisallowExport {
			return "exports are not allowed"
		}
	}
	return ""
}

// StructureValidator reports constructs the parser accepts but that have no
// meaning: assignment to something other than a variable, member or index,
// break or continue outside a loop, return outside a function, and imports
// or exports below the top level.
type StructureValidator struct{}

// NewStructureValidator returns a StructureValidator.
func NewStructureValidator() *StructureValidator {
	return &StructureValidator{}
}

type scope struct {
	topLevel bool
	inLoop   bool
	inFunc   bool
}

// Validate implements Validator.
func (v *StructureValidator) Validate(program *ast.Program) []ValidationError {
	var errs []ValidationError
	report := func(msg string, node ast.Node) {
		errs = append(errs, ValidationError{Message: msg, Node: node})
	}

	var walk func(node ast.Node, sc scope)
	walk = func(node ast.Node, sc scope) {
		inner := scope{inLoop: sc.inLoop, inFunc: sc.inFunc}
		switch n := node.(type) {
		case *ast.Program:
			for _, stmt := range n.Statements {
				walk(stmt, scope{topLevel: true})
			}
			return
		case *ast.Break:
			if !sc.inLoop {
				report("break outside loop", n)
			}
		case *ast.Continue:
			if !sc.inLoop {
				report("continue outside loop", n)
			}
		case *ast.Return:
			if !sc.inFunc {
				report("return outside function", n)
			}
		case *ast.Import:
			if !sc.topLevel {
				report("import must be at top level", n)
			}
		case *ast.Export:
			if !sc.topLevel {
				report("export must be at top level", n)
			}
			switch n.Statement.(type) {
			case *ast.Let, *ast.Const, *ast.Function:
			default:
				report("only declarations can be exported", n)
			}
			// The exported declaration keeps the scope of the export.
			walk(n.Statement, sc)
			return
		case *ast.Function:
			if n.Body != nil {
				walk(n.Body, scope{inFunc: true})
			}
			return
		case *ast.While:
			walk(n.Condition, inner)
			if n.Body != nil {
				walk(n.Body, scope{inLoop: true, inFunc: sc.inFunc})
			}
			return
		case *ast.For:
			for _, child := range []ast.Node{n.Init, n.Condition, n.Update} {
				if child != nil {
					walk(child, inner)
				}
			}
			if n.Body != nil {
				walk(n.Body, scope{inLoop: true, inFunc: sc.inFunc})
			}
			return
		case *ast.Assignment:
			checkTarget(n.Target, n, report)
		case *ast.CompoundAssignment:
			checkTarget(n.Target, n, report)
		case *ast.PreIncrement:
			checkTarget(n.Operand, n, report)
		case *ast.PostIncrement:
			checkTarget(n.Operand, n, report)
		case *ast.PreDecrement:
			checkTarget(n.Operand, n, report)
		case *ast.PostDecrement:
			checkTarget(n.Operand, n, report)
		}
		for _, child := range ast.Children(node) {
			walk(child, inner)
		}
	}
	walk(program, scope{topLevel: true})
	return errs
}

func checkTarget(target ast.Expr, node ast.Node, report func(string, ast.Node)) {
	switch target.(type) {
	case *ast.Variable, *ast.Member, *ast.Index:
	default:
		report("invalid assignment target", node)
	}
}
