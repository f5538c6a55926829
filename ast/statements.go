package ast

import (
	"bytes"
	"strings"
)

// Let declares a variable: "let x = 1;".
type Let struct {
	Name  string
	Value Expr
}

func (s *Let) stmtNode() {}

func (s *Let) String() string {
	return "let " + s.Name + " = " + s.Value.String() + ";"
}

// Const declares a constant: "const MAX = 10;".
type Const struct {
	Name  string
	Value Expr
}

func (s *Const) stmtNode() {}

func (s *Const) String() string {
	return "const " + s.Name + " = " + s.Value.String() + ";"
}

// Function declares a named function.
type Function struct {
	Name   string
	Params []string
	Body   *Block
}

func (s *Function) stmtNode() {}

func (s *Function) String() string {
	var out bytes.Buffer
	out.WriteString("fn ")
	out.WriteString(s.Name)
	out.WriteString("(")
	out.WriteString(strings.Join(s.Params, ", "))
	out.WriteString(") ")
	out.WriteString(s.Body.String())
	return out.String()
}

// If is a conditional. Else is nil, another *If for an else-if arm, or a
// *Block.
type If struct {
	Condition Expr
	Then      *Block
	Else      Stmt
}

func (s *If) stmtNode() {}

func (s *If) String() string {
	var out bytes.Buffer
	out.WriteString("if ")
	out.WriteString(s.Condition.String())
	out.WriteString(" ")
	out.WriteString(s.Then.String())
	if s.Else != nil {
		out.WriteString(" else ")
		out.WriteString(s.Else.String())
	}
	return out.String()
}

// Return exits a function. Value is nil for a bare "return;".
type Return struct {
	Value Expr
}

func (s *Return) stmtNode() {}

func (s *Return) String() string {
	if s.Value == nil {
		return "return;"
	}
	return "return " + s.Value.String() + ";"
}

// Block is a brace delimited list of statements.
type Block struct {
	Statements []Stmt
}

func (s *Block) stmtNode() {}

func (s *Block) String() string {
	if len(s.Statements) == 0 {
		return "{}"
	}
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, stmt := range s.Statements {
		out.WriteString(stmt.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// ExpressionStmt is an expression evaluated for its effect: "f();".
type ExpressionStmt struct {
	Expr Expr
}

func (s *ExpressionStmt) stmtNode() {}

func (s *ExpressionStmt) String() string { return s.Expr.String() + ";" }

// Import names a module. Both import "name"; and import name; are accepted
// and produce the same node.
type Import struct {
	Module string
}

func (s *Import) stmtNode() {}

func (s *Import) String() string {
	return "import " + Str(s.Module).literal() + ";"
}

// Export marks a statement as exported.
type Export struct {
	Statement Stmt
}

func (s *Export) stmtNode() {}

func (s *Export) String() string { return "export " + s.Statement.String() }

// While is a loop that runs while its condition holds.
type While struct {
	Condition Expr
	Body      *Block
}

func (s *While) stmtNode() {}

func (s *While) String() string {
	return "while " + s.Condition.String() + " " + s.Body.String()
}

// For is a C style loop. Init, Condition and Update may each be nil.
type For struct {
	Init      Stmt
	Condition Expr
	Update    Expr
	Body      *Block
}

func (s *For) stmtNode() {}

func (s *For) String() string {
	var out bytes.Buffer
	out.WriteString("for (")
	if s.Init != nil {
		// The init statement prints its own terminator.
		out.WriteString(s.Init.String())
	} else {
		out.WriteString(";")
	}
	if s.Condition != nil {
		out.WriteString(" ")
		out.WriteString(s.Condition.String())
	}
	out.WriteString(";")
	if s.Update != nil {
		out.WriteString(" ")
		out.WriteString(s.Update.String())
	}
	out.WriteString(") ")
	out.WriteString(s.Body.String())
	return out.String()
}

// Break exits the innermost loop.
type Break struct{}

func (s *Break) stmtNode() {}

func (s *Break) String() string { return "break;" }

// Continue skips to the next iteration of the innermost loop.
type Continue struct{}

func (s *Continue) stmtNode() {}

func (s *Continue) String() string { return "continue;" }
