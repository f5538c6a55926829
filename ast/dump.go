package ast

// Dump converts a tree into plain maps and slices for serialization as JSON
// or YAML. Every node becomes a map with a "type" key naming the node.
func Dump(node Node) any {
	if node == nil {
		return nil
	}
	switch n := node.(type) {
	case *Program:
		return obj("Program", "statements", dumpStmts(n.Statements))
	case *Let:
		return obj("Let", "name", n.Name, "value", dumpExpr(n.Value))
	case *Const:
		return obj("Const", "name", n.Name, "value", dumpExpr(n.Value))
	case *Function:
		params := n.Params
		if params == nil {
			params = []string{}
		}
		return obj("Function", "name", n.Name, "params", params, "body", dumpBlock(n.Body))
	case *If:
		return obj("If", "condition", dumpExpr(n.Condition), "then", dumpBlock(n.Then), "else", dumpStmt(n.Else))
	case *Return:
		return obj("Return", "value", dumpExpr(n.Value))
	case *Block:
		return obj("Block", "statements", dumpStmts(n.Statements))
	case *ExpressionStmt:
		return obj("Expression", "expr", dumpExpr(n.Expr))
	case *Import:
		return obj("Import", "module", n.Module)
	case *Export:
		return obj("Export", "statement", dumpStmt(n.Statement))
	case *While:
		return obj("While", "condition", dumpExpr(n.Condition), "body", dumpBlock(n.Body))
	case *For:
		return obj("For", "init", dumpStmt(n.Init), "condition", dumpExpr(n.Condition),
			"update", dumpExpr(n.Update), "body", dumpBlock(n.Body))
	case *Break:
		return obj("Break")
	case *Continue:
		return obj("Continue")

	case *Literal:
		return obj("Literal", "kind", n.Value.TypeName(), "value", dumpValue(n.Value))
	case *Variable:
		return obj("Variable", "name", n.Name)
	case *Binary:
		return obj("Binary", "op", n.Op.String(), "left", dumpExpr(n.Left), "right", dumpExpr(n.Right))
	case *Unary:
		return obj("Unary", "op", n.Op.String(), "operand", dumpExpr(n.Operand))
	case *Group:
		return obj("Group", "inner", dumpExpr(n.Inner))
	case *Call:
		return obj("Call", "callee", dumpExpr(n.Callee), "args", dumpExprs(n.Args))
	case *Member:
		return obj("Member", "object", dumpExpr(n.Object), "property", n.Property)
	case *Index:
		return obj("Index", "object", dumpExpr(n.Object), "index", dumpExpr(n.Index))
	case *Array:
		return obj("Array", "elements", dumpExprs(n.Elements))
	case *Assignment:
		return obj("Assignment", "target", dumpExpr(n.Target), "value", dumpExpr(n.Value))
	case *CompoundAssignment:
		return obj("CompoundAssignment", "target", dumpExpr(n.Target), "op", n.Op.String(), "value", dumpExpr(n.Value))
	case *PreIncrement:
		return obj("PreIncrement", "operand", dumpExpr(n.Operand))
	case *PostIncrement:
		return obj("PostIncrement", "operand", dumpExpr(n.Operand))
	case *PreDecrement:
		return obj("PreDecrement", "operand", dumpExpr(n.Operand))
	case *PostDecrement:
		return obj("PostDecrement", "operand", dumpExpr(n.Operand))
	}
	return nil
}

func obj(typ string, kv ...any) map[string]any {
	m := map[string]any{"type": typ}
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i].(string)] = kv[i+1]
	}
	return m
}

func dumpExpr(e Expr) any {
	if e == nil {
		return nil
	}
	return Dump(e)
}

func dumpStmt(s Stmt) any {
	if s == nil {
		return nil
	}
	return Dump(s)
}

func dumpBlock(b *Block) any {
	if b == nil {
		return nil
	}
	return Dump(b)
}

func dumpExprs(exprs []Expr) []any {
	out := make([]any, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, Dump(e))
	}
	return out
}

func dumpStmts(stmts []Stmt) []any {
	out := make([]any, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, Dump(s))
	}
	return out
}

func dumpValue(v Value) any {
	switch v := v.(type) {
	case Int:
		return int64(v)
	case Float:
		return float64(v)
	case Bool:
		return bool(v)
	case Str:
		return string(v)
	}
	return nil
}
