package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type runResult struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCommand(t *testing.T) {
	res := run(t, "", "parse", "-c", "let total = 1 + 2;")
	require.NoError(t, res.err)
	assert.Equal(t, "<code>: ok (1 statements, 0 warnings)\n", res.stdout)
}

func TestParseCommandWarnings(t *testing.T) {
	res := run(t, "", "parse", "-c", "let X = 1;")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "warning[W1001]: expected 'x'\n")
	assert.Contains(t, res.stdout, "  --> <code>:1:5\n")
	assert.Contains(t, res.stdout, "<code>: ok (1 statements, 1 warnings)\n")
}

func TestParseCommandError(t *testing.T) {
	res := run(t, "", "parse", "-c", "(5 + 3")
	require.Error(t, res.err)
	assert.Equal(t, "<code>: parse failed", res.err.Error())
	assert.Contains(t, res.stderr, "parse error[E1002]: unexpected end of file, expected ')'\n")
	assert.Empty(t, res.stdout)
}

func TestParseCommandFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.qb", "fn main() {\n  return 1;\n}\n")
	res := run(t, "", "parse", path)
	require.NoError(t, res.err)
	assert.Equal(t, path+": ok (1 statements, 0 warnings)\n", res.stdout)
}

func TestParseCommandStdin(t *testing.T) {
	res := run(t, "break;\ncontinue;\n", "parse", "--stdin")
	require.NoError(t, res.err)
	assert.Equal(t, "<stdin>: ok (2 statements, 0 warnings)\n", res.stdout)
}

func TestInputSources(t *testing.T) {
	res := run(t, "", "parse")
	assert.EqualError(t, res.err, "no input provided")

	res = run(t, "", "parse", "-c", "x;", "--stdin")
	assert.EqualError(t, res.err, "multiple input sources specified")

	res = run(t, "", "parse", "-c", "x;", "main.qb")
	assert.EqualError(t, res.err, "multiple input sources specified")
}

func TestParseCommandJSON(t *testing.T) {
	res := run(t, "", "parse", "-o", "json", "-c", "x")
	require.Error(t, res.err)
	assert.JSONEq(t, `{
		"success": false,
		"errors": [{"message": "unexpected end of file, expected ';'", "line": 1, "column": 2, "length": 1, "level": "error"}],
		"warnings": []
	}`, res.stdout)
}

func TestUnknownOutputFormat(t *testing.T) {
	res := run(t, "", "parse", "-o", "xml", "-c", "x;")
	assert.EqualError(t, res.err, "unknown output format: xml")
}

func TestMaxDepthFlag(t *testing.T) {
	res := run(t, "", "parse", "--max-depth", "2", "-c", "(((1)));")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "maximum recursion depth (2) exceeded at position 3")

	res = run(t, "", "parse", "--max-depth", "3", "-c", "(((1)));")
	assert.NoError(t, res.err)
}

func TestTrailingCommasFlag(t *testing.T) {
	res := run(t, "", "parse", "-c", "f(1,);")
	assert.NoError(t, res.err)

	res = run(t, "", "parse", "--trailing-commas=false", "-c", "f(1,);")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "syntax error: trailing comma not allowed before ')'")
}

func TestEnvironment(t *testing.T) {
	t.Setenv("QBIT_MAX_DEPTH", "1")
	res := run(t, "", "parse", "-c", "((1));")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "maximum recursion depth (1)")

	// Flags win over the environment.
	res = run(t, "", "parse", "--max-depth", "5", "-c", "((1));")
	assert.NoError(t, res.err)
}

func TestConfigFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "qbit.yaml", "trailing-commas: false\nmax-depth: 10\n")
	res := run(t, "", "--config", path, "parse", "-c", "[1,];")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "trailing comma not allowed before ']'")

	res = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "parse", "-c", "x;")
	require.Error(t, res.err)
	assert.True(t, strings.HasPrefix(res.err.Error(), "reading config: "))
}

func TestASTCommand(t *testing.T) {
	res := run(t, "", "ast", "-c", "let  x=1+2*3 ;\nif x{y();}")
	require.NoError(t, res.err)
	assert.Equal(t, "let x = 1 + 2 * 3;\nif x { y(); }\n", res.stdout)
}

func TestASTCommandJSON(t *testing.T) {
	res := run(t, "", "ast", "-o", "json", "-c", "x;")
	require.NoError(t, res.err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, map[string]any{
		"type": "Program",
		"statements": []any{
			map[string]any{
				"type": "Expression",
				"expr": map[string]any{"type": "Variable", "name": "x"},
			},
		},
	}, got)
}

func TestASTCommandYAML(t *testing.T) {
	res := run(t, "", "ast", "-o", "yaml", "-c", "let a = 1;")
	require.NoError(t, res.err)
	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, "Program", got["type"])
	stmts := got["statements"].([]any)
	require.Len(t, stmts, 1)
	let := stmts[0].(map[string]any)
	assert.Equal(t, "Let", let["type"])
	assert.Equal(t, "a", let["name"])
	assert.Equal(t, map[string]any{"type": "Literal", "kind": "int", "value": 1}, let["value"])
}

func TestLintCommand(t *testing.T) {
	res := run(t, "", "lint", "-c", "let ok = 1;")
	require.NoError(t, res.err)
	assert.Equal(t, "<code>: no problems found\n", res.stdout)

	res = run(t, "", "lint", "-c", "let badName = 1;\nconst low = 2;")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "warning[W1001]: expected 'bad_name'")
	assert.Contains(t, res.stdout, "warning[W1001]: expected 'LOW'")
	assert.Contains(t, res.stdout, "found 2 problems\n")

	res = run(t, "", "lint", "--strict", "-c", "let badName = 1;")
	assert.EqualError(t, res.err, "<code>: 1 warnings")
}

func TestLintCommandYAML(t *testing.T) {
	res := run(t, "", "lint", "-o", "yaml", "-c", "fn doIt() {}")
	require.NoError(t, res.err)
	var got struct {
		Success  bool
		Warnings []struct {
			Message string
			Line    int
			Column  int
			Length  int
			Level   string
		}
	}
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &got))
	assert.True(t, got.Success)
	require.Len(t, got.Warnings, 1)
	assert.Equal(t, "expected 'do_it'", got.Warnings[0].Message)
	assert.Equal(t, 4, got.Warnings[0].Column)
	assert.Equal(t, 4, got.Warnings[0].Length)
	assert.Equal(t, "warn", got.Warnings[0].Level)
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.qb", "let a = 1;\n")
	also := writeFile(t, dir, "also.qb", "fn f(x) { return x; }\n")
	bad := writeFile(t, dir, "bad.qb", "let = 2;\n")

	res := run(t, "", "check", good, also)
	require.NoError(t, res.err)
	assert.Equal(t, good+": ok (1 statements, 0 warnings)\n"+also+": ok (1 statements, 0 warnings)\n", res.stdout)

	res = run(t, "", "check", "-j", "2", good, bad, also)
	require.Error(t, res.err)
	assert.Equal(t, "1 of 3 files failed to parse", res.err.Error())
	assert.Contains(t, res.stderr, "  --> "+bad+":1:5\n")
	assert.Contains(t, res.stdout, good+": ok")
	assert.Contains(t, res.stdout, also+": ok")
}

func TestCheckCommandJSON(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.qb", "let camelCase = 1;\n")
	bad := writeFile(t, dir, "bad.qb", "5 @ 3;\n")

	res := run(t, "", "check", "-o", "json", good, bad)
	require.Error(t, res.err)
	var got []struct {
		File     string `json:"file"`
		Success  bool   `json:"success"`
		Errors   []map[string]any
		Warnings []map[string]any
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	require.Len(t, got, 2)
	assert.Equal(t, good, got[0].File)
	assert.True(t, got[0].Success)
	assert.Len(t, got[0].Warnings, 1)
	assert.Equal(t, bad, got[1].File)
	assert.False(t, got[1].Success)
	require.Len(t, got[1].Errors, 1)
	assert.Equal(t, "lexer error: invalid token ('@')", got[1].Errors[0]["message"])
}

func TestCheckCommandMissingFile(t *testing.T) {
	res := run(t, "", "check", filepath.Join(t.TempDir(), "nope.qb"))
	require.Error(t, res.err)
	assert.True(t, os.IsNotExist(res.err) || strings.Contains(res.err.Error(), "no such file"))
}

func TestTokensCommand(t *testing.T) {
	res := run(t, "", "tokens", "-c", "let x = 42; // done")
	require.NoError(t, res.err)
	lines := strings.Split(strings.TrimRight(res.stdout, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "1:1      let            'let'", lines[0])
	assert.Equal(t, "1:5      IDENT          identifier \"x\"", lines[1])
	assert.Equal(t, "1:9      INT            integer 42", lines[3])
	assert.Equal(t, "1:13     LINE_COMMENT   comment", lines[5])

	res = run(t, "", "tokens", "-c", "x $")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "lexer error: invalid token ('$')")
}

func TestTokensCommandJSON(t *testing.T) {
	res := run(t, "", "tokens", "-o", "json", "-c", "a\n+b")
	require.NoError(t, res.err)
	var got []tokenEntry
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, []tokenEntry{
		{Type: "IDENT", Literal: "a", Start: 0, End: 1, Line: 1, Column: 1},
		{Type: "+", Literal: "+", Start: 2, End: 3, Line: 2, Column: 1},
		{Type: "IDENT", Literal: "b", Start: 3, End: 4, Line: 2, Column: 2},
	}, got)
}

func TestVetCommand(t *testing.T) {
	res := run(t, "", "vet", "-c", "fn f(a) { while a { break; } return a; }")
	require.NoError(t, res.err)
	assert.Equal(t, "<code>: ok\n", res.stdout)

	res = run(t, "", "vet", "-c", "break; 1 = x;")
	require.Error(t, res.err)
	assert.Equal(t, "<code>: 2 problems", res.err.Error())
	assert.Equal(t, "<code>: break outside loop: break;\n"+
		"<code>: invalid assignment target: 1 = x\n", res.stdout)
}

func TestVetCommandPreset(t *testing.T) {
	res := run(t, "", "vet", "--preset", "expression", "-c", "let x = 1;")
	require.Error(t, res.err)
	assert.Equal(t, "<code>: variable declarations are not allowed: let x = 1;\n", res.stdout)

	res = run(t, "", "vet", "--preset", "tiny", "-c", "1;")
	require.Error(t, res.err)
	assert.Equal(t, "unknown syntax preset: tiny", res.err.Error())
}

func TestVetCommandJSON(t *testing.T) {
	res := run(t, "", "-o", "json", "vet", "-c", "return 1;")
	require.Error(t, res.err)
	var got []violation
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, []violation{{Message: "return outside function", Node: "return 1;"}}, got)
}

func TestVetCommandParseError(t *testing.T) {
	res := run(t, "", "vet", "-c", "let = 1;")
	require.Error(t, res.err)
	assert.Equal(t, "<code>: parse failed", res.err.Error())
	assert.Empty(t, res.stdout)
}
