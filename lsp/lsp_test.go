package lsp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbit-lang/qbit/errors"
	"github.com/qbit-lang/qbit/parser"
)

func TestParseCodeSuccess(t *testing.T) {
	res := New().ParseCode("let fooBar = 1;\nconst OK = 2;")
	assert.True(t, res.Success)
	assert.Empty(t, res.Errors)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, Record{
		Message: "expected 'foo_bar'",
		Line:    1,
		Column:  5,
		Length:  6,
		Level:   errors.LevelWarn,
	}, res.Warnings[0])
}

func TestParseCodeFailure(t *testing.T) {
	res := New().ParseCode("let x = 1;\nlet y = (2 + 3;")
	assert.False(t, res.Success)
	assert.Empty(t, res.Warnings)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, Record{
		Message: "expected ')', found ';'",
		Line:    2,
		Column:  15,
		Length:  1,
		Level:   errors.LevelError,
	}, res.Errors[0])
}

func TestParseCodeJSON(t *testing.T) {
	data, err := json.Marshal(New().ParseCode("x;"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": true, "errors": [], "warnings": []}`, string(data))

	data, err = json.Marshal(New().ParseCode("x"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"success": false,
		"errors": [{"message": "unexpected end of file, expected ';'", "line": 1, "column": 2, "length": 1, "level": "error"}],
		"warnings": []
	}`, string(data))
}

func TestParseSyntax(t *testing.T) {
	a := New()
	assert.Empty(t, a.ParseSyntax("let camelCase = 1;"))

	records := a.ParseSyntax("5 @ 3;")
	require.Len(t, records, 1)
	assert.Equal(t, "lexer error: invalid token ('@')", records[0].Message)
	assert.Equal(t, 3, records[0].Column)
}

func TestRecursionRecord(t *testing.T) {
	a := New(WithParserOptions(parser.WithMaxDepth(2)))
	records := a.ParseSyntax("x;\n(((1)));")
	require.Len(t, records, 1)
	assert.Equal(t, "maximum recursion depth (2) exceeded at position 6", records[0].Message)
	assert.Equal(t, 2, records[0].Line)
	assert.Equal(t, 4, records[0].Column)
	assert.Equal(t, 1, records[0].Length)
}

func TestFromForeignError(t *testing.T) {
	var buf bytes.Buffer
	a := New(WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	record := a.FromError(fmt.Errorf("disk on fire"))
	assert.Equal(t, Record{Message: "disk on fire", Line: 1, Column: 1, Length: 1, Level: errors.LevelError}, record)
	assert.True(t, strings.Contains(buf.String(), "disk on fire"))

	// Wrapped parser errors keep their position.
	_, err := parser.Parse("let = 1;")
	record = a.FromError(fmt.Errorf("main.qb: %w", err))
	assert.Equal(t, 5, record.Column)
}

func TestToProtocol(t *testing.T) {
	d := ToProtocol("", Record{Message: "m", Line: 3, Column: 7, Length: 4, Level: errors.LevelWarn})
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 2, Character: 6},
		End:   protocol.Position{Line: 2, Character: 10},
	}, d.Range)
	assert.Equal(t, protocol.SeverityWarning, d.Severity)
	assert.Equal(t, Source, d.Source)
	assert.Equal(t, "m", d.Message)

	d = ToProtocol("", Record{Line: 1, Column: 1, Length: 0})
	assert.Equal(t, uint32(0), d.Range.Start.Line)
	assert.Equal(t, uint32(1), d.Range.End.Character)
	assert.Equal(t, protocol.SeverityError, d.Severity)

	assert.Equal(t, protocol.SeverityInformation, ToProtocol("", Record{Level: errors.LevelInfo}).Severity)
	assert.Equal(t, protocol.SeverityHint, ToProtocol("", Record{Level: errors.LevelHint}).Severity)
}

func TestToProtocolUTF16(t *testing.T) {
	source := "let s = \"\U0001F600 \u00e9\";\r\nlet t = \"\u00e9\"; let badName = 1;"
	diags := New().Diagnostics(source)
	require.Len(t, diags, 1)
	assert.Equal(t, "expected 'bad_name'", diags[0].Message)
	// 'let t = "é"; let ' is 18 bytes and 17 UTF-16 units.
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 1, Character: 17},
		End:   protocol.Position{Line: 1, Character: 24},
	}, diags[0].Range)

	r := Record{Line: 1, Column: 13, Length: 1}
	d := ToProtocol("x = \"\U0001F600\"; @", r)
	// The emoji is four bytes and two UTF-16 units.
	assert.Equal(t, uint32(10), d.Range.Start.Character)
	assert.Equal(t, uint32(11), d.Range.End.Character)
}

func TestPublish(t *testing.T) {
	uri := protocol.DocumentURI("file:///main.qb")
	params := New().Publish(uri, "let badName = 1;\nfn GoOn() {}")
	assert.Equal(t, uri, params.URI)
	require.Len(t, params.Diagnostics, 2)
	assert.Equal(t, uint32(1), params.Diagnostics[1].Range.Start.Line)
	assert.Equal(t, uint32(3), params.Diagnostics[1].Range.Start.Character)

	params = New().Publish(uri, "let")
	require.Len(t, params.Diagnostics, 1)
	assert.Equal(t, protocol.SeverityError, params.Diagnostics[0].Severity)
}
