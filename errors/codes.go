package errors

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category:
//   - E1xxx: Lex and parse errors
//   - W1xxx: Lint warnings
type ErrorCode string

const (
	// Parse errors (E1xxx)
	E1001 ErrorCode = "E1001" // Unexpected token
	E1002 ErrorCode = "E1002" // Unexpected end of input
	E1003 ErrorCode = "E1003" // Invalid syntax
	E1004 ErrorCode = "E1004" // Missing token
	E1005 ErrorCode = "E1005" // Invalid token
	E1009 ErrorCode = "E1009" // Maximum nesting depth exceeded

	// Lint warnings (W1xxx)
	W1001 ErrorCode = "W1001" // Naming convention
	W1002 ErrorCode = "W1002" // Unused variable
	W1003 ErrorCode = "W1003" // Unused function
	W1004 ErrorCode = "W1004" // Unreachable code
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E1001: "unexpected token",
	E1002: "unexpected end of input",
	E1003: "invalid syntax",
	E1004: "missing token",
	E1005: "invalid token",
	E1009: "maximum nesting depth exceeded",

	W1001: "naming convention",
	W1002: "unused variable",
	W1003: "unused function",
	W1004: "unreachable code",
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// Category returns the error category based on the code prefix.
func (c ErrorCode) Category() string {
	if len(c) < 2 {
		return "unknown"
	}
	switch {
	case c[0] == 'E' && c[1] == '1':
		return "parse"
	case c[0] == 'W' && c[1] == '1':
		return "lint"
	default:
		return "unknown"
	}
}
