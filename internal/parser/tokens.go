// Package parser turns console input lines into moves, draw and win
// proposals, and commands.
package parser

import "github.com/lgbarn/chesscore/internal/chess"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Tokens returned to the parser
	EOLToken TokenType = iota
	SquareToken
	WordToken
	HelpToken

	// Internal tokens used for identification
	Whitespace
	Alpha
	Digit
	Question
	Dash
	NoToken
	ErrorToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOLToken:    "end of input",
	SquareToken: "SQUARE",
	WordToken:   "WORD",
	HelpToken:   "HELP",
	Whitespace:  "WHITESPACE",
	Alpha:       "ALPHA",
	Digit:       "DIGIT",
	Question:    "QUESTION",
	Dash:        "DASH",
	NoToken:     "NO_TOKEN",
	ErrorToken:  "ERROR_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// Text is the lower-cased source text
	Text string

	// Square is set for SquareToken
	Square chess.Square

	// Err explains an ErrorToken
	Err error

	// Column is 1-based
	Column int
}

// describe renders the token for error messages.
func (t *Token) describe() string {
	if t.Type == EOLToken {
		return t.Type.String()
	}
	return "\"" + t.Text + "\""
}
