package parser

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// Lexer tokenizes one line of console input.
type Lexer struct {
	line string
	pos  int
}

// Character classification table
var chTab [256]TokenType

func init() {
	initLexTables()
}

// initLexTables initializes the character classification table.
func initLexTables() {
	for i := range chTab {
		chTab[i] = ErrorToken
	}

	for _, c := range []byte{' ', '\t', '\r', '\n', ','} {
		chTab[c] = Whitespace
	}

	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = Digit
	}

	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = Alpha
		chTab[c+32] = Alpha
	}
	chTab['_'] = Alpha

	chTab['?'] = Question
	chTab['-'] = Dash
	chTab['='] = Dash
	chTab[0] = EOLToken
}

// NewLexer creates a lexer over line.
func NewLexer(line string) *Lexer {
	return &Lexer{line: line}
}

// currentChar returns the current character or 0 if at end of line.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// advance moves to the next character.
func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

// NextToken returns the next token from the line.
func (l *Lexer) NextToken() *Token {
	for {
		start := l.pos
		token := l.getNextSymbol()
		if token.Type != NoToken {
			token.Column = start + 1
			return token
		}
	}
}

// Tokens returns every token up to and including the EOL token.
func (l *Lexer) Tokens() []*Token {
	var out []*Token
	for {
		t := l.NextToken()
		out = append(out, t)
		if t.Type == EOLToken {
			return out
		}
	}
}

// getNextSymbol identifies the next symbol.
func (l *Lexer) getNextSymbol() *Token {
	ch := l.currentChar()
	symbolStart := l.pos
	l.advance()

	switch chTab[ch] {
	case Whitespace:
		for chTab[l.currentChar()] == Whitespace && l.pos < len(l.line) {
			l.advance()
		}
		return &Token{Type: NoToken}

	case Dash:
		// Separator in "e2-e4" and "e8=q"
		return &Token{Type: NoToken}

	case EOLToken:
		if symbolStart < len(l.line) {
			return l.errorToken(symbolStart, fmt.Errorf("unexpected NUL byte: %w", errors.ErrUnknownCommand))
		}
		return &Token{Type: EOLToken}

	case Question:
		for chTab[l.currentChar()] == Question {
			l.advance()
		}
		return &Token{Type: HelpToken, Text: l.line[symbolStart:l.pos]}

	case Alpha:
		if isFile(ch) && chTab[l.currentChar()] == Digit {
			return l.gatherSquare(symbolStart)
		}
		return l.gatherWord(symbolStart)

	case Digit:
		for chTab[l.currentChar()] == Digit || chTab[l.currentChar()] == Alpha {
			l.advance()
		}
		return l.errorToken(symbolStart, fmt.Errorf("%q: %w", l.line[symbolStart:l.pos], errors.ErrInvalidSquare))

	default:
		for chTab[l.currentChar()] == ErrorToken && l.pos < len(l.line) {
			l.advance()
		}
		return l.errorToken(symbolStart, fmt.Errorf("unknown character %q: %w", ch, errors.ErrUnknownCommand))
	}
}

// gatherSquare reads a file letter followed by its digits. "e2e4" lexes as
// two squares.
func (l *Lexer) gatherSquare(start int) *Token {
	for chTab[l.currentChar()] == Digit {
		l.advance()
	}
	text := strings.ToLower(l.line[start:l.pos])
	sq, err := chess.ParseSquare(text)
	if err != nil {
		return l.errorToken(start, err)
	}
	return &Token{Type: SquareToken, Text: text, Square: sq}
}

// gatherWord reads letters, digits and underscores with an optional
// trailing '?', as in "draw?".
func (l *Lexer) gatherWord(start int) *Token {
	for t := chTab[l.currentChar()]; t == Alpha || t == Digit; t = chTab[l.currentChar()] {
		l.advance()
	}
	if chTab[l.currentChar()] == Question {
		l.advance()
	}
	return &Token{Type: WordToken, Text: strings.ToLower(l.line[start:l.pos])}
}

func (l *Lexer) errorToken(start int, err error) *Token {
	return &Token{Type: ErrorToken, Text: l.line[start:l.pos], Err: err}
}

func isFile(c byte) bool {
	c |= 0x20
	return c >= 'a' && c <= 'h'
}
