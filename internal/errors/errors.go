// Package errors provides sentinel errors and error types for the chess engine
// and its front ends. Structured errors keep their context while allowing
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for user-facing failure conditions.
// Rule invariant violations are programming errors and panic instead.
var (
	// ErrInvalidSquare indicates a square outside a1..h8 or malformed notation.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not in the legal-move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidPromotion indicates a promotion letter on a non-promoting move,
	// or a letter that names no promotable piece.
	ErrInvalidPromotion = errors.New("invalid promotion")

	// ErrEmptySquare indicates a move from a square with no piece on it.
	ErrEmptySquare = errors.New("no piece on square")

	// ErrNotYourPiece indicates a move of the opponent's piece.
	ErrNotYourPiece = errors.New("not your piece")

	// ErrNoDrawClaim indicates a draw claim when neither claimable condition holds.
	ErrNoDrawClaim = errors.New("no draw can be claimed")

	// ErrUnknownCommand indicates input that is neither a move nor a known command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameOver indicates an action on a game that has already ended.
	ErrGameOver = errors.New("game is over")
)

// Is reports whether any error in err's tree matches target.
// Provided so callers need only this package.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool { return errors.As(err, target) }

// New returns an error with the given text.
func New(text string) error { return errors.New(text) }

// MoveError wraps errors with the game context of a rejected move: the game,
// the ply and colour to move, and the input that was given.
type MoveError struct {
	Err    error  // The underlying error
	GameID string // Game identifier (if known)
	Ply    int    // Ply on which the move was attempted (0 if not applicable)
	Colour string // Colour to move
	Input  string // The move text that was rejected
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, "game "+e.GameID)
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}
	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Input))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents an input or FEN parsing error with position context.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Column > 0 {
		parts = append(parts, fmt.Sprintf("column %d", e.Column))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
