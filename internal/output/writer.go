package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. maxLineLength <= 0 disables
// wrapping.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.maxLineLength > 0 && o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// GameWriter is the interface for writing finished games.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(rec *GameRecord) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// PGNWriter writes games in PGN format.
type PGNWriter struct {
	w             io.Writer
	maxLineLength int
}

// NewPGNWriter creates a new PGN writer wrapping movetext at maxLineLength.
func NewPGNWriter(w io.Writer, maxLineLength int) *PGNWriter {
	return &PGNWriter{w: w, maxLineLength: maxLineLength}
}

// WriteGame writes the tag section, a blank line, the movetext with the
// result, and a blank line.
func (pw *PGNWriter) WriteGame(rec *GameRecord) error {
	var sb strings.Builder
	for _, tag := range SevenTagRoster {
		fmt.Fprintf(&sb, "[%s \"%s\"]\n", tag, escapeTagValue(rec.Tag(tag)))
	}
	for _, tag := range []string{"SetUp", "FEN", "Termination", "GameId"} {
		if v, ok := rec.Tags[tag]; ok {
			fmt.Fprintf(&sb, "[%s \"%s\"]\n", tag, escapeTagValue(v))
		}
	}
	sb.WriteByte('\n')

	ow := NewOutputWriter(&sb, pw.maxLineLength)
	for _, tok := range movetext(rec.Moves, rec.FirstPly) {
		ow.Write(tok)
	}
	ow.Write(ResultString(rec.State))
	ow.NewLine()
	sb.WriteByte('\n')

	_, err := io.WriteString(pw.w, sb.String())
	return err
}

// Flush is a no-op; PGN is written immediately.
func (pw *PGNWriter) Flush() error {
	return nil
}

// Close closes the PGN writer.
func (pw *PGNWriter) Close() error {
	return nil
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches games into one document.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(rec *GameRecord) error {
	jg := GameRecordJSON(rec)
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(jg)
	}
	jw.games = append(jw.games, jg)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
