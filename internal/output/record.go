package output

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
)

// SevenTagRoster lists the PGN tags always written, in order.
var SevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// GameRecord is a finished game ready for writing.
type GameRecord struct {
	ID    uuid.UUID
	Round int

	Tags map[string]string

	StartFEN string
	FinalFEN string
	FirstPly int
	Moves    []chess.Move
	State    engine.State

	// MaterialBalance is Black's final material minus White's.
	MaterialBalance float64
}

// NewGameRecord captures g and its final state. The tag roster is filled
// from the names and event given; Round is index+1.
func NewGameRecord(g *engine.Game, s engine.State, index int, event, site string, names [chess.NumColours]string) *GameRecord {
	moves := g.Moves()
	start := g.Clone()
	for range moves {
		start.Undo()
	}

	rec := &GameRecord{
		ID:       g.ID,
		Round:    index + 1,
		StartFEN: engine.FEN(start),
		FinalFEN: engine.FEN(g),
		FirstPly: start.Ply(),
		Moves:    moves,
		State:    s,

		MaterialBalance: g.Board().MaterialBalance(),
	}
	rec.Tags = map[string]string{
		"Event":       event,
		"Site":        site,
		"Date":        time.Now().Format("2006.01.02"),
		"Round":       strconv.Itoa(rec.Round),
		"White":       names[chess.White],
		"Black":       names[chess.Black],
		"Result":      ResultString(s),
		"GameId":      g.ID.String(),
		"Termination": s.String(),
	}
	if rec.StartFEN != engine.InitialFEN {
		rec.Tags["SetUp"] = "1"
		rec.Tags["FEN"] = rec.StartFEN
	}
	return rec
}

// ResultString returns the PGN result token for s.
func ResultString(s engine.State) string {
	switch s.End {
	case engine.WinWhite:
		return "1-0"
	case engine.WinBlack:
		return "0-1"
	case engine.Draw:
		return "1/2-1/2"
	}
	return "*"
}

// Tag returns a tag value, or "?" when unset.
func (r *GameRecord) Tag(name string) string {
	if v, ok := r.Tags[name]; ok && v != "" {
		return v
	}
	return "?"
}
