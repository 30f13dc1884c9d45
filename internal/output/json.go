package output

import (
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID         string            `json:"id"`
	Tags       map[string]string `json:"tags"`
	Moves      []JSONMove        `json:"moves,omitempty"`
	Result     string            `json:"result"`
	State      string            `json:"state"`
	PlyCount   int               `json:"plyCount"`
	InitialFEN string            `json:"initialFEN,omitempty"`
	FinalFEN   string            `json:"finalFEN"`

	MaterialBalance float64 `json:"materialBalance"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	Notation   string `json:"notation"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Castling   string `json:"castling,omitempty"`
	EnPassant  bool   `json:"enPassant,omitempty"`
	Check      string `json:"check,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameRecordJSON converts a game record to JSON form.
func GameRecordJSON(rec *GameRecord) *JSONGame {
	jg := &JSONGame{
		ID:       rec.ID.String(),
		Tags:     copyTags(rec.Tags),
		Result:   ResultString(rec.State),
		State:    rec.State.String(),
		PlyCount: len(rec.Moves),
		FinalFEN: rec.FinalFEN,

		MaterialBalance: rec.MaterialBalance,
	}
	if _, ok := rec.Tags["FEN"]; ok {
		jg.InitialFEN = rec.StartFEN
	}

	jg.Moves = make([]JSONMove, 0, len(rec.Moves))
	for i, m := range rec.Moves {
		jg.Moves = append(jg.Moves, convertMove(m, rec.FirstPly+i))
	}
	return jg
}

// copyTags copies game tags and ensures the seven tag roster has values.
func copyTags(tags map[string]string) map[string]string {
	result := make(map[string]string, len(tags)+len(SevenTagRoster))
	for k, v := range tags {
		result[k] = v
	}
	for _, tag := range SevenTagRoster {
		if result[tag] == "" {
			result[tag] = "?"
		}
	}
	return result
}

func convertMove(m chess.Move, ply int) JSONMove {
	jm := JSONMove{
		Color:     strings.ToLower(m.Colour.String()),
		Notation:  m.Notation(),
		UCI:       m.String(),
		From:      m.From.String(),
		To:        m.To.String(),
		Piece:     pieceTypeName(m.Piece),
		Captured:  pieceTypeName(m.Captured.Type),
		Promotion: pieceTypeName(m.Promotion),
		EnPassant: m.IsEnPassant,
		Check:     checkSuffix(m.Check),
	}
	if m.Colour == chess.White {
		jm.MoveNumber = (ply + 1) / 2
	}
	switch {
	case m.IsCastlingKingside():
		jm.Castling = "kingside"
	case m.IsCastlingQueenside():
		jm.Castling = "queenside"
	}
	return jm
}

// pieceTypeName returns the piece type in lower case, or "" for none.
func pieceTypeName(p chess.PieceType) string {
	if p == chess.NoPieceType {
		return ""
	}
	return strings.ToLower(p.String())
}
