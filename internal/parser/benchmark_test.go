package parser

import (
	"strings"
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
)

var benchLines = []string{
	"e2 e4",
	"g1-f3 draw",
	"b7b8n",
	"draw?",
	"repetitions",
	"log_debug",
	"not a command",
}

func BenchmarkParseInput(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, line := range benchLines {
			_, _ = ParseInput(line)
		}
	}
}

func BenchmarkParser_Lines(b *testing.B) {
	input := strings.Repeat(strings.Join(benchLines, "\n")+"\n", 100)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := NewParser(strings.NewReader(input))
		for {
			if _, err := p.Next(); err != nil && p.LineNumber() >= 700 {
				break
			}
		}
	}
}

func BenchmarkResolveMove(b *testing.B) {
	g := engine.NewStandardGame()
	moves := engine.LegalMoves(g, chess.White)
	in, _ := ParseInput("g1 f3")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ResolveMove(g, chess.White, moves, in)
	}
}
