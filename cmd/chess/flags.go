// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
)

var (
	// Players
	whitePlayer = flag.String("white", "random", "White player: human, random, random-capture")
	blackPlayer = flag.String("black", "random", "Black player: human, random, random-capture")
	whiteName   = flag.String("white-name", "", "Display name of the White player")
	blackName   = flag.String("black-name", "", "Display name of the Black player")

	// Match options
	games    = flag.Int("games", 1, "Number of games to play (0 = ask after each game)")
	workers  = flag.Int("workers", 1, "Number of games played at once")
	seed     = flag.Int64("seed", 0, "Seed for the random players (0 = from the clock)")
	maxPlies = flag.Int("max-plies", 0, "Stop games after N plies (0 = no limit)")
	startFEN = flag.String("fen", "", "Start every game from this FEN position")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	pgnFile      = flag.String("pgn", "", "Write a PGN record of every game to this file")
	jsonOutput   = flag.Bool("J", false, "Output games in JSON format")
	lineLength   = flag.Uint("w", 80, "Maximum PGN line length (0 = no wrapping)")
	noBoard      = flag.Bool("noboard", false, "Don't print the board each turn")
	noStats      = flag.Bool("nostats", false, "Don't print move history after each game")
	fullSummary  = flag.Bool("full", false, "List every game in the match records")
	event        = flag.String("event", "", "PGN Event tag")
	site         = flag.String("site", "", "PGN Site tag")

	// Duplicate detection
	noDuplicates      = flag.Bool("nodups", false, "Don't count games ending in the same position")
	weakHash          = flag.Bool("weakhash", false, "Compare final positions by 32-bit hash")
	duplicateCapacity = flag.Int("duplicate-capacity", 0, "Maximum stored final positions (0 = unlimited)")

	// Logging
	logFile   = flag.String("l", "", "Write log to file (default: stderr)")
	appendLog = flag.String("L", "", "Append log to file")
	logLevel  = flag.String("log-level", "warn", "Log level: error, warn, info, debug, trace")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(b *config.ConfigBuilder) error {
	if err := applyPlayerFlags(b); err != nil {
		return err
	}
	applyMatchFlags(b)
	applyOutputFlags(b)
	applyDuplicateFlags(b)

	level, err := config.ParseLogLevel(*logLevel)
	if err != nil {
		return err
	}
	b.WithVerbosity(level)
	return nil
}

// applyPlayerFlags sets the player kinds and names.
func applyPlayerFlags(b *config.ConfigBuilder) error {
	kinds := [chess.NumColours]*string{whitePlayer, blackPlayer}
	names := [chess.NumColours]*string{whiteName, blackName}
	for _, c := range chess.Colours {
		kind, err := config.ParsePlayerKind(*kinds[c])
		if err != nil {
			return err
		}
		b.WithPlayer(c, kind).WithPlayerName(c, *names[c])
	}
	return nil
}

// applyMatchFlags configures the number and shape of games.
func applyMatchFlags(b *config.ConfigBuilder) {
	b.WithGames(*games).
		WithWorkers(*workers).
		WithSeed(*seed).
		WithMaxPlies(*maxPlies).
		WithStartFEN(*startFEN)
}

// applyOutputFlags configures what is printed for each game.
func applyOutputFlags(b *config.ConfigBuilder) {
	b.WithJSONOutput(*jsonOutput).
		WithMaxLineLength(*lineLength).
		WithBoard(!*noBoard).
		WithStats(!*noStats).
		WithEvent(*event, *site)
	if *fullSummary {
		b.WithSummary(config.FullSummary)
	}
}

// applyDuplicateFlags configures final position duplicate detection.
func applyDuplicateFlags(b *config.ConfigBuilder) {
	b.WithDuplicateDetection(!*noDuplicates, !*weakHash).
		WithDuplicateCapacity(*duplicateCapacity)
}
