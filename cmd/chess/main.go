// chess plays games of chess between humans at the console and random
// computer players.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/match"
	"github.com/lgbarn/chesscore/internal/parser"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	b := config.NewConfigBuilder()
	if err := applyFlags(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	cfg := b.Build()
	if cfg.Match.Seed == 0 {
		cfg.Match.Seed = time.Now().UnixNano()
	}

	// Set up logging and output files
	closers := []io.Closer{
		setupLogFile(cfg),
		setupOutputFile(cfg),
		setupPGNFile(cfg),
	}
	defer func() {
		for _, c := range closers {
			if c != nil {
				c.Close()
			}
		}
	}()
	cfg.Logf(config.LogInfo, "Seed %d\n", cfg.Match.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	in := parser.NewParser(cfg.Input)
	if _, err := match.RunMatch(ctx, cfg, in, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openFile creates name, or appends to it.
func openFile(name string, appendTo bool) *os.File {
	var file *os.File
	var err error
	if appendTo {
		file, err = os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created files
	} else {
		file, err = os.Create(name)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", name, err)
		os.Exit(1)
	}
	return file
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) io.Closer {
	switch {
	case *appendLog != "":
		file := openFile(*appendLog, true)
		cfg.LogFile = file
		return file
	case *logFile != "":
		file := openFile(*logFile, false)
		cfg.LogFile = file
		return file
	}
	return nil
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) io.Closer {
	if *outputFile == "" {
		return nil
	}
	file := openFile(*outputFile, *appendOutput)
	cfg.SetOutput(file)
	return file
}

// setupPGNFile opens the file receiving a PGN record of every game.
func setupPGNFile(cfg *config.Config) io.Closer {
	if *pgnFile == "" {
		return nil
	}
	file := openFile(*pgnFile, *appendOutput)
	cfg.Output.PGNFile = file
	return file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess games between console and computer players.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nPlayers (-white, -black):\n")
	fmt.Fprintf(os.Stderr, "  human           Moves are read from standard input\n")
	fmt.Fprintf(os.Stderr, "  random          Plays a random legal move\n")
	fmt.Fprintf(os.Stderr, "  random-capture  Captures when it can, otherwise plays at random\n")
}
