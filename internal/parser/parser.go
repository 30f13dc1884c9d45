package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/errors"
)

// Kind classifies a line of input.
type Kind int

const (
	Empty Kind = iota
	MoveInput
	ClaimDraw
	Concede
	ProposeWin
	ProposeDraw
	CommandInput
)

var kindNames = [...]string{
	Empty:        "empty",
	MoveInput:    "move",
	ClaimDraw:    "draw claim",
	Concede:      "concession",
	ProposeWin:   "win proposal",
	ProposeDraw:  "draw proposal",
	CommandInput: "command",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Command is a request that does not end the player's turn.
type Command int

const (
	NoCommand Command = iota
	Help
	ShowBoard
	ShowHistory
	ShowPGN
	ShowMoves
	ShowPieces
	ShowRepetitions
	ShowLogLevel
	SetLogLevel
	Quit
)

// words maps each keyword to the input it produces.
var words = map[string]Input{
	"draw":        {Kind: ClaimDraw},
	"draw?":       {Kind: ProposeDraw},
	"win?":        {Kind: ProposeWin},
	"concede":     {Kind: Concede},
	"help":        {Kind: CommandInput, Command: Help},
	"board":       {Kind: CommandInput, Command: ShowBoard},
	"history":     {Kind: CommandInput, Command: ShowHistory},
	"pgn":         {Kind: CommandInput, Command: ShowPGN},
	"moves":       {Kind: CommandInput, Command: ShowMoves},
	"pieces":      {Kind: CommandInput, Command: ShowPieces},
	"repetitions": {Kind: CommandInput, Command: ShowRepetitions},
	"log_level":   {Kind: CommandInput, Command: ShowLogLevel},
	"exit":        {Kind: CommandInput, Command: Quit},
	"quit":        {Kind: CommandInput, Command: Quit},
}

// Input is one parsed line.
type Input struct {
	Kind Kind

	// Move fields. Promotion is NoPieceType when no letter was given.
	From      chess.Square
	To        chess.Square
	Promotion chess.PieceType
	ClaimDraw bool

	Command  Command
	LogLevel config.LogLevel

	// Square narrows the moves command to one origin; NoSquare otherwise.
	Square chess.Square

	// Text is the trimmed source line.
	Text string
}

// ParseInput parses a single line. Errors are *errors.ParseError values
// wrapping ErrInvalidSquare, ErrInvalidPromotion or ErrUnknownCommand.
func ParseInput(line string) (Input, error) {
	text := strings.TrimSpace(line)
	p := &lineParser{tokens: NewLexer(text).Tokens(), text: text}
	in, err := p.parse()
	in.Text = text
	return in, err
}

type lineParser struct {
	tokens []*Token
	pos    int
	text   string
}

// current returns the token under the cursor; the final EOL token repeats.
func (p *lineParser) current() *Token {
	return p.tokens[p.pos]
}

func (p *lineParser) nextToken() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

func (p *lineParser) errorf(err error, expected string) error {
	tok := p.current()
	if tok.Type == ErrorToken && tok.Err != nil {
		err = tok.Err
	}
	return &errors.ParseError{
		Err:      err,
		Input:    p.text,
		Column:   tok.Column,
		Expected: expected,
		Got:      tok.describe(),
	}
}

func (p *lineParser) parse() (Input, error) {
	none := Input{From: chess.NoSquare, To: chess.NoSquare, Square: chess.NoSquare}
	tok := p.current()
	switch tok.Type {
	case EOLToken:
		return none, nil
	case HelpToken:
		p.nextToken()
		in := none
		in.Kind, in.Command = CommandInput, Help
		return in, p.expectEnd()
	case SquareToken:
		return p.parseMove(none)
	case WordToken:
		return p.parseWord(none)
	default:
		return none, p.errorf(errors.ErrUnknownCommand, "move or command")
	}
}

func (p *lineParser) parseWord(in Input) (Input, error) {
	word := p.current().Text
	if strings.HasPrefix(word, "log_") && word != "log_level" {
		level, err := config.ParseLogLevel(word)
		if err != nil {
			return in, p.errorf(errors.ErrUnknownCommand, "log level")
		}
		in.Kind, in.Command, in.LogLevel = CommandInput, SetLogLevel, level
		p.nextToken()
		return in, p.expectEnd()
	}

	w, ok := words[word]
	if !ok {
		return in, p.errorf(errors.ErrUnknownCommand, "move or command")
	}
	in.Kind, in.Command = w.Kind, w.Command
	p.nextToken()

	if in.Command == ShowMoves && p.current().Type == SquareToken {
		in.Square = p.current().Square
		p.nextToken()
	}
	return in, p.expectEnd()
}

// parseMove reads "from to [Q|R|B|N] [draw]".
func (p *lineParser) parseMove(in Input) (Input, error) {
	in.Kind = MoveInput
	in.From = p.current().Square
	p.nextToken()

	if p.current().Type != SquareToken {
		return in, p.errorf(errors.ErrInvalidSquare, "destination square")
	}
	in.To = p.current().Square
	p.nextToken()

	if tok := p.current(); tok.Type == WordToken && len(tok.Text) == 1 {
		in.Promotion = chess.PieceTypeFromLetter(tok.Text[0])
		if !in.Promotion.IsPromotionTarget() {
			return in, p.errorf(errors.ErrInvalidPromotion, "Q, R, B or N")
		}
		p.nextToken()
	}

	if tok := p.current(); tok.Type == WordToken && tok.Text == "draw" {
		in.ClaimDraw = true
		p.nextToken()
	}
	return in, p.expectEnd()
}

func (p *lineParser) expectEnd() error {
	if p.current().Type == EOLToken {
		return nil
	}
	return p.errorf(errors.ErrUnknownCommand, "end of input")
}

// Parser reads input lines from a console.
type Parser struct {
	reader  *bufio.Reader
	lineNum int
}

// NewParser creates a new parser for the given reader.
func NewParser(r io.Reader) *Parser {
	return &Parser{reader: bufio.NewReader(r)}
}

// ReadLine returns the next raw line without its line ending. It returns
// io.EOF when the input is exhausted.
func (p *Parser) ReadLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	p.lineNum++
	return strings.TrimRight(line, "\r\n"), nil
}

// Next reads and parses the next line. It returns io.EOF when the input is
// exhausted; a parse error leaves the parser ready for the following line.
func (p *Parser) Next() (Input, error) {
	line, err := p.ReadLine()
	if err != nil {
		return Input{}, err
	}
	in, err := ParseInput(line)
	if err != nil {
		return in, fmt.Errorf("line %d: %w", p.lineNum, err)
	}
	return in, nil
}

// LineNumber returns the number of lines read.
func (p *Parser) LineNumber() int {
	return p.lineNum
}
