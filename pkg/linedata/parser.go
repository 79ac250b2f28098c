// Package linedata parses the line-table command language: one
// whitespace-separated command per line, identified by a leading row
// label and disambiguated by the shape of the following token
// (quadrant digit, L/R direction, DL/DR pair, or keyword).
package linedata

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

// ParseError reports a malformed command line. Parsing never mutates
// interpreter state, so a ParseError always leaves the run exactly as
// it was before the offending line.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Parser parses individual line-table commands.
type Parser struct {
	parser *participle.Parser[Command]
}

// NewParser builds the command parser.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[Command](
		participle.Lexer(CommandLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// ParseLine parses one non-blank, non-comment input line. The line
// number is carried into any ParseError for the listing.
func (p *Parser) ParseLine(line int, text string) (*Command, error) {
	cmd, err := p.parser.ParseString("", text)
	if err != nil {
		return nil, &ParseError{Line: line, Text: text, Reason: err.Error()}
	}
	return cmd, nil
}
