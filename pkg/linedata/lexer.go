package linedata

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// CommandLexer defines the lexical structure of one line-table command.
// Keywords are case-insensitive. Rule order matters: a standalone 1-4
// digit is a Quadrant, anything else numeric is a Number, and keywords
// must precede Ident.
var CommandLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Trailing comments (# to end of line)
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},

	// Command keywords
	{Name: "KwBegin", Pattern: `(?i)\bBEGIN\b`},
	{Name: "KwStore", Pattern: `(?i)\bSTORE\b`},
	{Name: "KwRecall", Pattern: `(?i)\bRECALL\b`},
	{Name: "KwBranch", Pattern: `(?i)\bBRANCH\b`},
	{Name: "KwResume", Pattern: `(?i)\bRESUME\b`},
	{Name: "KwUndo", Pattern: `(?i)\bUNDO\b`},
	{Name: "KwClose", Pattern: `(?i)\bCLOSE\b`},
	{Name: "KwJoin", Pattern: `(?i)\bJOIN\b`},
	{Name: "KwPoint", Pattern: `(?i)\bPOINT\b`},

	// Legacy aliases (older line-table grammars)
	{Name: "KwPush", Pattern: `(?i)\bPUSH\b`},
	{Name: "KwPop", Pattern: `(?i)\bPOP\b`},

	// Segment selectors: DL/DR deflections, L/R curve directions,
	// standalone quadrant digits 1-4
	{Name: "Deflection", Pattern: `(?i)\bD[LR]\b`},
	{Name: "Direction", Pattern: `(?i)\b[LR]\b`},
	{Name: "Quadrant", Pattern: `\b[1-4]\b`},

	// Numbers (distances, radii, DMS tokens, coordinates)
	{Name: "Number", Pattern: `[-+]?\d+(\.\d+)?`},

	// Identifiers (coordinate names, row labels)
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_.-]*`},
})
