package linedata

import (
	"errors"
	"testing"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	return parser
}

func TestParseBeginWithCoordinates(t *testing.T) {
	parser := newTestParser(t)

	cmd, err := parser.ParseLine(1, "10 BEGIN 1929390.126 6074201.714")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if cmd.ID != "10" {
		t.Errorf("Expected id '10', got '%s'", cmd.ID)
	}
	b := cmd.Body.Begin
	if b == nil {
		t.Fatal("Begin is nil")
	}
	if b.Coords == nil {
		t.Fatal("Expected explicit coordinates")
	}
	if b.Coords.Northing != 1929390.126 || b.Coords.Easting != 6074201.714 {
		t.Errorf("Wrong coordinates: %v %v", b.Coords.Northing, b.Coords.Easting)
	}
}

func TestParseBeginWithReference(t *testing.T) {
	parser := newTestParser(t)

	cmd, err := parser.ParseLine(1, "10 begin PT1")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	b := cmd.Body.Begin
	if b == nil {
		t.Fatal("Begin is nil")
	}
	if b.Coords != nil {
		t.Error("Expected reference form, got coordinates")
	}
	if b.Ref != "PT1" {
		t.Errorf("Expected ref 'PT1', got '%s'", b.Ref)
	}
}

func TestParseLineSegment(t *testing.T) {
	parser := newTestParser(t)

	cmd, err := parser.ParseLine(2, "11 4 73.1430 25.00")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	l := cmd.Body.Line
	if l == nil {
		t.Fatal("Line is nil")
	}
	if l.Quadrant != 4 {
		t.Errorf("Expected quadrant 4, got %d", l.Quadrant)
	}
	if l.Bearing != "73.1430" {
		t.Errorf("Expected raw bearing token '73.1430', got '%s'", l.Bearing)
	}
	if l.Distance != 25.00 {
		t.Errorf("Expected distance 25.00, got %v", l.Distance)
	}
}

func TestParseLineSegmentSmallDistance(t *testing.T) {
	parser := newTestParser(t)

	// A bare 1-4 digit distance lexes as a Quadrant token and must
	// still be accepted as a number.
	cmd, err := parser.ParseLine(2, "11 1 45.0000 4")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if cmd.Body.Line == nil {
		t.Fatal("Line is nil")
	}
	if cmd.Body.Line.Distance != 4 {
		t.Errorf("Expected distance 4, got %v", cmd.Body.Line.Distance)
	}
}

func TestParseTangentCurve(t *testing.T) {
	parser := newTestParser(t)

	cmd, err := parser.ParseLine(3, "C1 L 27.2800 300.0")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	c := cmd.Body.Curve
	if c == nil {
		t.Fatal("Curve is nil")
	}
	if c.Direction != "L" {
		t.Errorf("Expected direction 'L', got '%s'", c.Direction)
	}
	if c.Delta != "27.2800" {
		t.Errorf("Expected raw delta token, got '%s'", c.Delta)
	}
	if c.Radius != 300.0 {
		t.Errorf("Expected radius 300.0, got %v", c.Radius)
	}
	if c.IsRadial() {
		t.Error("Expected tangent curve, got radial form")
	}
}

func TestParseNonTangentCurve(t *testing.T) {
	parser := newTestParser(t)

	cmd, err := parser.ParseLine(4, "C2 R 16.4512 150.0 2 45.0000")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	c := cmd.Body.Curve
	if c == nil {
		t.Fatal("Curve is nil")
	}
	if !c.IsRadial() {
		t.Fatal("Expected radial form")
	}
	if c.Radial.Quadrant != 2 {
		t.Errorf("Expected radial quadrant 2, got %d", c.Radial.Quadrant)
	}
	if c.Radial.Bearing != "45.0000" {
		t.Errorf("Expected radial bearing token '45.0000', got '%s'", c.Radial.Bearing)
	}
}

func TestParseDeflection(t *testing.T) {
	parser := newTestParser(t)

	cmd, err := parser.ParseLine(5, "12 DL 5.3000 120.5")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	d := cmd.Body.Deflection
	if d == nil {
		t.Fatal("Deflection is nil")
	}
	if d.Direction != "DL" {
		t.Errorf("Expected direction 'DL', got '%s'", d.Direction)
	}
	if d.Distance != 120.5 {
		t.Errorf("Expected distance 120.5, got %v", d.Distance)
	}
}

func TestParseStoreForms(t *testing.T) {
	parser := newTestParser(t)

	cmd, err := parser.ParseLine(6, "20 STORE PT1")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	s := cmd.Body.Store
	if s == nil {
		t.Fatal("Store is nil")
	}
	if s.ID != "PT1" || s.Coords != nil {
		t.Errorf("Expected bare store of PT1, got %+v", s)
	}

	cmd, err = parser.ParseLine(7, "21 STORE PT2 1000.0 2000.0")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	s = cmd.Body.Store
	if s.Coords == nil || s.Coords.Northing != 1000.0 || s.Coords.Easting != 2000.0 {
		t.Errorf("Expected explicit coordinates, got %+v", s)
	}
}

func TestParsePointWithDescription(t *testing.T) {
	parser := newTestParser(t)

	cmd, err := parser.ParseLine(8, "22 POINT PT3 500.0 600.0 IRON PIPE")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	p := cmd.Body.Point
	if p == nil {
		t.Fatal("Point is nil")
	}
	if p.ID != "PT3" {
		t.Errorf("Expected id 'PT3', got '%s'", p.ID)
	}
	if p.Coords == nil || p.Coords.Northing != 500.0 {
		t.Errorf("Expected coordinates, got %+v", p.Coords)
	}
	if len(p.Description) != 2 || p.Description[0] != "IRON" || p.Description[1] != "PIPE" {
		t.Errorf("Expected description [IRON PIPE], got %v", p.Description)
	}
}

func TestParseKeywordCommands(t *testing.T) {
	parser := newTestParser(t)

	tests := []struct {
		text  string
		check func(*Body) bool
	}{
		{"30 RECALL PT1", func(b *Body) bool { return b.Recall != nil && b.Recall.ID == "PT1" }},
		{"31 BRANCH", func(b *Body) bool { return b.Branch != nil }},
		{"32 RESUME", func(b *Body) bool { return b.Resume != nil }},
		{"33 UNDO", func(b *Body) bool { return b.Undo != nil }},
		{"34 CLOSE PT1", func(b *Body) bool { return b.Close != nil && b.Close.ID == "PT1" }},
		{"35 JOIN", func(b *Body) bool { return b.Join != nil }},
		// Legacy aliases
		{"36 PUSH", func(b *Body) bool { return b.Branch != nil }},
		{"37 POP", func(b *Body) bool { return b.Resume != nil }},
		// Keywords are case-insensitive
		{"38 resume", func(b *Body) bool { return b.Resume != nil }},
	}
	for _, tt := range tests {
		cmd, err := parser.ParseLine(1, tt.text)
		if err != nil {
			t.Errorf("Failed to parse %q: %v", tt.text, err)
			continue
		}
		if !tt.check(cmd.Body) {
			t.Errorf("Wrong variant for %q: %+v", tt.text, cmd.Body)
		}
	}
}

func TestParseMalformedLines(t *testing.T) {
	parser := newTestParser(t)

	for _, text := range []string{
		"",
		"10",                      // command missing
		"10 BEGIN",                // arity
		"10 STORE PT2 1000.0",     // one coordinate of two
		"10 SPLINE 1 2",           // unknown keyword
		"10 4 73.1430",            // missing distance
		"10 L 27.2800",            // missing radius
		"10 L 27.2800 300.0 2",    // radial bearing missing
		"10 RECALL",               // id missing
		"10 5 73.1430 25.0",       // quadrant out of range
	} {
		_, err := parser.ParseLine(9, text)
		if err == nil {
			t.Errorf("Expected parse error for %q", text)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Expected *ParseError for %q, got %T", text, err)
			continue
		}
		if perr.Line != 9 {
			t.Errorf("Expected line 9 in error, got %d", perr.Line)
		}
	}
}

func TestParseInlineComment(t *testing.T) {
	parser := newTestParser(t)

	cmd, err := parser.ParseLine(1, "11 4 73.1430 25.00 # along the north wall")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if cmd.Body.Line == nil {
		t.Fatal("Line is nil")
	}
}
