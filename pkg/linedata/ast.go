package linedata

// Command is one parsed line-table row: a row label followed by
// exactly one command variant.
type Command struct {
	ID   string `parser:"@(Ident | Number | Quadrant)"`
	Body *Body  `parser:"@@"`
}

// Body is the tagged union of command variants. Exactly one branch is
// non-nil after a successful parse; the interpreter matches on it
// exhaustively.
type Body struct {
	Begin      *BeginCmd      `parser:"  @@"`
	Line       *LineCmd       `parser:"| @@"`
	Curve      *CurveCmd      `parser:"| @@"`
	Deflection *DeflectionCmd `parser:"| @@"`
	Store      *StoreCmd      `parser:"| @@"`
	Point      *PointCmd      `parser:"| @@"`
	Recall     *RecallCmd     `parser:"| @@"`
	Branch     *BranchCmd     `parser:"| @@"`
	Resume     *ResumeCmd     `parser:"| @@"`
	Undo       *UndoCmd       `parser:"| @@"`
	Close      *CloseCmd      `parser:"| @@"`
	Join       *JoinCmd       `parser:"| @@"`
}

// Coordinates is an explicit northing/easting pair.
type Coordinates struct {
	Northing float64 `parser:"@(Number | Quadrant)"`
	Easting  float64 `parser:"@(Number | Quadrant)"`
}

// BeginCmd starts a new polyline, seeded either at explicit
// coordinates or at a stored coordinate id.
type BeginCmd struct {
	Coords *Coordinates `parser:"KwBegin ( @@"`
	Ref    string       `parser:"| @(Ident | Number | Quadrant) )"`
}

// LineCmd is a bearing/distance line segment. The bearing is kept as
// the raw D.MMSS token; the interpreter validates it.
type LineCmd struct {
	Quadrant int     `parser:"@Quadrant"`
	Bearing  string  `parser:"@(Number | Quadrant)"`
	Distance float64 `parser:"@(Number | Quadrant)"`
}

// RadialSpec is the trailing quadrant/bearing pair giving the
// BC-to-RP radial of an explicitly radial curve.
type RadialSpec struct {
	Quadrant int    `parser:"@Quadrant"`
	Bearing  string `parser:"@(Number | Quadrant)"`
}

// CurveCmd is a delta/radius curve. Without the radial it is tangent
// to the previous segment; with it the curve is placed by the
// explicit radial bearing.
type CurveCmd struct {
	Direction string      `parser:"@Direction"`
	Delta     string      `parser:"@(Number | Quadrant)"`
	Radius    float64     `parser:"@(Number | Quadrant)"`
	Radial    *RadialSpec `parser:"@@?"`
}

// IsRadial reports whether the curve carries an explicit radial.
func (c *CurveCmd) IsRadial() bool { return c.Radial != nil }

// DeflectionCmd is a deflection-angle/distance line segment.
type DeflectionCmd struct {
	Direction string  `parser:"@Deflection"`
	Delta     string  `parser:"@(Number | Quadrant)"`
	Distance  float64 `parser:"@(Number | Quadrant)"`
}

// StoreCmd stores a named coordinate: the given pair if present,
// otherwise the current endpoint.
type StoreCmd struct {
	ID     string       `parser:"KwStore @(Ident | Number | Quadrant)"`
	Coords *Coordinates `parser:"@@?"`
}

// PointCmd is the legacy POINT form: STORE plus a free-text
// description carried into the point table.
type PointCmd struct {
	ID          string       `parser:"KwPoint @(Ident | Number | Quadrant)"`
	Coords      *Coordinates `parser:"@@?"`
	Description []string     `parser:"@(Ident | Number | Quadrant | Direction | Deflection)*"`
}

// RecallCmd starts a new polyline at a stored coordinate.
type RecallCmd struct {
	ID string `parser:"KwRecall @(Ident | Number | Quadrant)"`
}

// BranchCmd remembers the current polyline and starts a branch at its
// endpoint. PUSH is the legacy spelling.
type BranchCmd struct {
	Keyword string `parser:"@(KwBranch | KwPush)"`
}

// ResumeCmd returns to the most recently branched-from polyline.
// POP is the legacy spelling.
type ResumeCmd struct {
	Keyword string `parser:"@(KwResume | KwPop)"`
}

// UndoCmd removes the last segment of the current polyline.
type UndoCmd struct {
	Keyword string `parser:"@KwUndo"`
}

// CloseCmd reports the closure gap from the current endpoint to a
// stored coordinate.
type CloseCmd struct {
	ID string `parser:"KwClose @(Ident | Number | Quadrant)"`
}

// JoinCmd merges the last polyline onto the one before it.
type JoinCmd struct {
	Keyword string `parser:"@KwJoin"`
}
