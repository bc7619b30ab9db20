package icon

// Point is a position in SVG user units (output pixels).
type Point struct {
	X, Y float64
}

// Circle is a disk centered at C.
type Circle struct {
	C Point
	R float64
}

// Rect is a rounded rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
	Radius     float64
}

// Segment is a straight stroke from A to B.
type Segment struct {
	A, B Point
}

// Geometry is the full layout of the launcher mark for one edge length.
type Geometry struct {
	Size       float64
	Background Circle
	Receipt    Rect
	Lines      [4]Segment
	LineWidth  float64
	Badge      Circle
	Glyph      float64
	Check      [3]Point
	CheckWidth float64
}

// Text line offsets below the receipt top and the matching insets from the
// receipt's right edge, both as fractions of the edge length.
var (
	lineOffsets      = [4]float64{0.15, 0.25, 0.35, 0.45}
	lineRightInsets  = [4]float64{0.08, 0.15, 0.10, 0.20}
	lineLeftInset    = 0.08
	backgroundMargin = 2.0
)

// Layout derives every shape of the mark from the edge length alone.
func Layout(size int) Geometry {
	s := float64(size)
	g := Geometry{Size: s}

	g.Background = Circle{C: Point{s / 2, s / 2}, R: s/2 - backgroundMargin}

	w, h := 0.60*s, 0.75*s
	g.Receipt = Rect{X: (s - w) / 2, Y: (s - h) / 2, W: w, H: h, Radius: 0.03 * s}

	left := g.Receipt.X + lineLeftInset*s
	right := g.Receipt.X + g.Receipt.W
	for i := range g.Lines {
		y := g.Receipt.Y + lineOffsets[i]*s
		g.Lines[i] = Segment{A: Point{left, y}, B: Point{right - lineRightInsets[i]*s, y}}
	}
	g.LineWidth = 0.02 * s

	g.Glyph = 0.35 * s
	g.Badge = Circle{C: Point{0.55 * s, 0.60 * s}, R: g.Glyph / 2}

	cx, cy, gl := g.Badge.C.X, g.Badge.C.Y, g.Glyph
	g.Check = [3]Point{
		{cx - 0.22*gl, cy},
		{cx - 0.05*gl, cy + 0.18*gl},
		{cx + 0.25*gl, cy - 0.15*gl},
	}
	g.CheckWidth = 0.04 * s
	return g
}
