package icon

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo/float"

	"github.com/receiptkeeper/assetkit/internal/brand"
)

// Fixed stroke widths that do not scale with the edge length.
const (
	paperStrokeWidth = 1.0
	badgeStrokeWidth = 2.0
)

// SVG returns the launcher mark as an SVG document whose user units are
// output pixels.
func SVG(size int) []byte {
	g := Layout(size)
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(g.Size, g.Size, fmt.Sprintf(`viewBox="0 0 %d %d"`, size, size))

	canvas.Circle(g.Background.C.X, g.Background.C.Y, g.Background.R,
		fmt.Sprintf(`fill="%s"`, brand.Primary))

	r := g.Receipt
	canvas.Roundrect(r.X, r.Y, r.W, r.H, r.Radius, r.Radius,
		fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="%g"`, brand.Secondary, brand.PaperStroke, paperStrokeWidth))

	for _, l := range g.Lines {
		canvas.Line(l.A.X, l.A.Y, l.B.X, l.B.Y,
			fmt.Sprintf(`stroke="%s" stroke-width="%g"`, brand.TextLine, g.LineWidth))
	}

	canvas.Circle(g.Badge.C.X, g.Badge.C.Y, g.Badge.R,
		fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="%g"`, brand.Accent, brand.Primary, badgeStrokeWidth))

	xs := make([]float64, len(g.Check))
	ys := make([]float64, len(g.Check))
	for i, p := range g.Check {
		xs[i], ys[i] = p.X, p.Y
	}
	canvas.Polyline(xs, ys,
		fmt.Sprintf(`fill="none" stroke="%s" stroke-width="%g" stroke-linecap="round" stroke-linejoin="round"`,
			brand.Secondary, g.CheckWidth))

	canvas.End()
	return buf.Bytes()
}
