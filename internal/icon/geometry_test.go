package icon

import (
	"math"
	"testing"

	"github.com/receiptkeeper/assetkit/internal/brand"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLayoutReceiptCentered(t *testing.T) {
	for _, d := range brand.Densities {
		g := Layout(d.Size)
		s := float64(d.Size)
		r := g.Receipt
		if !approx(r.W, 0.60*s) || !approx(r.H, 0.75*s) {
			t.Errorf("%s: receipt %vx%v, want %vx%v", d.Tag, r.W, r.H, 0.60*s, 0.75*s)
		}
		if !approx(r.X+r.W/2, s/2) || !approx(r.Y+r.H/2, s/2) {
			t.Errorf("%s: receipt not centered: %+v", d.Tag, r)
		}
		if !approx(r.Radius, 0.03*s) {
			t.Errorf("%s: radius = %v, want %v", d.Tag, r.Radius, 0.03*s)
		}
	}
}

func TestLayoutBackground(t *testing.T) {
	g := Layout(96)
	if g.Background.C != (Point{48, 48}) {
		t.Errorf("background center = %+v, want {48 48}", g.Background.C)
	}
	if g.Background.R != 46 {
		t.Errorf("background radius = %v, want 46", g.Background.R)
	}
}

func TestLayoutLinesRaggedRight(t *testing.T) {
	g := Layout(100)
	right := g.Receipt.X + g.Receipt.W
	wantY := []float64{12.5 + 15, 12.5 + 25, 12.5 + 35, 12.5 + 45}
	wantEnd := []float64{right - 8, right - 15, right - 10, right - 20}
	for i, l := range g.Lines {
		if !approx(l.A.Y, wantY[i]) || !approx(l.B.Y, wantY[i]) {
			t.Errorf("line %d y = %v/%v, want %v", i, l.A.Y, l.B.Y, wantY[i])
		}
		if !approx(l.B.X, wantEnd[i]) {
			t.Errorf("line %d end = %v, want %v", i, l.B.X, wantEnd[i])
		}
		if l.A.X >= l.B.X {
			t.Errorf("line %d runs backwards: %+v", i, l)
		}
	}
	if !approx(g.LineWidth, 2) {
		t.Errorf("LineWidth = %v, want 2", g.LineWidth)
	}
}

func TestLayoutBadgeAndCheck(t *testing.T) {
	g := Layout(100)
	if !approx(g.Badge.C.X, 55) || !approx(g.Badge.C.Y, 60) || !approx(g.Badge.R, 17.5) {
		t.Errorf("badge = %+v", g.Badge)
	}
	want := [3]Point{
		{55 - 0.22*35, 60},
		{55 - 0.05*35, 60 + 0.18*35},
		{55 + 0.25*35, 60 - 0.15*35},
	}
	for i, p := range g.Check {
		if !approx(p.X, want[i].X) || !approx(p.Y, want[i].Y) {
			t.Errorf("check[%d] = %+v, want %+v", i, p, want[i])
		}
	}
	if !approx(g.CheckWidth, 4) {
		t.Errorf("CheckWidth = %v, want 4", g.CheckWidth)
	}
}

func TestCheckInsideBadge(t *testing.T) {
	for _, size := range []int{48, 72, 96, 144, 192} {
		g := Layout(size)
		for i, p := range g.Check {
			d := math.Hypot(p.X-g.Badge.C.X, p.Y-g.Badge.C.Y)
			if d > g.Badge.R {
				t.Errorf("size %d: check[%d] at distance %v outside badge radius %v", size, i, d, g.Badge.R)
			}
		}
	}
}
