// Package splash builds the app's Lottie splash animation: the receipt
// paper scales in, its text lines draw one by one, then the green badge
// pops in and the checkmark strokes across it.
package splash

import (
	"encoding/json"
	"fmt"

	"github.com/receiptkeeper/assetkit/internal/paths"
)

const (
	Width     = 200
	Height    = 200
	FPS       = 60
	Duration  = 2.0
	Frames    = int(FPS * Duration)
	shapeType = 4

	roundCap  = 2
	roundJoin = 2
)

// Colors as normalized RGBA.
var (
	white    = []float64{1, 1, 1, 1}
	grayLine = mustRGBA("#E0E0E0")
	green    = mustRGBA("#22C55E")
)

// mustRGBA converts #RRGGBB to normalized RGBA rounded to three places.
func mustRGBA(hex string) []float64 {
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		panic("splash: bad color " + hex)
	}
	norm := func(v int) float64 {
		return float64(int(float64(v)/255*1000+0.5)) / 1000
	}
	return []float64{norm(r), norm(g), norm(b), 1}
}

// textLine positions one receipt line: vertical offset, right end, and the
// frame its draw-in starts.
type textLine struct {
	name  string
	y     float64
	right float64
	delay float64
}

// Drawn bottom-most last so the layer list reads top to bottom.
var textLines = []textLine{
	{"Line 4", 110, 120, 35},
	{"Line 3", 90, 140, 30},
	{"Line 2", 70, 130, 25},
	{"Line 1", 50, 145, 20},
}

const lineLeft = 55

// Build returns the complete splash animation.
func Build() Animation {
	layers := []Layer{checkmarkLayer(), circleLayer()}
	for _, l := range textLines {
		layers = append(layers, lineLayer(l))
	}
	layers = append(layers, receiptLayer())

	return Animation{
		Version:   "5.7.4",
		FrameRate: FPS,
		In:        0,
		Out:       Frames,
		Width:     Width,
		Height:    Height,
		Name:      "ReceiptKeeper Splash",
		Assets:    []any{},
		Layers:    layers,
	}
}

// Marshal returns the animation as indented JSON.
func Marshal(a Animation) ([]byte, error) {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Write builds the animation and writes it to assets/ under root, returning
// the written path and bytes.
func Write(root string) (string, []byte, error) {
	data, err := Marshal(Build())
	if err != nil {
		return "", nil, fmt.Errorf("encode splash: %w", err)
	}
	path := paths.SplashFile(root)
	if err := paths.AtomicWrite(path, data); err != nil {
		return "", nil, err
	}
	return path, data, nil
}

func shapeLayer(name string, ks Transform, group Group) Layer {
	return Layer{
		Ty:        shapeType,
		Name:      name,
		Stretch:   1,
		Transform: ks,
		Shapes:    []Group{group},
		Out:       Frames,
	}
}

// drawIn trims a path from nothing to its full length between start and end.
func drawIn(start, end float64) Trim {
	return Trim{
		Ty:     "tm",
		Start:  animated(keyframe(start, easeOut, 0), keyframe(start, easeOut, 0), keyframe(end, nil, 0)),
		End:    animated(keyframe(start, easeOut, 0), keyframe(start, easeOut, 0), keyframe(end, nil, 100)),
		Offset: static(0),
		Mode:   1,
	}
}

func stroke(color []float64, width float64) Stroke {
	return Stroke{
		Ty:      "st",
		Color:   static(color),
		Opacity: static(100),
		Width:   static(width),
		Cap:     roundCap,
		Join:    roundJoin,
	}
}

func fill(color []float64) Fill {
	return Fill{Ty: "fl", Color: static(color), Opacity: static(100)}
}

func receiptLayer() Layer {
	const x, y, w, h = 40, 20, 120, 160
	ks := Transform{
		Anchor:   static([]float64{100, 100}),
		Position: static([]float64{100, 100}),
		Scale:    animated(keyframe(0, easeOutBack, 0, 0), keyframe(25, nil, 100, 100)),
		Rotation: static(0),
		Opacity:  animated(keyframe(0, easeOut, 0), keyframe(15, nil, 100)),
	}
	paper := Rect{
		Ty:        "rc",
		Position:  static([]float64{x + w/2, y + h/2}),
		Size:      static([]float64{w, h}),
		Roundness: static(8),
	}
	return shapeLayer("Receipt Paper", ks, Group{Ty: "gr", Name: "Paper", Items: []any{paper, fill(white), identity()}})
}

func lineLayer(l textLine) Layer {
	ks := identity()
	ks.Ty = ""
	path := Shape{Ty: "sh", Path: static(polyline([]float64{lineLeft, l.y}, []float64{l.right, l.y}))}
	items := []any{path, stroke(grayLine, 3), drawIn(l.delay, l.delay+15), identity()}
	return shapeLayer(l.name, ks, Group{Ty: "gr", Name: l.name, Items: items})
}

func circleLayer() Layer {
	const cx, cy, r = 140, 140, 35
	ks := Transform{
		Anchor:   static([]float64{cx, cy}),
		Position: static([]float64{cx, cy}),
		Scale:    animated(keyframe(45, easeOutBack, 0, 0), keyframe(65, nil, 100, 100)),
		Rotation: static(0),
		Opacity:  static(100),
	}
	disk := Ellipse{Ty: "el", Position: static([]float64{cx, cy}), Size: static([]float64{2 * r, 2 * r})}
	return shapeLayer("Green Circle", ks, Group{Ty: "gr", Name: "Circle", Items: []any{disk, fill(green), identity()}})
}

func checkmarkLayer() Layer {
	ks := identity()
	ks.Ty = ""
	path := Shape{Ty: "sh", Path: static(polyline([]float64{125, 140}, []float64{135, 150}, []float64{158, 125}))}
	items := []any{path, stroke(white, 6), drawIn(60, 85), identity()}
	return shapeLayer("Checkmark", ks, Group{Ty: "gr", Name: "Check", Items: items})
}
