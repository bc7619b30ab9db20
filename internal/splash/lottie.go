package splash

// Lottie document types, limited to what the splash animation uses.

// Property is a static or keyframed value: A is 0 for static, 1 when K holds
// keyframes.
type Property struct {
	A int `json:"a"`
	K any `json:"k"`
}

func static(v any) Property { return Property{A: 0, K: v} }

func animated(kfs ...Keyframe) Property { return Property{A: 1, K: kfs} }

// Easing is one bezier handle of a keyframe.
type Easing struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// Curve is a cubic-bezier easing expressed as its out and in handles.
type Curve struct {
	Out Easing
	In  Easing
}

func bezier(x1, y1, x2, y2 float64) *Curve {
	return &Curve{
		Out: Easing{X: []float64{x1}, Y: []float64{y1}},
		In:  Easing{X: []float64{x2}, Y: []float64{y2}},
	}
}

var (
	easeOut     = bezier(0.0, 0.0, 0.2, 1.0)
	easeOutBack = bezier(0.0, 0.0, 0.2, 1.4)
)

// Keyframe is one point on an animated property's timeline.
type Keyframe struct {
	T float64   `json:"t"`
	S []float64 `json:"s"`
	I *Easing   `json:"i,omitempty"`
	O *Easing   `json:"o,omitempty"`
	H int       `json:"h,omitempty"`
}

func keyframe(t float64, curve *Curve, s ...float64) Keyframe {
	kf := Keyframe{T: t, S: s}
	if curve != nil {
		kf.I, kf.O = &curve.In, &curve.Out
	}
	return kf
}

// Transform is a layer or group transform.
type Transform struct {
	Ty       string   `json:"ty,omitempty"`
	Anchor   Property `json:"a"`
	Position Property `json:"p"`
	Scale    Property `json:"s"`
	Rotation Property `json:"r"`
	Opacity  Property `json:"o"`
}

func identity() Transform {
	return Transform{
		Ty:       "tr",
		Anchor:   static([]float64{0, 0}),
		Position: static([]float64{0, 0}),
		Scale:    static([]float64{100, 100}),
		Rotation: static(0),
		Opacity:  static(100),
	}
}

// Path is an open or closed bezier path; straight segments use zero
// tangents.
type Path struct {
	Closed   bool        `json:"c"`
	Vertices [][]float64 `json:"v"`
	In       [][]float64 `json:"i"`
	Out      [][]float64 `json:"o"`
}

func polyline(pts ...[]float64) Path {
	zero := make([][]float64, len(pts))
	for i := range zero {
		zero[i] = []float64{0, 0}
	}
	return Path{Vertices: pts, In: zero, Out: zero}
}

// Shape items. Each carries its Lottie type tag in Ty.

type Rect struct {
	Ty        string   `json:"ty"`
	Position  Property `json:"p"`
	Size      Property `json:"s"`
	Roundness Property `json:"r"`
}

type Ellipse struct {
	Ty       string   `json:"ty"`
	Position Property `json:"p"`
	Size     Property `json:"s"`
}

type Shape struct {
	Ty   string   `json:"ty"`
	Path Property `json:"ks"`
}

type Fill struct {
	Ty      string   `json:"ty"`
	Color   Property `json:"c"`
	Opacity Property `json:"o"`
}

type Stroke struct {
	Ty      string   `json:"ty"`
	Color   Property `json:"c"`
	Opacity Property `json:"o"`
	Width   Property `json:"w"`
	Cap     int      `json:"lc"`
	Join    int      `json:"lj"`
}

type Trim struct {
	Ty     string   `json:"ty"`
	Start  Property `json:"s"`
	End    Property `json:"e"`
	Offset Property `json:"o"`
	Mode   int      `json:"m"`
}

type Group struct {
	Ty    string `json:"ty"`
	Items []any  `json:"it"`
	Name  string `json:"nm"`
}

// Layer is a shape layer.
type Layer struct {
	Ty        int       `json:"ty"`
	Name      string    `json:"nm"`
	Stretch   int       `json:"sr"`
	Transform Transform `json:"ks"`
	Shapes    []Group   `json:"shapes"`
	In        int       `json:"ip"`
	Out       int       `json:"op"`
	Start     int       `json:"st"`
}

// Animation is the Lottie document root.
type Animation struct {
	Version   string  `json:"v"`
	FrameRate int     `json:"fr"`
	In        int     `json:"ip"`
	Out       int     `json:"op"`
	Width     int     `json:"w"`
	Height    int     `json:"h"`
	Name      string  `json:"nm"`
	ThreeD    int     `json:"ddd"`
	Assets    []any   `json:"assets"`
	Layers    []Layer `json:"layers"`
}
