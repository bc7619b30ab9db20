// Package brand holds the frozen brand palette and the launcher density
// table shared by the icon renderer and the constants writer.
package brand

// Palette colors used by the launcher mark.
const (
	Primary   = "#2E7D32"
	Secondary = "#FFFFFF"
	Accent    = "#4CAF50"

	// Neutrals only appear inside SVG strokes.
	PaperStroke = "#E0E0E0"
	TextLine    = "#BDBDBD"
)

// Density pairs an Android mipmap bucket with its launcher edge length.
type Density struct {
	Tag  string
	Size int
}

// Densities lists every launcher bucket in generation order.
var Densities = []Density{
	{Tag: "mipmap-mdpi", Size: 48},
	{Tag: "mipmap-hdpi", Size: 72},
	{Tag: "mipmap-xhdpi", Size: 96},
	{Tag: "mipmap-xxhdpi", Size: 144},
	{Tag: "mipmap-xxxhdpi", Size: 192},
}

// Lookup returns the edge length for a density tag.
func Lookup(tag string) (int, bool) {
	for _, d := range Densities {
		if d.Tag == tag {
			return d.Size, true
		}
	}
	return 0, false
}
