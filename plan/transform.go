package plan

// FeetPerPixel is the scale of the default field image at its rendered size:
// 18 ft 8 in of field span 447 pixels.
var FeetPerPixel = ScaleFeetPerPixel(18, 8, 447)

// ScaleFeetPerPixel converts a measured distance and the pixels it spans into
// feet per pixel. Every step is rounded to float32; a constant expression
// would be folded exactly and land one ULP away.
func ScaleFeetPerPixel(feet, inches, pixels float32) float32 {
	fraction := float32(inches / 12)
	total := float32(feet + fraction)
	return float32(total / pixels)
}

type Vec2 struct {
	X, Y float32
}

type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Contains reports whether p lies strictly inside r. Points on the edge are
// outside.
func (r Rect) Contains(p Vec2) bool {
	return r.X < p.X && p.X < r.X+r.Width &&
		r.Y < p.Y && p.Y < r.Y+r.Height
}

// Field describes where the field image sits on screen and how screen pixels
// map to feet.
type Field struct {
	Bounds       Rect
	FeetPerPixel float32
}

// DefaultField is the 2023 field image drawn at (5,5)-(1085,528).
func DefaultField() Field {
	return Field{
		Bounds:       Rect{X: 5, Y: 5, Width: 1080, Height: 523},
		FeetPerPixel: FeetPerPixel,
	}
}

// Displacement converts the move from prev to click into feet, as seen from
// the given alliance's driver station. Blue keeps screen x and inverts
// screen y; Red inverts both relative to Blue.
func (f Field) Displacement(prev, click Vec2, alliance Alliance) (dx, dy float32) {
	var dxPx, dyPx float32
	if alliance == Red {
		dxPx = prev.X - click.X
		dyPx = click.Y - prev.Y
	} else {
		dxPx = click.X - prev.X
		dyPx = prev.Y - click.Y
	}
	return dxPx * f.FeetPerPixel, dyPx * f.FeetPerPixel
}
