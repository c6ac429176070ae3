package core

// Surface is a cell-addressed drawing target. Games draw onto a Surface and
// never touch the terminal directly; *Screen is the platform implementation.
type Surface interface {
	Width() int
	Height() int
	// FillCell paints an opaque block.
	FillCell(x, y int, c Color)
	// TintCell applies a translucent color over whatever is already drawn.
	TintCell(x, y int, c Color)
}

// DrawBlock fills one grid cell.
func DrawBlock(s Surface, c Color, x, y int) {
	s.FillCell(x, y, c)
}

// DrawRectangle fills an axis-aligned cell region.
func DrawRectangle(s Surface, c Color, r Rect) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.FillCell(x, y, c)
		}
	}
}

// ShadeRectangle tints an axis-aligned cell region without hiding its content.
func ShadeRectangle(s Surface, c Color, r Rect) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.TintCell(x, y, c)
		}
	}
}
