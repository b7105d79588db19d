package viz

import "github.com/san-kum/advect/internal/export"

// frame maps data coordinates onto canvas dots with shared bounds and a 10%
// margin around the trajectories.
type frame struct {
	minX, minY     float64
	rangeX, rangeY float64
	w, h           int
}

func newFrame(doc *export.Document, c *Canvas, upto int) frame {
	minX, maxX := 0.0, 1.0
	minY, maxY := 0.0, 1.0
	first := true
	for _, part := range doc.Parts {
		n := clampLen(len(part.X), upto)
		for i := 0; i < n; i++ {
			if first {
				minX, maxX = part.X[i], part.X[i]
				minY, maxY = part.Y[i], part.Y[i]
				first = false
				continue
			}
			minX = min(minX, part.X[i])
			maxX = max(maxX, part.X[i])
			minY = min(minY, part.Y[i])
			maxY = max(maxY, part.Y[i])
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	return frame{
		minX:   minX - rangeX*0.1,
		minY:   minY - rangeY*0.1,
		rangeX: rangeX * 1.2,
		rangeY: rangeY * 1.2,
		w:      c.DotWidth(),
		h:      c.DotHeight(),
	}
}

func (f frame) dot(x, y float64) (int, int) {
	px := int((x - f.minX) / f.rangeX * float64(f.w-1))
	py := f.h - 1 - int((y-f.minY)/f.rangeY*float64(f.h-1))
	return px, py
}

// DrawTrajectories renders every particle path in the x-y plane onto a new
// canvas. upto < 0 draws the full histories; otherwise only the first upto
// samples of each, which playback uses for growing trails.
func DrawTrajectories(doc *export.Document, cols, rows, upto int) *Canvas {
	c := NewCanvas(cols, rows)
	if doc == nil || len(doc.Parts) == 0 {
		return c
	}

	// Bounds always cover the full run so playback frames don't rescale.
	f := newFrame(doc, c, -1)

	for _, part := range doc.Parts {
		n := clampLen(len(part.X), upto)
		for i := 1; i < n; i++ {
			x0, y0 := f.dot(part.X[i-1], part.Y[i-1])
			x1, y1 := f.dot(part.X[i], part.Y[i])
			c.Line(x0, y0, x1, y1)
		}
		if n == 1 {
			c.Set(f.dot(part.X[0], part.Y[0]))
		}
	}
	return c
}

func clampLen(length, upto int) int {
	if upto < 0 || upto > length {
		return length
	}
	return upto
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
