package export

import (
	"fmt"
	"strings"
)

var strokePalette = []string{
	"#00ff00", "#00c8ff", "#ff8c00", "#ff4fa3", "#f5e642", "#b078ff",
}

// TrajectoriesToSVG renders every particle path of a document as an SVG
// polyline, all trajectories sharing one set of axis bounds. Returns the
// empty string when there is nothing to draw.
func TrajectoriesToSVG(doc *Document, width, height int) string {
	if doc == nil || len(doc.Parts) == 0 {
		return ""
	}

	minX, maxX, minY, maxY, ok := bounds(doc)
	if !ok {
		return ""
	}

	// 10% margin so paths don't touch the frame.
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for n, part := range doc.Parts {
		if len(part.X) < 2 {
			continue
		}
		color := strokePalette[n%len(strokePalette)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for i := range part.X {
			px := (part.X[i] - minX) / rangeX * float64(width)
			py := float64(height) - (part.Y[i]-minY)/rangeY*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func bounds(doc *Document) (minX, maxX, minY, maxY float64, ok bool) {
	first := true
	for _, part := range doc.Parts {
		for i := range part.X {
			if first {
				minX, maxX = part.X[i], part.X[i]
				minY, maxY = part.Y[i], part.Y[i]
				first = false
				continue
			}
			if part.X[i] < minX {
				minX = part.X[i]
			}
			if part.X[i] > maxX {
				maxX = part.X[i]
			}
			if part.Y[i] < minY {
				minY = part.Y[i]
			}
			if part.Y[i] > maxY {
				maxY = part.Y[i]
			}
		}
	}
	return minX, maxX, minY, maxY, !first
}
