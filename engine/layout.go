package engine

import (
	"math"

	"github.com/lixenwraith/particle-field/field"
	"github.com/lixenwraith/particle-field/vmath"
)

// hudRows is the status line height above the viewport
const hudRows = 1

// layout places the field canvas inside the terminal
// Cells are 1 field pixel wide and 2 pixels tall; a pixel spans scale field units
type layout struct {
	cols, rows int
	scale      float64

	// canvas origin and extent, in cells
	x0, y0               int
	fieldCols, fieldRows int
}

// computeLayout sizes the viewport below the HUD and centers the field in it
func computeLayout(cols, rows int, scale float64) (layout, float64, float64) {
	cols = max(cols, 0)
	viewRows := max(rows-hudRows, 0)

	viewW := float64(cols) * scale
	viewH := float64(viewRows) * 2 * scale
	b := field.FieldBounds(viewW, viewH)

	l := layout{
		cols:      cols,
		rows:      rows,
		scale:     scale,
		fieldCols: min(int(math.Ceil(b.Width/scale)), cols),
		fieldRows: min(int(math.Ceil(b.Height/(2*scale))), viewRows),
	}
	l.x0 = (cols - l.fieldCols) / 2
	l.y0 = hudRows + (viewRows-l.fieldRows)/2
	return l, viewW, viewH
}

// toField maps a cell to the field coordinates of its center
// Returns false for cells outside the canvas
func (l layout) toField(x, y int) (vmath.Vec2F, bool) {
	cx, cy := x-l.x0, y-l.y0
	if cx < 0 || cy < 0 || cx >= l.fieldCols || cy >= l.fieldRows {
		return vmath.Vec2F{}, false
	}
	return vmath.V2F(
		(float64(cx)+0.5)*l.scale,
		(float64(cy)*2+1)*l.scale,
	), true
}
