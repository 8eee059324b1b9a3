package viz

import (
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille-cell pixel buffer. Each character cell holds a
// 2x4 dot grid, so the drawable area is (Width*2) x (Height*4) pixels.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set turns on the pixel at (x, y) in sub-pixel coordinates.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCurve maps the points (xs[i], ys[i]) from the data rectangle
// [xmin,xmax] x [ymin,ymax] onto the full canvas and connects
// consecutive in-range points with line segments.
func (c *Canvas) DrawCurve(xs, ys []float64, xmin, xmax, ymin, ymax float64) {
	if len(xs) != len(ys) || len(xs) == 0 || xmax <= xmin || ymax <= ymin {
		return
	}

	cw, ch := c.Width*2, c.Height*4
	havePrev := false
	var prevX, prevY int

	for i := range xs {
		px := int(float64(cw-1) * (xs[i] - xmin) / (xmax - xmin))
		py := ch - 1 - int(float64(ch-1)*(ys[i]-ymin)/(ymax-ymin))
		if px < 0 || px >= cw || py < 0 || py >= ch {
			havePrev = false
			continue
		}
		if havePrev {
			c.DrawLine(prevX, prevY, px, py)
		} else {
			c.Set(px, py)
		}
		prevX, prevY = px, py
		havePrev = true
	}
}

// HLine draws a horizontal rule at data height y.
func (c *Canvas) HLine(y, ymin, ymax float64) {
	if ymax <= ymin || y < ymin || y > ymax {
		return
	}
	ch := c.Height * 4
	py := ch - 1 - int(float64(ch-1)*(y-ymin)/(ymax-ymin))
	c.DrawLine(0, py, c.Width*2-1, py)
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
