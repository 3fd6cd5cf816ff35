package viz

import "strings"

// brailleBits maps a dot's position inside a 2x4 braille cell to its bit.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBase = 0x2800

// Canvas is a grid of braille cells used for graph edges, with a text layer
// on top for node labels. A labeled cell never shows dots.
type Canvas struct {
	Width, Height int
	dots          [][]uint8
	labels        map[[2]int]rune
}

func NewCanvas(w, h int) *Canvas {
	dots := make([][]uint8, h)
	for i := range dots {
		dots[i] = make([]uint8, w)
	}
	return &Canvas{Width: w, Height: h, dots: dots, labels: make(map[[2]int]rune)}
}

// Set turns on the dot at (x, y). Coordinates are in dots: the canvas is
// Width*2 dots wide and Height*4 dots tall.
func (c *Canvas) Set(x, y int) {
	col, row := x/2, y/4
	if x < 0 || y < 0 || col >= c.Width || row >= c.Height {
		return
	}
	c.dots[row][col] |= brailleBits[y%4][x%2]
}

// DrawLine plots a Bresenham line between two dot coordinates.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, sx := absInt(x1-x0), sign(x1-x0)
	dy, sy := -absInt(y1-y0), sign(y1-y0)
	e := dx + dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Label writes text into cells starting at (col, row), clipped to the
// canvas.
func (c *Canvas) Label(col, row int, text string) {
	if row < 0 || row >= c.Height {
		return
	}
	for i, r := range []rune(text) {
		if x := col + i; x >= 0 && x < c.Width {
			c.labels[[2]int{row, x}] = r
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	line := make([]rune, c.Width)
	for row := range c.dots {
		for col, mask := range c.dots[row] {
			switch r, ok := c.labels[[2]int{row, col}]; {
			case ok:
				line[col] = r
			case mask == 0:
				line[col] = ' '
			default:
				line[col] = rune(brailleBase + int(mask))
			}
		}
		b.WriteString(strings.TrimRight(string(line), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
