// Package render draws a maze and the path of a robot on a terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/baldhumanity/robomaze/mazega"
)

// Canvas is the part of tcell.Screen the renderer writes to.
type Canvas interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

// Glyph is the rune and style used for one cell code.
type Glyph struct {
	Rune  rune
	Style tcell.Style
}

// Glyphs maps cell codes to what is drawn for them. Each maze cell is two columns wide.
var Glyphs = map[int]Glyph{
	mazega.Empty:   {' ', tcell.StyleDefault},
	mazega.Wall:    {'█', tcell.StyleDefault.Foreground(tcell.ColorGray)},
	mazega.Start:   {'S', tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)},
	mazega.Goal:    {'G', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)},
	mazega.Visited: {'•', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
}

var unknownGlyph = Glyph{'?', tcell.StyleDefault.Reverse(true)}

func glyphFor(code int) Glyph {
	if g, ok := Glyphs[code]; ok {
		return g
	}
	return unknownGlyph
}

// Draw paints the grid with its top-left corner at (originX, originY).
// Grid rows go down the screen, so a maze row index becomes a screen y.
func Draw(c Canvas, grid [][]int, originX, originY int) {
	for row, cells := range grid {
		for col, code := range cells {
			g := glyphFor(code)
			x := originX + col*2
			y := originY + row
			c.SetContent(x, y, g.Rune, nil, g.Style)
			fill := ' '
			if code == mazega.Wall {
				fill = g.Rune
			}
			c.SetContent(x+1, y, fill, nil, g.Style)
		}
	}
}

// DrawText writes s starting at (x, y) on a single line.
func DrawText(c Canvas, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		c.SetContent(x+i, y, r, nil, style)
	}
}

// Show opens the terminal, draws the grid under title and waits for a key press.
func Show(grid [][]int, title string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	screen.Clear()
	DrawText(screen, 0, 0, title, tcell.StyleDefault.Bold(true))
	Draw(screen, grid, 0, 2)
	DrawText(screen, 0, len(grid)+3, "press any key to exit", tcell.StyleDefault.Dim(true))
	screen.Show()

	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// Text renders the grid with one character per cell, for logs and non-interactive output.
func Text(grid [][]int) string {
	var b strings.Builder
	for _, cells := range grid {
		for _, code := range cells {
			switch code {
			case mazega.Empty:
				b.WriteByte('.')
			case mazega.Wall:
				b.WriteByte('#')
			case mazega.Start:
				b.WriteByte('S')
			case mazega.Goal:
				b.WriteByte('G')
			case mazega.Visited:
				b.WriteByte('*')
			default:
				b.WriteByte('?')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
