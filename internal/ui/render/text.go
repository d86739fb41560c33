package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/nplay/internal/textutil"
	"github.com/mattn/go-runewidth"
)

// runeWidths memoizes runewidth lookups across frames. ASCII lives in a fixed
// table; width+1 is stored so zero means "not computed yet".
type runeWidths struct {
	ascii [128]int
	mu    sync.RWMutex
	wide  sync.Map
}

func (c *runeWidths) width(ru rune) int {
	if ru >= 0 && ru < 128 {
		c.mu.RLock()
		w := c.ascii[ru]
		c.mu.RUnlock()
		if w != 0 {
			return w - 1
		}
		actual := runewidth.RuneWidth(ru)
		c.mu.Lock()
		c.ascii[ru] = actual + 1
		c.mu.Unlock()
		return actual
	}

	if cached, ok := c.wide.Load(ru); ok {
		return cached.(int)
	}
	w := runewidth.RuneWidth(ru)
	c.wide.Store(ru, w)
	return w
}

func (r *Renderer) measureTextWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += r.widths.width(ru)
	}
	return width
}

func (r *Renderer) truncateTextToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	return textutil.Truncate(text, maxWidth)
}

// drawTextLine draws text from startX, keeping zero-width runes attached to
// the preceding cell. It returns the column after the last drawn cell.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		mainc := runes[i]
		w := r.widths.width(mainc)
		if x-startX+w > maxWidth {
			break
		}
		i++

		var combc []rune
		for i < len(runes) && r.widths.width(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}

	return x
}

func (r *Renderer) fillRow(startX, endX, y int, style tcell.Style) {
	for x := startX; x < endX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
