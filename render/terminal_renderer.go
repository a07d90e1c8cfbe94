package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/sortviz/constant"
	"github.com/lixenwraith/sortviz/sequence"
)

// partialBlocks are the lower eighth blocks, index k draws k+1 eighths
var partialBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Frame is everything drawn in one refresh
type Frame struct {
	Sequence *sequence.Sequence
	Palette  *Palette
	Overlay  []string
	// Alert is drawn under the overlay in a highlight color, e.g. "SORT COMPLETE!"
	Alert string
}

// TerminalRenderer draws bars and the debug overlay on a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{screen: screen, width: w, height: h}
}

// Resize updates the drawing area after a terminal resize
func (r *TerminalRenderer) Resize(width, height int) {
	r.width, r.height = width, height
}

// Size returns the drawing area
func (r *TerminalRenderer) Size() (int, int) {
	return r.width, r.height
}

// BarCapacity returns how many bars fit across width columns
func BarCapacity(width int) int {
	return min(max(width/constant.BarWidth, 0), constant.MaxBars)
}

// RenderFrame clears the screen, draws bars then the overlay, and shows the result
func (r *TerminalRenderer) RenderFrame(f Frame) {
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(bg)
	r.screen.Clear()

	if f.Sequence != nil {
		r.drawBars(f.Sequence, f.Palette, bg)
	}
	r.drawOverlay(f.Overlay, f.Alert)

	r.screen.Show()
}

// drawBars draws one column per element, bottom-aligned, with eighth-cell precision
func (r *TerminalRenderer) drawBars(seq *sequence.Sequence, pal *Palette, bg tcell.Style) {
	n := seq.Len()
	if n == 0 || r.height <= 0 {
		return
	}
	top := seq.Max() + 1
	eighths := r.height * 8

	for i := 0; i < n; i++ {
		x := i * constant.BarWidth
		if x >= r.width {
			break
		}

		// Heights are value+1 so the zero element still shows a sliver
		v := seq.At(i) + 1
		progress := float64(v) / float64(top)
		h8 := max(v*eighths/top, 1)

		role := RoleNormal
		if pal != nil {
			role = pal.Role(i)
		}
		style := bg.Foreground(RoleColor(role, progress))

		full, rem := h8/8, h8%8
		for dx := 0; dx < constant.BarWidth && x+dx < r.width; dx++ {
			for row := 0; row < full; row++ {
				r.screen.SetContent(x+dx, r.height-1-row, '█', nil, style)
			}
			if rem > 0 && full < r.height {
				r.screen.SetContent(x+dx, r.height-1-full, partialBlocks[rem-1], nil, style)
			}
		}
	}
}

// drawOverlay draws lines in a boxed region at the top-left
func (r *TerminalRenderer) drawOverlay(lines []string, alert string) {
	if len(lines) == 0 && alert == "" {
		return
	}

	boxWidth := runewidth.StringWidth(alert)
	for _, l := range lines {
		boxWidth = max(boxWidth, runewidth.StringWidth(l))
	}
	boxWidth += 2

	style := tcell.StyleDefault.Foreground(RgbOverlayText).Background(RgbOverlayBg)
	y := 0
	for _, l := range lines {
		r.drawText(0, y, boxWidth, l, style)
		y++
	}
	if alert != "" {
		r.drawText(0, y, boxWidth, alert, style.Foreground(RgbOverlayAlert).Bold(true))
	}
}

// drawText writes s at (x, y) padded with background to width columns
func (r *TerminalRenderer) drawText(x, y, width int, s string, style tcell.Style) {
	if y >= r.height {
		return
	}
	col := x
	r.screen.SetContent(col, y, ' ', nil, style)
	col++
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if col+w > r.width {
			return
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col += w
	}
	for ; col < x+width && col < r.width; col++ {
		r.screen.SetContent(col, y, ' ', nil, style)
	}
}
