package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/nplay/internal/media"
	statepkg "github.com/kk-code-lab/nplay/internal/state"
	textutil "github.com/kk-code-lab/nplay/internal/textutil"
)

const (
	playingMarker  = "▶"
	pausedMarker   = "⏸"
	durationColumn = 8
)

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
	widths runeWidths
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()
	w, h := r.screen.Size()
	if state == nil || w <= 0 || h <= 0 {
		r.screen.Show()
		return
	}

	if state.HelpVisible {
		r.drawHelpOverlay(state, w, h)
		r.screen.Show()
		return
	}

	r.drawHeader(state, w)
	if state.FilterLineVisible() {
		r.drawFilterLine(state, w)
	}
	r.drawVideoList(state, w, h)
	r.drawStatusLine(state, w, h)
	r.drawFooter(state, w, h)

	r.screen.Show()
}

// drawHeader renders the top bar: app name, shown/total count, repeat flag.
func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	style := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)
	x := r.drawTextLine(0, 0, w, " nplay ", style.Bold(true))

	pl := state.Playlist
	total := 0
	repeat := false
	if pl != nil {
		total = len(pl.Videos)
		repeat = pl.Repeat
	}
	shown := len(state.DisplayVideos())

	info := formatCount(shown, total)
	if repeat {
		info += "  [repeat]"
	}
	x = r.drawTextLine(x, 0, w-x, info, style)
	r.fillRow(x, w, 0, style)
}

func formatCount(shown, total int) string {
	noun := "videos"
	if total == 1 {
		noun = "video"
	}
	if shown == total {
		return fmt.Sprintf("%d %s", total, noun)
	}
	return fmt.Sprintf("%d/%d %s", shown, total, noun)
}

// drawFilterLine shows the query on row 1, with a caret while editing.
func (r *Renderer) drawFilterLine(state *statepkg.AppState, w int) {
	style := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	query := ""
	if state.Playlist != nil {
		query = textutil.SanitizeTerminalText(state.Playlist.Filter)
	}

	text := "/" + query
	if state.FilterEditing {
		text += "▏"
	}
	if len(state.DisplayVideos()) == 0 {
		text += "  (no matches)"
	}
	x := r.drawTextLine(0, 1, w, r.truncateTextToWidth(text, w), style)
	r.fillRow(x, w, 1, style)
}

// drawVideoList renders the visible window of the filtered view.
func (r *Renderer) drawVideoList(state *statepkg.AppState, w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	videos := state.DisplayVideos()
	startY := state.ListStartRow()
	bottomLimit := h - 2
	if bottomLimit <= startY {
		return
	}

	selectedID := ""
	if state.Playlist != nil {
		selectedID = state.Playlist.SelectedID
	}

	y := startY
	for idx := state.ScrollOffset; idx < len(videos) && y < bottomLimit; idx++ {
		r.drawVideoRow(videos[idx], y, w, idx == state.CursorIndex, videos[idx].ID == selectedID, state.Paused, baseStyle)
		y++
	}
	for ; y < bottomLimit; y++ {
		r.fillRow(0, w, y, baseStyle)
	}
}

func (r *Renderer) drawVideoRow(video media.Video, y, w int, isCursor, isSelected, paused bool, baseStyle tcell.Style) {
	rowStyle := baseStyle
	if isCursor {
		rowStyle = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
	}

	marker := "  "
	markerStyle := rowStyle
	if isSelected {
		marker = playingMarker + " "
		if paused {
			marker = pausedMarker + " "
		}
		if !isCursor {
			markerStyle = rowStyle.Foreground(r.theme.PlayingFg)
		}
	}
	x := r.drawTextLine(0, y, w, marker, markerStyle.Bold(true))

	duration := ""
	if d := video.Duration(); d > 0 {
		duration = media.FormatDuration(d)
	}
	durWidth := 0
	if w-x > durationColumn+4 {
		durWidth = durationColumn
	}

	textWidth := w - x - durWidth
	title := textutil.SanitizeTerminalText(video.Title())
	titleStyle := rowStyle
	if isSelected {
		titleStyle = titleStyle.Bold(true)
	}
	x = r.drawTextLine(x, y, textWidth, r.truncateTextToWidth(title, textWidth), titleStyle)

	if channel := textutil.SanitizeTerminalText(video.ChannelTitle()); channel != "" {
		remaining := w - durWidth - x
		sep := " · "
		if remaining > r.measureTextWidth(sep)+1 {
			channelStyle := rowStyle
			if !isCursor {
				channelStyle = rowStyle.Foreground(r.theme.ChannelFg)
			}
			x = r.drawTextLine(x, y, remaining, sep, channelStyle)
			x = r.drawTextLine(x, y, w-durWidth-x, r.truncateTextToWidth(channel, w-durWidth-x), channelStyle)
		}
	}

	r.fillRow(x, w-durWidth, y, rowStyle)
	if durWidth > 0 {
		durStyle := rowStyle
		if !isCursor {
			durStyle = rowStyle.Foreground(r.theme.DurationFg)
		}
		text := textutil.PadLeft(duration+" ", durWidth)
		end := r.drawTextLine(w-durWidth, y, durWidth, text, durStyle)
		r.fillRow(end, w, y, durStyle)
	}
}

// drawStatusLine shows the playing video and its progress, or the last error.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	y := h - 2
	if y < 1 {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)

	if state.LastError != nil {
		text := textutil.SanitizeTerminalText("error: " + state.LastError.Error())
		x := r.drawTextLine(0, y, w, r.truncateTextToWidth(text, w), style.Foreground(r.theme.ErrorFg))
		r.fillRow(x, w, y, style)
		return
	}

	video, ok := state.SelectedVideo()
	if !ok {
		x := r.drawTextLine(0, y, w, " nothing playing", style)
		r.fillRow(x, w, y, style)
		return
	}

	marker := playingMarker
	if state.Paused {
		marker = pausedMarker
	}
	clock := formatClock(state.Elapsed, video.Duration())

	x := r.drawTextLine(0, y, w, " "+marker+" ", style.Bold(true))
	right := " " + clock + " "
	barWidth := 0
	if w >= 60 {
		barWidth = w / 4
	}
	titleWidth := w - x - r.measureTextWidth(right) - barWidth
	if titleWidth < 0 {
		titleWidth = 0
	}
	title := textutil.SanitizeTerminalText(video.Title())
	x = r.drawTextLine(x, y, titleWidth, textutil.PadRight(title, titleWidth), style)
	x = r.drawTextLine(x, y, w-x, right, style)
	if barWidth > 0 {
		x = r.drawTextLine(x, y, w-x, progressBar(state.Elapsed, video.Duration(), barWidth), style.Foreground(r.theme.ProgressFg))
	}
	r.fillRow(x, w, y, style)
}

func formatClock(elapsed, total time.Duration) string {
	if total <= 0 {
		return media.FormatDuration(elapsed)
	}
	return media.FormatDuration(elapsed) + " / " + media.FormatDuration(total)
}

// progressBar draws elapsed/total as a fixed-width bar.
func progressBar(elapsed, total time.Duration, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if total > 0 && elapsed > 0 {
		filled = int(int64(width) * int64(elapsed) / int64(total))
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("━", filled) + strings.Repeat("─", width-filled)
}

func (r *Renderer) drawFooter(state *statepkg.AppState, w, h int) {
	y := h - 1
	if y < 1 {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	text := r.truncateTextToWidth(buildFooterHelpText(state), w)
	x := r.drawTextLine(0, y, w, text, style)
	r.fillRow(x, w, y, style)
}
