package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/flipbook/internal/book"
	"github.com/five82/flipbook/internal/inventory"
)

const (
	maxPageWidth = 36
	minPageWidth = 8
	minPageRows  = 5
	chromeRows   = 4 // header, counter, progress, help
)

func newProgress(t Theme) progress.Model {
	return progress.New(
		progress.WithSolidFill(t.Accent),
		progress.WithoutPercentage(),
	)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	pageRows := max(minPageRows, m.height-chromeRows)
	sections := []string{
		m.renderHeader(),
		m.renderBody(pageRows),
		m.renderCounter(),
	}
	if !m.prefs.HideProgress {
		sections = append(sections, m.renderProgress())
	}
	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	title := truncate(m.book.Title, max(m.width/2, 1))
	left := bg.Render(title, styles.Title)
	right := bg.Render(m.scene.cover.String()+"  "+m.theme.Name, styles.FaintText)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	return styles.Header.Width(m.width).Render(left + bg.Spaces(gap) + right)
}

func (m Model) renderBody(rows int) string {
	bg := NewBgStyle(m.theme.Background)
	scrollbar := m.renderScrollbar(rows)
	bookWidth := max(m.width-lipgloss.Width(scrollbar)-1, 0)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		bg.FillLine(m.renderBook(bookWidth, rows), bookWidth),
		bg.Block(1, rows),
		scrollbar,
	)
}

// renderBook draws both sides of the spine. The spine slides with the cover
// offset so a closed book stays centered on its single visible side.
func (m Model) renderBook(width, rows int) string {
	bg := NewBgStyle(m.theme.Background)
	pw := clampInt((width-2)/2, minPageWidth, maxPageWidth)

	left, right := m.renderSides(pw, rows)
	spread := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	center := float64(width) / 2
	spine := center - float64(pw)/2 + m.scene.coverX*float64(pw)
	margin := clampInt(int(math.Round(spine))-pw, 0, max(width-2*pw, 0))

	lines := strings.Split(spread, "\n")
	for i, line := range lines {
		lines[i] = bg.Spaces(margin) + line
	}
	return strings.Join(lines, "\n")
}

// renderSides returns the left and right halves of the open book, each pw
// wide. While a leaf is turning it is drawn narrowing toward the spine on
// the side it is leaving and widening on the side it lands on.
func (m Model) renderSides(pw, rows int) (string, string) {
	turning, p, ok := m.scene.turning()
	if !ok {
		left, right := m.book.Spread(m.scene.top(book.Flipped) + 1)
		return m.renderFace(left, pw, rows, false), m.renderFace(right, pw, rows, false)
	}

	// The turning leaf sits between the spread it leaves and the one it opens.
	left, front := m.book.Spread(turning)
	back, right := m.book.Spread(turning + 1)

	w := int(math.Round(float64(pw) * math.Abs(1-2*p)))
	if p >= 0.5 {
		leftSide := lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderFace(left, pw-w, rows, false),
			m.renderFace(back, w, rows, true),
		)
		return leftSide, m.renderFace(right, pw, rows, false)
	}
	rightSide := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderFace(front, w, rows, true),
		m.renderFace(right, pw-w, rows, false),
	)
	return m.renderFace(left, pw, rows, false), rightSide
}

// renderFace draws one page face in a width x rows box. A nil face or a box
// too narrow for a border leaves background.
func (m Model) renderFace(face *inventory.Face, width, rows int, turning bool) string {
	bg := NewBgStyle(m.theme.Background)
	if face == nil || width < 3 {
		return bg.Block(width, rows)
	}

	styles := m.theme.Styles()
	box := styles.Page
	if turning {
		box = styles.TurningPage
	}
	inner := width - 2
	padding := 0
	if inner >= 6 {
		padding = 1
	}
	textWidth := inner - 2*padding

	var content []string
	if title := strings.TrimSpace(face.Title); title != "" {
		content = append(content, styles.PageTitle.Render(truncate(title, textWidth)), "")
	}
	wrapped := lipgloss.NewStyle().Width(textWidth).Render(strings.TrimSpace(face.Text))
	content = append(content, strings.Split(wrapped, "\n")...)
	if len(content) > rows-2 {
		content = content[:max(rows-2, 0)]
	}

	return box.
		Width(inner).
		Height(rows - 2).
		Padding(0, padding).
		Render(strings.Join(content, "\n"))
}

// renderScrollbar draws the virtual scroll container as a one-column track.
func (m Model) renderScrollbar(rows int) string {
	styles := m.theme.Styles()
	thumb := int(math.Round(m.scene.scrollFraction() * float64(rows-1)))
	lines := make([]string, rows)
	for i := range lines {
		if i == thumb {
			lines[i] = styles.ScrollThumb.Render("┃")
		} else {
			lines[i] = styles.Scrollbar.Render("│")
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderCounter() string {
	styles := m.theme.Styles()
	counter := m.scene.counter
	if m.ctrl.Locked() {
		counter = styles.WarningText.Render(counter)
	} else {
		counter = styles.AccentText.Render(counter)
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, counter)
}

func (m Model) renderProgress() string {
	snap := m.ctrl.Snapshot()
	bar := m.progress
	bar.Width = max(m.width/2, 10)
	percent := float64(snap.Current) / float64(snap.PageCount)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, bar.ViewAs(percent))
}
