package menu

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fractkit/fract/internal/preview"
)

var (
	accentFg  = lipgloss.Color("#00C8C8")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	borderCol = lipgloss.Color("#243141")

	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
)

// Default preview size when the window size is not known yet.
const (
	previewCols = 64
	previewRows = 24
)

var help = map[step]string{
	chooseGenerator: "↑/↓ move • enter select • q quit",
	chooseStrategy:  "↑/↓ move • enter select • esc back • q quit",
	enterSize:       "enter generate • esc back",
	generating:      "ctrl+c quit",
	showResult:      "s save • r restart • q quit",
}

func (m Model) View() string {
	header := titleStyle.Render("fract") + dimStyle.Render(" "+m.summary())

	var body string
	switch m.step {
	case chooseGenerator:
		body = m.gens.View()
	case chooseStrategy:
		body = m.strats.View()
	case enterSize:
		body = boxStyle.Render(m.size.View())
	case generating:
		body = m.spin.View() + " generating..."
	case showResult:
		body = m.resultView()
	}

	footer := lipgloss.JoinVertical(lipgloss.Left, m.status, dimStyle.Render(help[m.step]))
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

func (m Model) summary() string {
	switch m.step {
	case chooseGenerator:
		return ""
	case chooseStrategy, enterSize:
		return m.generator.String()
	default:
		return fmt.Sprintf("%s / %s / %dx%d", m.generator, m.strategy, m.pixels, m.pixels)
	}
}

func (m Model) resultView() string {
	if m.result == nil {
		return ""
	}
	maxCols, maxRows := previewCols, previewRows
	if m.width > 0 && m.height > 0 {
		maxCols = max(m.width-4, 1)
		maxRows = max(m.height-8, 1)
	}
	cols, rows := preview.Fit(m.result, maxCols, maxRows)
	info := fmt.Sprintf("%dx%d in %v", m.result.Width(), m.result.Height(), m.elapsed.Round(time.Microsecond))
	return lipgloss.JoinVertical(lipgloss.Left, info, preview.HalfBlocks(m.result, cols, rows))
}
