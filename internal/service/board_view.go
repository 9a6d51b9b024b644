package service

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nightreign-bingo/internal/model"
)

const (
	gridColumns = 5
	cellWidth   = 22
	cellHeight  = 4
)

var (
	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Height(cellHeight).
			Padding(0, 1).
			Align(lipgloss.Center, lipgloss.Center).
			Border(lipgloss.NormalBorder())
	centerStyle = cellStyle.
			Bold(true).
			Border(lipgloss.DoubleBorder())
	legendStyle = lipgloss.NewStyle().Faint(true)
)

// RenderBoard draws the board as a 5x5 grid with the center task in the
// middle cell.
func RenderBoard(board model.Board) (string, error) {
	grid, err := board.Grid()
	if err != nil {
		return "", err
	}

	rows := make([]string, 0, gridColumns+1)
	for r := 0; r < gridColumns; r++ {
		cells := make([]string, 0, gridColumns)
		for c := 0; c < gridColumns; c++ {
			i := r*gridColumns + c
			style := cellStyle
			if i == model.CenterIndex {
				style = centerStyle
			}
			cells = append(cells, style.Render(grid[i].Name))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	rows = append(rows, legendStyle.Render(categoryLegend(grid)))
	return lipgloss.JoinVertical(lipgloss.Left, rows...), nil
}

// categoryLegend counts cells per category, Boss excluded.
func categoryLegend(grid []model.Task) string {
	counts := make(map[string]int)
	order := Categories(grid)
	for _, t := range grid {
		for _, c := range t.AllCategories() {
			counts[c]++
		}
	}
	var sb strings.Builder
	for i, c := range order {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(c)
		sb.WriteString(": ")
		sb.WriteString(strconv.Itoa(counts[c]))
	}
	return sb.String()
}
