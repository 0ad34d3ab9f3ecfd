package render

import "github.com/charmbracelet/lipgloss"

var (
	// headerStyle formats the table header row.
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	// cellStyle formats data cells with one space of breathing room.
	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// numberStyle right-aligns amount and count cells.
	numberStyle = cellStyle.
			Align(lipgloss.Right)

	// borderStyle keeps the box drawing subdued next to the data.
	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)
