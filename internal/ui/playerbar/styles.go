package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/muker/internal/ui/styles"
)

var (
	barStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.T().Border)

	titleStyle  = styles.T().S().Title
	artistStyle = styles.T().S().Muted
	timeStyle   = styles.T().S().Subtle
	modeStyle   = lipgloss.NewStyle().Foreground(styles.T().Secondary)

	progressFilledStyle = lipgloss.NewStyle().Foreground(styles.T().Primary)
	progressEmptyStyle  = styles.T().S().Subtle
)
