package app

import (
	"strings"

	"github.com/llehouerou/muker/internal/ui/playerbar"
	"github.com/llehouerou/muker/internal/ui/render"
	"github.com/llehouerou/muker/internal/ui/styles"
)

// minQueueHeight keeps the queue list usable at small terminal sizes.
const minQueueHeight = 5

// layout distributes the window between the panels. The player bar
// keeps a fixed height; the queue takes two fifths of the rest.
func (m *Model) layout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	remaining := max(m.Height-playerbar.Height, 0)

	queueHeight := 0
	if m.QueueVisible {
		queueHeight = max(remaining*2/5, minQueueHeight)
		queueHeight = min(queueHeight, remaining)
	}
	vizHeight := remaining - queueHeight

	// The lyrics panel shares the visualizer slot.
	m.VizPanel.SetSize(m.Width, vizHeight)
	m.LyricsPanel.SetSize(m.Width, vizHeight)
	m.QueuePanel.SetSize(m.Width, queueHeight)

	// The analyzer produces one value per display column.
	m.Scheduler.SetWidth(m.VizPanel.InnerWidth())
}

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	var sections []string

	if m.LyricsVisible {
		if lyr := m.LyricsPanel.View(); lyr != "" {
			sections = append(sections, lyr)
		}
	} else if viz := m.VizPanel.View(); viz != "" {
		sections = append(sections, viz)
	}
	if m.QueueVisible {
		if queue := m.QueuePanel.View(); queue != "" {
			sections = append(sections, queue)
		}
	}

	bar := playerbar.Render(playerbar.NewState(m.Service), m.Width)
	sections = append(sections, bar)

	view := strings.Join(sections, "\n")

	if m.Scanning {
		scanLine := m.Spinner.View() + styles.T().S().Muted.Render(" Scanning library...")
		view += "\n" + scanLine
	}

	if m.ErrorMsg != "" {
		errLine := styles.T().S().Error.Render(render.Truncate(m.ErrorMsg, max(m.Width-1, 0)))
		view += "\n" + errLine
	}

	return view
}
