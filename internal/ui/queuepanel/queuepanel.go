// Package queuepanel shows the playback queue with the current track
// marked and a movable cursor.
package queuepanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/muker/internal/playback"
	"github.com/llehouerou/muker/internal/ui"
)

// Model is the queue panel component.
type Model struct {
	ui.Base
	service playback.Service
	cursor  ui.Cursor
}

// New creates a queue panel over the playback service.
func New(service playback.Service) Model {
	return Model{
		service: service,
		cursor:  ui.NewCursor(ui.ScrollMargin),
	}
}

// Cursor returns the index under the cursor, or -1 when the queue is empty.
func (m Model) Cursor() int {
	if m.service.QueueLen() == 0 {
		return -1
	}
	return m.cursor.Pos()
}

// Update handles key messages while the panel is focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return m, nil
	}

	listLen := m.service.QueueLen()
	height := m.listHeight()

	switch keyMsg.String() {
	case "up", "k":
		m.cursor.Move(-1, listLen, height)
	case "down", "j":
		m.cursor.Move(1, listLen, height)
	case "g", "home":
		m.cursor.JumpStart()
	case "G", "end":
		m.cursor.JumpEnd(listLen, height)
	case "enter":
		if idx := m.Cursor(); idx >= 0 {
			svc := m.service
			return m, func() tea.Msg {
				_ = svc.PlayIndex(idx)
				return nil
			}
		}
	case "d", "delete":
		if idx := m.Cursor(); idx >= 0 {
			_ = m.service.RemoveTrack(idx)
			m.cursor.ClampToBounds(m.service.QueueLen())
		}
	case "J", "shift+down":
		if idx := m.Cursor(); idx >= 0 && m.service.MoveTrack(idx, idx+1) {
			m.cursor.Move(1, listLen, height)
		}
	case "K", "shift+up":
		if idx := m.Cursor(); idx >= 0 && m.service.MoveTrack(idx, idx-1) {
			m.cursor.Move(-1, listLen, height)
		}
	}

	return m, nil
}

// FollowCurrent moves the cursor to the playing track. Called on track
// changes so auto-advance keeps the queue view in sync.
func (m *Model) FollowCurrent() {
	idx := m.service.QueueCurrentIndex()
	if idx >= 0 {
		m.cursor.Jump(idx, m.service.QueueLen(), m.listHeight())
	}
}

func (m Model) listHeight() int {
	return max(m.ListHeight(ui.PanelOverhead), 0)
}
