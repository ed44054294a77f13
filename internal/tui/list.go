package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/go-note-keeper/models"
)

const listHotKeys = "r: refresh │ a: auto │ space: done │ enter: open │ n: new │ c: copy │ v: info │ q: quit"

type listModel struct {
	idx     int
	spinner spinner.Model
	status  string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s}
}

// clamp keeps the cursor inside a list of n notes.
func (m *listModel) clamp(n int) {
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) current(notes []models.Note) (models.Note, bool) {
	if len(notes) == 0 || m.idx < 0 || m.idx >= len(notes) {
		return models.Note{}, false
	}
	return notes[m.idx], true
}

func (m listModel) title(count int, refreshing, autoRefresh bool) string {
	title := fmt.Sprintf("Notes (%d)", count)
	if autoRefresh {
		title += "  [auto-refresh on]"
	} else {
		title += "  [auto-refresh off]"
	}
	if refreshing {
		title += "  " + m.spinner.View()
	}
	return title
}

func (m listModel) View(notes []models.Note, refreshing, autoRefresh bool, banner errorBannerModel) string {
	var out strings.Builder

	switch {
	case refreshing && len(notes) == 0:
		out.WriteString("Loading notes...\n")
	case len(notes) == 0:
		out.WriteString("No notes\n")
		out.WriteString("Press r to refresh\n")
	default:
		for i, note := range notes {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			title := fitText(note.Title, 32)
			if note.IsCompleted {
				title = completedStyle.Render(title)
			}
			fmt.Fprintf(&out, "%s %s %s\n", cursor, checkbox(note.IsCompleted), title)
			if preview := fitText(firstLine(note.Content), 48); preview != "" {
				fmt.Fprintf(&out, "      %s\n", helpStyle.Render(preview))
			}
			fmt.Fprintf(&out, "      %s\n", helpStyle.Render(formatCreated(note.Timestamp)))
		}
	}

	if m.status != "" {
		out.WriteString("\n" + m.status + "\n")
	}
	if b := banner.View(); b != "" {
		out.WriteString("\n" + b + "\n")
	}

	return renderPage(m.title(len(notes), refreshing, autoRefresh), strings.TrimRight(out.String(), "\n"), listHotKeys)
}
