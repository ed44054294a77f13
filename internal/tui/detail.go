package tui

import (
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/models"
)

const detailHotKeys = "space: done │ c: copy │ esc: back │ q: quit"

// detailModel shows one note. It keeps only the id so that the view follows
// later changes of the list.
type detailModel struct {
	noteID int
	status string
}

// find returns the first note with the tracked id.
func (m detailModel) find(notes []models.Note) (models.Note, bool) {
	for _, note := range notes {
		if note.ID == m.noteID {
			return note, true
		}
	}
	return models.Note{}, false
}

func completionLabel(done bool) string {
	if done {
		return "Completed"
	}
	return "Not completed"
}

func (m detailModel) View(notes []models.Note) string {
	note, ok := m.find(notes)
	if !ok {
		return renderPage("NOTE", app.MsgNoteNotFound, "esc: back")
	}

	var out strings.Builder
	out.WriteString(checkbox(note.IsCompleted) + " " + completionLabel(note.IsCompleted) + "\n\n")
	if note.Content != "" {
		out.WriteString(note.Content + "\n\n")
	}
	out.WriteString(helpStyle.Render("Created: " + formatCreated(note.Timestamp)))
	if m.status != "" {
		out.WriteString("\n\n" + m.status)
	}

	return renderPage(note.Title, out.String(), detailHotKeys)
}
