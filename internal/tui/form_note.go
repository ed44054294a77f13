package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-note-keeper/models"
)

const formHotKeys = "tab: next field │ enter: add │ esc: cancel"

type noteFormModel struct {
	inputs     []textinput.Model
	focus      int
	err        string
	submitting bool
}

func newNoteFormModel() noteFormModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[0].Placeholder = "Title*"
	inputs[0].CharLimit = 120
	inputs[1].Placeholder = "Content"
	inputs[0].Focus()

	return noteFormModel{inputs: inputs}
}

func (m noteFormModel) draft() models.NoteDraft {
	return models.NoteDraft{
		Title:   m.inputs[0].Value(),
		Content: m.inputs[1].Value(),
	}
}

func (m noteFormModel) focusNext() noteFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m noteFormModel) focusPrev() noteFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m noteFormModel) View() string {
	var out strings.Builder
	out.WriteString("Title:    [" + m.inputs[0].View() + "]\n")
	out.WriteString("Content:  [" + m.inputs[1].View() + "]\n")
	if m.submitting {
		out.WriteString("\nSaving...")
	}
	if m.err != "" {
		out.WriteString("\n" + errorStyle.Render(m.err))
	}
	return renderPage("NEW NOTE", strings.TrimRight(out.String(), "\n"), formHotKeys)
}
