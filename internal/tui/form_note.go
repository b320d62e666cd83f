package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-task-keeper/models"
)

type formNoteModel struct {
	title      textinput.Model
	text       textarea.Model
	titleFocus bool
	editing    bool
	recordID   string
}

func newFormNoteModel(item *models.Note) formNoteModel {
	title := textinput.New()
	title.Width = 50
	title.Focus()

	text := textarea.New()
	text.SetWidth(50)
	text.SetHeight(5)

	m := formNoteModel{
		title:      title,
		text:       text,
		titleFocus: true,
	}
	if item == nil {
		return m
	}

	m.editing = true
	m.recordID = item.ID
	m.title.SetValue(item.Title)
	m.text.SetValue(item.Text)
	return m
}

// toggleFocus moves focus between the title input and the body textarea.
func (m *formNoteModel) toggleFocus() {
	m.titleFocus = !m.titleFocus
	if m.titleFocus {
		m.title.Focus()
		m.text.Blur()
	} else {
		m.title.Blur()
		m.text.Focus()
	}
}

func (m formNoteModel) View() string {
	title := "Новая заметка"
	if m.editing {
		title = "Редактирование заметки"
	}

	out := title + "\n\n"
	out += "Название: [" + m.title.View() + "]\n"
	out += "Текст:\n" + m.text.View() + "\n\n"
	out += "esc отмена  tab следующее поле  ctrl+s сохранить"
	return out
}
