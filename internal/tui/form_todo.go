package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-task-keeper/models"
)

type formTodoModel struct {
	input       textinput.Model
	priorities  []models.Priority
	priorityIdx int
	editing     bool
	recordID    string
}

func newFormTodoModel(item *models.Todo) formTodoModel {
	input := textinput.New()
	input.Width = 50
	input.Focus()

	m := formTodoModel{
		input:       input,
		priorities:  []models.Priority{models.High, models.Medium, models.Low},
		priorityIdx: 1, // medium
	}
	if item == nil {
		return m
	}

	// priority is immutable after creation, the edit form only offers text
	m.editing = true
	m.recordID = item.ID
	m.input.SetValue(item.Text)
	return m
}

func (m *formTodoModel) cyclePriority(delta int) {
	n := len(m.priorities)
	m.priorityIdx = (m.priorityIdx + delta + n) % n
}

func (m formTodoModel) priority() models.Priority {
	return m.priorities[m.priorityIdx]
}

func priorityName(p models.Priority) string {
	switch p {
	case models.High:
		return "высокий"
	case models.Low:
		return "низкий"
	default:
		return "средний"
	}
}

func (m formTodoModel) View() string {
	title := "Новая задача"
	if m.editing {
		title = "Редактирование задачи"
	}

	out := title + "\n\n"
	out += "Текст:     [" + m.input.View() + "]\n"
	if !m.editing {
		out += "Приоритет: ← " + priorityName(m.priority()) + " →\n"
	}
	out += "\n"
	out += "esc отмена  enter сохранить"
	return out
}
