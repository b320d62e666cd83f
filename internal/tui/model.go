package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-task-keeper/internal/keeper"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

type tabKind int

const (
	tabTodos tabKind = iota
	tabNotes
)

type screenMode int

const (
	modeList screenMode = iota
	modeFormTodo
	modeFormNote
	modeConfirmDelete
)

type rootModel struct {
	ctx    context.Context
	keeper *keeper.Keeper
	logger *logger.Logger
	st     styles

	tab  tabKind
	mode screenMode
	idx  int

	todos []models.Todo
	notes []models.Note

	todoForm  formTodoModel
	noteForm  formNoteModel
	confirmID string

	status string
	errMsg string
}

func newRootModel(ctx context.Context, k *keeper.Keeper, log *logger.Logger) rootModel {
	m := rootModel{
		ctx:    ctx,
		keeper: k,
		logger: log,
		st:     newStyles(k.Theme()),
	}
	m.refresh()
	return m
}

// refresh re-reads both display projections and clamps the cursor.
func (m *rootModel) refresh() {
	m.todos = m.keeper.VisibleTodos()
	m.notes = m.keeper.VisibleNotes()
	if m.idx >= m.listLen() {
		m.idx = m.listLen() - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m rootModel) listLen() int {
	if m.tab == tabTodos {
		return len(m.todos)
	}
	return len(m.notes)
}

func (m rootModel) Init() tea.Cmd {
	return nil
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		m.status = "скопировано в буфер обмена"
		return m, clearStatusAfter(2 * time.Second)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeFormTodo:
			return m.updateFormTodo(msg)
		case modeFormNote:
			return m.updateFormNote(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

// fail records an operation error for display and logging.
func (m *rootModel) fail(op string, err error) {
	m.errMsg = err.Error()
	m.logger.Err(err).Str("op", op).Msg("keeper operation failed")
}

func (m rootModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		if m.tab == tabTodos {
			m.tab = tabNotes
		} else {
			m.tab = tabTodos
		}
		m.idx = 0
		return m, nil
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
		return m, nil
	case "down", "j":
		if m.idx < m.listLen()-1 {
			m.idx++
		}
		return m, nil
	case "a":
		if m.tab == tabTodos {
			m.todoForm = newFormTodoModel(nil)
			m.mode = modeFormTodo
		} else {
			m.noteForm = newFormNoteModel(nil)
			m.mode = modeFormNote
		}
		return m, nil
	case "e":
		if m.tab == tabTodos {
			if todo, ok := m.selectedTodo(); ok {
				m.todoForm = newFormTodoModel(&todo)
				m.mode = modeFormTodo
			}
		} else {
			if note, ok := m.selectedNote(); ok {
				m.noteForm = newFormNoteModel(&note)
				m.mode = modeFormNote
			}
		}
		return m, nil
	case "d":
		if id, ok := m.selectedID(); ok {
			m.confirmID = id
			m.mode = modeConfirmDelete
		}
		return m, nil
	case " ":
		if m.tab != tabTodos {
			return m, nil
		}
		if todo, ok := m.selectedTodo(); ok {
			if err := m.keeper.ToggleTodoComplete(m.ctx, todo.ID); err != nil {
				m.fail("toggle complete", err)
			}
			m.refresh()
		}
		return m, nil
	case "p":
		if m.tab == tabTodos {
			if todo, ok := m.selectedTodo(); ok {
				if err := m.keeper.SetTodoPinned(m.ctx, todo.ID, !todo.Pinned); err != nil {
					m.fail("pin todo", err)
				}
			}
		} else {
			if note, ok := m.selectedNote(); ok {
				if err := m.keeper.SetNotePinned(m.ctx, note.ID, !note.Pinned); err != nil {
					m.fail("pin note", err)
				}
			}
		}
		m.refresh()
		return m, nil
	case "c":
		text, ok := m.selectedText()
		if !ok {
			return m, nil
		}
		if err := clipboard.WriteAll(text); err != nil {
			m.fail("copy to clipboard", err)
			return m, nil
		}
		return m, func() tea.Msg { return copiedMsg{} }
	case "t":
		if err := m.keeper.ToggleTheme(m.ctx); err != nil {
			m.fail("toggle theme", err)
		}
		m.st = newStyles(m.keeper.Theme())
		return m, nil
	}

	return m, nil
}

func (m rootModel) updateFormTodo(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		return m, nil
	case "left":
		if !m.todoForm.editing {
			m.todoForm.cyclePriority(-1)
			return m, nil
		}
	case "right":
		if !m.todoForm.editing {
			m.todoForm.cyclePriority(1)
			return m, nil
		}
	case "enter":
		var err error
		if m.todoForm.editing {
			err = m.keeper.EditTodo(m.ctx, m.todoForm.recordID, m.todoForm.input.Value())
		} else {
			err = m.keeper.AddTodo(m.ctx, m.todoForm.input.Value(), m.todoForm.priority())
		}
		if err != nil {
			m.fail("save todo", err)
		}
		m.mode = modeList
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.todoForm.input, cmd = m.todoForm.input.Update(msg)
	return m, cmd
}

func (m rootModel) updateFormNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		return m, nil
	case "tab":
		m.noteForm.toggleFocus()
		return m, nil
	case "ctrl+s":
		var err error
		if m.noteForm.editing {
			err = m.keeper.EditNote(m.ctx, m.noteForm.recordID, m.noteForm.title.Value(), m.noteForm.text.Value())
		} else {
			err = m.keeper.AddNote(m.ctx, m.noteForm.title.Value(), m.noteForm.text.Value())
		}
		if err != nil {
			m.fail("save note", err)
		}
		m.mode = modeList
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	if m.noteForm.titleFocus {
		m.noteForm.title, cmd = m.noteForm.title.Update(msg)
	} else {
		m.noteForm.text, cmd = m.noteForm.text.Update(msg)
	}
	return m, cmd
}

func (m rootModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		var err error
		if m.tab == tabTodos {
			err = m.keeper.DeleteTodo(m.ctx, m.confirmID)
		} else {
			err = m.keeper.DeleteNote(m.ctx, m.confirmID)
		}
		if err != nil {
			m.fail("delete record", err)
		}
		m.confirmID = ""
		m.mode = modeList
		m.refresh()
		return m, nil
	case "n", "esc":
		m.confirmID = ""
		m.mode = modeList
		return m, nil
	}
	return m, nil
}

func (m rootModel) selectedTodo() (models.Todo, bool) {
	if m.tab != tabTodos || m.idx >= len(m.todos) {
		return models.Todo{}, false
	}
	return m.todos[m.idx], true
}

func (m rootModel) selectedNote() (models.Note, bool) {
	if m.tab != tabNotes || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

func (m rootModel) selectedID() (string, bool) {
	if todo, ok := m.selectedTodo(); ok {
		return todo.ID, true
	}
	if note, ok := m.selectedNote(); ok {
		return note.ID, true
	}
	return "", false
}

func (m rootModel) selectedText() (string, bool) {
	if todo, ok := m.selectedTodo(); ok {
		return todo.Text, true
	}
	if note, ok := m.selectedNote(); ok {
		return note.Text, true
	}
	return "", false
}

// ── rendering ─────────────────────────────────────────────────────────────────

func (m rootModel) View() string {
	switch m.mode {
	case modeFormTodo:
		return m.st.app.Render(m.todoForm.View())
	case modeFormNote:
		return m.st.app.Render(m.noteForm.View())
	case modeConfirmDelete:
		return m.st.app.Render("Удалить запись? y/n")
	default:
		return m.st.app.Render(m.viewList())
	}
}

func (m rootModel) viewList() string {
	var b strings.Builder

	todosTab := m.st.tabInactive.Render("Задачи")
	notesTab := m.st.tabInactive.Render("Заметки")
	if m.tab == tabTodos {
		todosTab = m.st.tabActive.Render("Задачи")
	} else {
		notesTab = m.st.tabActive.Render("Заметки")
	}
	b.WriteString(todosTab + "  " + notesTab + "\n\n")

	if m.tab == tabTodos {
		m.viewTodos(&b)
	} else {
		m.viewNotes(&b)
	}

	if m.errMsg != "" {
		b.WriteString("\n" + m.st.errorText.Render(m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.st.status.Render(m.status) + "\n")
	}

	b.WriteString("\n" + m.st.help.Render(listHelp(m.tab)))
	return b.String()
}

func (m rootModel) viewTodos(b *strings.Builder) {
	if len(m.todos) == 0 {
		b.WriteString("список задач пуст\n")
		return
	}

	for i, todo := range m.todos {
		line := todoLine(todo)
		switch {
		case i == m.idx:
			line = m.st.selected.Render("> " + line)
		case todo.Completed:
			line = "  " + m.st.completed.Render(line)
		case todo.Pinned:
			line = "  " + m.st.pinned.Render(line)
		default:
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
}

func (m rootModel) viewNotes(b *strings.Builder) {
	if len(m.notes) == 0 {
		b.WriteString("список заметок пуст\n")
		return
	}

	for i, note := range m.notes {
		line := noteLine(note)
		switch {
		case i == m.idx:
			line = m.st.selected.Render("> " + line)
		case note.Pinned:
			line = "  " + m.st.pinned.Render(line)
		default:
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
}

func todoLine(todo models.Todo) string {
	check := "[ ]"
	if todo.Completed {
		check = "[x]"
	}
	pin := ""
	if todo.Pinned {
		pin = "📌 "
	}
	return fmt.Sprintf("%s %s%s (%s, %s)", check, pin, todo.Text, priorityName(todo.Priority), todo.Date)
}

func noteLine(note models.Note) string {
	pin := ""
	if note.Pinned {
		pin = "📌 "
	}
	title := note.Title
	if title == "" {
		title = "(без названия)"
	}
	firstLine := note.Text
	if i := strings.IndexByte(firstLine, '\n'); i >= 0 {
		firstLine = firstLine[:i] + "…"
	}
	return fmt.Sprintf("%s%s — %s (%s)", pin, title, firstLine, note.Date)
}

func listHelp(tab tabKind) string {
	if tab == tabTodos {
		return "a добавить  e редакт.  d удалить  space выполнено  p закрепить  c копир.  t тема  tab заметки  q выход"
	}
	return "a добавить  e редакт.  d удалить  p закрепить  c копир.  t тема  tab задачи  q выход"
}
