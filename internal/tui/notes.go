// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/atmost-notes/internal/service"
	"github.com/MKhiriev/atmost-notes/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const notesTitleWidth = 48

// NotesModel is the main page: the list of the account's notes with a live
// search over titles, bodies and tags.
type NotesModel struct {
	ctx     context.Context
	notes   service.NoteService
	session *service.Session
	st      *styles

	items     []models.NoteHeader
	idx       int
	search    textinput.Model
	searching bool
	loading   bool

	status string
	errMsg string
}

func NewNotesModel(ctx context.Context, notes service.NoteService, session *service.Session, st *styles) *NotesModel {
	search := textinput.New()
	search.Placeholder = "search notes"
	search.Width = 40
	search.Prompt = "/ "

	return &NotesModel{
		ctx:     ctx,
		notes:   notes,
		session: session,
		st:      st,
		search:  search,
	}
}

func (m *NotesModel) Init() tea.Cmd {
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *NotesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusNotice:
		m.status = msg.text
		m.errMsg = ""
		return m, m.cmdLoad()

	case notesLoadedMsg:
		// An older search finished after the query changed.
		if msg.query != m.query() {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.items = msg.notes
		m.idx = min(m.idx, max(len(m.items)-1, 0))
		return m, nil

	case noteOpenedMsg:
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		note := msg.note
		return m, func() tea.Msg { return NavigateTo{Page: pageEditor, Payload: editorLoad{note: note}} }

	case tea.KeyMsg:
		if m.searching {
			return m, m.updateSearch(msg)
		}
		return m, m.updateList(msg)
	}

	return m, nil
}

func (m *NotesModel) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.stopSearch()
		if m.query() == "" {
			return nil
		}
		m.search.SetValue("")
		return m.cmdLoad()
	case key.Matches(msg, keys.enter):
		m.stopSearch()
		return nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return cmd
	}
	m.idx = 0
	return tea.Batch(cmd, m.cmdLoad())
}

func (m *NotesModel) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if len(m.items) == 0 {
			return nil
		}
		m.status = ""
		return m.cmdOpen(m.items[m.idx].ID)
	case key.Matches(msg, keys.newNote):
		m.session.NewNote()
		m.status = ""
		return func() tea.Msg { return NavigateTo{Page: pageEditor, Payload: editorLoad{}} }
	case key.Matches(msg, keys.search):
		m.searching = true
		return m.search.Focus()
	case key.Matches(msg, keys.esc):
		if m.query() == "" {
			return nil
		}
		m.search.SetValue("")
		return m.cmdLoad()
	case key.Matches(msg, keys.reload):
		m.status = ""
		return m.cmdLoad()
	case key.Matches(msg, keys.assistant):
		return func() tea.Msg { return NavigateTo{Page: pageAssistant, Payload: assistantOpen{back: pageNotes}} }
	case key.Matches(msg, keys.options):
		return func() tea.Msg { return NavigateTo{Page: pageOptions} }
	case key.Matches(msg, keys.logout):
		return func() tea.Msg { return LogoutRequested{} }
	case key.Matches(msg, keys.quit):
		return func() tea.Msg { return QuitRequested{} }
	}
	return nil
}

func (m *NotesModel) View() string {
	var b strings.Builder

	b.WriteString(m.st.sidebar.Render(m.header()))
	b.WriteString("\n\n")

	if m.searching || m.query() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString("Loading...")
	case len(m.items) == 0 && m.query() != "":
		b.WriteString("No notes match the search.")
	case len(m.items) == 0:
		b.WriteString("No notes yet. Press n to write one.")
	default:
		for i, item := range m.items {
			title := item.Title
			if strings.TrimSpace(title) == "" {
				title = "(untitled)"
			}
			line := fmt.Sprintf("%3d. %s", i+1, fitText(title, notesTitleWidth))
			if i == m.idx {
				line = m.st.selected.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString(renderFeedback(m.st, m.status, m.errMsg))

	hotKeys := "enter: open │ n: new │ /: search │ a: assistant │ o: options │ r: reload │ L: logout │ q: quit"
	if m.searching {
		hotKeys = "enter: keep filter │ esc: clear search"
	}
	return renderPage(m.st, "NOTES", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *NotesModel) header() string {
	picture := "no picture"
	if m.session.HasProfileImage {
		picture = "picture set"
	}
	return fmt.Sprintf("%s │ %s │ AI: %s │ Theme: %s",
		m.session.Username, picture, onOff(m.session.AIEnabled), m.session.Theme.Name)
}

func (m *NotesModel) query() string {
	return strings.TrimSpace(m.search.Value())
}

func (m *NotesModel) stopSearch() {
	m.searching = false
	m.search.Blur()
}

func (m *NotesModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	notes := m.notes
	session := m.session
	query := m.query()
	m.loading = true

	return func() tea.Msg {
		var (
			list []models.NoteHeader
			err  error
		)
		if query == "" {
			list, err = notes.List(ctx, session)
		} else {
			list, err = notes.SearchNotes(ctx, session, query)
		}
		return notesLoadedMsg{notes: list, query: query, err: err}
	}
}

func (m *NotesModel) cmdOpen(noteID int64) tea.Cmd {
	ctx := m.ctx
	notes := m.notes
	session := m.session

	return func() tea.Msg {
		note, err := notes.Open(ctx, session, noteID)
		return noteOpenedMsg{note: note, err: err}
	}
}
