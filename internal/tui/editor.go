// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/atmost-notes/internal/app"
	"github.com/MKhiriev/atmost-notes/internal/markup"
	"github.com/MKhiriev/atmost-notes/internal/service"
	"github.com/MKhiriev/atmost-notes/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	focusTitle = iota
	focusTags
	focusBody
	editorFields
)

// Inline markers understood by markup.Render.
const (
	markerBold      = "**"
	markerItalic    = "_"
	markerUnderline = "__"
	bulletPrefix    = "- "
)

var numberedPrefixRe = regexp.MustCompile(`^(\d+)\. `)

// EditorModel edits the current note. The body is edited in markup source
// form and rendered to HTML on save.
type EditorModel struct {
	ctx     context.Context
	notes   service.NoteService
	session *service.Session
	st      *styles

	title textinput.Model
	tags  textinput.Model
	body  textarea.Model
	focus int

	noteID int64
	saving bool
	status string
	errMsg string
}

func NewEditorModel(ctx context.Context, notes service.NoteService, session *service.Session, st *styles) *EditorModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.Width = 60

	tags := textinput.New()
	tags.Placeholder = "comma separated tags"
	tags.Width = 60

	body := textarea.New()
	body.Placeholder = "Write your note. **bold**, _italic_, __underline__, - bullets, 1. numbers"
	body.ShowLineNumbers = false
	body.CharLimit = 0
	body.MaxHeight = 0
	body.SetWidth(72)
	body.SetHeight(14)

	m := &EditorModel{
		ctx:     ctx,
		notes:   notes,
		session: session,
		st:      st,
		title:   title,
		tags:    tags,
		body:    body,
	}
	m.setFocus(focusTitle)
	return m
}

func (m *EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editorLoad:
		m.load(msg.note)
		return m, textinput.Blink

	case noteSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.noteID = msg.note.ID
		m.errMsg = ""
		m.status = app.MsgNoteSaved
		return m, nil

	case tea.WindowSizeMsg:
		m.body.SetWidth(max(msg.Width-8, 20))
		m.body.SetHeight(max(msg.Height-16, 3))
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusTags:
		m.tags, cmd = m.tags.Update(msg)
	default:
		m.body, cmd = m.body.Update(msg)
	}
	return m, cmd
}

func (m *EditorModel) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.esc):
		return func() tea.Msg { return NavigateTo{Page: pageNotes} }, true
	case key.Matches(msg, keys.save):
		if m.saving {
			return nil, true
		}
		m.saving = true
		m.status = ""
		return m.cmdSave(), true
	case msg.String() == "alt+a":
		return func() tea.Msg { return NavigateTo{Page: pageAssistant, Payload: assistantOpen{back: pageEditor}} }, true
	case key.Matches(msg, keys.tab):
		m.setFocus((m.focus + 1) % editorFields)
		return nil, true
	case key.Matches(msg, keys.backtab):
		m.setFocus((m.focus - 1 + editorFields) % editorFields)
		return nil, true
	}

	if m.focus != focusBody {
		if key.Matches(msg, keys.enter) {
			m.setFocus(m.focus + 1)
			return nil, true
		}
		return nil, false
	}

	switch {
	case key.Matches(msg, keys.bold):
		m.wrapCursor(markerBold)
	case key.Matches(msg, keys.italic):
		m.wrapCursor(markerItalic)
	case key.Matches(msg, keys.underline):
		m.wrapCursor(markerUnderline)
	case key.Matches(msg, keys.bullets):
		m.editLine(m.body.Line(), toggleBullet)
	case key.Matches(msg, keys.numbers):
		m.editLine(m.body.Line(), toggleNumbered)
	default:
		return nil, false
	}
	return nil, true
}

func (m *EditorModel) View() string {
	var b strings.Builder

	b.WriteString("Title │ [")
	b.WriteString(m.title.View())
	b.WriteString("]\nTags  │ [")
	b.WriteString(m.tags.View())
	b.WriteString("]\n\n")
	b.WriteString(m.st.box.Render(m.body.View()))

	if m.saving {
		b.WriteString("\n[Saving...]")
	}
	b.WriteString(renderFeedback(m.st, m.status, m.errMsg))

	title := "NEW NOTE"
	if m.noteID != 0 {
		title = "EDIT NOTE"
	}
	return renderPage(m.st, title, b.String(),
		"ctrl+s: save │ tab: next field │ alt+b/i/u: bold/italic/underline │ alt+l/n: bullets/numbers │ alt+a: assistant │ esc: back")
}

// currentBody is the body as it would be saved right now.
func (m *EditorModel) currentBody() string {
	return markup.Render(m.body.Value())
}

func (m *EditorModel) load(note models.Note) {
	m.noteID = note.ID
	m.title.SetValue(note.Title)
	m.tags.SetValue(note.Tags)
	m.body.SetValue(markup.Source(note.Body))
	m.saving = false
	m.status = ""
	m.errMsg = ""

	if note.ID == 0 {
		m.setFocus(focusTitle)
		return
	}
	m.setFocus(focusBody)
}

func (m *EditorModel) setFocus(field int) {
	m.focus = field
	m.title.Blur()
	m.tags.Blur()
	m.body.Blur()

	switch field {
	case focusTitle:
		m.title.Focus()
	case focusTags:
		m.tags.Focus()
	default:
		m.body.Focus()
	}
}

// wrapCursor inserts an empty marker pair and leaves the cursor between them.
func (m *EditorModel) wrapCursor(marker string) {
	col := m.column()
	m.body.InsertString(marker + marker)
	m.body.SetCursor(col + len([]rune(marker)))
}

// column is the cursor position within the current logical line.
func (m *EditorModel) column() int {
	info := m.body.LineInfo()
	return info.StartColumn + info.ColumnOffset
}

// editLine replaces line row of the body with edit(previous, current) and
// keeps the cursor on the same character.
func (m *EditorModel) editLine(row int, edit func(prev, line string) string) {
	lines := strings.Split(m.body.Value(), "\n")
	if row < 0 || row >= len(lines) {
		return
	}

	prev := ""
	if row > 0 {
		prev = lines[row-1]
	}
	before := lines[row]
	lines[row] = edit(prev, before)
	col := m.column() + len([]rune(lines[row])) - len([]rune(before))

	m.body.SetValue(strings.Join(lines, "\n"))
	for i := 0; m.body.Line() > row && i < len(lines)*m.body.Width()+1; i++ {
		m.body.CursorUp()
	}
	m.body.SetCursor(max(col, 0))
}

func (m *EditorModel) cmdSave() tea.Cmd {
	ctx := m.ctx
	notes := m.notes
	session := m.session
	title := strings.TrimSpace(m.title.Value())
	tags := strings.TrimSpace(m.tags.Value())
	body := m.currentBody()

	return func() tea.Msg {
		note, err := notes.Save(ctx, session, title, body, tags)
		return noteSavedMsg{note: note, err: err}
	}
}

// toggleBullet adds or removes the bullet prefix, replacing a number.
func toggleBullet(_, line string) string {
	if rest, ok := strings.CutPrefix(line, bulletPrefix); ok {
		return rest
	}
	return bulletPrefix + numberedPrefixRe.ReplaceAllString(line, "")
}

// toggleNumbered adds or removes a number prefix. A new number continues the
// numbering of the previous line.
func toggleNumbered(prev, line string) string {
	if numberedPrefixRe.MatchString(line) {
		return numberedPrefixRe.ReplaceAllString(line, "")
	}

	n := 1
	if match := numberedPrefixRe.FindStringSubmatch(prev); match != nil {
		if prevN, err := strconv.Atoi(match[1]); err == nil {
			n = prevN + 1
		}
	}
	return strconv.Itoa(n) + ". " + strings.TrimPrefix(line, bulletPrefix)
}
