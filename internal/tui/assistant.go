// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/atmost-notes/internal/adapter"
	"github.com/MKhiriev/atmost-notes/internal/app"
	"github.com/MKhiriev/atmost-notes/internal/service"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type assistantTab int

const (
	tabChat assistantTab = iota
	tabSummary
	tabSuggestions
	assistantTabs
)

func (t assistantTab) String() string {
	switch t {
	case tabSummary:
		return "Summary"
	case tabSuggestions:
		return "Suggestions"
	default:
		return "Chat"
	}
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// AssistantModel is the AI panel: a free-form chat and one-shot summary and
// suggestions for the current note.
type AssistantModel struct {
	ctx       context.Context
	assistant service.AssistantService
	session   *service.Session
	body      func() string
	st        *styles

	tab     assistantTab
	back    string
	input   textinput.Model
	view    viewport.Model
	spinner spinner.Model
	waiting bool

	chat    []string
	answers map[assistantTab]string

	status string
	errMsg string
}

// NewAssistantModel builds the panel. body returns the HTML body of the
// note being edited.
func NewAssistantModel(ctx context.Context, assistant service.AssistantService, session *service.Session, body func() string, st *styles) *AssistantModel {
	input := textinput.New()
	input.Placeholder = "ask the assistant"
	input.Width = 60
	input.Focus()

	return &AssistantModel{
		ctx:       ctx,
		assistant: assistant,
		session:   session,
		body:      body,
		st:        st,
		back:      pageNotes,
		input:     input,
		view:      viewport.New(72, 12),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		answers:   make(map[assistantTab]string),
	}
}

func (m *AssistantModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *AssistantModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case assistantOpen:
		if msg.back != "" {
			m.back = msg.back
		}
		m.status = ""
		m.errMsg = ""
		m.refresh()
		return m, textinput.Blink

	case assistantDoneMsg:
		m.waiting = false
		m.finish(msg)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = app.MsgCopied
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.view.Width = max(msg.Width-8, 20)
		m.view.Height = max(msg.Height-16, 3)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m, m.updateKey(msg)
	}

	return m, nil
}

func (m *AssistantModel) updateKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		back := m.back
		return func() tea.Msg { return NavigateTo{Page: back} }
	case key.Matches(msg, keys.tab):
		m.switchTab((m.tab + 1) % assistantTabs)
		return nil
	case key.Matches(msg, keys.backtab):
		m.switchTab((m.tab - 1 + assistantTabs) % assistantTabs)
		return nil
	case key.Matches(msg, keys.copy):
		return m.cmdCopy()
	case key.Matches(msg, keys.enter):
		return m.submit()
	case msg.String() == "pgup":
		m.view.HalfPageUp()
		return nil
	case msg.String() == "pgdown":
		m.view.HalfPageDown()
		return nil
	}

	if m.tab != tabChat {
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *AssistantModel) submit() tea.Cmd {
	if m.waiting {
		m.errMsg = app.MsgAssistantBusy
		return nil
	}

	ctx := m.ctx
	assistant := m.assistant
	session := m.session
	tab := m.tab
	m.status = ""
	m.errMsg = ""

	var call func() (string, error)
	prompt := ""
	switch tab {
	case tabChat:
		prompt = strings.TrimSpace(m.input.Value())
		if prompt == "" {
			return nil
		}
		call = func() (string, error) { return assistant.Chat(ctx, session, prompt) }
	case tabSummary:
		body := m.body()
		call = func() (string, error) { return assistant.Summarize(ctx, session, body) }
	default:
		body := m.body()
		call = func() (string, error) { return assistant.Suggest(ctx, session, body) }
	}

	m.waiting = true
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		answer, err := call()
		return assistantDoneMsg{tab: tab, prompt: prompt, answer: answer, err: err}
	})
}

// finish records a finished call. Gateway failures are shown in place of
// the answer, every other failure on the error line.
func (m *AssistantModel) finish(msg assistantDoneMsg) {
	answer := msg.answer
	if msg.err != nil {
		var gatewayErr *adapter.GatewayError
		if !errors.As(msg.err, &gatewayErr) {
			m.errMsg = userMessage(msg.err)
			return
		}
		answer = gatewayErr.Message
	}

	if msg.tab == tabChat {
		m.chat = append(m.chat, "You: "+msg.prompt, "AI: "+answer, "")
		if m.tab == tabChat {
			m.input.SetValue("")
		}
	}
	m.answers[msg.tab] = answer
	m.refresh()
}

func (m *AssistantModel) switchTab(tab assistantTab) {
	m.tab = tab
	m.status = ""
	m.errMsg = ""
	if tab == tabChat {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.refresh()
}

func (m *AssistantModel) refresh() {
	if m.tab == tabChat {
		m.view.SetContent(strings.Join(m.chat, "\n"))
		m.view.GotoBottom()
		return
	}
	m.view.SetContent(m.answers[m.tab])
	m.view.GotoTop()
}

func (m *AssistantModel) cmdCopy() tea.Cmd {
	text := m.answers[m.tab]
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func (m *AssistantModel) View() string {
	var b strings.Builder

	for t := tabChat; t < assistantTabs; t++ {
		label := " " + t.String() + " "
		if t == m.tab {
			label = m.st.selected.Render(label)
		}
		b.WriteString(label)
		b.WriteString(" ")
	}
	b.WriteString("│ AI: ")
	b.WriteString(onOff(m.session.AIEnabled))
	b.WriteString("\n\n")

	b.WriteString(m.st.box.Render(m.view.View()))
	b.WriteString("\n")

	switch {
	case m.waiting:
		b.WriteString(m.spinner.View())
		b.WriteString(" waiting for the assistant...")
	case m.tab == tabChat:
		b.WriteString(m.input.View())
	default:
		b.WriteString(m.st.button.Render("enter: generate " + strings.ToLower(m.tab.String())))
	}
	b.WriteString(renderFeedback(m.st, m.status, m.errMsg))

	return renderPage(m.st, "ASSISTANT", b.String(),
		"tab: switch panel │ enter: send │ ctrl+y: copy │ pgup/pgdown: scroll │ esc: back")
}
