// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type fieldSpec struct {
	label       string
	placeholder string
	value       string
	secret      bool
	limit       int
}

// form is a column of labelled single-line inputs. Pages own the submit
// and cancel keys; form only moves focus and edits the focused input.
type form struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(title string, specs ...fieldSpec) *form {
	f := &form{title: title}

	for _, spec := range specs {
		in := textinput.New()
		in.Placeholder = spec.placeholder
		in.Width = 40
		in.CharLimit = spec.limit
		if spec.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		in.SetValue(spec.value)

		f.labels = append(f.labels, spec.label)
		f.inputs = append(f.inputs, in)
	}

	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f *form) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab), keyMsg.String() == "down":
			f.focusNext()
			return nil
		case key.Matches(keyMsg, keys.backtab), keyMsg.String() == "up":
			f.focusPrev()
			return nil
		}
	}

	if len(f.inputs) == 0 {
		return nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

func (f *form) values() []string {
	out := make([]string, len(f.inputs))
	for i := range f.inputs {
		out[i] = f.inputs[i].Value()
	}
	return out
}

func (f *form) View() string {
	labelWidth := 0
	for _, l := range f.labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}

	var b strings.Builder
	if f.title != "" {
		b.WriteString(f.title)
		b.WriteString("\n\n")
	}
	for i, in := range f.inputs {
		b.WriteString(fmt.Sprintf("%-*s │ [%s]\n", labelWidth, f.labels[i], in.View()))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (f *form) focusNext() {
	if len(f.inputs) == 0 {
		return
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) focusPrev() {
	if len(f.inputs) == 0 {
		return
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}
