// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/atmost-notes/internal/config"
	"github.com/MKhiriev/atmost-notes/internal/crypto"
	"github.com/MKhiriev/atmost-notes/internal/logger"
	"github.com/MKhiriev/atmost-notes/internal/mock"
	"github.com/MKhiriev/atmost-notes/internal/service"
	"github.com/MKhiriev/atmost-notes/internal/store"
	"github.com/MKhiriev/atmost-notes/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	ctx      context.Context
	services *service.Services
	adapter  *mock.MockAssistantAdapter
	session  *service.Session
	st       *styles
}

// newTestEnv wires real services to a SQLite file and registers alice with
// password "secret".
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	cfg := config.Defaults()
	cfg.Storage.DB.DSN = filepath.Join(t.TempDir(), "notes.db")

	storages, err := store.NewStorages(ctx, cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	ctrl := gomock.NewController(t)
	adapter := mock.NewMockAssistantAdapter(ctrl)
	hasher := crypto.NewPasswordHasher(config.Security{HashTime: 1, HashMemoryKiB: 1024, HashThreads: 1})
	services := service.NewServices(storages, adapter, hasher, cfg, logger.Nop())

	session, err := services.AccountService.Register(ctx, "alice", "secret", nil)
	require.NoError(t, err)

	return &testEnv{
		ctx:      ctx,
		services: services,
		adapter:  adapter,
		session:  session,
		st:       newStyles(models.LightTheme()),
	}
}

func (e *testEnv) saveNote(t *testing.T, title, body string) models.Note {
	t.Helper()
	e.session.NewNote()
	note, err := e.services.NoteService.Save(e.ctx, e.session, title, body, "")
	require.NoError(t, err)
	e.session.NewNote()
	return note
}

// press builds the key message bubbletea produces for k.
func press(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	if len(k) == len("alt+x") && k[:4] == "alt+" {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{rune(k[4])}, Alt: true}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// typeText sends text one rune at a time and drops the returned commands.
func typeText(m tea.Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// run executes cmd and flattens batches. Only use it on commands that do
// not sleep.
func run(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}

	var out []tea.Msg
	for _, c := range batch {
		out = append(out, run(t, c)...)
	}
	return out
}

// runOne executes cmd and returns its only message.
func runOne(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msgs := run(t, cmd)
	require.Len(t, msgs, 1)
	return msgs[0]
}

// find returns the first message of type T among msgs.
func find[T tea.Msg](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v
		}
	}
	var zero T
	require.Failf(t, "message not found", "%T not in %v", zero, msgs)
	return zero
}
