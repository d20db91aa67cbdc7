// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/atmost-notes/internal/config"
	"github.com/MKhiriev/atmost-notes/internal/logger"
	"github.com/MKhiriev/atmost-notes/internal/service"
	"github.com/MKhiriev/atmost-notes/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the two Bubble Tea programs of the client: the login flow and
// the main loop of a logged in session.
type TUI struct {
	services  *service.Services
	ui        config.UI
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	// notice is carried from the login flow to the first main screen.
	notice string
}

func New(services *service.Services, ui config.UI, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		ui:        ui,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// LoginFlow shows the menu, login and register pages until a session is
// opened. It returns ErrUserQuit when the user leaves instead.
func (t *TUI) LoginFlow(ctx context.Context) (*service.Session, error) {
	root := t.loginRoot(ctx)

	final, err := t.run(ctx, root)
	if err != nil {
		return nil, err
	}
	if final.quitByUser || final.session == nil {
		return nil, ErrUserQuit
	}

	t.notice = final.notice
	t.logger.Info().Str("func", "*TUI.LoginFlow").Str("session", final.session.ID).Msg("session opened")
	return final.session, nil
}

// MainLoop runs the notes UI for session. logout is true when the user asked
// to return to the login flow.
func (t *TUI) MainLoop(ctx context.Context, session *service.Session) (logout bool, err error) {
	root := t.mainRoot(ctx, session)

	final, err := t.run(ctx, root)
	if err != nil {
		return false, err
	}
	if final.quitByUser {
		return false, ErrUserQuit
	}
	return final.logout, nil
}

func (t *TUI) loginRoot(ctx context.Context) RootModel {
	st := newStyles(themeFor(t.ui))
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(st),
		pageLogin:    NewLoginModel(ctx, t.services.AccountService, st),
		pageRegister: NewRegisterModel(ctx, t.services.AccountService, st),
	}
	return NewRootModel(pages, pageMenu, st, t.buildInfo)
}

func (t *TUI) mainRoot(ctx context.Context, session *service.Session) RootModel {
	st := newStyles(session.Theme)
	editor := NewEditorModel(ctx, t.services.NoteService, session, st)
	notes := NewNotesModel(ctx, t.services.NoteService, session, st)
	if t.notice != "" {
		notes.status = t.notice
		t.notice = ""
	}

	pages := map[string]tea.Model{
		pageNotes:     notes,
		pageEditor:    editor,
		pageAssistant: NewAssistantModel(ctx, t.services.AssistantService, session, editor.currentBody, st),
		pageOptions:   NewOptionsModel(ctx, t.services.AccountService, t.services.ExchangeService, session, st),
	}
	return NewRootModel(pages, pageNotes, st, t.buildInfo)
}

func (t *TUI) run(ctx context.Context, root RootModel) (RootModel, error) {
	final, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.run").Msg("terminal program failed")
		return RootModel{}, err
	}

	result, ok := final.(RootModel)
	if !ok {
		return RootModel{}, tea.ErrProgramKilled
	}
	return result, nil
}

func themeFor(ui config.UI) models.Theme {
	theme, _ := models.ThemeByName(ui.Theme)
	return theme
}
