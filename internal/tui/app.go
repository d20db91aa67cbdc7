// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/atmost-notes/internal/service"
	"github.com/MKhiriev/atmost-notes/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) finishes the program on SessionOpened and LogoutRequested
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current string
	styles  *styles

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	quitByUser bool
	session    *service.Session
	notice     string
	logout     bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, st *styles, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   startPage,
		styles:    st,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if page := r.page(); page != nil {
		return page.Init()
	}
	return nil
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && r.current == pageMenu:
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = msg.Page

		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, next.Init()

	case SessionOpened:
		r.session = msg.Session
		r.notice = msg.Notice
		return r, tea.Quit

	case LogoutRequested:
		r.logout = true
		return r, tea.Quit

	case QuitRequested:
		r.quitByUser = true
		return r, tea.Quit

	case tea.WindowSizeMsg:
		// Every page keeps its layout in sync, not just the visible one.
		var cmds []tea.Cmd
		for name, page := range r.pages {
			updated, cmd := page.Update(msg)
			r.pages[name] = updated
			cmds = append(cmds, cmd)
		}
		return r, tea.Batch(cmds...)
	}

	page := r.page()
	if page == nil {
		return r, nil
	}

	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.styles, r.buildInfo)
	}
	page := r.page()
	if page == nil {
		return renderPage(r.styles, "ATMOST NOTES", "", "")
	}
	return page.View()
}

func (r RootModel) page() tea.Model {
	return r.pages[r.current]
}
