// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/atmost-notes/models"
	"github.com/charmbracelet/lipgloss"
)

const errorColor = "#D0021B"

// styles is shared by every page of a program so that a theme change is
// visible on the next render of any page.
type styles struct {
	theme models.Theme

	page     lipgloss.Style
	title    lipgloss.Style
	help     lipgloss.Style
	errText  lipgloss.Style
	status   lipgloss.Style
	selected lipgloss.Style
	sidebar  lipgloss.Style
	button   lipgloss.Style
	box      lipgloss.Style
}

func newStyles(theme models.Theme) *styles {
	s := &styles{}
	s.apply(theme)
	return s
}

func (s *styles) apply(theme models.Theme) {
	s.theme = theme

	s.page = lipgloss.NewStyle().Padding(1, 2).
		Foreground(lipgloss.Color(theme.Text)).
		Background(lipgloss.Color(theme.Background))
	s.title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent))
	s.help = lipgloss.NewStyle().Faint(true)
	s.errText = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(errorColor))
	s.status = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	s.selected = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(theme.ButtonText)).
		Background(lipgloss.Color(theme.Accent))
	s.sidebar = lipgloss.NewStyle().Padding(0, 1).
		Foreground(lipgloss.Color(theme.Text)).
		Background(lipgloss.Color(theme.Sidebar))
	s.button = lipgloss.NewStyle().Padding(0, 1).
		Foreground(lipgloss.Color(theme.ButtonText)).
		Background(lipgloss.Color(theme.Button))
	s.box = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(0, 1)
}
