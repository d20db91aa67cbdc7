// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"regexp"
	"strings"
)

// Theme names known to the application.
const (
	ThemeLight  = "Light"
	ThemeDark   = "Dark"
	ThemeCustom = "Custom"
)

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Theme is a named palette of hex colours applied by the user interface.
type Theme struct {
	Name       string `json:"name" yaml:"name"`
	Background string `json:"background" yaml:"background"`
	Sidebar    string `json:"sidebar" yaml:"sidebar"`
	Text       string `json:"text" yaml:"text"`
	Accent     string `json:"accent" yaml:"accent"`
	Button     string `json:"button" yaml:"button"`
	ButtonText string `json:"button_text" yaml:"button_text"`
}

// LightTheme returns the default light palette.
func LightTheme() Theme {
	return Theme{ThemeLight, "#FFFFFF", "#F0F0F0", "#333333", "#4A90E2", "#E0E0E0", "#333333"}
}

// DarkTheme returns the dark palette.
func DarkTheme() Theme {
	return Theme{ThemeDark, "#1E1E1E", "#252526", "#FFFFFF", "#007ACC", "#3C3C3C", "#FFFFFF"}
}

// CustomTheme returns the starting point of a user-customised palette.
func CustomTheme() Theme {
	t := LightTheme()
	t.Name = ThemeCustom
	return t
}

// ThemeByName resolves a theme name case-insensitively. ok is false for
// unknown names, in which case the light theme is returned.
func ThemeByName(name string) (theme Theme, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light", "":
		return LightTheme(), true
	case "dark":
		return DarkTheme(), true
	case "custom":
		return CustomTheme(), true
	}
	return LightTheme(), false
}

// ThemeColorFields lists the editable colour slots in display order.
var ThemeColorFields = []string{"Background", "Sidebar", "Text", "Accent", "Button", "Button Text"}

// WithColor returns a copy of t with the named colour slot set to hex.
// The result is always named Custom.
func (t Theme) WithColor(field, hex string) (Theme, error) {
	hex = strings.TrimSpace(hex)
	if !hexColorRe.MatchString(hex) {
		return t, fmt.Errorf("invalid colour %q: expected #RRGGBB", hex)
	}

	switch field {
	case "Background":
		t.Background = hex
	case "Sidebar":
		t.Sidebar = hex
	case "Text":
		t.Text = hex
	case "Accent":
		t.Accent = hex
	case "Button":
		t.Button = hex
	case "Button Text":
		t.ButtonText = hex
	default:
		return t, fmt.Errorf("unknown colour slot %q", field)
	}

	t.Name = ThemeCustom
	return t, nil
}

// Color returns the hex value stored in the named colour slot.
func (t Theme) Color(field string) string {
	switch field {
	case "Background":
		return t.Background
	case "Sidebar":
		return t.Sidebar
	case "Text":
		return t.Text
	case "Accent":
		return t.Accent
	case "Button":
		return t.Button
	case "Button Text":
		return t.ButtonText
	}
	return ""
}
