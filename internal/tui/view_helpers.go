// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(st *styles, title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(st.title.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(st.help.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(st.help.Render("ctrl+c: quit"))

	return st.page.Render(b.String())
}

// renderFeedback renders the status line and the error line of a page.
func renderFeedback(st *styles, status, errMsg string) string {
	var b strings.Builder
	if status != "" {
		b.WriteString("\n")
		b.WriteString(st.status.Render(status))
	}
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(st.errText.Render("Error: " + errMsg))
	}
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
