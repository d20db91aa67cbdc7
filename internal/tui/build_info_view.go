// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/atmost-notes/models"
)

func renderBuildInfoWindow(st *styles, info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: " + models.AppName + "\n")
	b.WriteString("Version: " + info.BuildVersion() + "\n")
	b.WriteString("Date: " + info.BuildDate() + "\n")
	b.WriteString("Commit: " + info.BuildCommit())

	return renderPage(st, "ABOUT", b.String(), "esc: back")
}
