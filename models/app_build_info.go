// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

const AppName = "Atmost Notes"

// AppBuildInfo holds the version, date and commit stamped into the binary by
// -ldflags. Missing values read as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNA(a.version) }
func (a AppBuildInfo) BuildDate() string    { return orNA(a.date) }
func (a AppBuildInfo) BuildCommit() string  { return orNA(a.commit) }

// Summary is the one-line form, e.g. "Atmost Notes 1.2.3 (abc123)".
func (a AppBuildInfo) Summary() string {
	return AppName + " " + a.BuildVersion() + " (" + a.BuildCommit() + ")"
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
