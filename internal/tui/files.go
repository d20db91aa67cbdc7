// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// imagePattern lists the picture types accepted for profile pictures.
const imagePattern = "*.{png,jpg,jpeg,bmp}"

// readProfileImage loads a picture chosen by path. An empty path means "no
// picture" and yields nil.
func readProfileImage(path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}

	ok, err := doublestar.Match(imagePattern, strings.ToLower(filepath.Base(path)))
	if err != nil || !ok {
		return nil, fmt.Errorf("%w: %s", errUnsupportedImage, filepath.Base(path))
	}

	data, err := os.ReadFile(expandHome(path))
	if err != nil {
		return nil, err
	}
	return data, nil
}

// expandHome resolves a leading "~/" to the user's home directory.
func expandHome(path string) string {
	path = strings.TrimSpace(path)
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
