// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"io/fs"

	"github.com/MKhiriev/atmost-notes/internal/app"
	"github.com/MKhiriev/atmost-notes/internal/service"
)

var (
	// ErrUserQuit is returned by the flows when the user closes the program.
	ErrUserQuit = errors.New("user quit the program")

	errUnsupportedImage = errors.New("unsupported image type")
	errInvalidColor     = errors.New("invalid colour")
)

// userMessage extends service.UserMessage with the failures raised by the
// terminal UI itself.
func userMessage(err error) string {
	var pathErr *fs.PathError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, errUnsupportedImage):
		return app.MsgUnsupportedImage
	case errors.Is(err, errInvalidColor):
		return app.MsgInvalidColor
	case errors.As(err, &pathErr):
		return app.MsgFileUnreadable
	}

	return service.UserMessage(err)
}
