// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/atmost-notes/internal/service"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the part of the terminal UI the runtime drives.
type UI interface {
	// LoginFlow blocks until a session is opened or the user quits.
	LoginFlow(ctx context.Context) (*service.Session, error)

	// MainLoop blocks until the user logs out or quits.
	MainLoop(ctx context.Context, session *service.Session) (logout bool, err error)
}
