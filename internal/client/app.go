// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/atmost-notes/internal/logger"
	"github.com/MKhiriev/atmost-notes/internal/tui"
	"github.com/MKhiriev/atmost-notes/internal/workers"
)

type App struct {
	ui      UI
	workers *workers.Workers
	closer  io.Closer
	logger  *logger.Logger
}

// NewApp returns the runtime. closer releases storage when Run returns.
func NewApp(ui UI, workers *workers.Workers, closer io.Closer, logger *logger.Logger) *App {
	return &App{
		ui:      ui,
		workers: workers,
		closer:  closer,
		logger:  logger,
	}
}

// Run alternates between the login flow and the main loop until the user
// quits or ctx is cancelled. Quitting is not an error.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if closeErr := a.closer.Close(); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "*App.Run").Msg("error closing storage")
		}
	}()

	a.workers.Run(ctx)

	for {
		session, err := a.ui.LoginFlow(ctx)
		if err != nil {
			return a.exit(ctx, err)
		}

		logout, err := a.ui.MainLoop(ctx, session)
		if err != nil {
			return a.exit(ctx, err)
		}
		if !logout {
			return nil
		}
		a.logger.Info().Str("func", "*App.Run").Str("session", session.ID).Msg("logged out")
	}
}

func (a *App) exit(ctx context.Context, err error) error {
	if errors.Is(err, tui.ErrUserQuit) || ctx.Err() != nil {
		a.logger.Info().Str("func", "*App.Run").Msg("application closed")
		return nil
	}
	return fmt.Errorf("terminal ui error: %w", err)
}
