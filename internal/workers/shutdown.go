// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"os"
	"os/signal"

	"github.com/MKhiriev/atmost-notes/internal/logger"
)

// ShutdownWorker cancels the application context when one of its signals
// arrives. The terminal UI then unwinds and the database is closed.
type ShutdownWorker struct {
	cancel  context.CancelFunc
	signals []os.Signal
	logger  *logger.Logger
}

func NewShutdownWorker(cancel context.CancelFunc, logger *logger.Logger, signals ...os.Signal) *ShutdownWorker {
	return &ShutdownWorker{
		cancel:  cancel,
		signals: signals,
		logger:  logger,
	}
}

func (w *ShutdownWorker) Run(ctx context.Context) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, w.signals...)

	go func() {
		defer signal.Stop(ch)

		select {
		case sig := <-ch:
			w.logger.Info().Str("func", "*ShutdownWorker.Run").Str("signal", sig.String()).Msg("shutting down")
			w.cancel()
		case <-ctx.Done():
		}
	}()
}
