// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs that live next to the terminal
// UI for the whole process lifetime.
package workers

import "context"

// Worker is a background job. Run must not block: implementations start
// their own goroutines and stop them when ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
