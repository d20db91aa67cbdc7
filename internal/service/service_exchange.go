// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/MKhiriev/atmost-notes/internal/config"
	"github.com/MKhiriev/atmost-notes/internal/logger"
	"github.com/MKhiriev/atmost-notes/models"
)

const exportExtension = ".html"

var fileNameReplacer = strings.NewReplacer("/", "_", "\\", "_", "\x00", "")

type exchangeService struct {
	notes         NoteService
	importPattern string
	logger        *logger.Logger
}

// NewExchangeService returns an ExchangeService that reads and writes notes
// through notes. Files are matched against cfg.ImportPattern on import.
func NewExchangeService(notes NoteService, cfg config.Files, logger *logger.Logger) ExchangeService {
	return &exchangeService{
		notes:         notes,
		importPattern: cfg.ImportPattern,
		logger:        logger,
	}
}

// Export writes one file per note. Notes sharing a title overwrite each
// other, the last one in storage order wins.
func (e *exchangeService) Export(ctx context.Context, session *Session, dir string) (int, error) {
	if err := session.authorize(); err != nil {
		return 0, err
	}
	if err := requireDir(dir); err != nil {
		return 0, err
	}

	docs, err := e.notes.ExportAll(ctx, session)
	if err != nil {
		return 0, err
	}

	for _, doc := range docs {
		name := filepath.Join(dir, exportFileName(doc.Title))
		if err = os.WriteFile(name, []byte(doc.Body), 0o644); err != nil {
			e.logger.Err(err).Str("func", "*exchangeService.Export").Str("file", name).Msg("error writing note file")
			return 0, fmt.Errorf("error writing %s: %w", name, err)
		}
	}

	e.logger.Info().Str("session", session.ID).Int("notes", len(docs)).Str("dir", dir).Msg("notes exported")
	return len(docs), nil
}

// Import reads every matching file of dir, in lexical path order, and hands
// them to the note service as one batch.
func (e *exchangeService) Import(ctx context.Context, session *Session, dir string) (int, error) {
	if err := session.authorize(); err != nil {
		return 0, err
	}
	if err := requireDir(dir); err != nil {
		return 0, err
	}

	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, e.importPattern, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return 0, fmt.Errorf("error listing %s: %w", dir, err)
	}
	slices.Sort(matches)

	docs := make([]models.NoteDocument, 0, len(matches))
	for _, match := range matches {
		content, err := fs.ReadFile(fsys, match)
		if err != nil {
			return 0, fmt.Errorf("error reading %s: %w", match, err)
		}
		docs = append(docs, models.NoteDocument{
			Title: importTitle(match),
			Body:  string(content),
		})
	}

	count, err := e.notes.BulkImport(ctx, session, docs)
	if err != nil {
		return 0, err
	}

	e.logger.Info().Str("session", session.ID).Int("notes", count).Str("dir", dir).Msg("notes imported")
	return count, nil
}

// exportFileName keeps every file inside the export directory.
func exportFileName(title string) string {
	return fileNameReplacer.Replace(title) + exportExtension
}

// importTitle is the base name without its last extension.
func importTitle(match string) string {
	base := path.Base(match)
	return strings.TrimSuffix(base, path.Ext(base))
}

func requireDir(dir string) error {
	if dir == "" {
		return ErrInvalidDataProvided
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrInvalidDataProvided, dir)
	}
	return nil
}
