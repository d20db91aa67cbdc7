// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/atmost-notes/internal/adapter"
	"github.com/MKhiriev/atmost-notes/internal/config"
	"github.com/MKhiriev/atmost-notes/internal/crypto"
	"github.com/MKhiriev/atmost-notes/internal/logger"
	"github.com/MKhiriev/atmost-notes/internal/store"
)

// Services groups every service the user interface talks to.
type Services struct {
	AccountService   AccountService
	NoteService      NoteService
	AssistantService AssistantService
	ExchangeService  ExchangeService
}

// NewServices wires the services to the storage layer and the assistant
// adapter. Account and note services are wrapped with input validation.
func NewServices(storages *store.Storages, assistant adapter.AssistantAdapter, hasher crypto.PasswordHasher, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	accountService := NewAccountValidationService().Wrap(
		NewAccountService(storages.AccountRepository, hasher, cfg.UI, logger),
	)
	noteService := NewNoteValidationService().Wrap(
		NewNoteService(storages.NoteRepository, logger),
	)

	return &Services{
		AccountService:   accountService,
		NoteService:      noteService,
		AssistantService: NewAssistantService(assistant, logger),
		ExchangeService:  NewExchangeService(noteService, cfg.Storage.Files, logger),
	}
}
