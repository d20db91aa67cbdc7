// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode"

	"github.com/MKhiriev/atmost-notes/models"
)

const (
	FieldAccountID = "account_id"
	FieldUsername  = "username"
	FieldPassword  = "password"
)

// AccountValidator checks account input coming from the user interface.
type AccountValidator struct {
}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate checks a models.Account. Without fields, username and password are
// checked; the identifier is only checked when FieldAccountID is requested.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Account:
		return v.validateAccount(ctx, value, fields...)
	case *models.Account:
		return v.validateAccount(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateAccount(_ context.Context, account models.Account, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldAccountID:
			if account.ID <= 0 {
				return ErrInvalidAccountID
			}
		case FieldUsername:
			if account.Username == "" {
				return ErrEmptyUsername
			}
			if strings.IndexFunc(account.Username, unicode.IsControl) >= 0 {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if account.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
