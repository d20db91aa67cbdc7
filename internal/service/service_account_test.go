// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/atmost-notes/internal/config"
	"github.com/MKhiriev/atmost-notes/internal/crypto"
	"github.com/MKhiriev/atmost-notes/internal/logger"
	"github.com/MKhiriev/atmost-notes/internal/mock"
	"github.com/MKhiriev/atmost-notes/internal/store"
	"github.com/MKhiriev/atmost-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAccountSvc(t *testing.T, ctrl *gomock.Controller) (*accountService, *mock.MockAccountRepository, *mock.MockPasswordHasher) {
	t.Helper()
	repo := mock.NewMockAccountRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAccountService(repo, hasher, config.UI{Theme: "Dark"}, logger.Nop()).(*accountService)
	return svc, repo, hasher
}

func loggedIn(accountID int64) *Session {
	return &Session{ID: "session-1", AccountID: accountID, Username: "alice", AIEnabled: true}
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAccountService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		hasher.EXPECT().Hash("pw1").Return("digest", nil),
		repo.EXPECT().Create(ctx, models.Account{Username: "alice", PasswordHash: "digest"}).Return(int64(7), nil),
	)

	session, err := svc.Register(ctx, "alice", "pw1", nil)
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, int64(7), session.AccountID)
	assert.Equal(t, "alice", session.Username)
	assert.False(t, session.HasProfileImage)
	assert.True(t, session.AIEnabled)
	assert.Equal(t, models.DarkTheme(), session.Theme)
	assert.Zero(t, session.NoteID)
}

func TestAccountService_Register_WithProfileImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAccountSvc(t, ctrl)
	ctx := context.Background()
	image := []byte{0x89, 'P', 'N', 'G'}

	hasher.EXPECT().Hash("pw1").Return("digest", nil)
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a models.Account) (int64, error) {
		assert.Equal(t, image, a.ProfileImage)
		assert.Empty(t, a.Password, "plaintext password must not reach the store")
		return 2, nil
	})

	session, err := svc.Register(ctx, "bob", "pw1", image)
	require.NoError(t, err)
	assert.True(t, session.HasProfileImage)
}

func TestAccountService_Register_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAccountSvc(t, ctrl)

	_, err := svc.Register(context.Background(), "", "pw1", nil)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Register(context.Background(), "alice", "", nil)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAccountService_Register_DuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	hasher.EXPECT().Hash("pw2").Return("digest", nil)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(int64(0), store.ErrUsernameAlreadyExists)

	session, err := svc.Register(ctx, "alice", "pw2", nil)
	assert.Nil(t, session)
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestAccountService_Register_HashError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, hasher := newTestAccountSvc(t, ctrl)
	hashErr := errors.New("entropy exhausted")

	hasher.EXPECT().Hash("pw1").Return("", hashErr)

	_, err := svc.Register(context.Background(), "alice", "pw1", nil)
	assert.ErrorIs(t, err, hashErr)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAccountService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAccountSvc(t, ctrl)
	ctx := context.Background()
	account := models.Account{ID: 3, Username: "alice", PasswordHash: "digest"}

	gomock.InOrder(
		repo.EXPECT().FindByUsername(ctx, "alice").Return(account, nil),
		hasher.EXPECT().Verify("pw1", "digest").Return(true, nil),
		hasher.EXPECT().NeedsRehash("digest").Return(false),
	)

	session, err := svc.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), session.AccountID)
	assert.Equal(t, "alice", session.Username)
}

func TestAccountService_Login_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindByUsername(ctx, "carol").Return(models.Account{}, store.ErrAccountNotFound)

	_, err := svc.Login(ctx, "carol", "x")
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindByUsername(ctx, "alice").Return(models.Account{ID: 3, PasswordHash: "digest"}, nil)
	hasher.EXPECT().Verify("wrong", "digest").Return(false, nil)

	_, err := svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.NotErrorIs(t, err, ErrWrongCurrentPassword)
}

func TestAccountService_Login_MalformedDigest(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindByUsername(ctx, "alice").Return(models.Account{ID: 3, PasswordHash: "garbage"}, nil)
	hasher.EXPECT().Verify("pw1", "garbage").Return(false, crypto.ErrMalformedDigest)

	_, err := svc.Login(ctx, "alice", "pw1")
	assert.ErrorIs(t, err, crypto.ErrMalformedDigest)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}

func TestAccountService_Login_UpgradesLegacyDigest(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().FindByUsername(ctx, "alice").Return(models.Account{ID: 3, PasswordHash: "legacy"}, nil),
		hasher.EXPECT().Verify("pw1", "legacy").Return(true, nil),
		hasher.EXPECT().NeedsRehash("legacy").Return(true),
		hasher.EXPECT().Hash("pw1").Return("argon", nil),
		repo.EXPECT().UpdatePasswordHash(ctx, int64(3), "argon").Return(nil),
	)

	_, err := svc.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
}

func TestAccountService_Login_FailedUpgradeStillLogsIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindByUsername(ctx, "alice").Return(models.Account{ID: 3, PasswordHash: "legacy"}, nil)
	hasher.EXPECT().Verify("pw1", "legacy").Return(true, nil)
	hasher.EXPECT().NeedsRehash("legacy").Return(true)
	hasher.EXPECT().Hash("pw1").Return("argon", nil)
	repo.EXPECT().UpdatePasswordHash(ctx, int64(3), "argon").Return(errors.New("disk full"))

	session, err := svc.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), session.AccountID)
}

// ── ChangeUsername ───────────────────────────────────────────────────────────

func TestAccountService_ChangeUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()
	session := loggedIn(3)

	repo.EXPECT().UpdateUsername(ctx, int64(3), "alice2").Return(nil)

	require.NoError(t, svc.ChangeUsername(ctx, session, "alice2"))
	assert.Equal(t, "alice2", session.Username)
}

func TestAccountService_ChangeUsername_Taken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()
	session := loggedIn(3)

	repo.EXPECT().UpdateUsername(ctx, int64(3), "bob").Return(store.ErrUsernameAlreadyExists)

	err := svc.ChangeUsername(ctx, session, "bob")
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
	assert.Equal(t, "alice", session.Username)
}

func TestAccountService_RequiresLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	assert.ErrorIs(t, svc.ChangeUsername(ctx, &Session{}, "x"), ErrNotLoggedIn)
	assert.ErrorIs(t, svc.ChangeUsername(ctx, nil, "x"), ErrNotLoggedIn)
	assert.ErrorIs(t, svc.ChangePassword(ctx, &Session{}, "a", "b", "b"), ErrNotLoggedIn)
	assert.ErrorIs(t, svc.ChangeProfileImage(ctx, &Session{}, []byte("img")), ErrNotLoggedIn)
}

// ── ChangePassword ───────────────────────────────────────────────────────────

func TestAccountService_ChangePassword(t *testing.T) {
	account := models.Account{ID: 3, Username: "alice", PasswordHash: "digest"}

	tests := []struct {
		name         string
		old          string
		newPassword  string
		confirmation string
		setup        func(ctx context.Context, repo *mock.MockAccountRepository, hasher *mock.MockPasswordHasher)
		wantErr      error
	}{
		{
			name: "success", old: "pw1", newPassword: "pw2", confirmation: "pw2",
			setup: func(ctx context.Context, repo *mock.MockAccountRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindByID(ctx, int64(3)).Return(account, nil)
				hasher.EXPECT().Verify("pw1", "digest").Return(true, nil)
				hasher.EXPECT().Hash("pw2").Return("digest2", nil)
				repo.EXPECT().UpdatePasswordHash(ctx, int64(3), "digest2").Return(nil)
			},
		},
		{
			name: "wrong old password reported before mismatch", old: "bad", newPassword: "x", confirmation: "y",
			setup: func(ctx context.Context, repo *mock.MockAccountRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindByID(ctx, int64(3)).Return(account, nil)
				hasher.EXPECT().Verify("bad", "digest").Return(false, nil)
			},
			wantErr: ErrWrongCurrentPassword,
		},
		{
			name: "confirmation mismatch", old: "pw1", newPassword: "x", confirmation: "y",
			setup: func(ctx context.Context, repo *mock.MockAccountRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindByID(ctx, int64(3)).Return(account, nil)
				hasher.EXPECT().Verify("pw1", "digest").Return(true, nil)
			},
			wantErr: ErrPasswordMismatch,
		},
		{
			name: "empty new password", old: "pw1", newPassword: "", confirmation: "",
			setup: func(ctx context.Context, repo *mock.MockAccountRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindByID(ctx, int64(3)).Return(account, nil)
				hasher.EXPECT().Verify("pw1", "digest").Return(true, nil)
			},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name: "account vanished", old: "pw1", newPassword: "x", confirmation: "x",
			setup: func(ctx context.Context, repo *mock.MockAccountRepository, _ *mock.MockPasswordHasher) {
				repo.EXPECT().FindByID(ctx, int64(3)).Return(models.Account{}, store.ErrAccountNotFound)
			},
			wantErr: store.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo, hasher := newTestAccountSvc(t, ctrl)
			ctx := context.Background()
			tt.setup(ctx, repo, hasher)

			err := svc.ChangePassword(ctx, loggedIn(3), tt.old, tt.newPassword, tt.confirmation)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccountService_ChangePassword_WrongOldMatchesWrongPassword(t *testing.T) {
	assert.ErrorIs(t, ErrWrongCurrentPassword, ErrWrongPassword)
}

// ── ChangeProfileImage ───────────────────────────────────────────────────────

func TestAccountService_ChangeProfileImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()
	session := loggedIn(3)
	image := []byte("GIF89a")

	repo.EXPECT().UpdateProfileImage(ctx, int64(3), image).Return(nil)

	require.NoError(t, svc.ChangeProfileImage(ctx, session, image))
	assert.True(t, session.HasProfileImage)

	assert.ErrorIs(t, svc.ChangeProfileImage(ctx, session, nil), ErrInvalidDataProvided)
}
