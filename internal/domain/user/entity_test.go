//go:build unit

package user_test

import (
	"testing"
	"time"

	"rental-booking/internal/domain/user"
	"rental-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "有効なメールアドレスOK", input: "valid@example.com", want: "valid@example.com"},
		{name: "大文字と空白は正規化", input: "  Jane.Doe@Example.COM ", want: "jane.doe@example.com"},
		{name: "空のメールアドレスNG", input: "", errIs: user.ErrInvalidEmail},
		{name: "無効な形式NG", input: "invalid-email", errIs: user.ErrInvalidEmail},
		{name: "@なしNG", input: "invalidemail.com", errIs: user.ErrInvalidEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, email.Value())
		})
	}
}

func TestNewRole(t *testing.T) {
	role, err := user.NewRole("admin")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, role)
	assert.True(t, role.IsAdmin())

	_, err = user.NewRole("superuser")
	require.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("password123")
	require.NoError(t, err)
	assert.Equal(t, "password123", p.Value())
}

func TestNewRegisteredUser(t *testing.T) {
	email, _ := user.NewEmail("jane@example.com")
	blank := "  "

	u, err := user.NewRegisteredUser(email, user.Profile{FirstName: " Jane ", LastName: "Doe", PhoneNumber: &blank}, "hash")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, "Jane", u.FirstName())
	assert.Nil(t, u.PhoneNumber())
	assert.Equal(t, user.RoleUser, u.Role())
	assert.True(t, u.IsRegistered())
	hash, ok := u.PasswordHash()
	assert.True(t, ok)
	assert.Equal(t, "hash", hash)

	_, err = user.NewRegisteredUser(email, user.Profile{FirstName: "Jane"}, "hash")
	require.ErrorIs(t, err, user.ErrNameRequired)
}

func TestUser_GuestCredential(t *testing.T) {
	t.Run("ゲストはパスワードなし", func(t *testing.T) {
		email, _ := user.NewEmail("guest@example.com")
		u, err := user.NewGuestUser(email, user.Profile{FirstName: "Guest", LastName: "User"})
		require.NoError(t, err)
		assert.True(t, u.IsGuest())
		_, ok := u.PasswordHash()
		assert.False(t, ok)
	})

	t.Run("credentialなしの復元はゲスト扱い", func(t *testing.T) {
		u := user.ReconstructUser(uuid.New(), user.Email{}, "a", "b", nil, user.RoleUser, nil, time.Time{}, time.Time{})
		assert.True(t, u.IsGuest())
	})

	t.Run("ゲストから登録ユーザーへ昇格", func(t *testing.T) {
		u := builder.NewUserBuilder().AsGuest().BuildDomain()
		id := u.ID()
		phone := "+33 6 00 00 00 00"

		require.NoError(t, u.UpgradeToRegistered(user.Profile{FirstName: "Jane", LastName: "Smith", PhoneNumber: &phone}, "new-hash"))

		assert.Equal(t, id, u.ID(), "account identity is kept")
		assert.True(t, u.IsRegistered())
		assert.Equal(t, "Smith", u.LastName())
		require.NotNil(t, u.PhoneNumber())
		assert.Equal(t, phone, *u.PhoneNumber())
		hash, _ := u.PasswordHash()
		assert.Equal(t, "new-hash", hash)
	})

	t.Run("登録済みは昇格不可", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildDomain()
		err := u.UpgradeToRegistered(user.Profile{FirstName: "a", LastName: "b"}, "x")
		require.ErrorIs(t, err, user.ErrAlreadyRegistered)
	})
}
