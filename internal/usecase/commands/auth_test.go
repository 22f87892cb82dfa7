//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-booking/internal/domain/user"
	"rental-booking/internal/infra"
	"rental-booking/internal/pkg/password"
	"rental-booking/internal/usecase/commands"
	"rental-booking/tests/common/builder"
	commandsmock "rental-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthCommands(t *testing.T) (*uowFixture, *commandsmock.MockTokenIssuer, commands.AuthCommands) {
	f := newUOWFixture(t)
	tokens := commandsmock.NewMockTokenIssuer(f.ctrl)
	return f, tokens, commands.NewAuthCommands(f.uow, tokens)
}

func registerInput() commands.RegisterInput {
	return commands.RegisterInput{
		Email:     "Jane@Example.com",
		Password:  "password123",
		FirstName: "Jane",
		LastName:  "Doe",
	}
}

func TestAuthCommands_Register(t *testing.T) {
	t.Run("新規登録でトークンを発行", func(t *testing.T) {
		f, tokens, cmds := newAuthCommands(t)
		f.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, notFound("user"))
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, u *user.User) (*user.User, error) {
				hash, ok := u.PasswordHash()
				require.True(t, ok)
				assert.NoError(t, password.ComparePassword(hash, "password123"))
				return u, nil
			})
		tokens.EXPECT().GenerateToken(gomock.Any(), user.RoleUser).Return("signed", nil)

		result, err := cmds.Register(context.Background(), registerInput())

		require.NoError(t, err)
		assert.Equal(t, "signed", result.Token)
		assert.Equal(t, "jane@example.com", result.User.Email)
		assert.Equal(t, "USER", result.User.Role)
		assert.False(t, result.User.IsGuest)
	})

	t.Run("ゲストアカウントを昇格", func(t *testing.T) {
		f, tokens, cmds := newAuthCommands(t)
		guest := builder.NewUserBuilder().WithEmail("jane@example.com").AsGuest().BuildDomain()
		f.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(guest, nil)
		f.users.EXPECT().SaveProfile(gomock.Any(), gomock.Any(), guest).Return(guest, nil)
		tokens.EXPECT().GenerateToken(guest.ID(), user.RoleUser).Return("signed", nil)

		result, err := cmds.Register(context.Background(), registerInput())

		require.NoError(t, err)
		assert.Equal(t, guest.ID(), result.User.ID)
		assert.True(t, guest.IsRegistered())
	})

	t.Run("登録済みメールは重複", func(t *testing.T) {
		f, _, cmds := newAuthCommands(t)
		f.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(builder.NewUserBuilder().BuildDomain(), nil)

		_, err := cmds.Register(context.Background(), registerInput())

		require.ErrorIs(t, err, commands.ErrUserExists)
	})

	t.Run("同時登録の一意制約違反は重複", func(t *testing.T) {
		f, _, cmds := newAuthCommands(t)
		f.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, notFound("user"))
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("insert", errors.New("duplicate"), infra.KindDuplicateKey))

		_, err := cmds.Register(context.Background(), registerInput())

		require.ErrorIs(t, err, commands.ErrUserExists)
	})

	t.Run("入力検証", func(t *testing.T) {
		_, _, cmds := newAuthCommands(t)
		cases := []struct {
			mutate func(*commands.RegisterInput)
			errIs  error
		}{
			{mutate: func(in *commands.RegisterInput) { in.Email = "bad" }, errIs: user.ErrInvalidEmail},
			{mutate: func(in *commands.RegisterInput) { in.Password = "short" }, errIs: user.ErrPasswordTooWeak},
		}
		for _, tc := range cases {
			in := registerInput()
			tc.mutate(&in)
			_, err := cmds.Register(context.Background(), in)
			assert.ErrorIs(t, err, tc.errIs)
		}
	})
}

func TestAuthCommands_Login(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	registered := func() *user.User {
		return user.ReconstructUser(uuid.New(), mustEmail(t, "jane@example.com"), "Jane", "Doe", nil,
			user.RoleAdmin, user.Registered{PasswordHash: hash}, time.Now(), time.Now())
	}

	t.Run("正しい資格情報", func(t *testing.T) {
		f, tokens, cmds := newAuthCommands(t)
		u := registered()
		f.reads.EXPECT().UserByEmail(gomock.Any(), u.Email()).Return(u, nil)
		tokens.EXPECT().GenerateToken(u.ID(), user.RoleAdmin).Return("signed", nil)

		result, err := cmds.Login(context.Background(), " JANE@example.com", "password123")

		require.NoError(t, err)
		assert.Equal(t, "signed", result.Token)
		assert.Equal(t, "ADMIN", result.User.Role)
	})

	t.Run("パスワード違い", func(t *testing.T) {
		f, _, cmds := newAuthCommands(t)
		f.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(registered(), nil)

		_, err := cmds.Login(context.Background(), "jane@example.com", "wrong-password")

		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("未登録メールも同じエラー", func(t *testing.T) {
		f, _, cmds := newAuthCommands(t)
		f.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, notFound("user"))

		_, err := cmds.Login(context.Background(), "nobody@example.com", "password123")

		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("ゲストアカウントはログイン不可", func(t *testing.T) {
		f, _, cmds := newAuthCommands(t)
		f.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(builder.NewUserBuilder().AsGuest().BuildDomain(), nil)

		_, err := cmds.Login(context.Background(), "test@example.com", "password123")

		require.ErrorIs(t, err, commands.ErrGuestAccount)
	})

	t.Run("トークン発行失敗", func(t *testing.T) {
		f, tokens, cmds := newAuthCommands(t)
		u := registered()
		f.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(u, nil)
		tokens.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).Return("", errors.New("hsm unavailable"))

		_, err := cmds.Login(context.Background(), "jane@example.com", "password123")

		require.ErrorIs(t, err, commands.ErrTokenGeneration)
	})
}

func mustEmail(t *testing.T, s string) user.Email {
	t.Helper()
	e, err := user.NewEmail(s)
	require.NoError(t, err)
	return e
}
