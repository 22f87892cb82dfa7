package commands

import (
	"context"

	"rental-booking/internal/domain/user"
	"rental-booking/internal/infra"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/pkg/password"
	"rental-booking/internal/usecase/queries"
	"rental-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/mock_auth.go -package=commandsmock

var (
	ErrUserExists         = errs.Define("User already exists", errs.ErrConflict)
	ErrInvalidCredentials = errs.Define("Invalid email or password", errs.ErrUnauthorized)
	ErrGuestAccount       = errs.Define("Account has no password; please register", errs.ErrUnauthorized)
	ErrTokenGeneration    = errs.New("token generation failed")
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
}

type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber *string
}

type AuthResult struct {
	Token string
	User  *queries.UserView
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		tokens: tokens,
	}
}

// Register creates a registered account, or upgrades the guest shadow account already
// holding the email so its reservations stay attached.
func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}
	profile := user.Profile{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: in.PhoneNumber,
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	var registered *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reads().UserByEmail(ctx, email)
		switch {
		case err == nil:
			if existing.IsRegistered() {
				return ErrUserExists
			}
			if err := existing.UpgradeToRegistered(profile, hash); err != nil {
				return err
			}
			registered, err = tx.Users().SaveProfile(ctx, tx.DB(), existing)
			return err
		case !infra.IsKind(err, infra.KindNotFound):
			return err
		}

		u, err := user.NewRegisteredUser(email, profile, hash)
		if err != nil {
			return err
		}
		registered, err = tx.Users().Create(ctx, tx.DB(), u)
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrUserExists
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return a.issue(registered)
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pw string) (*AuthResult, error) {
	addr, err := user.NewEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	u, err := a.uow.CommandReads().UserByEmail(ctx, addr)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the caller
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	hash, ok := u.PasswordHash()
	if !ok {
		return nil, ErrGuestAccount
	}
	if err := password.ComparePassword(hash, pw); err != nil {
		return nil, ErrInvalidCredentials
	}

	return a.issue(u)
}

func (a *authCommandsImpl) issue(u *user.User) (*AuthResult, error) {
	token, err := a.tokens.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &AuthResult{
		Token: token,
		User:  userToView(u),
	}, nil
}

func userToView(u *user.User) *queries.UserView {
	return &queries.UserView{
		ID:          u.ID(),
		Email:       u.Email().Value(),
		FirstName:   u.FirstName(),
		LastName:    u.LastName(),
		PhoneNumber: u.PhoneNumber(),
		Role:        u.Role().String(),
		IsGuest:     u.IsGuest(),
		CreatedAt:   u.CreatedAt(),
	}
}
