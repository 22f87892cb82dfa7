//go:build unit || e2e

package builder

import (
	"time"

	"rental-booking/internal/domain/user"
	"rental-booking/internal/infra/pgquery"
	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	PhoneNumber  *string
	PasswordHash string
	Role         user.Role
	Guest        bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		FirstName:    "Jane",
		LastName:     "Doe",
		PasswordHash: "hashed_password",
		Role:         user.RoleUser,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() *user.User {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		panic(err)
	}

	var cred user.Credential = user.Registered{PasswordHash: u.PasswordHash}
	if u.Guest {
		cred = user.Guest{}
	}
	now := time.Now()
	return user.ReconstructUser(u.ID, email, u.FirstName, u.LastName, u.PhoneNumber, u.Role, cred, now, now)
}

func (u *UserBuilder) BuildInfra() pgquery.User {
	now := time.Now()
	row := pgquery.User{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: now, Valid: true},
	}
	if u.PhoneNumber != nil {
		row.PhoneNumber = pgtype.Text{String: *u.PhoneNumber, Valid: true}
	}
	if !u.Guest {
		row.PasswordHash = pgtype.Text{String: u.PasswordHash, Valid: true}
	}
	return row
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		Role:        string(u.Role),
		IsGuest:     u.Guest,
		CreatedAt:   time.Now(),
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role user.Role) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = user.RoleAdmin
	return u
}

func (u *UserBuilder) AsGuest() *UserBuilder {
	u.Guest = true
	u.PasswordHash = ""
	return u
}
