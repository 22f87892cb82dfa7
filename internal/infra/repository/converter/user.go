package converter

import (
	"rental-booking/internal/domain/user"
	"rental-booking/internal/infra/pgquery"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func UserToCreateParams(u *user.User) pgquery.CreateUserParams {
	return pgquery.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		PhoneNumber:  pgconv.StringPtrToPgtype(u.PhoneNumber()),
		PasswordHash: credentialToPgtype(u.Credential()),
		Role:         u.Role().String(),
	}
}

func UserToProfileParams(u *user.User) pgquery.UpdateUserProfileParams {
	return pgquery.UpdateUserProfileParams{
		ID:           u.ID(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		PhoneNumber:  pgconv.StringPtrToPgtype(u.PhoneNumber()),
		PasswordHash: credentialToPgtype(u.Credential()),
	}
}

// UserToDomain maps a NULL password hash to the Guest credential.
func UserToDomain(row pgquery.User) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, errs.Wrap(err, "stored user has invalid email")
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored user has invalid role")
	}

	var cred user.Credential = user.Guest{}
	if row.PasswordHash.Valid && row.PasswordHash.String != "" {
		cred = user.Registered{PasswordHash: row.PasswordHash.String}
	}

	return user.ReconstructUser(
		row.ID,
		email,
		row.FirstName,
		row.LastName,
		pgconv.StringPtrFromPgtype(row.PhoneNumber),
		role,
		cred,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func credentialToPgtype(c user.Credential) pgtype.Text {
	switch v := c.(type) {
	case user.Registered:
		return pgconv.StringToPgtype(v.PasswordHash)
	default:
		return pgtype.Text{Valid: false}
	}
}
