package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, email, first_name, last_name, phone_number, password_hash, role, created_at, updated_at`

type CreateUserParams struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	PhoneNumber  pgtype.Text
	PasswordHash pgtype.Text
	Role         string
}

const createUser = `
INSERT INTO users (id, email, first_name, last_name, phone_number, password_hash, role)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + userColumns

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (User, error) {
	return queryOne[User](ctx, db, createUser,
		arg.ID, arg.Email, arg.FirstName, arg.LastName, arg.PhoneNumber, arg.PasswordHash, arg.Role)
}

const getUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (User, error) {
	return queryOne[User](ctx, db, getUserByID, id)
}

const getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = lower($1)`

func (q *Queries) GetUserByEmail(ctx context.Context, db DBTX, email string) (User, error) {
	return queryOne[User](ctx, db, getUserByEmail, email)
}

type UpdateUserProfileParams struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	PhoneNumber  pgtype.Text
	PasswordHash pgtype.Text
}

const updateUserProfile = `
UPDATE users
SET first_name = $2, last_name = $3, phone_number = $4, password_hash = $5, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

func (q *Queries) UpdateUserProfile(ctx context.Context, db DBTX, arg UpdateUserProfileParams) (User, error) {
	return queryOne[User](ctx, db, updateUserProfile,
		arg.ID, arg.FirstName, arg.LastName, arg.PhoneNumber, arg.PasswordHash)
}
