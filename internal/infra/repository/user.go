package repository

import (
	"context"

	"rental-booking/internal/domain/user"
	"rental-booking/internal/infra"
	"rental-booking/internal/infra/pgquery"
	"rental-booking/internal/infra/repository/converter"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateUserParams) (pgquery.User, error)
	UpdateUserProfile(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateUserProfileParams) (pgquery.User, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

// Create inserts a user. A taken email surfaces as KindDuplicateKey.
func (r *UserRepository) Create(ctx context.Context, tx pgquery.DBTX, u *user.User) (*user.User, error) {
	row, err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err)
	}
	return converter.UserToDomain(row)
}

func (r *UserRepository) SaveProfile(ctx context.Context, tx pgquery.DBTX, u *user.User) (*user.User, error) {
	row, err := r.queries.UpdateUserProfile(ctx, tx, converter.UserToProfileParams(u))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update user profile", err)
	}
	return converter.UserToDomain(row)
}
