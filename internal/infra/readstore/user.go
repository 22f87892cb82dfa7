package readstore

import (
	"context"

	"github.com/google/uuid"

	"rental-booking/internal/infra"
	"rental-booking/internal/infra/pgquery"
	"rental-booking/internal/pkg/pgconv"
	"rental-booking/internal/usecase/queries"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.User, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      pgquery.DBTX
}

func NewUserReadStore(queries UserReadQueries, db pgquery.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toUserView(row), nil
}

func toUserView(row pgquery.User) *queries.UserView {
	return &queries.UserView{
		ID:          row.ID,
		Email:       row.Email,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		PhoneNumber: pgconv.StringPtrFromPgtype(row.PhoneNumber),
		Role:        row.Role,
		IsGuest:     !row.PasswordHash.Valid,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
