package response

import (
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber *string   `json:"phoneNumber"`
	Role        string    `json:"role"`
}

// AuthResponse flattens the profile next to the token.
type AuthResponse struct {
	Token string `json:"token"`
	UserResponse
}

// FromUserView copies the public profile fields by name.
func FromUserView(v *queries.UserView) (*UserResponse, error) {
	var out UserResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, errs.Wrap(err, "map user view")
	}
	return &out, nil
}

func NewAuthResponse(token string, v *queries.UserView) (*AuthResponse, error) {
	user, err := FromUserView(v)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		Token:        token,
		UserResponse: *user,
	}, nil
}
