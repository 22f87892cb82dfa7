package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	id          uuid.UUID
	email       Email
	firstName   string
	lastName    string
	phoneNumber *string
	role        Role
	credential  Credential
	createdAt   time.Time
	updatedAt   time.Time
}

type Profile struct {
	FirstName   string
	LastName    string
	PhoneNumber *string
}

func (p Profile) normalize() (Profile, error) {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	if p.FirstName == "" || p.LastName == "" {
		return Profile{}, ErrNameRequired
	}
	p.PhoneNumber = normalizePhone(p.PhoneNumber)
	return p, nil
}

func NewRegisteredUser(email Email, profile Profile, passwordHash string) (*User, error) {
	return newUser(email, profile, Registered{PasswordHash: passwordHash})
}

// NewGuestUser creates the shadow account that owns reservations made without logging in.
func NewGuestUser(email Email, profile Profile) (*User, error) {
	return newUser(email, profile, Guest{})
}

func newUser(email Email, profile Profile, cred Credential) (*User, error) {
	p, err := profile.normalize()
	if err != nil {
		return nil, err
	}
	return &User{
		id:          uuid.New(),
		email:       email,
		firstName:   p.FirstName,
		lastName:    p.LastName,
		phoneNumber: p.PhoneNumber,
		role:        RoleUser,
		credential:  cred,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	firstName, lastName string,
	phoneNumber *string,
	role Role,
	credential Credential,
	createdAt, updatedAt time.Time,
) *User {
	if credential == nil {
		credential = Guest{}
	}
	return &User{
		id:          id,
		email:       email,
		firstName:   firstName,
		lastName:    lastName,
		phoneNumber: phoneNumber,
		role:        role,
		credential:  credential,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// UpgradeToRegistered turns a guest shadow account into a full account. Reservations stay attached.
func (u *User) UpgradeToRegistered(profile Profile, passwordHash string) error {
	if u.IsRegistered() {
		return ErrAlreadyRegistered
	}
	p, err := profile.normalize()
	if err != nil {
		return err
	}
	u.firstName = p.FirstName
	u.lastName = p.LastName
	if p.PhoneNumber != nil {
		u.phoneNumber = p.PhoneNumber
	}
	u.credential = Registered{PasswordHash: passwordHash}
	return nil
}

func (u *User) IsRegistered() bool {
	_, ok := u.credential.(Registered)
	return ok
}

func (u *User) IsGuest() bool {
	return !u.IsRegistered()
}

// PasswordHash returns the stored hash, or false for guests.
func (u *User) PasswordHash() (string, bool) {
	r, ok := u.credential.(Registered)
	if !ok {
		return "", false
	}
	return r.PasswordHash, true
}

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) Email() Email           { return u.email }
func (u *User) FirstName() string      { return u.firstName }
func (u *User) LastName() string       { return u.lastName }
func (u *User) PhoneNumber() *string   { return u.phoneNumber }
func (u *User) Role() Role             { return u.role }
func (u *User) Credential() Credential { return u.credential }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) UpdatedAt() time.Time   { return u.updatedAt }

func normalizePhone(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}
